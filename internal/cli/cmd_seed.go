package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/demo"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalog: five sellers and a starter order history",
	Long: `Seed inserts the demo seller accounts (password "` + demo.Password + `") and, when
the order collection has never been written, a small starter history. Sellers
already present are skipped; an existing order collection is left untouched.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		added := 0
		for _, seller := range demo.Sellers() {
			s := seller
			if _, err := a.userRepo.Create(ctx, &s); err != nil {
				if errors.Is(err, domain.ErrEmailTaken) {
					continue
				}
				return err
			}
			added++
		}
		cmd.Printf("Sellers: %d added, %d already present\n", added, len(demo.Sellers())-added)

		seeded, err := a.orders.Seed(ctx, demo.Orders())
		if err != nil {
			return err
		}
		if seeded {
			cmd.Println("Order history initialized.")
		} else {
			cmd.Println("Order history already exists; left untouched.")
		}
		return nil
	},
}
