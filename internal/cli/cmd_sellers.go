package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/core/domain"
)

var sellersSearch string

var sellersCmd = &cobra.Command{
	Use:   "sellers",
	Short: "Browse laundry sellers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sellers, err := a.users.ListSellers(ctx, sellersSearch)
		if err != nil {
			return err
		}
		if len(sellers) == 0 {
			cmd.Println("No sellers found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintln(w, "ID\tNAME\tAREA\tRATING\tREVIEWS\tPRICE/WASH")
		for _, s := range sellers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\t$%.2f\n",
				s.ID, s.Name, s.Area, s.Rating, s.Reviews, s.PricePerWash)
		}
		return nil
	},
}

var priceCmd = &cobra.Command{
	Use:   "price <new-price>",
	Short: "Update your price per wash (sellers only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sess, err := requireRole(ctx, a, domain.RoleSeller)
		if err != nil {
			return err
		}

		ok, err := a.users.UpdateSellerPrice(ctx, sess.UserID, price)
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Account no longer exists; price not updated.")
			return nil
		}

		cmd.Printf("Price per wash updated to $%.2f\n", price)
		return nil
	},
}

func init() {
	sellersCmd.Flags().StringVar(&sellersSearch, "search", "", "filter by name or area")
}
