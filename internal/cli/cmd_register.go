package cli

import (
	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
)

type registerInput struct {
	Name     string  `validate:"required"`
	Email    string  `validate:"required,email"`
	Password string  `validate:"required,min=4"`
	Role     string  `validate:"required,oneof=student seller"`
	Area     string
	Price    float64 `validate:"gte=0"`
}

var regInput registerInput

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a student or seller account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkInput(regInput); err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		user, err := a.users.Register(ctx, ports.RegisterUserInput{
			Name:         regInput.Name,
			Email:        regInput.Email,
			Password:     regInput.Password,
			Role:         domain.Role(regInput.Role),
			Area:         regInput.Area,
			PricePerWash: regInput.Price,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Registered %s (%s), id %s\n", user.Name, user.Role, user.ID)
		if user.IsSeller() {
			cmd.Printf("Price per wash: $%.2f\n", user.PricePerWash)
		}
		return nil
	},
}

func init() {
	f := registerCmd.Flags()
	f.StringVar(&regInput.Name, "name", "", "full name")
	f.StringVar(&regInput.Email, "email", "", "email address (must be unique)")
	f.StringVar(&regInput.Password, "password", "", "password")
	f.StringVar(&regInput.Role, "role", "student", "account role: student or seller")
	f.StringVar(&regInput.Area, "area", "", "service area (sellers)")
	f.Float64Var(&regInput.Price, "price", 0, "price per wash (sellers, defaults to 10)")
}
