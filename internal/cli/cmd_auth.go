package cli

import (
	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/core/domain"
)

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=student seller"`
}

var logInput loginInput

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in through the student or seller portal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkInput(logInput); err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sess, err := a.auth.Login(ctx, logInput.Email, logInput.Password, domain.Role(logInput.Role))
		if err != nil {
			return err
		}

		cmd.Printf("Welcome, %s!\n", sess.Name)
		if sess.Role == domain.RoleSeller {
			cmd.Printf("Area: %s  Price per wash: $%.2f\n", sess.Area, sess.PricePerWash)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out (safe to run when nobody is logged in)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		if err := a.auth.Logout(ctx); err != nil {
			return err
		}
		cmd.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		sess, err := a.auth.CurrentSession(ctx)
		if err != nil {
			return err
		}
		if sess == nil {
			cmd.Println("Not logged in.")
			return nil
		}

		cmd.Printf("%s (%s), user id %s\n", sess.Name, sess.Role, sess.UserID)
		if sess.Role == domain.RoleSeller {
			cmd.Printf("Area: %s  Price per wash: $%.2f\n", sess.Area, sess.PricePerWash)
		}
		return nil
	},
}

func init() {
	f := loginCmd.Flags()
	f.StringVar(&logInput.Email, "email", "", "email address")
	f.StringVar(&logInput.Password, "password", "", "password")
	f.StringVar(&logInput.Role, "role", "student", "portal to log in through: student or seller")
}
