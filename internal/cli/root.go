// Package cli implements the washify command tree. Commands are the "view"
// layer of the marketplace: they bind flags, validate input, call a service
// and print either the result or the failure message inline. Every command
// runs to completion before the process exits; there is no long-lived state
// outside the store.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/washify/laundry-market/internal/pkg/config"
	"github.com/washify/laundry-market/pkg/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger

	// verbose bumps the log level to debug regardless of WASHIFY_LOG_LEVEL.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "washify",
	Short: "Washify – local-first laundry marketplace",
	Long: `Washify connects students to laundry sellers.

All state lives in a local key-value store (a directory of JSON documents by
default); there is no server. Register an account, log in as a student to
browse sellers and place orders, or as a seller to work the order queue and
chat with customers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env next to the binary is a convenience, not a requirement.
		_ = godotenv.Load()

		cfg = config.Load()

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log = logger.Init(logger.Options{Level: level, Filename: cfg.LogFile})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(sellersCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
