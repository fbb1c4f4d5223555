// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-tacacs-admin",
	Short: "GoTacacs-Admin is a management service for tac_plus-ng",
	Long: `GoTacacs-Admin is a management service for the tac_plus-ng TACACS+ daemon
that stores devices, groups, users, authorization profiles and rulesets in a
relational database and compiles them into the daemon's configuration format.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
