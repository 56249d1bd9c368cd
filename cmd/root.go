package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Single-page personal portfolio server",
		Long: `Portfolio serves a single scrolling page with biography, skills, projects,
experience and a contact form. Navigation highlighting follows the visitor's
scroll position through a live session kept by the server.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	cmd.AddCommand(newServeCmd(), newCheckCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
