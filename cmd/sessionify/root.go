package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sessionify",
		Short: "Register a confidential-computing session and exec a command under it",
		Long: "Generates a namespace and a session policy for a command, submits both to the\n" +
			"configuration service over mutual TLS and replaces itself with the command.\n" +
			"The trust configuration is read from --config, $SESSIONIFY_CONFIG or ~/.cas/config.json.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to the trust configuration (JSON or YAML)")

	root.AddCommand(
		newExecCmd(),
		newRenderCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
