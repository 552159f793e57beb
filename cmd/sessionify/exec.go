package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sufield/sessionify"
)

var errNoCommand = fmt.Errorf("%w: usage is [KEY=VALUE...] <command> [args...]", sessionify.ErrNoCommand)

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] [KEY=VALUE...] <command> [args...]",
		Short: "Register a session and exec the command under it",
		Long: "Leading KEY=VALUE arguments become the environment of the command.\n" +
			"The first argument without '=' starts the command; everything after it is passed through.",
		Args: cobra.MinimumNArgs(1),
		RunE: runExec,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runExec(cmd *cobra.Command, args []string) error {
	env, command := sessionify.SplitArgs(args)
	if len(command) == 0 {
		return errNoCommand
	}
	return sessionify.GenAndExec(cmd.Context(), command, env, sessionify.WithConfigPath(configPath(cmd)))
}
