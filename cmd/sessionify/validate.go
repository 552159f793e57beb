package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sufield/sessionify/internal/config"
	"github.com/sufield/sessionify/pkg/identitytls"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [flags]",
		Short: "Check the trust configuration and build the mTLS client settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ResolvePath(configPath(cmd))
			if err != nil {
				return err
			}
			cfg, err := config.LoadDefault(path)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			anchor, err := cfg.ResolveTrustAnchor()
			if err != nil {
				return err
			}
			certPEM, keyPEM, err := cfg.IdentityKeyPair()
			if err != nil {
				return err
			}
			if _, err := identitytls.NewClientTLSConfig(anchor.Bundle, certPEM, keyPEM); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", path)
			fmt.Fprintf(out, "  trust anchor: %s (%d certificates)\n", anchor.Name, len(anchor.Bundle.X509Authorities()))
			fmt.Fprintf(out, "  sessions url: %s\n", anchor.SessionsURL)
			return nil
		},
	}
}
