package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sufield/sessionify"
	"github.com/sufield/sessionify/internal/adapters/outbound/casapi"
	"github.com/sufield/sessionify/internal/adapters/outbound/launcher"
	"github.com/sufield/sessionify/internal/app"
	"github.com/sufield/sessionify/internal/config"
	"github.com/sufield/sessionify/internal/domain"
)

func newRenderCmd() *cobra.Command {
	var (
		attestation string
		component   string
	)

	cmd := &cobra.Command{
		Use:   "render [flags] [KEY=VALUE...] <command> [args...]",
		Short: "Print the policy documents exec would submit",
		Long: "Builds the namespace and session documents for the command without contacting\n" +
			"the configuration service. Only the identity certificate of the trust configuration is read.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseAttestationMode(attestation)
			if err != nil {
				return err
			}

			env, command := sessionify.SplitArgs(args)
			if len(command) == 0 {
				return errNoCommand
			}

			cfg, err := config.LoadDefault(configPath(cmd))
			if err != nil {
				return err
			}
			creator, err := cfg.IdentityCertificatePEM()
			if err != nil {
				return err
			}

			svc, err := app.NewSessionService(casapi.Factory(), app.WithComponent(component))
			if err != nil {
				return err
			}
			rendered, err := svc.RenderSession(app.SessionRequest{
				CreatorPEM:  creator,
				Command:     command,
				Environment: launcher.ParseEnv(env),
				Attestation: mode,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s=%s\n", launcher.ConfigIDEnv, rendered.ConfigID)
			fmt.Fprintf(out, "---\n%s---\n%s", rendered.Namespace, rendered.Session)
			return nil
		},
	}

	cmd.Flags().StringVar(&attestation, "attestation", domain.AttestationNone.String(), "Attestation preset: none or hardware-insecure")
	cmd.Flags().StringVar(&component, "component", app.DefaultComponent, "Component name embedded in the namespace name")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
