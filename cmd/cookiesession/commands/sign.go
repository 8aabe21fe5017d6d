package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cookiesession/pkg/session"
)

func signCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "sign JSON",
		Short:   "Sign a JSON object as a session cookie value",
		Example: `  cookiesession sign --secret super-secret '{"application":"svc-a"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.manager()
			if err != nil {
				return err
			}

			var values map[string]any
			if err := json.Unmarshal([]byte(args[0]), &values); err != nil {
				return fmt.Errorf("payload must be a JSON object: %w", err)
			}

			token, err := m.Signer().Sign(values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func unsignCmd(flags *rootFlags) *cobra.Command {
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "unsign TOKEN",
		Short: "Verify a session cookie value and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.manager()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-age") {
				maxAge = m.MaxAge()
			}

			values, signedAt, err := m.Signer().UnsignTimestamp(args[0], maxAge)
			if err != nil {
				return err
			}

			out := json.NewEncoder(cmd.OutOrStdout())
			out.SetIndent("", "  ")
			if err := out.Encode(values); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed at %s\n", signedAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", session.DefaultMaxAge, "reject tokens older than this; 0 disables the check")
	return cmd
}

func (f *rootFlags) manager() (*session.Manager, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	return session.NewFromConfig(cfg.Session)
}
