package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lloms/securekit/pkg/redact"
)

func newRedactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redact [message...]",
		Short: "Strip credentials and internal addresses from a message",
		Long: `Replace key=value credentials and private network addresses with a marker.

Examples:
  securekit redact 'password=abc123 host=10.0.0.5'
  securekit redact --rules extra.yaml < error.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}

			r := a.redactor
			if path, _ := cmd.Flags().GetString("rules"); path != "" {
				if r, err = withRulesFile(a.redactCfg, path); err != nil {
					return err
				}
			}

			if explain, _ := cmd.Flags().GetBool("explain"); explain {
				for _, name := range r.Matched(in) {
					fmt.Fprintln(cmd.ErrOrStderr(), "matched:", name)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Redact(in))
			return err
		},
	}
	cmd.Flags().String("rules", "", "YAML file with extra redaction rules")
	cmd.Flags().Bool("explain", false, "List matching rule names on stderr")
	return cmd
}

// withRulesFile extends the configured redactor with the rules in path.
func withRulesFile(cfg redact.Config, path string) (*redact.Redactor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()

	rules, err := redact.LoadRules(f)
	if err != nil {
		return nil, err
	}
	return redact.NewFromConfig(cfg, redact.WithRules(rules...))
}
