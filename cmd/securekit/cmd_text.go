package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lloms/securekit/pkg/logger"
	"github.com/lloms/securekit/pkg/sanitizer"
)

func newSanitizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanitize [text...]",
		Short: "Remove script, frame and protocol constructs from text",
		Long: `Remove dangerous markup until none is left.

Examples:
  securekit sanitize '<scr<script>ipt>alert(1)</script>Hello'
  echo '<b>hi</b>' | securekit sanitize --escape`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			out := a.engine.Sanitize(in)
			if escape, _ := cmd.Flags().GetBool("escape"); escape {
				out = sanitizer.EscapeHTML(out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Bool("escape", false, "HTML-escape the sanitized result")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [text...]",
		Short: "Normalize input of a given kind (text, email, url)",
		Long: `Trim and clean input the way a form field of that kind would.

Examples:
  securekit validate --kind url ' example.com '
  securekit validate --kind email '<b>ops</b>@example.com'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("kind")
			kind := sanitizer.ParseKind(name)
			if !strings.EqualFold(kind.String(), strings.TrimSpace(name)) {
				a.log.DebugContext(cmd.Context(), "unknown input kind, using text",
					logger.InputKind(name))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.engine.Validate(in, kind))
			return err
		},
	}
	cmd.Flags().String("kind", sanitizer.KindText.String(), "Input kind: text, email or url")
	return cmd
}

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text...]",
		Short: "Report dangerous constructs without changing the text",
		Long: `List every catalog pattern found in the input.

Exits with status 1 when anything was found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			findings := sanitizer.Detect(in)
			if len(findings) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "clean")
				return err
			}

			for _, f := range findings {
				logger.SecurityEvent(cmd.Context(), a.log, slog.LevelWarn, "malicious_input",
					logger.Component("cli"),
					logger.Pattern(f.Pattern),
					logger.InputLength(len(in)),
				)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%q\n", f.Severity, f.Pattern, f.Match); err != nil {
					return err
				}
			}
			return exitCode(1)
		},
	}
}
