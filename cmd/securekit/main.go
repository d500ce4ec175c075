package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lloms/securekit/pkg/config"
	"github.com/lloms/securekit/pkg/logger"
	"github.com/lloms/securekit/pkg/redact"
	"github.com/lloms/securekit/pkg/requestid"
	"github.com/lloms/securekit/pkg/sanitizer"
	"github.com/lloms/securekit/pkg/token"
)

var version = "0.1.0-dev"

// exitCode ends the process with a status but no message. Commands use it
// to report a negative answer ("malicious", "invalid") as opposed to a
// failure.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// app is the state shared by every command, built once per invocation.
type app struct {
	log       *slog.Logger
	engine    *sanitizer.Engine
	tokens    *token.Generator
	redactor  *redact.Redactor
	redactCfg redact.Config
	envName   string
}

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, "error:", redact.RedactError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "securekit",
		Short: "Sanitize, validate and redact untrusted text",
		Long: `securekit exposes the securekit library on the command line.

Text is taken from the arguments or, when none are given, from stdin.
Configuration is read from the environment and ./.env.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if envFile != "" {
				if err := config.LoadEnv(envFile); err != nil {
					return err
				}
			}
			if err := a.init(cmd.ErrOrStderr()); err != nil {
				return err
			}
			id, _ := cmd.Flags().GetString("request-id")
			cmd.SetContext(requestid.WithContext(cmd.Context(), requestid.Resolve(id)))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file first")
	rootCmd.PersistentFlags().String("request-id", "", "Correlation id for log records (generated when empty or invalid)")

	rootCmd.AddCommand(
		newSanitizeCmd(a),
		newValidateCmd(a),
		newDetectCmd(a),
		newRedactCmd(a),
		newTokenCmd(a),
		newJWTCmd(a),
		newStoreCmd(a),
		newEnvCheckCmd(a),
	)

	return rootCmd
}

func (a *app) init(stderr io.Writer) error {
	var (
		lc logger.Config
		sc sanitizer.Config
		tc token.Config
		rc redact.Config
	)
	if err := errors.Join(
		config.Load(&lc),
		config.Load(&sc),
		config.Load(&tc),
		config.Load(&rc),
	); err != nil {
		return err
	}

	redactor, err := redact.NewFromConfig(rc)
	if err != nil {
		return err
	}

	a.redactor = redactor
	a.redactCfg = rc
	a.envName = lc.Env
	a.log = logger.New(
		logger.WithConfig(lc),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithMessageFilter(func(s string) string {
			if s == "" {
				return s
			}
			return redactor.Redact(s)
		}),
	)
	a.engine = sanitizer.New(sanitizer.WithConfig(sc), sanitizer.WithLogger(a.log))
	a.tokens = token.NewGenerator(token.WithConfig(tc))
	return nil
}

// input joins args, or reads all of stdin when there are none. A single
// trailing newline from stdin is dropped.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := string(b)
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
