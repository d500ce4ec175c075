package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lloms/securekit/pkg/environment"
)

func newEnvCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env-check <url>",
		Short: "Check whether a URL is a secure origin for the current APP_ENV",
		Long: `A URL is secure when it uses https, points at localhost or 127.0.0.1,
or APP_ENV is not production.

Exits with status 1 when the URL is not secure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := environment.Parse(a.envName)
			if environment.IsSecure(args[0], env) {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "secure (%s)\n", env)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "insecure (%s)\n", env)
			return exitCode(1)
		},
	}
}
