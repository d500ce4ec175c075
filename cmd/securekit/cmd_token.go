package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lloms/securekit/pkg/token"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate random alphanumeric tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			length, _ := cmd.Flags().GetInt("length")
			count, _ := cmd.Flags().GetInt("count")
			for range max(count, 1) {
				tok, err := a.tokens.Generate(length)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tok); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("length", 0, "Token length (default from TOKEN_LENGTH)")
	cmd.Flags().IntP("count", "n", 1, "Number of tokens")
	return cmd
}

func newJWTCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt [token]",
		Short: "Check that a token has the three-segment JWT shape",
		Long: `Check the structure of a JWT. The signature is NOT verified.

Exits with status 1 when the token is malformed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}

			segments, err := token.Segments(in)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return exitCode(1)
			}

			if decoded, _ := cmd.Flags().GetBool("decode"); decoded {
				for _, part := range segments[:2] {
					if json.Valid(part) {
						fmt.Fprintln(cmd.OutOrStdout(), string(part))
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%q\n", part)
					}
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
	cmd.Flags().Bool("decode", false, "Print the decoded header and payload")
	return cmd
}
