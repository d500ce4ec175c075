package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lloms/securekit/pkg/config"
	"github.com/lloms/securekit/pkg/logger"
	"github.com/lloms/securekit/pkg/redis"
	"github.com/lloms/securekit/pkg/securestore"
)

// memoryBackend is shared by every command run in this process. Values do
// not outlive the process, so --memory is only useful within one invocation
// or from tests.
var memoryBackend = securestore.NewMemoryBackend()

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Read and write encoded values in Redis",
		Long: `Store JSON values in Redis through securestore.

Values are written as base64 of the percent-escaped JSON unless --plain is
given, or sealed with AES-GCM when SECURESTORE_APP_KEY and
SECURESTORE_SCOPE_KEY are set. The encoding alone is NOT encryption.

Examples:
  securekit store set user '{"a":1}'
  securekit store get user
  securekit store rm user`,
	}

	cmd.PersistentFlags().Bool("memory", false, "Use an in-process backend instead of Redis (single invocation only, nothing is persisted)")
	cmd.PersistentFlags().Bool("plain", false, "Skip the encoding layer")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> [json]",
			Short: "Write a JSON value (argument or stdin)",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, done, err := a.openStore(cmd)
				if err != nil {
					return err
				}
				defer done()

				in, err := input(cmd, args[1:])
				if err != nil {
					return err
				}
				var value any
				if err := json.Unmarshal([]byte(in), &value); err != nil {
					return fmt.Errorf("value is not JSON: %w", err)
				}
				return store.Set(cmd.Context(), args[0], value, callOpts(cmd)...)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a stored value as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, done, err := a.openStore(cmd)
				if err != nil {
					return err
				}
				defer done()

				value, ok := securestore.GetAs[json.RawMessage](cmd.Context(), store, args[0], callOpts(cmd)...)
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "not found")
					return exitCode(1)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(value))
				return err
			},
		},
		&cobra.Command{
			Use:   "rm <key>",
			Short: "Remove a value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, done, err := a.openStore(cmd)
				if err != nil {
					return err
				}
				defer done()
				return store.Remove(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}

func callOpts(cmd *cobra.Command) []securestore.CallOption {
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return []securestore.CallOption{securestore.Plain()}
	}
	return nil
}

// openStore returns the configured store and a function releasing its
// connection.
func (a *app) openStore(cmd *cobra.Command) (*securestore.Store, func(), error) {
	var sc securestore.Config
	if err := config.Load(&sc); err != nil {
		return nil, nil, err
	}
	log := a.log.With(logger.Component("securestore"))

	if memory, _ := cmd.Flags().GetBool("memory"); memory {
		store, err := securestore.NewFromConfig(sc, memoryBackend, securestore.WithLogger(log))
		return store, func() {}, err
	}

	var rc redis.Config
	if err := config.Load(&rc); err != nil {
		return nil, nil, err
	}
	client, err := redis.Connect(cmd.Context(), rc)
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			a.log.WarnContext(cmd.Context(), "close redis client", logger.Error(err))
		}
	}

	store, err := securestore.NewFromConfig(sc, redis.NewBackend(client, rc), securestore.WithLogger(log))
	if err != nil {
		closeClient()
		return nil, nil, err
	}
	return store, closeClient, nil
}
