// Package redis connects to a Redis server and exposes it as a shared
// securestore backend.
//
// Connect retries the initial ping according to Config, whose fields are
// populated from the environment with github.com/caarlos0/env:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := securestore.New(redis.NewBackend(client, cfg))
//
// Healthcheck returns a check function for liveness or readiness checks.
//
// Errors are sentinel values joined with the go-redis cause via errors.Join,
// so callers can match them with errors.Is.
package redis
