// Shared helpers for daybook CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/backup"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// openStore resolves the data directory and opens the record store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	storeCfg := cfg
	storeCfg.DataDir = dataDir
	store, err := sqlite.Open(storeCfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// newServices builds the entity services over an open store.
func newServices(store *sqlite.Store) *service.Services {
	return service.New(store, log)
}

// newGateway builds the remote backup gateway, or fails when no document
// store is configured.
func newGateway() (*backup.Gateway, *backup.RedisStore, error) {
	if cfg.RedisAddr == "" {
		return nil, nil, errors.New("cloud backup is not configured (set redis_addr)")
	}
	docs := backup.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	return backup.NewGateway(docs, log), docs, nil
}

// currentProvider builds the auth provider from --uid or $DAYBOOK_UID.
func currentProvider() *auth.StaticProvider {
	uid := flagUID
	if uid == "" {
		uid = os.Getenv("DAYBOOK_UID")
	}
	return auth.NewStaticProvider(uid)
}

// parseIDArg decodes a positional id argument, exiting with a user error on
// bad input.
func parseIDArg(arg string) types.ID {
	id, err := types.ParseID(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id %q (want 24 hex characters)\n", arg)
		os.Exit(exitUserError)
	}
	return id
}

// parseDateArg decodes a YYYY-MM-DD positional argument, exiting with a user
// error on bad input.
func parseDateArg(arg string) time.Time {
	t, err := time.Parse("2006-01-02", arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid date %q (want YYYY-MM-DD)\n", arg)
		os.Exit(exitUserError)
	}
	return t
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// isNotFound reports whether the error wraps types.ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
