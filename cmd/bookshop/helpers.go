// Shared helpers for bookshop CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// openStore resolves the data directory, creates the SQLite store, and
// opens it. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	if err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// parseBookID parses a positional book id argument.
func parseBookID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q: %w", arg, types.ErrValidation)
	}
	return id, nil
}

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
