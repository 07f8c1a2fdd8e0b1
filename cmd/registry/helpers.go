// Shared helpers for registry CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/deeds/internal/sqlite"
	"github.com/mesh-intelligence/deeds/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// parseID parses a positional id argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a non-negative integer", arg)
	}
	return id, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printUserDetails prints user fields in human-readable format.
func printUserDetails(u *types.User) {
	fmt.Printf("ID:       %d\n", u.ID)
	fmt.Printf("Name:     %s\n", u.Name)
	fmt.Printf("Contact:  %s\n", u.ContactInfo)
}

// printPropertyDetails prints property fields in human-readable format.
func printPropertyDetails(p *types.Property) {
	fmt.Printf("ID:       %d\n", p.ID)
	fmt.Printf("Address:  %s\n", p.Address)
	fmt.Printf("Owner:    %d\n", p.OwnerID)
	fmt.Printf("Shares:   %d\n", p.TokenizedShares)
	if len(p.History) > 0 {
		fmt.Printf("History:\n")
		for _, entry := range p.History {
			fmt.Printf("  %d  %s\n", entry.Timestamp, entry.Event)
		}
	}
}
