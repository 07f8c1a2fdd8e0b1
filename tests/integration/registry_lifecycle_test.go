// Package integration tests the SQLite backend through the public Registry
// surface: the full Attach → operate → Detach lifecycle, cross-restart
// persistence, and the end-to-end ownership-transfer scenario.
package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/deeds/pkg/sqlite"
	"github.com/mesh-intelligence/deeds/pkg/types"
)

// newTestRegistry creates a backend attached to a temp directory.
func newTestRegistry(t *testing.T) (types.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	return b, dir
}

func TestAttachCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new-data")
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer b.Detach()

	if _, err := os.Stat(filepath.Join(dir, "registry.db")); err != nil {
		t.Errorf("missing database file: %v", err)
	}
}

func TestRegistryEndToEnd(t *testing.T) {
	b, dir := newTestRegistry(t)

	alice, err := b.AddUser(types.UserPayload{Name: "A", ContactInfo: "a@example.com"})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	bob, err := b.AddUser(types.UserPayload{Name: "B", ContactInfo: "b@example.com"})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if alice.ID != 0 || bob.ID != 1 {
		t.Fatalf("unexpected user ids: %d, %d", alice.ID, bob.ID)
	}

	property, err := b.AddProperty(types.PropertyPayload{
		Address:         "1 Main St",
		OwnerID:         alice.ID,
		TokenizedShares: 1000,
	})
	if err != nil {
		t.Fatalf("AddProperty: %v", err)
	}
	if property.ID != 0 {
		t.Fatalf("unexpected property id: %d", property.ID)
	}

	transferred, err := b.TransferOwnership(property.ID, alice.ID, bob.ID, 300)
	if err != nil {
		t.Fatalf("TransferOwnership: %v", err)
	}
	if transferred.OwnerID != bob.ID {
		t.Errorf("owner = %d, want %d", transferred.OwnerID, bob.ID)
	}
	if len(transferred.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(transferred.History))
	}
	if transferred.History[0].Event != "Created" {
		t.Errorf("history[0] = %q, want Created", transferred.History[0].Event)
	}

	// Restart: detach and re-attach over the same directory.
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	b2 := sqlite.NewBackend()
	if err := b2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("re-Attach: %v", err)
	}
	defer b2.Detach()

	deleted, err := b2.DeleteProperty(property.ID)
	if err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if deleted.OwnerID != bob.ID || len(deleted.History) != 2 {
		t.Errorf("delete did not return the prior state: %+v", deleted)
	}

	if _, err := b2.GetProperty(property.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("GetProperty after delete: got %v, want NotFound", err)
	}
}

func TestFailedOperationsLeaveStoreUnchanged(t *testing.T) {
	b, _ := newTestRegistry(t)
	defer b.Detach()

	alice, err := b.AddUser(types.UserPayload{Name: "A", ContactInfo: "a@example.com"})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	if _, err := b.AddProperty(types.PropertyPayload{Address: "", OwnerID: alice.ID}); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("empty address: got %v, want InvalidInput", err)
	}
	if got := b.ListProperties(0, 10); len(got) != 0 {
		t.Errorf("store changed after failed add: %d properties", len(got))
	}
}
