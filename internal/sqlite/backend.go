package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/deeds/internal/ledger"
	"github.com/mesh-intelligence/deeds/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "registry.db"

// Compile-time interface check: Backend must implement types.Backend.
var _ types.Backend = (*Backend)(nil)

// Backend implements the Registry interface with SQLite durability. All
// operations delegate to an in-memory ledger under a single mutex, so at
// most one operation is in flight at a time; successful mutations persist
// the affected rows in one SQL transaction before returning.
type Backend struct {
	mu         sync.Mutex
	attached   bool
	config     types.Config
	db         *sql.DB
	ledger     *ledger.Ledger
	registryID string
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration: creates
// DataDir if needed, opens the database, ensures the schema, seeds the
// registry id on first run, and loads all persisted state into a fresh
// ledger. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	registryID, err := seedRegistryID(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("seeding registry id: %w", err)
	}

	led, err := loadLedger(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("loading ledger state: %w", err)
	}

	b.config = config
	b.db = db
	b.ledger = led
	b.registryID = registryID
	b.attached = true
	return nil
}

// Detach closes the database and releases resources. Idempotent: multiple
// calls succeed. After Detach, operations return ErrRegistryDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.ledger = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// RegistryID returns the stable identifier seeded into this registry's
// metadata on first attach. Empty when detached.
func (b *Backend) RegistryID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return ""
	}
	return b.registryID
}

// seedRegistryID returns the stored registry id, generating and persisting
// a UUID v7 on first attach.
func seedRegistryID(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow(
		"SELECT value FROM metadata WHERE key = ?", metaRegistryID,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	newID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	id = newID.String()
	if _, err := db.Exec(
		"INSERT INTO metadata (key, value) VALUES (?, ?)", metaRegistryID, id,
	); err != nil {
		return "", err
	}
	return id, nil
}
