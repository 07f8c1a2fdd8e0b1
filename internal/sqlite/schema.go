// Package sqlite implements the durable Registry backend for deeds. SQLite
// is the source of truth across process restarts; the ledger core holds the
// authoritative in-memory state while attached.
package sqlite

// Schema DDL. Timestamps are Unix nanoseconds stored as INTEGER. History
// rows carry a seq column preserving append order within a property.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    contact_info TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL DEFAULT 0
);`

	createProperties = `CREATE TABLE IF NOT EXISTS properties (
    property_id INTEGER PRIMARY KEY,
    address TEXT NOT NULL,
    owner_id INTEGER NOT NULL,
    tokenized_shares INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL DEFAULT 0
);`

	createHistory = `CREATE TABLE IF NOT EXISTS history (
    property_id INTEGER NOT NULL,
    seq INTEGER NOT NULL,
    timestamp INTEGER NOT NULL,
    event TEXT NOT NULL,
    PRIMARY KEY (property_id, seq),
    FOREIGN KEY (property_id) REFERENCES properties(property_id)
);`

	createMetadata = `CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Metadata keys.
const (
	metaRegistryID     = "registry_id"
	metaNextUserID     = "next_user_id"
	metaNextPropertyID = "next_property_id"
)

// schemaStatements lists the DDL in creation order.
var schemaStatements = []string{
	createUsers,
	createProperties,
	createHistory,
	createMetadata,
}
