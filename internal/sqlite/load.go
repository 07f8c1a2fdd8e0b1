package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/deeds/internal/ledger"
	"github.com/mesh-intelligence/deeds/pkg/types"
)

// loadLedger hydrates all persisted state into a fresh ledger: users,
// properties with their history ordered by seq, and the id allocator
// positions.
func loadLedger(db *sql.DB) (*ledger.Ledger, error) {
	users, err := loadUsers(db)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	properties, err := loadProperties(db)
	if err != nil {
		return nil, fmt.Errorf("loading properties: %w", err)
	}
	nextUserID, err := loadCounter(db, metaNextUserID)
	if err != nil {
		return nil, fmt.Errorf("loading user counter: %w", err)
	}
	nextPropertyID, err := loadCounter(db, metaNextPropertyID)
	if err != nil {
		return nil, fmt.Errorf("loading property counter: %w", err)
	}

	led := ledger.New()
	led.Restore(users, properties, nextUserID, nextPropertyID)
	return led, nil
}

func loadUsers(db *sql.DB) ([]*types.User, error) {
	rows, err := db.Query(
		"SELECT user_id, name, contact_info, created_at, updated_at FROM users",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		var id, createdAt, updatedAt int64
		if err := rows.Scan(&id, &u.Name, &u.ContactInfo, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		u.ID = uint64(id)
		u.CreatedAt = uint64(createdAt)
		u.UpdatedAt = uint64(updatedAt)
		users = append(users, &u)
	}
	return users, rows.Err()
}

func loadProperties(db *sql.DB) ([]*types.Property, error) {
	rows, err := db.Query(
		"SELECT property_id, address, owner_id, tokenized_shares, created_at, updated_at FROM properties",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*types.Property
	for rows.Next() {
		var p types.Property
		var id, ownerID, shares, createdAt, updatedAt int64
		if err := rows.Scan(&id, &p.Address, &ownerID, &shares, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.ID = uint64(id)
		p.OwnerID = uint64(ownerID)
		p.TokenizedShares = uint64(shares)
		p.CreatedAt = uint64(createdAt)
		p.UpdatedAt = uint64(updatedAt)
		properties = append(properties, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range properties {
		history, err := loadHistory(db, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading history for property %d: %w", p.ID, err)
		}
		p.History = history
	}
	return properties, nil
}

// loadHistory returns a property's history ordered by seq ascending,
// preserving the original append order regardless of timestamp ties.
func loadHistory(db *sql.DB, propertyID uint64) ([]types.HistoryEntry, error) {
	rows, err := db.Query(
		"SELECT timestamp, event FROM history WHERE property_id = ? ORDER BY seq",
		int64(propertyID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var ts int64
		if err := rows.Scan(&ts, &e.Event); err != nil {
			return nil, err
		}
		e.Timestamp = uint64(ts)
		history = append(history, e)
	}
	return history, rows.Err()
}

// loadCounter reads an allocator position from metadata; a missing key
// means the registry is new and the counter starts at 0.
func loadCounter(db *sql.DB, key string) (uint64, error) {
	var value string
	err := db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(value, 10, 64)
}
