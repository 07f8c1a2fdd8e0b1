package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

// persist runs fn inside one SQL transaction together with a counter
// snapshot, so a mutation and its allocator position land atomically.
func (b *Backend) persist(fn func(tx *sql.Tx) error) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	nextUserID, nextPropertyID := b.ledger.NextIDs()
	if err := saveCounters(tx, nextUserID, nextPropertyID); err != nil {
		return fmt.Errorf("saving counters: %w", err)
	}
	return tx.Commit()
}

func saveCounters(tx *sql.Tx, nextUserID, nextPropertyID uint64) error {
	for key, value := range map[string]uint64{
		metaNextUserID:     nextUserID,
		metaNextPropertyID: nextPropertyID,
	} {
		if _, err := tx.Exec(
			"INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, strconv.FormatUint(value, 10),
		); err != nil {
			return err
		}
	}
	return nil
}

func saveUser(tx *sql.Tx, u *types.User) error {
	_, err := tx.Exec(
		`INSERT INTO users (user_id, name, contact_info, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   name = excluded.name,
		   contact_info = excluded.contact_info,
		   updated_at = excluded.updated_at`,
		int64(u.ID), u.Name, u.ContactInfo, int64(u.CreatedAt), int64(u.UpdatedAt),
	)
	return err
}

func deleteUserRow(tx *sql.Tx, id uint64) error {
	_, err := tx.Exec("DELETE FROM users WHERE user_id = ?", int64(id))
	return err
}

// saveProperty upserts the property row and inserts any history rows not
// yet on disk. Existing history rows are never rewritten; the log is
// append-only on disk as well.
func saveProperty(tx *sql.Tx, p *types.Property) error {
	_, err := tx.Exec(
		`INSERT INTO properties (property_id, address, owner_id, tokenized_shares, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(property_id) DO UPDATE SET
		   address = excluded.address,
		   owner_id = excluded.owner_id,
		   tokenized_shares = excluded.tokenized_shares,
		   updated_at = excluded.updated_at`,
		int64(p.ID), p.Address, int64(p.OwnerID), int64(p.TokenizedShares),
		int64(p.CreatedAt), int64(p.UpdatedAt),
	)
	if err != nil {
		return err
	}

	for seq, entry := range p.History {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO history (property_id, seq, timestamp, event) VALUES (?, ?, ?, ?)",
			int64(p.ID), int64(seq), int64(entry.Timestamp), entry.Event,
		); err != nil {
			return err
		}
	}
	return nil
}

func deletePropertyRow(tx *sql.Tx, id uint64) error {
	if _, err := tx.Exec("DELETE FROM history WHERE property_id = ?", int64(id)); err != nil {
		return err
	}
	_, err := tx.Exec("DELETE FROM properties WHERE property_id = ?", int64(id))
	return err
}
