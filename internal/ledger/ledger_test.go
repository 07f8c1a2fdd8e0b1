package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

// newTestLedger returns a ledger with a stepping clock so every mutation
// gets a distinct, predictable timestamp.
func newTestLedger() *Ledger {
	var tick uint64 = 1000
	return New(WithClock(func() uint64 {
		tick++
		return tick
	}))
}

func addUser(t *testing.T, l *Ledger, name string) *types.User {
	t.Helper()
	user, err := l.AddUser(types.UserPayload{Name: name, ContactInfo: name + "@example.com"})
	require.NoError(t, err)
	return user
}

func TestAddUserAllocatesSequentialIDs(t *testing.T) {
	l := newTestLedger()

	a := addUser(t, l, "Alice")
	b := addUser(t, l, "Bob")

	assert.Equal(t, uint64(0), a.ID)
	assert.Equal(t, uint64(1), b.ID)
	assert.NotZero(t, a.CreatedAt)
	assert.Zero(t, a.UpdatedAt)
}

func TestUserIDsNeverReused(t *testing.T) {
	l := newTestLedger()

	var last uint64
	for i := 0; i < 5; i++ {
		user := addUser(t, l, "User")
		if i > 0 {
			assert.Greater(t, user.ID, last, "ids must be strictly increasing")
		}
		last = user.ID

		// Deleting must not rewind the allocator.
		_, err := l.DeleteUser(user.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(4), last)
}

func TestAddUserValidationLeavesStoreUnchanged(t *testing.T) {
	l := newTestLedger()
	addUser(t, l, "Alice")

	_, err := l.AddUser(types.UserPayload{Name: "", ContactInfo: "x@example.com"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Equal(t, 1, l.users.size())

	// The allocator must not have ticked for the failed add.
	next := addUser(t, l, "Bob")
	assert.Equal(t, uint64(1), next.ID)
}

func TestGetUserNotFound(t *testing.T) {
	l := newTestLedger()

	_, err := l.GetUser(99)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.EqualError(t, err, "user id 99 not found")
}

func TestUpdateUser(t *testing.T) {
	l := newTestLedger()
	user := addUser(t, l, "Alice")

	updated, err := l.UpdateUser(user.ID, types.UserPayload{Name: "Alice Smith", ContactInfo: "as@example.org"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, updated.ID, "id is immutable")
	assert.Equal(t, "Alice Smith", updated.Name)
	assert.Equal(t, "as@example.org", updated.ContactInfo)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, updated.CreatedAt)
}

func TestUpdateUserErrors(t *testing.T) {
	l := newTestLedger()
	user := addUser(t, l, "Alice")

	_, err := l.UpdateUser(99, types.UserPayload{Name: "X", ContactInfo: "x@example.com"})
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = l.UpdateUser(user.ID, types.UserPayload{Name: "", ContactInfo: "x@example.com"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	// Failed update must not touch the stored record.
	got, err := l.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestDeleteUserReturnsPriorState(t *testing.T) {
	l := newTestLedger()
	user := addUser(t, l, "Alice")

	deleted, err := l.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, deleted)

	_, err = l.GetUser(user.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = l.DeleteUser(user.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListUsersPagination(t *testing.T) {
	l := newTestLedger()
	for i := 0; i < 5; i++ {
		addUser(t, l, "User")
	}

	first := l.ListUsers(0, 2)
	require.Len(t, first, 2)
	assert.Equal(t, uint64(0), first[0].ID)
	assert.Equal(t, uint64(1), first[1].ID)

	last := l.ListUsers(2, 2)
	require.Len(t, last, 1)
	assert.Equal(t, uint64(4), last[0].ID)

	assert.Empty(t, l.ListUsers(3, 2), "past-the-end page is empty")
	assert.Empty(t, l.ListUsers(0, 0), "zero page size yields nothing")
}
