package authz

import (
	"testing"

	"heatmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestForOwned(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name   string
		caller Caller
		want   Decision
	}{
		{name: "anonymous denied", caller: Anonymous(), want: Deny},
		{name: "owner gets write", caller: NewCaller(ownerID, entity.RoleUser), want: AllowWrite},
		{name: "other user denied", caller: NewCaller(otherID, entity.RoleUser), want: Deny},
		{name: "admin gets write on any row", caller: NewCaller(otherID, entity.RoleAdmin), want: AllowWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForOwned(tt.caller, ownerID))
		})
	}
}

func TestCanReadCanWrite(t *testing.T) {
	ownerID := uuid.New()

	owner := NewCaller(ownerID, entity.RoleUser)
	assert.True(t, CanRead(owner, ownerID))
	assert.True(t, CanWrite(owner, ownerID))

	stranger := NewCaller(uuid.New(), entity.RoleUser)
	assert.False(t, CanRead(stranger, ownerID))
	assert.False(t, CanWrite(stranger, ownerID))

	admin := NewCaller(uuid.New(), entity.RoleAdmin)
	assert.True(t, CanRead(admin, ownerID))
	assert.True(t, CanWrite(admin, ownerID))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, NewCaller(uuid.New(), entity.RoleAdmin).IsAdmin())
	assert.False(t, NewCaller(uuid.New(), entity.RoleUser).IsAdmin())

	// A forged unauthenticated caller with the admin role is still not an admin.
	assert.False(t, Caller{Role: entity.RoleAdmin}.IsAdmin())
}
