package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

func seededUsers() UserRepository {
	return NewUserRepository(SeedUsers("$2a$12$placeholderhashforseedfixture0000000000000000000000"))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := seededUsers()

	user, err := repo.FindByEmail("demo@lumiskin.com")
	require.NoError(t, err)
	assert.Equal(t, "usr-demo-0001", user.ID)
	assert.Equal(t, "Dana", user.FirstName)
	assert.True(t, user.IsInsider)

	// Email lookup is case-insensitive
	_, err = repo.FindByEmail("Demo@Lumiskin.com")
	assert.NoError(t, err)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := seededUsers()

	user, err := repo.FindByID("usr-demo-0001")
	require.NoError(t, err)
	assert.Equal(t, "demo@lumiskin.com", user.Email)
	assert.Len(t, user.Orders, 2)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	repo := seededUsers()

	err := repo.Create(&model.User{
		ID:    "usr-new",
		Email: "new@example.com",
	})
	require.NoError(t, err)

	found, err := repo.FindByEmail("new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "usr-new", found.ID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := seededUsers()

	err := repo.Create(&model.User{
		ID:    "usr-dup",
		Email: "DEMO@lumiskin.com", // differs only in case
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_FindReturnsCopy(t *testing.T) {
	repo := seededUsers()

	user, err := repo.FindByEmail("demo@lumiskin.com")
	require.NoError(t, err)
	user.FirstName = "Mutated"

	fresh, err := repo.FindByEmail("demo@lumiskin.com")
	require.NoError(t, err)
	assert.Equal(t, "Dana", fresh.FirstName)
}
