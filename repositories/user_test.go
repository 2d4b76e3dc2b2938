package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/errors"
)

func Test_User_Create_And_Get(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewUserRepository(db)

	id, err := repository.CreateUser("alice@example.com", "Alice", "$argon2id$fake-hash")
	req.NoError(err)
	_, err = uuid.Parse(id)
	req.NoError(err)

	user, err := repository.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("alice@example.com", user.Email)
	req.Equal("Alice", user.DisplayName)
	req.Equal("$argon2id$fake-hash", user.PasswordHash)
	req.Equal([]string{"user"}, user.Roles)
}

func Test_User_Create_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewUserRepository(db)

	_, err = repository.CreateUser("alice@example.com", "Alice", "hash-1")
	req.NoError(err)

	_, err = repository.CreateUser("alice@example.com", "Imposter", "hash-2")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	// The original account is untouched
	user, err := repository.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal("Alice", user.DisplayName)
}
