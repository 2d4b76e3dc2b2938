package repositories

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/errors"
)

func Test_Epic_Save_And_Get(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewEpicRepository(db)
	epic := domain.Epic{
		ID:          "epic-1",
		Name:        "Checkout revamp",
		Description: "Everything around the new payment flow",
		Color:       "#4c72b0",
		CreatedAt:   time.Now().UTC(),
	}

	req.NoError(repository.Save(epic))

	fetched, err := repository.Get(epic.ID)
	req.NoError(err)
	req.Equal(epic, fetched)
}

func Test_Epic_Get_Unknown(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewEpicRepository(db)

	_, err = repository.Get("nope")
	req.ErrorIs(err, errors.ErrEpicNotFound)
}

func Test_Epic_List_And_Delete(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewEpicRepository(db)
	now := time.Now().UTC()
	req.NoError(repository.Save(domain.Epic{ID: "epic-1", Name: "Checkout revamp", CreatedAt: now}))
	req.NoError(repository.Save(domain.Epic{ID: "epic-2", Name: "Search rework", CreatedAt: now}))

	epics, err := repository.List()
	req.NoError(err)
	req.Len(epics, 2)

	req.NoError(repository.Delete("epic-1"))

	epics, err = repository.List()
	req.NoError(err)
	req.Len(epics, 1)
	req.Equal(domain.BoardID("epic-2"), epics[0].ID)
}
