//go:generate go run go.uber.org/mock/mockgen -source=epic.go -destination=../mocks/mock_epic_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"storysplit/domain"
	"storysplit/errors"
	pb "storysplit/proto/storage"
)

type IEpicRepository interface {
	Save(epic domain.Epic) error
	Get(id domain.BoardID) (domain.Epic, error)
	Delete(id domain.BoardID) error
	List() ([]domain.Epic, error)
}

type EpicRepository struct {
	db *badger.DB
}

func NewEpicRepository(db *badger.DB) EpicRepository {
	return EpicRepository{db: db}
}

func (r EpicRepository) Save(epic domain.Epic) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromEpic(epic)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(epicKey(epic.ID), bytes)
	})
}

func (r EpicRepository) Get(id domain.BoardID) (domain.Epic, error) {
	var epicPb pb.Epic
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(epicKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &epicPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Epic{}, fmt.Errorf("%w: %s", errors.ErrEpicNotFound, id)
	}
	if err != nil {
		return domain.Epic{}, err
	}
	return toEpic(&epicPb), nil
}

// Delete removes the epic record only. Reparenting its stories onto
// the default epic is the service layer's job.
func (r EpicRepository) Delete(id domain.BoardID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(epicKey(id))
	})
}

func (r EpicRepository) List() ([]domain.Epic, error) {
	var epics []domain.Epic
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("epic:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				var epicPb pb.Epic
				if err := proto.Unmarshal(val, &epicPb); err != nil {
					return err
				}
				epics = append(epics, toEpic(&epicPb))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	return epics, err
}

func epicKey(id domain.BoardID) []byte {
	return []byte("epic:" + string(id))
}

func fromEpic(epic domain.Epic) pb.Epic {
	return pb.Epic{
		Id:          string(epic.ID),
		Name:        epic.Name,
		Description: epic.Description,
		Color:       epic.Color,
		CreatedAt:   epic.CreatedAt.UnixNano(),
	}
}

func toEpic(epicPb *pb.Epic) domain.Epic {
	return domain.Epic{
		ID:          domain.BoardID(epicPb.Id),
		Name:        epicPb.Name,
		Description: epicPb.Description,
		Color:       epicPb.Color,
		CreatedAt:   time.Unix(0, epicPb.CreatedAt).UTC(),
	}
}
