//go:generate go run go.uber.org/mock/mockgen -source=story.go -destination=../mocks/mock_story_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"storysplit/domain"
	"storysplit/errors"
	pb "storysplit/proto/storage"
)

type IStoryRepository interface {
	Save(story domain.Story) error
	Get(id uuid.UUID) (domain.Story, error)
	Delete(id uuid.UUID) error
	ListByEpic(epic domain.BoardID) ([]domain.Story, error)
	ListAll() ([]domain.Story, error)
}

type StoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStoryRepository(db *badger.DB, log *slog.Logger) StoryRepository {
	return StoryRepository{db: db, log: log}
}

// Save persists a story under "story:{id}". The key carries no epic so
// a story can change epics without a key migration; epic listings are
// prefix scans with a filter. Last write wins, there is no compare-
// and-swap on Revision.
func (r StoryRepository) Save(story domain.Story) error {
	key := storyKey(story.ID)
	bytes, err := proto.Marshal(lo.ToPtr(fromStory(story)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}

func (r StoryRepository) Get(id uuid.UUID) (domain.Story, error) {
	var storyPb pb.Story
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storyKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &storyPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Story{}, fmt.Errorf("%w: %s", errors.ErrStoryNotFound, id)
	}
	if err != nil {
		return domain.Story{}, err
	}
	return toStory(&storyPb)
}

func (r StoryRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(storyKey(id))
	})
}

func (r StoryRepository) ListByEpic(epic domain.BoardID) ([]domain.Story, error) {
	stories, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(stories, func(s domain.Story, _ int) bool {
		return s.EpicID == epic
	}), nil
}

func (r StoryRepository) ListAll() ([]domain.Story, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("story:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				raw = append(raw, append([]byte(nil), val...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stories := make([]domain.Story, 0, len(raw))
	for _, b := range raw {
		var storyPb pb.Story
		if err := proto.Unmarshal(b, &storyPb); err != nil {
			return nil, err
		}
		story, err := toStory(&storyPb)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, nil
}

func storyKey(id uuid.UUID) []byte {
	return []byte("story:" + id.String())
}

func fromStory(story domain.Story) pb.Story {
	return pb.Story{
		Id:                 story.ID.String(),
		EpicId:             string(story.EpicID),
		Title:              story.Title,
		Description:        story.Description,
		AcceptanceCriteria: story.AcceptanceCriteria,
		Priority:           string(story.Priority),
		Effort:             int32(story.Effort),
		Status:             string(story.Status),
		Attachments: lo.Map(story.Attachments, func(a domain.Attachment, _ int) *pb.Attachment {
			return &pb.Attachment{Name: a.Name, MimeType: a.MimeType, Size: a.Size}
		}),
		CreatedBy: story.CreatedBy,
		CreatedAt: story.CreatedAt.UnixNano(),
		UpdatedAt: story.UpdatedAt.UnixNano(),
		Revision:  story.Revision,
	}
}

func toStory(storyPb *pb.Story) (domain.Story, error) {
	id, err := uuid.Parse(storyPb.Id)
	if err != nil {
		return domain.Story{}, err
	}
	return domain.Story{
		ID:                 id,
		EpicID:             domain.BoardID(storyPb.EpicId),
		Title:              storyPb.Title,
		Description:        storyPb.Description,
		AcceptanceCriteria: storyPb.AcceptanceCriteria,
		Priority:           domain.Priority(storyPb.Priority),
		Effort:             int(storyPb.Effort),
		Status:             domain.Status(storyPb.Status),
		Attachments: lo.Map(storyPb.Attachments, func(a *pb.Attachment, _ int) domain.Attachment {
			return domain.Attachment{Name: a.Name, MimeType: a.MimeType, Size: a.Size}
		}),
		CreatedBy: storyPb.CreatedBy,
		CreatedAt: time.Unix(0, storyPb.CreatedAt).UTC(),
		UpdatedAt: time.Unix(0, storyPb.UpdatedAt).UTC(),
		Revision:  storyPb.Revision,
	}, nil
}
