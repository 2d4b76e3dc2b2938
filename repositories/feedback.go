//go:generate go run go.uber.org/mock/mockgen -source=feedback.go -destination=../mocks/mock_feedback_repository.go -package=mocks
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
	pb "storysplit/proto/storage"
)

type IFeedbackRepository interface {
	Store(fb domain.Feedback) error
	GetByStory(storyID uuid.UUID, cursor *string) ([]domain.Feedback, *string, error)
}

type FeedbackRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewFeedbackRepository(db *badger.DB, log *slog.Logger, limit *int) FeedbackRepository {
	return FeedbackRepository{db: db, log: log, limit: limit}
}

// Store persists one agent run in BadgerDB.
// The key is formatted as "feedback:{story_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two runs
//     land on the same nanosecond.
func (r FeedbackRepository) Store(fb domain.Feedback) error {
	key := fmt.Sprintf("feedback:%s:%019d:%s",
		fb.StoryID,
		fb.At.UnixNano(),
		fb.ID,
	)
	bytes, err := proto.Marshal(lo.ToPtr(fromFeedback(fb)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetByStory retrieves the feedback history for a story, newest first,
// using a reverse prefix scan. The padded timestamp keeps entries
// naturally sorted; the cursor is the key suffix of the last returned
// entry.
func (r FeedbackRepository) GetByStory(storyID uuid.UUID, cursor *string) ([]domain.Feedback, *string, error) {
	var raw [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("feedback:%s:", storyID)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk back.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(raw) == *r.limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d feedback entries reached", *r.limit))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			if err := item.Value(func(value []byte) error {
				raw = append(raw, append([]byte(nil), value...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// An empty page means the history is exhausted: no cursor, so the
	// caller can tell "nothing left" from "more behind this key".
	if len(raw) == 0 {
		return []domain.Feedback{}, nil, nil
	}

	feedback := make([]domain.Feedback, 0, len(raw))
	for _, b := range raw {
		var fbPb pb.Feedback
		if err = proto.Unmarshal(b, &fbPb); err != nil {
			return nil, nil, err
		}
		fb, err := toFeedback(&fbPb)
		if err != nil {
			return nil, nil, err
		}
		feedback = append(feedback, fb)
	}
	return feedback, &lastKey, nil
}

func fromFeedback(fb domain.Feedback) pb.Feedback {
	return pb.Feedback{
		Id:       fb.ID.String(),
		StoryId:  fb.StoryID.String(),
		Agent:    fb.Agent,
		Model:    fb.Model,
		Language: fb.Language,
		Message:  fb.Message,
		Scores:   fb.Scores,
		Overall:  fb.Overall,
		Proposal: lo.Map(fb.Proposal, func(d domain.StoryDraft, _ int) *pb.StoryDraft {
			return &pb.StoryDraft{Title: d.Title, Description: d.Description, Priority: string(d.Priority)}
		}),
		PromptWords:     int32(fb.PromptWords),
		CompletionWords: int32(fb.CompletionWords),
		At:              fb.At.UnixNano(),
	}
}

func toFeedback(fbPb *pb.Feedback) (domain.Feedback, error) {
	id, err := uuid.Parse(fbPb.Id)
	if err != nil {
		return domain.Feedback{}, err
	}
	storyID, err := uuid.Parse(fbPb.StoryId)
	if err != nil {
		return domain.Feedback{}, err
	}
	return domain.Feedback{
		ID:       id,
		StoryID:  storyID,
		Agent:    fbPb.Agent,
		Model:    fbPb.Model,
		Language: fbPb.Language,
		Message:  fbPb.Message,
		Scores:   fbPb.Scores,
		Overall:  fbPb.Overall,
		Proposal: lo.Map(fbPb.Proposal, func(d *pb.StoryDraft, _ int) domain.StoryDraft {
			return domain.StoryDraft{Title: d.Title, Description: d.Description, Priority: domain.Priority(d.Priority)}
		}),
		PromptWords:     int(fbPb.PromptWords),
		CompletionWords: int(fbPb.CompletionWords),
		At:              time.Unix(0, fbPb.At).UTC(),
	}, nil
}
