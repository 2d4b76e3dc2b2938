//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"

	"github.com/blugelabs/bluge"

	"storysplit/domain"
	"storysplit/domain/search"
)

type ISearchIndex interface {
	Index(story domain.Story) error
	Remove(storyID string) error
	Search(ctx context.Context, query *search.Query) ([]string, error)
}

// SearchIndex maintains the Bluge full-text index over stories.
// It returns story IDs; hydration goes through the story repository so
// Badger stays the single source of truth.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) SearchIndex {
	return SearchIndex{writer: writer, log: log}
}

func (s SearchIndex) Index(story domain.Story) error {
	doc := bluge.NewDocument(story.ID.String()).
		AddField(bluge.NewTextField("text", story.Text())).
		AddField(bluge.NewKeywordField("epic", string(story.EpicID))).
		AddField(bluge.NewKeywordField("status", string(story.Status)))
	return s.writer.Update(doc.ID(), doc)
}

func (s SearchIndex) Remove(storyID string) error {
	return s.writer.Delete(bluge.Identifier(storyID))
}

func (s SearchIndex) Search(ctx context.Context, query *search.Query) ([]string, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	boolean := bluge.NewBooleanQuery()
	if query.Terms != "" {
		boolean.AddMust(bluge.NewMatchQuery(query.Terms).SetField("text"))
	} else {
		boolean.AddMust(bluge.NewMatchAllQuery())
	}
	if query.EpicID != "" {
		boolean.AddMust(bluge.NewTermQuery(query.EpicID).SetField("epic"))
	}
	if query.Status != "" {
		boolean.AddMust(bluge.NewTermQuery(query.Status).SetField("status"))
	}

	request := bluge.NewTopNSearch(query.Limit, boolean)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var ids []string
	match, err := iterator.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}
