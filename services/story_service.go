//go:generate go run go.uber.org/mock/mockgen -source=story_service.go -destination=../mocks/mock_story_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"storysplit/agent"
	"storysplit/contract"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/domain/mimetypes"
	"storysplit/domain/search"
	"storysplit/errors"
	"storysplit/projection"
	"storysplit/repositories"
)

var validate = validator.New()

// AttachmentUpload carries the raw bytes of a declared attachment.
// Content is sniffed then discarded, only the metadata is stored.
type AttachmentUpload struct {
	Name    string
	Content []byte
}

// StoryPayload is the validated shape of a create or update request.
type StoryPayload struct {
	EpicID             string `validate:"omitempty,max=64"`
	Title              string `validate:"required,min=3,max=200"`
	Description        string `validate:"max=4000"`
	AcceptanceCriteria []string
	Priority           string `validate:"omitempty,oneof=low medium high critical"`
	Effort             int    `validate:"gte=0,lte=100"`
	Attachments        []AttachmentUpload
}

type IStoryService interface {
	CreateStory(ctx context.Context, author domain.Presence, payload StoryPayload) (domain.Story, error)
	UpdateStory(ctx context.Context, editor domain.Presence, storyID uuid.UUID, payload StoryPayload) (domain.Story, error)
	MoveStory(ctx context.Context, mover domain.Presence, storyID uuid.UUID, to string) (domain.Story, error)
	DeleteStory(ctx context.Context, remover domain.Presence, storyID uuid.UUID) error
	GetStory(storyID uuid.UUID) (domain.Story, error)
	GetBoard(board domain.BoardID) (map[domain.Status][]domain.Story, error)

	CreateEpic(name, description, color string) (domain.Epic, error)
	ListEpics() ([]domain.Epic, error)
	DeleteEpic(board domain.BoardID) (int, error)

	SearchStories(ctx context.Context, rawQuery string) ([]domain.Story, error)

	AnalyzeStory(storyID uuid.UUID, persona string) (domain.Feedback, error)
	ProposeSplit(storyID uuid.UUID) ([]domain.StoryDraft, error)
	ApplySplit(ctx context.Context, splitter domain.Presence, storyID uuid.UUID, drafts []domain.StoryDraft) ([]uuid.UUID, error)
	GetFeedback(storyID uuid.UUID, cursor *string) ([]domain.Feedback, *string, error)

	JoinBoard(p domain.Presence, board domain.BoardID, sink contract.EventSink) domain.BoardID
	LeaveBoard(p domain.Presence, board domain.BoardID)
	Typing(board domain.BoardID, storyID uuid.UUID, p domain.Presence, stopped bool)
}

type StoryService struct {
	orchestrator contract.IOrchestrator
	stories      repositories.IStoryRepository
	epics        repositories.IEpicRepository
	feedback     repositories.IFeedbackRepository
	searchIndex  repositories.ISearchIndex
	agent        *agent.Agent
}

func NewStoryService(o contract.IOrchestrator,
	stories repositories.IStoryRepository,
	epics repositories.IEpicRepository,
	feedback repositories.IFeedbackRepository,
	searchIndex repositories.ISearchIndex,
	a *agent.Agent) *StoryService {
	return &StoryService{
		orchestrator: o,
		stories:      stories,
		epics:        epics,
		feedback:     feedback,
		searchIndex:  searchIndex,
		agent:        a,
	}
}

// CreateStory validates the payload and dispatches the creation.
// It follows an asynchronous pattern: the returned story carries the
// server-assigned identity and timestamps, while the authoritative
// persisted state reaches subscribers through the Connect stream.
func (s *StoryService) CreateStory(_ context.Context, author domain.Presence, payload StoryPayload) (domain.Story, error) {
	story, err := s.buildStory(author, payload)
	if err != nil {
		return domain.Story{}, err
	}
	s.orchestrator.Dispatch(domain.CreateStoryCommand{Story: story})
	return story, nil
}

func (s *StoryService) UpdateStory(_ context.Context, editor domain.Presence, storyID uuid.UUID, payload StoryPayload) (domain.Story, error) {
	current, err := s.stories.Get(storyID)
	if err != nil {
		return domain.Story{}, err
	}

	incoming, err := s.buildStory(editor, payload)
	if err != nil {
		return domain.Story{}, err
	}
	incoming.ID = current.ID
	incoming.CreatedBy = current.CreatedBy
	incoming.CreatedAt = current.CreatedAt
	// An update edits content, never the column; the optimistic view
	// must show the story where it actually is.
	incoming.Status = current.Status
	incoming.Revision = current.Revision

	s.orchestrator.Dispatch(domain.UpdateStoryCommand{
		Story:     incoming,
		ChangedBy: editor.UserID,
		At:        time.Now().UTC(),
	})
	return incoming, nil
}

func (s *StoryService) MoveStory(_ context.Context, mover domain.Presence, storyID uuid.UUID, to string) (domain.Story, error) {
	status := domain.Status(to)
	if !status.Valid() {
		return domain.Story{}, fmt.Errorf("%w: %q", errors.ErrInvalidStatus, to)
	}

	current, err := s.stories.Get(storyID)
	if err != nil {
		return domain.Story{}, err
	}

	s.orchestrator.Dispatch(domain.MoveStoryCommand{
		Board:   current.EpicID,
		StoryID: storyID,
		To:      status,
		MovedBy: mover.UserID,
		At:      time.Now().UTC(),
	})

	// Optimistic view for the caller, the persisted move follows.
	current.Status = status
	return current, nil
}

func (s *StoryService) DeleteStory(_ context.Context, remover domain.Presence, storyID uuid.UUID) error {
	current, err := s.stories.Get(storyID)
	if err != nil {
		return err
	}
	s.orchestrator.Dispatch(domain.DeleteStoryCommand{
		Board:     current.EpicID,
		StoryID:   storyID,
		DeletedBy: remover.UserID,
	})
	return nil
}

func (s *StoryService) GetStory(storyID uuid.UUID) (domain.Story, error) {
	return s.stories.Get(storyID)
}

// GetBoard reads the epic's stories from storage and groups them into
// Kanban columns.
func (s *StoryService) GetBoard(board domain.BoardID) (map[domain.Status][]domain.Story, error) {
	if board == "" {
		board = domain.DefaultBoard
	}
	if board != domain.DefaultBoard {
		if _, err := s.epics.Get(board); err != nil {
			return nil, err
		}
	}
	stories, err := s.stories.ListByEpic(board)
	if err != nil {
		return nil, err
	}
	return projection.BuildColumns(stories), nil
}

func (s *StoryService) CreateEpic(name, description, color string) (domain.Epic, error) {
	epic := domain.Epic{
		ID:          domain.BoardID(uuid.NewString()),
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
	}
	s.orchestrator.Dispatch(domain.CreateEpicCommand{Epic: epic})
	return epic, nil
}

func (s *StoryService) ListEpics() ([]domain.Epic, error) {
	return s.epics.List()
}

// DeleteEpic removes an epic after reparenting its stories onto the
// default board, so no story is ever orphaned. The reparenting goes
// through the command pipeline: subscribers see one StoryUpdated per
// moved story.
func (s *StoryService) DeleteEpic(board domain.BoardID) (int, error) {
	if board == domain.DefaultBoard {
		return 0, fmt.Errorf("%w: default board cannot be deleted", errors.ErrEpicNotFound)
	}
	if _, err := s.epics.Get(board); err != nil {
		return 0, err
	}

	orphans, err := s.stories.ListByEpic(board)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, story := range orphans {
		story.EpicID = domain.DefaultBoard
		s.orchestrator.Dispatch(domain.UpdateStoryCommand{
			Story:     story,
			ChangedBy: "system",
			At:        now,
		})
	}

	if err := s.epics.Delete(board); err != nil {
		return 0, err
	}
	return len(orphans), nil
}

// SearchStories parses the /find style query, runs it against the
// full-text index and hydrates the hits from storage. A hit whose
// story vanished between indexing and hydration is silently skipped.
func (s *StoryService) SearchStories(ctx context.Context, rawQuery string) ([]domain.Story, error) {
	query := search.Parse(rawQuery)
	ids, err := s.searchIndex.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	var stories []domain.Story
	for _, id := range ids {
		storyID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		story, err := s.stories.Get(storyID)
		if err != nil {
			continue
		}
		stories = append(stories, story)
	}
	return stories, nil
}

// AnalyzeStory runs a synchronous review. The feedback also flows
// through the pipeline so it gets persisted and broadcast like an
// automatic review.
func (s *StoryService) AnalyzeStory(storyID uuid.UUID, persona string) (domain.Feedback, error) {
	story, err := s.stories.Get(storyID)
	if err != nil {
		return domain.Feedback{}, err
	}

	if persona == "" {
		persona = string(agent.PersonaCoach)
	}
	fb, err := s.agent.Review(agent.Persona(persona), story)
	if err != nil {
		return domain.Feedback{}, err
	}

	s.orchestrator.Publish(event.FeedbackReady{Board: story.EpicID, Feedback: fb})
	return fb, nil
}

func (s *StoryService) ProposeSplit(storyID uuid.UUID) ([]domain.StoryDraft, error) {
	story, err := s.stories.Get(storyID)
	if err != nil {
		return nil, err
	}
	return s.agent.Propose(story), nil
}

// ApplySplit turns accepted drafts into child stories and removes the
// parent. Children inherit the epic and, when a draft has no priority
// of its own, the parent's.
func (s *StoryService) ApplySplit(_ context.Context, splitter domain.Presence, storyID uuid.UUID, drafts []domain.StoryDraft) ([]uuid.UUID, error) {
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: a split needs at least one draft", errors.ErrInvalidStory)
	}

	parent, err := s.stories.Get(storyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := make([]uuid.UUID, 0, len(drafts))
	for _, draft := range drafts {
		priority := draft.Priority
		if !priority.Valid() {
			priority = parent.Priority
		}
		child := domain.Story{
			ID:          uuid.New(),
			EpicID:      parent.EpicID,
			Title:       draft.Title,
			Description: draft.Description,
			Priority:    priority,
			Status:      domain.StatusBacklog,
			CreatedBy:   splitter.UserID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Revision:    1,
		}
		s.orchestrator.Dispatch(domain.CreateStoryCommand{Story: child})
		created = append(created, child.ID)
	}

	s.orchestrator.Dispatch(domain.DeleteStoryCommand{
		Board:     parent.EpicID,
		StoryID:   parent.ID,
		DeletedBy: splitter.UserID,
	})
	return created, nil
}

func (s *StoryService) GetFeedback(storyID uuid.UUID, cursor *string) ([]domain.Feedback, *string, error) {
	return s.feedback.GetByStory(storyID, cursor)
}

// JoinBoard subscribes a connection to a board channel. An empty board
// falls back to the default one; the resolved board is returned so the
// caller can leave the same channel it joined.
func (s *StoryService) JoinBoard(p domain.Presence, board domain.BoardID, sink contract.EventSink) domain.BoardID {
	if board == "" {
		board = domain.DefaultBoard
	}
	s.orchestrator.RegisterParticipant(p, board, sink)
	return board
}

func (s *StoryService) LeaveBoard(p domain.Presence, board domain.BoardID) {
	s.orchestrator.UnregisterParticipant(p, board)
}

func (s *StoryService) Typing(board domain.BoardID, storyID uuid.UUID, p domain.Presence, stopped bool) {
	if board == "" {
		board = domain.DefaultBoard
	}
	s.orchestrator.Typing(board, storyID, p, stopped)
}

// buildStory validates the payload and produces a fresh story with
// sniffed attachment metadata.
func (s *StoryService) buildStory(author domain.Presence, payload StoryPayload) (domain.Story, error) {
	if err := validate.Struct(payload); err != nil {
		return domain.Story{}, fmt.Errorf("%w: %v", errors.ErrInvalidStory, err)
	}

	board := domain.BoardID(payload.EpicID)
	if board == "" {
		board = domain.DefaultBoard
	}
	if board != domain.DefaultBoard {
		if _, err := s.epics.Get(board); err != nil {
			return domain.Story{}, err
		}
	}

	priority := domain.Priority(payload.Priority)
	if payload.Priority == "" {
		priority = domain.PriorityMedium
	}

	attachments, err := sniffAttachments(payload.Attachments)
	if err != nil {
		return domain.Story{}, err
	}

	now := time.Now().UTC()
	return domain.Story{
		ID:                 uuid.New(),
		EpicID:             board,
		Title:              payload.Title,
		Description:        payload.Description,
		AcceptanceCriteria: payload.AcceptanceCriteria,
		Priority:           priority,
		Effort:             payload.Effort,
		Status:             domain.StatusBacklog,
		Attachments:        attachments,
		CreatedBy:          author.UserID,
		CreatedAt:          now,
		UpdatedAt:          now,
		Revision:           1,
	}, nil
}

// sniffAttachments detects each upload's real type from its bytes and
// keeps metadata only. The content itself is discarded.
func sniffAttachments(uploads []AttachmentUpload) ([]domain.Attachment, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	attachments := make([]domain.Attachment, 0, len(uploads))
	for _, up := range uploads {
		detected := mimetypes.Detect(up.Content)
		if !mimetypes.Allowed(detected) {
			return nil, fmt.Errorf("%w: %s detected as %s", errors.ErrAttachmentRejected, up.Name, detected)
		}
		attachments = append(attachments, domain.Attachment{
			Name:     up.Name,
			MimeType: string(detected),
			Size:     int64(len(up.Content)),
		})
	}
	return lo.UniqBy(attachments, func(a domain.Attachment) string { return a.Name }), nil
}
