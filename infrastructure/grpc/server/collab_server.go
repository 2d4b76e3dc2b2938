package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"storysplit/auth"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/errors"
	pb "storysplit/proto/collab"
	"storysplit/services"
	"storysplit/sink"
)

type CollabServer struct {
	pb.UnimplementedCollabServiceServer
	storyService         services.IStoryService
	connectionBufferSize int
	log                  *slog.Logger
	deliveryTimeout      time.Duration
}

func NewCollabServer(log *slog.Logger, storyService services.IStoryService,
	connectionBufferSize int, deliveryTimeout time.Duration) *CollabServer {
	return &CollabServer{storyService: storyService,
		connectionBufferSize: connectionBufferSize, log: log,
		deliveryTimeout: deliveryTimeout,
	}
}

// Connect establishes a long-lived stream for real-time delivery.
// It registers a dedicated gRPC Sink in the Orchestrator's registry.
// This method blocks until the client disconnects or a network error occurs.
// Proper cleanup is ensured via deferred unregistration to prevent memory leaks in the registry.
func (s *CollabServer) Connect(req *pb.ConnectRequest, stream pb.CollabService_ConnectServer) error {
	member := identityFrom(stream.Context())
	connSink := sink.NewGrpcSink(s.log, s.connectionBufferSize, s.deliveryTimeout)

	board := s.storyService.JoinBoard(member, domain.BoardID(req.BoardId), connSink)
	defer s.storyService.LeaveBoard(member, board)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Warn(fmt.Sprintf("Client %s disconnected from %s", member.UserID, board))
			return nil
		case evt := <-connSink.ConnectedUserEvent:
			boardEvent := toBoardEvent(evt)
			if boardEvent == nil {
				continue
			}
			if err := stream.Send(boardEvent); err != nil {
				s.log.Error("failed to push event to stream",
					"user_id", member.UserID,
					"board", board,
					"error", err)
				return err
			}
		}
	}
}

func (s *CollabServer) CreateEpic(_ context.Context, req *pb.CreateEpicRequest) (*pb.EpicResponse, error) {
	epic, err := s.storyService.CreateEpic(req.Name, req.Description, req.Color)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.EpicResponse{Epic: toEpicPb(epic)}, nil
}

func (s *CollabServer) ListEpics(_ context.Context, _ *pb.ListEpicsRequest) (*pb.ListEpicsResponse, error) {
	epics, err := s.storyService.ListEpics()
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListEpicsResponse{
		Epics: lo.Map(epics, func(e domain.Epic, _ int) *pb.Epic { return toEpicPb(e) }),
	}, nil
}

func (s *CollabServer) DeleteEpic(_ context.Context, req *pb.DeleteEpicRequest) (*pb.DeleteEpicResponse, error) {
	orphans, err := s.storyService.DeleteEpic(domain.BoardID(req.EpicId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DeleteEpicResponse{OrphanedStories: int32(orphans)}, nil
}

func (s *CollabServer) CreateStory(ctx context.Context, req *pb.CreateStoryRequest) (*pb.StoryResponse, error) {
	story, err := s.storyService.CreateStory(ctx, identityFrom(ctx), services.StoryPayload{
		EpicID:             req.EpicId,
		Title:              req.Title,
		Description:        req.Description,
		AcceptanceCriteria: req.AcceptanceCriteria,
		Priority:           req.Priority,
		Effort:             int(req.Effort),
		Attachments:        toUploads(req.Attachments),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.StoryResponse{Story: toStoryPb(story)}, nil
}

func (s *CollabServer) UpdateStory(ctx context.Context, req *pb.UpdateStoryRequest) (*pb.StoryResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	story, err := s.storyService.UpdateStory(ctx, identityFrom(ctx), storyID, services.StoryPayload{
		EpicID:             req.EpicId,
		Title:              req.Title,
		Description:        req.Description,
		AcceptanceCriteria: req.AcceptanceCriteria,
		Priority:           req.Priority,
		Effort:             int(req.Effort),
		Attachments:        toUploads(req.Attachments),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.StoryResponse{Story: toStoryPb(story)}, nil
}

func (s *CollabServer) MoveStory(ctx context.Context, req *pb.MoveStoryRequest) (*pb.StoryResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	story, err := s.storyService.MoveStory(ctx, identityFrom(ctx), storyID, req.Status)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.StoryResponse{Story: toStoryPb(story)}, nil
}

func (s *CollabServer) DeleteStory(ctx context.Context, req *pb.DeleteStoryRequest) (*pb.DeleteStoryResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	if err := s.storyService.DeleteStory(ctx, identityFrom(ctx), storyID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DeleteStoryResponse{Success: true}, nil
}

func (s *CollabServer) GetStory(_ context.Context, req *pb.GetStoryRequest) (*pb.StoryResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	story, err := s.storyService.GetStory(storyID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.StoryResponse{Story: toStoryPb(story)}, nil
}

func (s *CollabServer) GetBoard(_ context.Context, req *pb.GetBoardRequest) (*pb.GetBoardResponse, error) {
	columns, err := s.storyService.GetBoard(domain.BoardID(req.BoardId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	// Columns come back in display order, empty ones included, so
	// clients can render the board without knowing the vocabulary.
	res := &pb.GetBoardResponse{BoardId: req.BoardId}
	for _, status := range domain.Columns {
		res.Columns = append(res.Columns, &pb.BoardColumn{
			Status: string(status),
			Stories: lo.Map(columns[status], func(st domain.Story, _ int) *pb.Story {
				return toStoryPb(st)
			}),
		})
	}
	return res, nil
}

func (s *CollabServer) SearchStories(ctx context.Context, req *pb.SearchStoriesRequest) (*pb.SearchStoriesResponse, error) {
	stories, err := s.storyService.SearchStories(ctx, req.Query)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchStoriesResponse{
		Stories: lo.Map(stories, func(st domain.Story, _ int) *pb.Story { return toStoryPb(st) }),
	}, nil
}

func (s *CollabServer) AnalyzeStory(_ context.Context, req *pb.AnalyzeStoryRequest) (*pb.FeedbackResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	fb, err := s.storyService.AnalyzeStory(storyID, req.Agent)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FeedbackResponse{Feedback: toFeedbackPb(fb)}, nil
}

func (s *CollabServer) ProposeSplit(_ context.Context, req *pb.ProposeSplitRequest) (*pb.SplitProposalResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	drafts, err := s.storyService.ProposeSplit(storyID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SplitProposalResponse{Drafts: toDraftsPb(drafts)}, nil
}

func (s *CollabServer) ApplySplit(ctx context.Context, req *pb.ApplySplitRequest) (*pb.ApplySplitResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	drafts := lo.Map(req.Drafts, func(d *pb.StoryDraft, _ int) domain.StoryDraft {
		return domain.StoryDraft{
			Title:       d.Title,
			Description: d.Description,
			Priority:    domain.Priority(d.Priority),
		}
	})
	created, err := s.storyService.ApplySplit(ctx, identityFrom(ctx), storyID, drafts)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ApplySplitResponse{
		CreatedStoryIds: lo.Map(created, func(id uuid.UUID, _ int) string { return id.String() }),
	}, nil
}

func (s *CollabServer) GetFeedback(_ context.Context, req *pb.GetFeedbackRequest) (*pb.GetFeedbackResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	feedback, cursor, err := s.storyService.GetFeedback(storyID, req.Cursor)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetFeedbackResponse{
		Feedback: lo.Map(feedback, func(fb domain.Feedback, _ int) *pb.Feedback { return toFeedbackPb(fb) }),
		Cursor:   cursor,
	}, nil
}

func (s *CollabServer) StartTyping(ctx context.Context, req *pb.TypingRequest) (*pb.TypingResponse, error) {
	return s.typing(ctx, req, false)
}

func (s *CollabServer) StopTyping(ctx context.Context, req *pb.TypingRequest) (*pb.TypingResponse, error) {
	return s.typing(ctx, req, true)
}

func (s *CollabServer) typing(ctx context.Context, req *pb.TypingRequest, stopped bool) (*pb.TypingResponse, error) {
	storyID, err := uuid.Parse(req.StoryId)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrStoryNotFound)
	}
	s.storyService.Typing(domain.BoardID(req.BoardId), storyID, identityFrom(ctx), stopped)
	return &pb.TypingResponse{Success: true}, nil
}

// identityFrom rebuilds the caller's presence from the claims injected
// by the auth interceptor.
func identityFrom(ctx context.Context) domain.Presence {
	p := domain.Presence{}
	if v, ok := ctx.Value(auth.UserIDKey).(string); ok {
		p.UserID = v
	}
	if v, ok := ctx.Value(auth.DisplayNameKey).(string); ok {
		p.Name = v
	}
	return p
}

func toUploads(attachments []*pb.AttachmentUpload) []services.AttachmentUpload {
	return lo.Map(attachments, func(a *pb.AttachmentUpload, _ int) services.AttachmentUpload {
		return services.AttachmentUpload{Name: a.Name, Content: a.Content}
	})
}

func toStoryPb(s domain.Story) *pb.Story {
	return &pb.Story{
		Id:                 s.ID.String(),
		EpicId:             string(s.EpicID),
		Title:              s.Title,
		Description:        s.Description,
		AcceptanceCriteria: s.AcceptanceCriteria,
		Priority:           string(s.Priority),
		Effort:             int32(s.Effort),
		Status:             string(s.Status),
		Attachments: lo.Map(s.Attachments, func(a domain.Attachment, _ int) *pb.Attachment {
			return &pb.Attachment{Name: a.Name, MimeType: a.MimeType, Size: a.Size}
		}),
		CreatedBy: s.CreatedBy,
		CreatedAt: timestamppb.New(s.CreatedAt),
		UpdatedAt: timestamppb.New(s.UpdatedAt),
		Revision:  s.Revision,
	}
}

func toEpicPb(e domain.Epic) *pb.Epic {
	return &pb.Epic{
		Id:          string(e.ID),
		Name:        e.Name,
		Description: e.Description,
		Color:       e.Color,
		CreatedAt:   timestamppb.New(e.CreatedAt),
	}
}

func toFeedbackPb(fb domain.Feedback) *pb.Feedback {
	return &pb.Feedback{
		Id:              fb.ID.String(),
		StoryId:         fb.StoryID.String(),
		Agent:           fb.Agent,
		Model:           fb.Model,
		Language:        fb.Language,
		Message:         fb.Message,
		Scores:          fb.Scores,
		Overall:         fb.Overall,
		Proposal:        toDraftsPb(fb.Proposal),
		PromptWords:     int32(fb.PromptWords),
		CompletionWords: int32(fb.CompletionWords),
		At:              timestamppb.New(fb.At),
	}
}

func toDraftsPb(drafts []domain.StoryDraft) []*pb.StoryDraft {
	return lo.Map(drafts, func(d domain.StoryDraft, _ int) *pb.StoryDraft {
		return &pb.StoryDraft{Title: d.Title, Description: d.Description, Priority: string(d.Priority)}
	})
}

func toMemberPb(p domain.Presence) *pb.Member {
	return &pb.Member{UserId: p.UserID, Name: p.Name}
}

// toBoardEvent converts a domain event into its wire form. Unknown
// event types return nil and are skipped.
func toBoardEvent(e event.DomainEvent) *pb.BoardEvent {
	switch evt := e.(type) {
	case event.StoryCreated:
		return &pb.BoardEvent{Event: &pb.BoardEvent_StoryCreated{
			StoryCreated: &pb.StoryCreatedEvent{Story: toStoryPb(evt.Story)},
		}}
	case event.StoryUpdated:
		return &pb.BoardEvent{Event: &pb.BoardEvent_StoryUpdated{
			StoryUpdated: &pb.StoryUpdatedEvent{Story: toStoryPb(evt.Story), ChangedBy: evt.ChangedBy},
		}}
	case event.StoryMoved:
		return &pb.BoardEvent{Event: &pb.BoardEvent_StoryMoved{
			StoryMoved: &pb.StoryMovedEvent{
				StoryId:    evt.StoryID.String(),
				FromStatus: string(evt.From),
				ToStatus:   string(evt.To),
				MovedBy:    evt.MovedBy,
			},
		}}
	case event.StoryDeleted:
		return &pb.BoardEvent{Event: &pb.BoardEvent_StoryDeleted{
			StoryDeleted: &pb.StoryDeletedEvent{StoryId: evt.StoryID.String(), DeletedBy: evt.DeletedBy},
		}}
	case event.EpicCreated:
		return &pb.BoardEvent{Event: &pb.BoardEvent_EpicCreated{
			EpicCreated: &pb.EpicCreatedEvent{Epic: toEpicPb(evt.Epic)},
		}}
	case event.MemberJoined:
		return &pb.BoardEvent{Event: &pb.BoardEvent_MemberJoined{
			MemberJoined: &pb.MemberJoinedEvent{
				Member:  toMemberPb(evt.Member),
				Members: lo.Map(evt.Members, func(m domain.Presence, _ int) *pb.Member { return toMemberPb(m) }),
			},
		}}
	case event.MemberLeft:
		return &pb.BoardEvent{Event: &pb.BoardEvent_MemberLeft{
			MemberLeft: &pb.MemberLeftEvent{Member: toMemberPb(evt.Member)},
		}}
	case event.TypingStarted:
		return &pb.BoardEvent{Event: &pb.BoardEvent_TypingStarted{
			TypingStarted: &pb.TypingEvent{StoryId: evt.StoryID.String(), Member: toMemberPb(evt.Member)},
		}}
	case event.TypingStopped:
		return &pb.BoardEvent{Event: &pb.BoardEvent_TypingStopped{
			TypingStopped: &pb.TypingEvent{
				StoryId: evt.StoryID.String(),
				Member:  toMemberPb(evt.Member),
				Expired: evt.Expired,
			},
		}}
	case event.FeedbackReady:
		return &pb.BoardEvent{Event: &pb.BoardEvent_FeedbackReady{
			FeedbackReady: &pb.FeedbackReadyEvent{Feedback: toFeedbackPb(evt.Feedback)},
		}}
	}
	return nil
}
