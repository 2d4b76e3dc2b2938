package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pbAccount "storysplit/proto/account"
	pb "storysplit/proto/collab"
)

type testSplitFlowSuite struct {
	BaseGrpcSuite
}

func TestSplitFlowSuite(t *testing.T) {
	suite.Run(t, &testSplitFlowSuite{})
}

// TestFullSplitFlow walks the happy path of the product: register,
// create an epic and a compound story, get agent feedback, accept the
// split proposal and verify the board afterwards.
func (s *testSplitFlowSuite) TestFullSplitFlow() {
	var token string
	var epicID string
	var storyID string
	var drafts []*pb.StoryDraft

	// --- STEP 0: ACCOUNT ---
	s.Run("Step 0: Register a fresh account", func() {
		s.WithAccount("Registering", func(ctx context.Context, client pbAccount.AccountServiceClient) {
			resp, err := client.Register(ctx, &pbAccount.RegisterRequest{
				Email:       fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8]),
				Password:    "Sup3r-Secret-Pass!",
				DisplayName: "E2E Runner",
			})
			s.Require().NoError(err, "Registration failed")
			s.Require().NotEmpty(resp.Token)
			token = resp.Token
		})
	})

	// --- STEP 1: BOARD SETUP ---
	s.Run("Step 1: Create an epic and a compound story", func() {
		s.WithCollab("Creating epic", token, func(ctx context.Context, client pb.CollabServiceClient) {
			epic, err := client.CreateEpic(ctx, &pb.CreateEpicRequest{
				Name:  "Checkout revamp",
				Color: "#4c72b0",
			})
			s.Require().NoError(err)
			epicID = epic.Epic.Id

			story, err := client.CreateStory(ctx, &pb.CreateStoryRequest{
				EpicId:      epicID,
				Title:       "Checkout and refunds",
				Description: "As a shopper I want to pay with a saved card and then receive a refund by email so that purchases feel safe.",
				Priority:    "high",
				Effort:      13,
			})
			s.Require().NoError(err)
			s.Require().NotEmpty(story.Story.Id)
			storyID = story.Story.Id
		})
	})

	// --- STEP 2: AGENT REVIEW ---
	s.Run("Step 2: Analyze the story and request a split", func() {
		s.WithCollab("Analyzing", token, func(ctx context.Context, client pb.CollabServiceClient) {
			// The write path is asynchronous: wait for the story to land.
			s.Eventually(func() bool {
				_, err := client.GetStory(ctx, &pb.GetStoryRequest{StoryId: storyID})
				return err == nil
			}, 10*time.Second, 200*time.Millisecond, "Story not persisted within timeout")

			feedback, err := client.AnalyzeStory(ctx, &pb.AnalyzeStoryRequest{StoryId: storyID, Agent: "coach"})
			s.Require().NoError(err)
			s.Require().Equal("coach", feedback.Feedback.Agent)
			s.Require().Len(feedback.Feedback.Scores, 6, "One score per INVEST letter")

			proposal, err := client.ProposeSplit(ctx, &pb.ProposeSplitRequest{StoryId: storyID})
			s.Require().NoError(err)
			s.Require().GreaterOrEqual(len(proposal.Drafts), 2, "A compound story should yield a split")
			drafts = proposal.Drafts
		})
	})

	// --- STEP 3: APPLY THE SPLIT ---
	s.Run("Step 3: Apply the split and verify the board", func() {
		s.WithCollab("Applying split", token, func(ctx context.Context, client pb.CollabServiceClient) {
			applied, err := client.ApplySplit(ctx, &pb.ApplySplitRequest{StoryId: storyID, Drafts: drafts})
			s.Require().NoError(err)
			s.Require().Len(applied.CreatedStoryIds, len(drafts))

			// The parent is removed and every child lands in backlog.
			s.Eventually(func() bool {
				board, err := client.GetBoard(ctx, &pb.GetBoardRequest{BoardId: epicID})
				if err != nil {
					return false
				}
				backlog := 0
				for _, column := range board.Columns {
					for _, story := range column.Stories {
						if story.Id == storyID {
							return false
						}
						if column.Status == "backlog" {
							backlog++
						}
					}
				}
				return backlog >= len(drafts)
			}, 10*time.Second, 200*time.Millisecond, "Split not reflected on the board within timeout")
		})
	})
}
