package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pbAccount "storysplit/proto/account"
	pb "storysplit/proto/collab"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"SERVER_ADDR,default=localhost:8080"`
	BoardID       string `env:"BOARD_ID,default=backlog"`
	Email         string `env:"CLIENT_EMAIL,required=true"`
	Password      string `env:"CLIENT_PASSWORD,required=true"`
	DisplayName   string `env:"CLIENT_DISPLAY_NAME,default=observer"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle, configuration loading, and event streaming.
// This pattern ensures clean resource management and error propagation.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the server.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	// Defer ensures the connection is closed even if the stream fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	// 4. Authenticate: login first, register on first run.
	token, err := authenticate(ctx, conn, config)
	if err != nil {
		return exitRuntime, err
	}
	authCtx := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	client := pb.NewCollabServiceClient(conn)

	// 5. Initiate the server stream bound to the board channel.
	stream, err := client.Connect(authCtx, &pb.ConnectRequest{BoardId: config.BoardID})
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	log.Info(fmt.Sprintf(">>> Connected to %s! Listening board %q (Ctrl+C to quit)...",
		config.ServerAddress, config.BoardID))

	// 6. Event reception loop.
	// This loop runs until the context is canceled or the server closes the connection.
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		default:
			resp, err := stream.Recv()
			if err != nil {
				// Normal exit if the user triggered a shutdown.
				if ctx.Err() != nil {
					return exitOK, nil
				}
				return exitRuntime, fmt.Errorf("stream error: %w", err)
			}
			log.Info(render(resp))
		}
	}
}

func authenticate(ctx context.Context, conn *grpc.ClientConn, config Config) (string, error) {
	accounts := pbAccount.NewAccountServiceClient(conn)

	res, err := accounts.Login(ctx, &pbAccount.LoginRequest{
		Email:    config.Email,
		Password: config.Password,
	})
	if err == nil {
		return res.Token, nil
	}

	res, err = accounts.Register(ctx, &pbAccount.RegisterRequest{
		Email:       config.Email,
		Password:    config.Password,
		DisplayName: config.DisplayName,
	})
	if err != nil {
		return "", fmt.Errorf("authentication failed: %w", err)
	}
	return res.Token, nil
}

// render produces one log line per board event.
func render(e *pb.BoardEvent) string {
	now := time.Now().Format(time.TimeOnly)
	switch evt := e.Event.(type) {
	case *pb.BoardEvent_StoryCreated:
		return fmt.Sprintf("[%s] story created: %q", now, evt.StoryCreated.Story.Title)
	case *pb.BoardEvent_StoryUpdated:
		return fmt.Sprintf("[%s] story updated by %s: %q (rev %d)",
			now, evt.StoryUpdated.ChangedBy, evt.StoryUpdated.Story.Title, evt.StoryUpdated.Story.Revision)
	case *pb.BoardEvent_StoryMoved:
		return fmt.Sprintf("[%s] story %s moved %s -> %s",
			now, evt.StoryMoved.StoryId, evt.StoryMoved.FromStatus, evt.StoryMoved.ToStatus)
	case *pb.BoardEvent_StoryDeleted:
		return fmt.Sprintf("[%s] story %s deleted", now, evt.StoryDeleted.StoryId)
	case *pb.BoardEvent_EpicCreated:
		return fmt.Sprintf("[%s] epic created: %q", now, evt.EpicCreated.Epic.Name)
	case *pb.BoardEvent_MemberJoined:
		return fmt.Sprintf("[%s] %s joined (%d online)",
			now, evt.MemberJoined.Member.Name, len(evt.MemberJoined.Members))
	case *pb.BoardEvent_MemberLeft:
		return fmt.Sprintf("[%s] %s left", now, evt.MemberLeft.Member.Name)
	case *pb.BoardEvent_TypingStarted:
		return fmt.Sprintf("[%s] %s is typing on %s...",
			now, evt.TypingStarted.Member.Name, evt.TypingStarted.StoryId)
	case *pb.BoardEvent_TypingStopped:
		suffix := ""
		if evt.TypingStopped.Expired {
			suffix = " (expired)"
		}
		return fmt.Sprintf("[%s] %s stopped typing%s", now, evt.TypingStopped.Member.Name, suffix)
	case *pb.BoardEvent_FeedbackReady:
		return fmt.Sprintf("[%s] %s feedback on %s: overall %.2f",
			now, evt.FeedbackReady.Feedback.Agent, evt.FeedbackReady.Feedback.StoryId,
			evt.FeedbackReady.Feedback.Overall)
	}
	return fmt.Sprintf("[%s] unknown event", now)
}
