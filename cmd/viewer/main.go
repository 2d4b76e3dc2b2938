package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"storysplit/domain"
	"storysplit/internal"
	"storysplit/projection"
	"storysplit/repositories"
)

// viewer renders the Kanban boards straight from storage, one table
// per epic. It opens BadgerDB read-only so it can run next to a live
// server.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the server) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString(config.LogLevel)
	stories := repositories.NewStoryRepository(db, logger)
	epics := repositories.NewEpicRepository(db)

	all, err := stories.ListAll()
	if err != nil {
		log.Fatalf("Failed to list stories: %v", err)
	}

	named := map[domain.BoardID]string{domain.DefaultBoard: "Backlog (default)"}
	if epicList, err := epics.List(); err == nil {
		for _, e := range epicList {
			named[e.ID] = e.Name
		}
	}

	byEpic := make(map[domain.BoardID][]domain.Story)
	for _, s := range all {
		byEpic[s.EpicID] = append(byEpic[s.EpicID], s)
	}

	if len(byEpic) == 0 {
		color.Yellow.Println("No stories yet.")
		return
	}

	for board, boardStories := range byEpic {
		title := named[board]
		if title == "" {
			title = string(board)
		}
		color.Bold.Printf("\n=== %s (%d stories) ===\n", title, len(boardStories))
		renderBoard(projection.BuildColumns(boardStories))
	}
}

func renderBoard(columns map[domain.Status][]domain.Story) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Column", "Title", "Priority", "Effort", "Criteria", "Updated"})

	for _, status := range domain.Columns {
		for _, s := range columns[status] {
			table.Append([]string{
				string(status),
				truncate(s.Title, 48),
				colorPriority(s.Priority),
				fmt.Sprintf("%d", s.Effort),
				fmt.Sprintf("%d", len(s.AcceptanceCriteria)),
				s.UpdatedAt.Format("02 Jan 15:04"),
			})
		}
	}
	table.Render()
}

func colorPriority(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return color.Red.Sprint(p)
	case domain.PriorityHigh:
		return color.Magenta.Sprint(p)
	case domain.PriorityMedium:
		return color.Yellow.Sprint(p)
	default:
		return color.Gray.Sprint(p)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
