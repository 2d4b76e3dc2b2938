package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/jung-kurt/gofpdf"
	"github.com/mama165/sdk-go/logs"

	"storysplit/domain"
	"storysplit/internal"
	"storysplit/repositories"
)

// Seeds a demo board into BadgerDB and generates attachment fixtures
// (a real PDF and a PNG) usable against the attachment sniffer.
func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	outputDir := "./test_data"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Cannot create output dir: %v", err)
	}

	genPDF(filepath.Join(outputDir, "sprint_notes.pdf"))
	genImage(filepath.Join(outputDir, "mockup.png"))

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString(config.LogLevel)
	stories := repositories.NewStoryRepository(db, logger)
	epics := repositories.NewEpicRepository(db)

	epic := domain.Epic{
		ID:          domain.BoardID(uuid.NewString()),
		Name:        "Checkout revamp",
		Description: "Everything around the new payment flow",
		Color:       "#4c72b0",
		CreatedAt:   time.Now().UTC(),
	}
	if err := epics.Save(epic); err != nil {
		log.Fatalf("Failed to seed epic: %v", err)
	}

	seeds := []domain.Story{
		story(epic.ID, "Pay with a saved card",
			"As a returning shopper I want to pay with a saved card so that checkout takes one click.",
			domain.PriorityHigh, 3, domain.StatusReady),
		story(epic.ID, "Refund flow and email notification",
			"As a support agent I want to refund an order and also notify the customer by email so that disputes close faster.",
			domain.PriorityMedium, 8, domain.StatusBacklog),
		story(domain.DefaultBoard, "Dark mode",
			"As a night owl I want a dark theme so that my eyes stop hurting.",
			domain.PriorityLow, 2, domain.StatusBacklog),
	}
	for _, s := range seeds {
		if err := stories.Save(s); err != nil {
			log.Fatalf("Failed to seed story: %v", err)
		}
	}

	fmt.Printf("Seeded 1 epic and %d stories into %s\n", len(seeds), config.BadgerFilepath)
	fmt.Println("Attachment fixtures written to ./test_data")
}

func story(board domain.BoardID, title, description string,
	priority domain.Priority, effort int, status domain.Status) domain.Story {
	now := time.Now().UTC()
	return domain.Story{
		ID:          uuid.New(),
		EpicID:      board,
		Title:       title,
		Description: description,
		Priority:    priority,
		Effort:      effort,
		Status:      status,
		CreatedBy:   "seed",
		CreatedAt:   now,
		UpdatedAt:   now,
		Revision:    1,
	}
}

// genPDF writes a small real PDF, handy for exercising the MIME
// sniffer with something that is not plain text.
func genPDF(path string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 20, "Sprint planning notes")
	pdf.Ln(20)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, "Attached to a story to verify PDF attachments pass the allow-list.", "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		fmt.Printf("PDF generation failed: %v\n", err)
		return
	}
	fmt.Printf("PDF written: %s\n", path)
}

// genImage writes an 800x600 PNG fixture.
func genImage(path string) {
	width, height := 800, 600
	img := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 255), 100, 200, 0xff})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Image generation failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Printf("Image generation failed: %v\n", err)
		return
	}
	fmt.Printf("Image written: %s\n", path)
}
