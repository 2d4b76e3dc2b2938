package domain

import (
	"time"
)

// Epic is a grouping container for stories.
type Epic struct {
	ID          BoardID
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}
