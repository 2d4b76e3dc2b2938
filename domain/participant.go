// Package domain contains core concepts of the story splitting system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// Presence is a connected editor as seen by the rest of a board channel.
type Presence struct {
	UserID string
	Name   string
}
