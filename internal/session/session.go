package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/sharkpanel/pitch-agent/internal/panel"
)

// Session is the single unit of mutable conversation state. At most one
// exists process-wide at any instant; the orchestrator owns the slot.
type Session struct {
	ID               string
	Idea             BusinessIdea
	EntrepreneurName string
	Panel            []panel.RoleProfile
	Transcript       Transcript
	Collab           CollabWindow
	StartedAt        time.Time
}

// New creates a fresh session with an empty transcript and collaboration
// window. The panel order is fixed for the session's lifetime.
func New(idea BusinessIdea, entrepreneurName string, judges []panel.RoleProfile) *Session {
	if entrepreneurName == "" {
		entrepreneurName = "Entrepreneur"
	}
	return &Session{
		ID:               uuid.New().String(),
		Idea:             idea,
		EntrepreneurName: entrepreneurName,
		Panel:            judges,
		StartedAt:        time.Now(),
	}
}
