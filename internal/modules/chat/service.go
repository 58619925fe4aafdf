// README: Chat service: runs the planning pipeline and persists the history.
package chat

import (
	"context"
	"log"
	"time"

	"wayfarer/internal/service"
)

// Planner runs the three-stage pipeline for one message.
type Planner interface {
	Plan(ctx context.Context, userText string) service.PlanResult
}

// Archive is the persistence surface the service needs.
type Archive interface {
	Append(ctx context.Context, r *Record) error
	ListByUser(ctx context.Context, userID int64) ([]Record, error)
}

type Service struct {
	store   Archive
	planner Planner
}

func NewService(store Archive, planner Planner) *Service {
	return &Service{store: store, planner: planner}
}

// Generate runs the pipeline for one message and appends exactly one record,
// whatever the terminal outcome (clarification, itinerary, or fallback text).
// The raw message is persisted untouched.
func (s *Service) Generate(ctx context.Context, userID int64, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	res := s.planner.Plan(ctx, message)
	for _, reason := range res.Degraded {
		log.Printf("plan degraded (user=%d): %s", userID, reason)
	}

	rec := &Record{
		UserID:    userID,
		Message:   message,
		Response:  res.Response,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.Append(ctx, rec); err != nil {
		return "", err
	}
	return res.Response, nil
}

// History returns the user's chat records, oldest first.
func (s *Service) History(ctx context.Context, userID int64) ([]Record, error) {
	return s.store.ListByUser(ctx, userID)
}
