// ABOUTME: Live workout source built from recorded device sessions.
// ABOUTME: Each stored session and its samples aggregate into one summary.
package source

import (
	"context"
	"fmt"

	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// SessionSourceName identifies summaries aggregated from stored sessions.
const SessionSourceName = "sessions"

// SessionSource aggregates stored sessions into workout summaries.
type SessionSource struct {
	repo storage.Repository
}

// NewSessionSource returns a source reading sessions from repo.
func NewSessionSource(repo storage.Repository) *SessionSource {
	return &SessionSource{repo: repo}
}

func (s *SessionSource) Name() string { return SessionSourceName }

// Available reports whether any session history has been recorded.
func (s *SessionSource) Available(ctx context.Context) bool {
	if s.repo == nil {
		return false
	}
	n, err := s.repo.CountSessions()
	return err == nil && n > 0
}

// Workouts aggregates every session starting within the query window,
// most recent first.
func (s *SessionSource) Workouts(ctx context.Context, q Query) ([]models.WorkoutSummary, error) {
	sessions, err := s.repo.ListSessions(q.From, q.To, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	summaries := make([]models.WorkoutSummary, 0, len(sessions))
	for _, session := range sessions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		samples, err := s.repo.ListSamples(session.ID)
		if err != nil {
			return nil, fmt.Errorf("list samples for session %s: %w", session.ID, err)
		}
		summaries = append(summaries, fitness.AggregateSession(*session, samples))
	}
	return summaries, nil
}
