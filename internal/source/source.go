// ABOUTME: WorkoutSource abstraction over live session history and exercise catalogs.
// ABOUTME: Selector picks the first available source with data, falling back to the static catalog.
package source

import (
	"context"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/observability"
	"github.com/sirupsen/logrus"
)

// Query describes which workouts a caller wants.
type Query struct {
	// Now anchors catalog suggestions in time.
	Now time.Time
	// From and To bound session start times. Zero values are open.
	From time.Time
	To   time.Time
	// WeightKg feeds calorie estimates for catalog suggestions.
	WeightKg float64
}

// WorkoutSource yields workout summaries from one kind of backing data.
type WorkoutSource interface {
	Name() string
	Available(ctx context.Context) bool
	Workouts(ctx context.Context, q Query) ([]models.WorkoutSummary, error)
}

// Selection is the outcome of a Selector call.
type Selection struct {
	Source   string
	Workouts []models.WorkoutSummary
	Fallback bool
}

// Selector chooses a source at call time by availability.
type Selector struct {
	sources  []WorkoutSource
	fallback *StaticCatalogSource
	log      logrus.FieldLogger
}

// NewSelector returns a selector trying sources in order. A nil fallback
// uses the built-in catalog.
func NewSelector(log logrus.FieldLogger, fallback *StaticCatalogSource, sources ...WorkoutSource) *Selector {
	if fallback == nil {
		fallback = NewStaticCatalogSource(nil)
	}
	return &Selector{sources: sources, fallback: fallback, log: log}
}

// Workouts returns summaries from the first source that is available and
// yields at least one workout. Source failures are logged, never returned.
func (s *Selector) Workouts(ctx context.Context, q Query) Selection {
	for _, src := range s.sources {
		name := src.Name()
		if !src.Available(ctx) {
			s.log.WithField("source", name).Debug("workout source unavailable")
			continue
		}

		workouts, err := src.Workouts(ctx, q)
		if err != nil {
			observability.RecordSourceError(name)
			s.log.WithField("source", name).WithError(err).Warn("workout source failed")
			continue
		}
		if len(workouts) == 0 {
			s.log.WithField("source", name).Debug("workout source returned no data")
			continue
		}

		observability.RecordSummaries(name, len(workouts))
		return Selection{Source: name, Workouts: workouts}
	}

	// The static catalog never fails.
	workouts, _ := s.fallback.Workouts(ctx, q)
	observability.RecordFallback()
	observability.RecordSummaries(s.fallback.Name(), len(workouts))
	s.log.WithField("source", s.fallback.Name()).Info("using static workout catalog")

	return Selection{Source: s.fallback.Name(), Workouts: workouts, Fallback: true}
}
