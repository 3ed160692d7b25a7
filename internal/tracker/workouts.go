// ABOUTME: Paginated workout listing across the configured workout sources.
package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/source"
	"github.com/harperreed/fittrack/internal/storage"
)

// WorkoutPage is one page of workout summaries.
type WorkoutPage struct {
	Source   string                  `json:"source"`
	Fallback bool                    `json:"fallback"`
	Items    []models.WorkoutSummary `json:"items"`
	Offset   int                     `json:"offset"`
	Limit    int                     `json:"limit"`
	Total    int                     `json:"total"`
}

// Workouts returns a page of summaries from the first source with data.
// Offset is clamped to 0 and limit to the configured maximum page size.
func (t *Tracker) Workouts(ctx context.Context, offset, limit int) (WorkoutPage, error) {
	sel, err := t.selectWorkouts(ctx)
	if err != nil {
		return WorkoutPage{}, err
	}

	items, offset, limit := source.Page(sel.Workouts, offset, limit, t.maxPage)
	return WorkoutPage{
		Source:   sel.Source,
		Fallback: sel.Fallback,
		Items:    items,
		Offset:   offset,
		Limit:    limit,
		Total:    len(sel.Workouts),
	}, nil
}

// Workout finds one summary by ID or unique ID prefix.
func (t *Tracker) Workout(ctx context.Context, idOrPrefix string) (*models.WorkoutSummary, error) {
	sel, err := t.selectWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	var match *models.WorkoutSummary
	for i := range sel.Workouts {
		w := &sel.Workouts[i]
		if w.ID == idOrPrefix {
			return w, nil
		}
		if idOrPrefix != "" && strings.HasPrefix(w.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", storage.ErrAmbiguousPrefix, idOrPrefix)
			}
			match = w
		}
	}
	if match == nil {
		return nil, fmt.Errorf("workout %w: %s", storage.ErrNotFound, idOrPrefix)
	}
	return match, nil
}

func (t *Tracker) selectWorkouts(ctx context.Context) (source.Selection, error) {
	p, err := t.Preferences()
	if err != nil {
		return source.Selection{}, fmt.Errorf("load preferences: %w", err)
	}
	q := source.Query{Now: t.clock(), WeightKg: p.WeightKg}
	return t.selector.Workouts(ctx, q), nil
}
