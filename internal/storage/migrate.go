// ABOUTME: Data migration between fittrack databases.
// ABOUTME: Copies activities, sessions, and samples from source to destination.

package storage

import (
	"fmt"
	"os"
	"time"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Activities int
	Sessions   int
	Samples    int
}

// MigrateData copies all data from src to dst storage.
// The destination should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	activities, err := src.ListActivities(ActivityFilter{})
	if err != nil {
		return nil, fmt.Errorf("list source activities: %w", err)
	}

	for _, a := range activities {
		if err := dst.CreateActivity(a); err != nil {
			return nil, fmt.Errorf("create activity %s: %w", a.ID, err)
		}
		summary.Activities++
	}

	sessions, err := src.ListSessions(time.Time{}, time.Time{}, 0)
	if err != nil {
		return nil, fmt.Errorf("list source sessions: %w", err)
	}

	for _, s := range sessions {
		samples, err := src.ListSamples(s.ID)
		if err != nil {
			return nil, fmt.Errorf("list samples for session %s: %w", s.ID, err)
		}

		// Samples go in separately so a large history is committed per session.
		s.Samples = nil
		if err := dst.CreateSession(s); err != nil {
			return nil, fmt.Errorf("create session %s: %w", s.ID, err)
		}
		summary.Sessions++

		if len(samples) == 0 {
			continue
		}
		if err := dst.AddSamples(samples); err != nil {
			return nil, fmt.Errorf("add samples for session %s: %w", s.ID, err)
		}
		summary.Samples += len(samples)
	}

	return summary, nil
}

// IsFileNonEmpty reports whether path exists and has content.
// Returns false if the file does not exist.
func IsFileNonEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
	return info.Size() > 0, nil
}
