// ABOUTME: Session aggregation from raw device samples into workout summaries.
// ABOUTME: Sums/averages samples, then classifies intensity, effort and pace.
package fitness

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccumulateSession folds the samples belonging to session into SessionMetrics.
// Samples tagged with another session, or timestamped outside the session
// window, are ignored. Samples without a timestamp are always counted.
func AccumulateSession(session models.Session, samples []models.Sample) models.SessionMetrics {
	m := models.SessionMetrics{
		DurationMinutes: sessionMinutes(session),
	}

	var (
		hrSum, hrMax float64
		hrCount      int
		speedSum     float64
		speedCount   int
	)

	for _, s := range samples {
		if s.SessionID != uuid.Nil && s.SessionID != session.ID {
			continue
		}
		if !s.RecordedAt.IsZero() && !session.Contains(s.RecordedAt) {
			continue
		}
		v, ok := s.Value()
		if !ok {
			continue
		}

		switch s.Type {
		case models.SampleCaloriesExpended:
			m.Calories += v
		case models.SampleStepsDelta:
			m.Steps += int(math.Round(v))
		case models.SampleDistanceDelta:
			m.DistanceMeters += v
		case models.SampleHeartRate:
			hrSum += v
			hrCount++
			if hrCount == 1 || v > hrMax {
				hrMax = v
			}
		case models.SampleSpeed:
			if v > 0 {
				speedSum += v
				speedCount++
			}
		case models.SampleMoveMinutes:
			m.MoveMinutes += int(math.Round(v))
		}
	}

	if hrCount > 0 {
		avg := hrSum / float64(hrCount)
		m.AvgHeartRate = &avg
		if hrMax > 0 {
			m.MaxHeartRate = &hrMax
		}
	}
	if speedCount > 0 {
		avg := speedSum / float64(speedCount)
		m.AvgSpeed = &avg
	}

	return m
}

// Summarize turns accumulated metrics into a WorkoutSummary.
func Summarize(session models.Session, m models.SessionMetrics) models.WorkoutSummary {
	minutes := max(m.DurationMinutes, 1)
	calories := max(int(math.Round(m.Calories)), 0)

	w := models.WorkoutSummary{
		ID:              session.ID.String(),
		Title:           sessionTitle(session),
		Activity:        session.ActivityType,
		StartedAt:       session.StartedAt,
		EndedAt:         session.EndedAt,
		DurationMinutes: minutes,
		Calories:        calories,
		Steps:           m.Steps,
		Intensity:       ClassifyIntensity(m.AvgHeartRate, CaloriesPerMinute(calories, minutes), m.Steps),
		EffortScore:     EffortScore(minutes, calories, m.Steps, m.DistanceMeters, m.AvgHeartRate),
	}

	if m.DistanceMeters > 0 {
		km := m.DistanceMeters / 1000
		w.DistanceKm = &km
		w.AvgPace = AveragePace(minutes, km)
	}
	if session.Notes != "" {
		notes := session.Notes
		w.Notes = &notes
	}
	if m.AvgHeartRate != nil {
		avg := int(math.Round(*m.AvgHeartRate))
		w.AvgHeartRate = &avg
	}
	if m.MaxHeartRate != nil && *m.MaxHeartRate > 0 {
		hrMax := int(math.Round(*m.MaxHeartRate))
		w.MaxHeartRate = &hrMax
	}

	return w
}

// AggregateSession accumulates and summarizes in one step.
func AggregateSession(session models.Session, samples []models.Sample) models.WorkoutSummary {
	return Summarize(session, AccumulateSession(session, samples))
}

// sessionMinutes floors the session length to whole minutes, minimum 1.
func sessionMinutes(session models.Session) int {
	ms := session.EndedAt.Sub(session.StartedAt).Milliseconds()
	return max(int(ms/60000), 1)
}

func sessionTitle(session models.Session) string {
	if strings.TrimSpace(session.Title) != "" {
		return session.Title
	}
	activity := strings.TrimSpace(strings.ReplaceAll(session.ActivityType, "_", " "))
	if activity == "" {
		return "Workout"
	}
	return cases.Title(language.English).String(activity) + " session"
}
