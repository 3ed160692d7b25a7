// ABOUTME: Exercise catalog sources: a remote REST catalog and a built-in static one.
// ABOUTME: Catalog entries become deterministic workout suggestions anchored to the query time.
package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/client"
	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	RemoteCatalogSourceName = "remote-catalog"
	StaticCatalogSourceName = "static-catalog"
)

// DefaultCatalog is the built-in list of example workouts.
var DefaultCatalog = []models.CatalogEntry{
	{
		Name:        "Brisk Walk",
		Description: "Steady outdoor walk at a pace that lifts your breathing.",
		Category:    "walking",
		Muscles:     []string{"legs", "glutes"},
	},
	{
		Name:        "Interval Run",
		Description: "Alternate two minutes fast with one minute easy.",
		Category:    "running",
		Muscles:     []string{"legs", "core"},
		Equipment:   []string{"running shoes"},
	},
	{
		Name:        "Indoor Cycling",
		Description: "Seated climbs and sprints on a stationary bike.",
		Category:    "cycling",
		Muscles:     []string{"quads", "hamstrings", "calves"},
		Equipment:   []string{"stationary bike"},
	},
	{
		Name:        "Lap Swim",
		Description: "Continuous freestyle laps with short rests at each wall.",
		Category:    "swimming",
		Muscles:     []string{"shoulders", "back", "core"},
		Equipment:   []string{"pool", "goggles"},
	},
	{
		Name:        "Bodyweight Circuit",
		Description: "Squats, push-ups, lunges and planks in rounds.",
		Category:    "workout",
		Muscles:     []string{"full body"},
	},
	{
		Name:        "Kettlebell Training",
		Description: "Swings, goblet squats and presses.",
		Category:    "training",
		Muscles:     []string{"posterior chain", "shoulders"},
		Equipment:   []string{"kettlebell"},
	},
	{
		Name:        "Morning Yoga Flow",
		Description: "Sun salutations and standing poses to wake up.",
		Category:    "yoga",
		Muscles:     []string{"hips", "hamstrings", "spine"},
		Equipment:   []string{"mat"},
	},
}

// catalogProfile is the nominal shape of a suggested workout per category.
type catalogProfile struct {
	minutes       int
	stepsPerMin   int
	metersPerHour float64
}

var catalogProfiles = map[string]catalogProfile{
	"walking":  {minutes: 30, stepsPerMin: 100, metersPerHour: 5000},
	"running":  {minutes: 30, stepsPerMin: 160, metersPerHour: 10000},
	"cycling":  {minutes: 45, metersPerHour: 20000},
	"swimming": {minutes: 30, metersPerHour: 2000},
	"yoga":     {minutes: 20},
}

const defaultCatalogMinutes = 25

// catalogNamespace seeds the deterministic IDs of catalog suggestions.
var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fittrack.local/catalog"))

// CatalogSummaries converts catalog entries into workout suggestions. Entry i
// is scheduled at 07:00 on the day i+1 days before now, so the same inputs
// always produce the same summaries.
func CatalogSummaries(entries []models.CatalogEntry, now time.Time, weightKg float64) []models.WorkoutSummary {
	if weightKg <= 0 {
		weightKg = models.DefaultWeightKg
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 7, 0, 0, 0, now.Location())

	summaries := make([]models.WorkoutSummary, 0, len(entries))
	for i, e := range entries {
		category := strings.ToLower(strings.TrimSpace(e.Category))
		profile, ok := catalogProfiles[category]
		if !ok {
			profile = catalogProfile{minutes: defaultCatalogMinutes}
		}

		start := day.AddDate(0, 0, -(i + 1))
		session := models.Session{
			ID:           uuid.NewSHA1(catalogNamespace, []byte(e.Name)),
			Title:        e.Name,
			ActivityType: category,
			StartedAt:    start,
			EndedAt:      start.Add(time.Duration(profile.minutes) * time.Minute),
			Notes:        e.Description,
		}
		metrics := models.SessionMetrics{
			DurationMinutes: profile.minutes,
			Calories:        float64(fitness.EstimateCalories(category, profile.minutes, weightKg)),
			Steps:           profile.stepsPerMin * profile.minutes,
			DistanceMeters:  profile.metersPerHour * float64(profile.minutes) / 60,
		}
		summaries = append(summaries, fitness.Summarize(session, metrics))
	}
	return summaries
}

// StaticCatalogSource serves a fixed, ordered catalog. It is always available.
type StaticCatalogSource struct {
	entries []models.CatalogEntry
}

// NewStaticCatalogSource returns a source over entries, or over
// DefaultCatalog when entries is empty.
func NewStaticCatalogSource(entries []models.CatalogEntry) *StaticCatalogSource {
	if len(entries) == 0 {
		entries = DefaultCatalog
	}
	return &StaticCatalogSource{entries: entries}
}

// LoadStaticCatalog reads a YAML list of catalog entries from path.
func LoadStaticCatalog(path string) (*StaticCatalogSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []models.CatalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewStaticCatalogSource(entries), nil
}

func (s *StaticCatalogSource) Name() string { return StaticCatalogSourceName }

func (s *StaticCatalogSource) Available(ctx context.Context) bool { return true }

// Entries returns the catalog in order.
func (s *StaticCatalogSource) Entries() []models.CatalogEntry {
	return s.entries
}

func (s *StaticCatalogSource) Workouts(ctx context.Context, q Query) ([]models.WorkoutSummary, error) {
	return CatalogSummaries(s.entries, q.Now, q.WeightKg), nil
}

// RemoteCatalogSource fetches catalog entries from GET <base>/exercises.
type RemoteCatalogSource struct {
	client *client.Client
}

// NewRemoteCatalogSource returns a source backed by c. A nil client makes
// the source permanently unavailable.
func NewRemoteCatalogSource(c *client.Client) *RemoteCatalogSource {
	return &RemoteCatalogSource{client: c}
}

func (s *RemoteCatalogSource) Name() string { return RemoteCatalogSourceName }

func (s *RemoteCatalogSource) Available(ctx context.Context) bool {
	return s.client != nil && s.client.BaseURL != nil
}

// Entries fetches the raw catalog.
func (s *RemoteCatalogSource) Entries(ctx context.Context) ([]models.CatalogEntry, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "exercises", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	var entries []models.CatalogEntry
	if _, err := s.client.Do(req, &entries); err != nil { //nolint:bodyclose // Do drains and closes the body
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return entries, nil
}

func (s *RemoteCatalogSource) Workouts(ctx context.Context, q Query) ([]models.WorkoutSummary, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return CatalogSummaries(entries, q.Now, q.WeightKg), nil
}
