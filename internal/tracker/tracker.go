// ABOUTME: Coordinator that joins storage, preferences and workout sources with the fitness core.
// ABOUTME: Owns the dashboard state and republishes it when preferences or activities change.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/observability"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/harperreed/fittrack/internal/source"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/sirupsen/logrus"
)

// ErrInvalidActivity is returned when an activity record breaks its invariants.
var ErrInvalidActivity = errors.New("invalid activity")

// Tracker is the single entry point used by the CLI and MCP server.
type Tracker struct {
	repo     storage.Repository
	prefs    *prefs.Store
	sources  []source.WorkoutSource
	selector *source.Selector
	log      logrus.FieldLogger
	clock    func() time.Time
	maxPage  int

	mu      sync.Mutex
	watches map[int]chan struct{}
	nextID  int
}

// New wires a tracker. Sources are tried in order when listing workouts; the
// static catalog is always the last resort. A nil prefs store reports defaults.
func New(repo storage.Repository, p *prefs.Store, log logrus.FieldLogger, sources ...source.WorkoutSource) *Tracker {
	return &Tracker{
		repo:     repo,
		prefs:    p,
		sources:  sources,
		selector: source.NewSelector(log, nil, sources...),
		log:      log,
		clock:    time.Now,
		maxPage:  source.DefaultMaxPageSize,
		watches:  make(map[int]chan struct{}),
	}
}

// WithFallback replaces the built-in static catalog.
func (t *Tracker) WithFallback(static *source.StaticCatalogSource) *Tracker {
	t.selector = source.NewSelector(t.log, static, t.sources...)
	return t
}

// WithMaxPageSize caps workout pages. Non-positive values keep the default.
func (t *Tracker) WithMaxPageSize(n int) *Tracker {
	if n > 0 {
		t.maxPage = n
	}
	return t
}

// WithClock overrides the time source.
func (t *Tracker) WithClock(clock func() time.Time) *Tracker {
	t.clock = clock
	return t
}

// Preferences returns the stored preferences, or defaults without a store.
func (t *Tracker) Preferences() (models.Preferences, error) {
	if t.prefs == nil {
		return models.DefaultPreferences(), nil
	}
	return t.prefs.Get()
}

// UpdatePreferences applies fn through the validated preference store.
func (t *Tracker) UpdatePreferences(fn func(*models.Preferences)) (models.Preferences, error) {
	if t.prefs == nil {
		return models.Preferences{}, errors.New("no preference store configured")
	}
	return t.prefs.Update(fn)
}

// LogActivity stores a new activity record.
func (t *Tracker) LogActivity(a *models.ActivityRecord) error {
	if err := validateActivity(a); err != nil {
		return err
	}
	if err := t.repo.CreateActivity(a); err != nil {
		t.log.WithError(err).WithField("category", a.Category).Error("failed to log activity")
		return fmt.Errorf("log activity: %w", err)
	}

	observability.RecordActivityLogged(a.RecordedAt)
	t.notify()
	return nil
}

// EditActivity applies fn to the record identified by idOrPrefix and saves it.
func (t *Tracker) EditActivity(idOrPrefix string, fn func(*models.ActivityRecord)) (*models.ActivityRecord, error) {
	a, err := t.repo.GetActivity(idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("edit activity: %w", err)
	}

	fn(a)
	if err := validateActivity(a); err != nil {
		return nil, err
	}
	if err := t.repo.UpdateActivity(a); err != nil {
		return nil, fmt.Errorf("edit activity: %w", err)
	}

	t.notify()
	return a, nil
}

// DeleteActivity removes the record identified by idOrPrefix.
func (t *Tracker) DeleteActivity(idOrPrefix string) error {
	if err := t.repo.DeleteActivity(idOrPrefix); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	t.notify()
	return nil
}

// Activity returns a single record by ID or prefix.
func (t *Tracker) Activity(idOrPrefix string) (*models.ActivityRecord, error) {
	return t.repo.GetActivity(idOrPrefix)
}

// Activities lists records matching filter, most recent first.
func (t *Tracker) Activities(filter storage.ActivityFilter) ([]*models.ActivityRecord, error) {
	return t.repo.ListActivities(filter)
}

// ImportSessions stores device sessions with their samples.
func (t *Tracker) ImportSessions(sessions []*models.Session) (int, error) {
	imported := 0
	for _, s := range sessions {
		if err := t.repo.CreateSession(s); err != nil {
			return imported, fmt.Errorf("import session %s: %w", s.ID, err)
		}
		imported++
	}
	if imported > 0 {
		t.notify()
	}
	return imported, nil
}

// Sessions lists stored device sessions, most recent first.
func (t *Tracker) Sessions(limit int) ([]*models.Session, error) {
	return t.repo.ListSessions(time.Time{}, time.Time{}, limit)
}

// EstimateCalories estimates a burn using the stored body weight.
func (t *Tracker) EstimateCalories(activityType string, minutes int) (int, error) {
	p, err := t.Preferences()
	if err != nil {
		return 0, err
	}
	return fitness.EstimateCalories(activityType, minutes, p.WeightKg), nil
}

func validateActivity(a *models.ActivityRecord) error {
	if a == nil {
		return fmt.Errorf("%w: missing record", ErrInvalidActivity)
	}
	if strings.TrimSpace(string(a.Category)) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidActivity)
	}
	if a.Value < 0 || a.DurationMinutes < 0 {
		return fmt.Errorf("%w: value and duration must be non-negative", ErrInvalidActivity)
	}
	return nil
}
