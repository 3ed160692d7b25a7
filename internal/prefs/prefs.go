// ABOUTME: Observable preference store backed by an embedded badger database.
// ABOUTME: Fills defaults for missing keys, validates writes, and notifies subscribers.
package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
)

// ErrInvalidPreference is returned when an update would store an out-of-range value.
var ErrInvalidPreference = errors.New("invalid preference")

const keyPrefix = "pref:"

// Field keys as stored in badger.
const (
	KeyDisplayName      = "display_name"
	KeyWeightKg         = "weight_kg"
	KeyHeightCm         = "height_cm"
	KeyDailyStepGoal    = "daily_step_goal"
	KeyDailyCalorieGoal = "daily_calorie_goal"
	KeyDarkTheme        = "dark_theme"
	KeyFirstLaunch      = "first_launch"
	KeyLoggedIn         = "logged_in"
)

// Keys lists every preference key in display order.
var Keys = []string{
	KeyDisplayName,
	KeyWeightKg,
	KeyHeightCm,
	KeyDailyStepGoal,
	KeyDailyCalorieGoal,
	KeyDarkTheme,
	KeyFirstLaunch,
	KeyLoggedIn,
}

// Store holds user preferences and publishes every committed change.
type Store struct {
	db *badger.DB

	// writeMu serializes read-modify-write cycles so publishes follow commit order.
	writeMu sync.Mutex

	mu      sync.Mutex
	subs    map[int]chan models.Preferences
	nextSub int
	closed  bool
}

// Open opens (or creates) a preference store in dir.
func Open(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	return newStore(db), nil
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory preferences: %w", err)
	}
	return newStore(db), nil
}

func newStore(db *badger.DB) *Store {
	return &Store{db: db, subs: make(map[int]chan models.Preferences)}
}

// Get returns the current preferences. Keys never written report their defaults.
func (s *Store) Get() (models.Preferences, error) {
	p := models.DefaultPreferences()
	values := make(map[string]string)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values[string(item.Key()[len(keyPrefix):])] = string(val)
		}
		return nil
	})
	if err != nil {
		return p, fmt.Errorf("read preferences: %w", err)
	}

	for key, raw := range values {
		// Unparseable values keep their default.
		_ = setField(&p, key, raw)
	}
	return p, nil
}

// Update applies fn to the current preferences, validates the result,
// persists changed fields, and notifies subscribers.
func (s *Store) Update(fn func(*models.Preferences)) (models.Preferences, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, err := s.Get()
	if err != nil {
		return current, err
	}

	next := current
	fn(&next)

	if err := Validate(next); err != nil {
		return current, err
	}

	changed := diff(current, next)
	if len(changed) == 0 {
		return next, nil
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for key, val := range changed {
			if err := txn.Set([]byte(keyPrefix+key), []byte(val)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return current, fmt.Errorf("write preferences: %w", err)
	}

	s.publish(next)
	return next, nil
}

// Set parses raw and stores it under key.
func (s *Store) Set(key, raw string) (models.Preferences, error) {
	var scratch models.Preferences
	if err := setField(&scratch, key, raw); err != nil {
		return models.Preferences{}, err
	}
	return s.Update(func(p *models.Preferences) {
		_ = setField(p, key, raw)
	})
}

// Reset deletes all stored values so every field reports its default again.
func (s *Store) Reset() (models.Preferences, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.db.DropPrefix([]byte(keyPrefix)); err != nil {
		return models.Preferences{}, fmt.Errorf("reset preferences: %w", err)
	}
	p := models.DefaultPreferences()
	s.publish(p)
	return p, nil
}

// Subscribe returns a channel that receives the latest preferences after each
// change, and a function that cancels the subscription. A slow reader only
// misses intermediate states; the newest value always replaces a stale one.
func (s *Store) Subscribe() (<-chan models.Preferences, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan models.Preferences, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

func (s *Store) publish(p models.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- p:
		default:
			// Drop the stale value and deliver the newest one.
			select {
			case <-ch:
			default:
			}
			ch <- p
		}
	}
}

// Close closes every subscriber channel and the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		for id, ch := range s.subs {
			close(ch)
			delete(s.subs, id)
		}
	}
	s.mu.Unlock()

	return s.db.Close()
}

// Validate checks the invariants enforced at the write boundary.
func Validate(p models.Preferences) error {
	if err := fitness.ValidateWeight(p.WeightKg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreference, err)
	}
	if err := fitness.ValidateHeight(p.HeightCm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreference, err)
	}
	if err := fitness.ValidateGoal(p.DailyStepGoal); err != nil {
		return fmt.Errorf("%w: step goal: %w", ErrInvalidPreference, err)
	}
	if err := fitness.ValidateGoal(p.DailyCalorieGoal); err != nil {
		return fmt.Errorf("%w: calorie goal: %w", ErrInvalidPreference, err)
	}
	return nil
}

// Format returns the stored string form of key.
func Format(p models.Preferences, key string) (string, error) {
	switch key {
	case KeyDisplayName:
		return p.DisplayName, nil
	case KeyWeightKg:
		return strconv.FormatFloat(p.WeightKg, 'f', -1, 64), nil
	case KeyHeightCm:
		return strconv.FormatFloat(p.HeightCm, 'f', -1, 64), nil
	case KeyDailyStepGoal:
		return strconv.Itoa(p.DailyStepGoal), nil
	case KeyDailyCalorieGoal:
		return strconv.Itoa(p.DailyCalorieGoal), nil
	case KeyDarkTheme:
		return strconv.FormatBool(p.DarkTheme), nil
	case KeyFirstLaunch:
		return strconv.FormatBool(p.FirstLaunch), nil
	case KeyLoggedIn:
		return strconv.FormatBool(p.LoggedIn), nil
	default:
		return "", fmt.Errorf("%w: unknown key %q", ErrInvalidPreference, key)
	}
}

func setField(p *models.Preferences, key, raw string) error {
	var err error
	switch key {
	case KeyDisplayName:
		p.DisplayName = raw
	case KeyWeightKg:
		err = parseFloat(raw, &p.WeightKg)
	case KeyHeightCm:
		err = parseFloat(raw, &p.HeightCm)
	case KeyDailyStepGoal:
		err = parseInt(raw, &p.DailyStepGoal)
	case KeyDailyCalorieGoal:
		err = parseInt(raw, &p.DailyCalorieGoal)
	case KeyDarkTheme:
		err = parseBool(raw, &p.DarkTheme)
	case KeyFirstLaunch:
		err = parseBool(raw, &p.FirstLaunch)
	case KeyLoggedIn:
		err = parseBool(raw, &p.LoggedIn)
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidPreference, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPreference, key, err)
	}
	return nil
}

// The parse helpers leave dst untouched when raw does not parse.

func parseFloat(raw string, dst *float64) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseInt(raw string, dst *int) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseBool(raw string, dst *bool) error {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func diff(a, b models.Preferences) map[string]string {
	changed := make(map[string]string)
	for _, key := range Keys {
		av, _ := Format(a, key)
		bv, _ := Format(b, key)
		if av != bv {
			changed[key] = bv
		}
	}
	return changed
}
