// ABOUTME: Tests for the badger-backed preference store.
// ABOUTME: Covers defaults, validation at the write boundary, persistence, and subscriptions.
package prefs

import (
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/fitness"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetReturnsDefaults(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), p)
}

func TestUpdatePersistsChanges(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.Update(func(p *models.Preferences) {
		p.DisplayName = "Sam"
		p.WeightKg = 82.5
		p.FirstLaunch = false
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam", updated.DisplayName)

	p, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.DisplayName)
	assert.Equal(t, 82.5, p.WeightKg)
	assert.False(t, p.FirstLaunch)
	assert.Equal(t, models.DefaultDailyStepGoal, p.DailyStepGoal)
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Preferences)
		cause  error
	}{
		{"zero weight", func(p *models.Preferences) { p.WeightKg = 0 }, fitness.ErrInvalidWeight},
		{"negative height", func(p *models.Preferences) { p.HeightCm = -10 }, fitness.ErrInvalidHeight},
		{"zero step goal", func(p *models.Preferences) { p.DailyStepGoal = 0 }, fitness.ErrInvalidGoal},
		{"negative calorie goal", func(p *models.Preferences) { p.DailyCalorieGoal = -1 }, fitness.ErrInvalidGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)

			_, err := s.Update(tt.mutate)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPreference)
			assert.ErrorIs(t, err, tt.cause)

			p, err := s.Get()
			require.NoError(t, err)
			assert.Equal(t, models.DefaultPreferences(), p, "rejected update must not persist")
		})
	}
}

func TestSetParsesValues(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Set(KeyDailyStepGoal, "12000")
	require.NoError(t, err)
	_, err = s.Set(KeyDarkTheme, "true")
	require.NoError(t, err)

	p, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, 12000, p.DailyStepGoal)
	assert.True(t, p.DarkTheme)

	_, err = s.Set(KeyDailyStepGoal, "lots")
	assert.ErrorIs(t, err, ErrInvalidPreference)

	_, err = s.Set("favourite_colour", "blue")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestSetRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		key   string
		raw   string
		cause error
	}{
		{KeyWeightKg, "NaN", fitness.ErrInvalidWeight},
		{KeyWeightKg, "+Inf", fitness.ErrInvalidWeight},
		{KeyHeightCm, "NaN", fitness.ErrInvalidHeight},
		{KeyHeightCm, "-Inf", fitness.ErrInvalidHeight},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			s := newTestStore(t)

			_, err := s.Set(tt.key, tt.raw)
			assert.ErrorIs(t, err, ErrInvalidPreference)
			assert.ErrorIs(t, err, tt.cause)

			p, err := s.Get()
			require.NoError(t, err)
			assert.Equal(t, models.DefaultPreferences(), p)
		})
	}
}

func TestGetKeepsDefaultForCorruptValue(t *testing.T) {
	s := newTestStore(t)

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyPrefix+KeyWeightKg), []byte("heavy")); err != nil {
			return err
		}
		return txn.Set([]byte(keyPrefix+KeyDailyStepGoal), []byte("many"))
	})
	require.NoError(t, err)

	p, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWeightKg, p.WeightKg)
	assert.Equal(t, models.DefaultDailyStepGoal, p.DailyStepGoal)
}

func TestConcurrentUpdatesPublishStoredState(t *testing.T) {
	const writers = 8

	for round := 0; round < 20; round++ {
		s := newTestStore(t)
		ch, cancel := s.Subscribe()

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.Update(func(p *models.Preferences) {
					if i%2 == 0 {
						p.DailyStepGoal++
					} else {
						p.DailyCalorieGoal++
					}
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := s.Get()
		require.NoError(t, err)
		assert.Equal(t, models.DefaultDailyStepGoal+writers/2, stored.DailyStepGoal)
		assert.Equal(t, models.DefaultDailyCalorieGoal+writers/2, stored.DailyCalorieGoal)

		select {
		case latest := <-ch:
			assert.Equal(t, stored, latest, "round %d", round)
		default:
			t.Fatalf("round %d: no preference change published", round)
		}
		cancel()
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Set(KeyHeightCm, "181")
	require.NoError(t, err)

	p, err := s.Reset()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), p)

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHeightCm, got.HeightCm)
}

func TestSubscribeReceivesLatest(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	defer cancel()

	for _, goal := range []string{"8000", "9000", "11000"} {
		_, err := s.Set(KeyDailyStepGoal, goal)
		require.NoError(t, err)
	}

	select {
	case p := <-ch:
		assert.Equal(t, 11000, p.DailyStepGoal)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for preference change")
	}
}

func TestSubscribeNoChangeNoPublish(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	defer cancel()

	_, err := s.Update(func(p *models.Preferences) {})
	require.NoError(t, err)

	select {
	case p := <-ch:
		t.Fatalf("unexpected publish: %+v", p)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	_, err := s.Set(KeyLoggedIn, "true")
	require.NoError(t, err)
}

func TestCloseClosesSubscribers(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)

	ch, _ := s.Subscribe()
	require.NoError(t, s.Close())

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := s.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.Set(KeyDisplayName, "Robin")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	p, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "Robin", p.DisplayName)
}

func TestFormat(t *testing.T) {
	p := models.DefaultPreferences()
	for _, key := range Keys {
		_, err := Format(p, key)
		assert.NoError(t, err, key)
	}

	v, err := Format(p, KeyWeightKg)
	require.NoError(t, err)
	assert.Equal(t, "70", v)

	_, err = Format(p, "nope")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}
