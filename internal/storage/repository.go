// ABOUTME: Repository interface for fitness data storage.
// ABOUTME: Defines the contract for activity records and device session history.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// ActivityFilter narrows ListActivities. Zero values mean "no filter".
type ActivityFilter struct {
	Category *models.ActivityCategory
	From     time.Time // inclusive
	To       time.Time // exclusive
	Limit    int
}

// Repository defines the storage interface for fitness data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Activity operations
	CreateActivity(a *models.ActivityRecord) error
	GetActivity(idOrPrefix string) (*models.ActivityRecord, error)
	UpdateActivity(a *models.ActivityRecord) error
	ListActivities(filter ActivityFilter) ([]*models.ActivityRecord, error)
	DeleteActivity(idOrPrefix string) error
	SumActivities(category models.ActivityCategory, from, to time.Time) (int, error)

	// Session history operations
	CreateSession(s *models.Session) error
	GetSession(idOrPrefix string) (*models.Session, error)
	ListSessions(from, to time.Time, limit int) ([]*models.Session, error)
	DeleteSession(idOrPrefix string) error
	CountSessions() (int, error)
	AddSamples(samples []models.Sample) error
	ListSamples(sessionID uuid.UUID) ([]models.Sample, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
