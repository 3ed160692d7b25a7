// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON and YAML round-trips of activities and sessions.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Activities []*models.ActivityRecord `json:"activities" yaml:"activities"`
	Sessions   []*models.Session        `json:"sessions" yaml:"sessions"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	activities, err := d.ListActivities(ActivityFilter{})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	sessions, err := d.ListSessions(time.Time{}, time.Time{}, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	// Populate session samples
	for _, s := range sessions {
		s.Samples, err = d.ListSamples(s.ID)
		if err != nil {
			return nil, fmt.Errorf("list samples: %w", err)
		}
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fittrack",
		Activities: activities,
		Sessions:   sessions,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, a := range data.Activities {
		if err := d.CreateActivity(a); err != nil {
			return fmt.Errorf("import activity: %w", err)
		}
	}

	for _, s := range data.Sessions {
		if err := d.CreateSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

// ImportYAML imports data from YAML bytes.
func (d *DB) ImportYAML(data []byte) error {
	var exportData ExportData
	if err := yaml.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal YAML: %w", err)
	}
	return d.ImportData(&exportData)
}
