// ABOUTME: Parsing of exported device session history files.
// ABOUTME: Accepts YAML or JSON and assigns IDs to sessions and samples that lack them.
package source

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// HistoryFile is the on-disk shape of a device history export.
type HistoryFile struct {
	Sessions []*models.Session `json:"sessions" yaml:"sessions"`
}

// ParseHistory decodes a history file. YAML is a superset of JSON, so both
// formats are accepted.
func ParseHistory(data []byte) ([]*models.Session, error) {
	var file HistoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}

	for i, s := range file.Sessions {
		if s == nil {
			return nil, fmt.Errorf("parse history: session %d is empty", i)
		}
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if s.EndedAt.Before(s.StartedAt) {
			return nil, fmt.Errorf("parse history: session %d ends before it starts", i)
		}
		for j := range s.Samples {
			sample := &s.Samples[j]
			if !models.IsValidSampleType(string(sample.Type)) {
				return nil, fmt.Errorf("parse history: session %d: unknown sample type %q", i, sample.Type)
			}
			sample.SessionID = s.ID
		}
	}
	return file.Sessions, nil
}
