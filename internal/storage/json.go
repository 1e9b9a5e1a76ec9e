package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wct/internal/domain"
)

// Save writes the run record to the JSON file, creating its directory.
func (s *JSONStorage) Save(record *domain.RunRecord) error {
	if s.path == "" {
		return fmt.Errorf("no results file configured")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run record from the JSON file.
func (s *JSONStorage) Load() (*domain.RunRecord, error) {
	if s.path == "" {
		return nil, fmt.Errorf("no results file configured")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &record, nil
}
