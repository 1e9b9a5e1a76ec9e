package storage

import (
	"wct/internal/domain"
)

// Storage persists and loads run records (e.g. for the failures viewer).
type Storage interface {
	Save(record *domain.RunRecord) error
	Load() (*domain.RunRecord, error)
}

// JSONStorage stores a run record in a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes the given JSON file.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}
