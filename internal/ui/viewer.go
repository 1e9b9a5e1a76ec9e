package ui

import "wct/internal/domain"

// Viewer displays a persisted run
type Viewer interface {
	View(record *domain.RunRecord) error
}
