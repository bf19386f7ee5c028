package catalog

import "selectkit/internal/domain"

// WarnFunc is the developer-facing diagnostics channel. It never reaches the
// end user; the default writes to the standard logger.
type WarnFunc func(format string, args ...any)

// Event types
type DuplicateKeyEvent struct {
	Key       domain.Key
	KeptLabel string
	DroppedAt int // position of the dropped record in the host list
	KeptAt    int
}

type MissingKeyEvent struct {
	Label string
	At    int
}

type CatalogChangedEvent struct {
	Size int
}
