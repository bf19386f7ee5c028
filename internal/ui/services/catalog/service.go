package catalog

import (
	"log"

	"github.com/agnivade/levenshtein"

	"selectkit/internal/domain"
	"selectkit/internal/ui/services/events"
)

// Catalog is the normalized, de-duplicated list of options a dropdown offers
type Catalog struct {
	options []domain.OptionRecord
	index   map[domain.Key]int
	bus     events.EventBus
	warn    WarnFunc
}

// New creates an empty catalog
func New(bus events.EventBus, warn WarnFunc) *Catalog {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if warn == nil {
		warn = log.Printf
	}
	return &Catalog{
		index: make(map[domain.Key]int),
		bus:   bus,
		warn:  warn,
	}
}

// Set replaces the catalog contents. Records without a key are dropped and
// duplicate keys resolve to the first occurrence; both are reported as
// diagnostics, never as errors.
func (c *Catalog) Set(records []domain.OptionRecord) {
	options := make([]domain.OptionRecord, 0, len(records))
	index := make(map[domain.Key]int, len(records))
	origin := make(map[domain.Key]int, len(records))

	for i, rec := range records {
		if rec.Value.IsZero() {
			c.warn("selectkit: option %d (%q) has no key, ignoring it", i, rec.Label)
			c.bus.Publish(MissingKeyEvent{Label: rec.Label, At: i})
			continue
		}
		if kept, dup := index[rec.Value]; dup {
			c.warn("selectkit: duplicate option key %q at %d, keeping %q from %d",
				rec.Value, i, options[kept].Label, origin[rec.Value])
			c.bus.Publish(DuplicateKeyEvent{
				Key:       rec.Value,
				KeptLabel: options[kept].Label,
				DroppedAt: i,
				KeptAt:    origin[rec.Value],
			})
			continue
		}
		index[rec.Value] = len(options)
		origin[rec.Value] = i
		options = append(options, rec)
	}

	c.options = options
	c.index = index
	c.bus.Publish(CatalogChangedEvent{Size: len(options)})
}

// Options returns the normalized options in host order
func (c *Catalog) Options() []domain.OptionRecord {
	return c.options
}

// Len returns the number of options
func (c *Catalog) Len() int {
	return len(c.options)
}

// Lookup returns the option with key
func (c *Catalog) Lookup(key domain.Key) (domain.OptionRecord, bool) {
	i, ok := c.index[key]
	if !ok {
		return domain.OptionRecord{}, false
	}
	return c.options[i], true
}

// Contains checks whether key is in the catalog
func (c *Catalog) Contains(key domain.Key) bool {
	_, ok := c.index[key]
	return ok
}

// IsDisabled reports whether key belongs to a disabled option
func (c *Catalog) IsDisabled(key domain.Key) bool {
	opt, ok := c.Lookup(key)
	return ok && opt.Disabled
}

// Label returns the label for key, or "" when unknown
func (c *Catalog) Label(key domain.Key) string {
	opt, _ := c.Lookup(key)
	return opt.Label
}

// Suggest returns the known key closest to key, for developer warnings
func (c *Catalog) Suggest(key domain.Key) (domain.Key, bool) {
	want := key.String()
	best, bestDist := domain.Key{}, -1
	for _, opt := range c.options {
		d := levenshtein.ComputeDistance(want, opt.Value.String())
		if bestDist < 0 || d < bestDist {
			best, bestDist = opt.Value, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(want)/3) {
		return domain.Key{}, false
	}
	return best, true
}

// Warn reports a programmer-facing anomaly about key, adding a suggestion
// when a close match exists
func (c *Catalog) Warn(action string, key domain.Key) {
	if near, ok := c.Suggest(key); ok {
		c.warn("selectkit: %s: key %q is not in the catalog (did you mean %q?)", action, key, near)
		return
	}
	c.warn("selectkit: %s: key %q is not in the catalog", action, key)
}
