package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/domain"
	"selectkit/internal/ui/services/events"
)

type warnings []string

func (w *warnings) warn(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func opt(label string, key int64) domain.OptionRecord {
	return domain.OptionRecord{Label: label, Value: domain.IntKey(key)}
}

func TestSetKeepsFirstDuplicate(t *testing.T) {
	bus := events.NewBus()
	var dups []DuplicateKeyEvent
	bus.Subscribe(events.EventType(DuplicateKeyEvent{}), func(e interface{}) {
		dups = append(dups, e.(DuplicateKeyEvent))
	})
	var w warnings
	c := New(bus, w.warn)

	c.Set([]domain.OptionRecord{opt("A", 1), opt("B", 2), opt("A again", 1), opt("C", 3)})

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "A", c.Label(domain.IntKey(1)))
	assert.Equal(t, []string{"A", "B", "C"}, labels(c.Options()))
	require.Len(t, dups, 1)
	assert.Equal(t, DuplicateKeyEvent{Key: domain.IntKey(1), KeptLabel: "A", DroppedAt: 2, KeptAt: 0}, dups[0])
	assert.Len(t, w, 1)
}

func TestSetDropsRecordsWithoutKey(t *testing.T) {
	var w warnings
	c := New(nil, w.warn)

	c.Set([]domain.OptionRecord{{Label: "nothing"}, opt("B", 2)})

	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Contains(domain.Key{}))
	assert.Len(t, w, 1)
}

func TestLookupAndDisabled(t *testing.T) {
	c := New(nil, func(string, ...any) {})
	c.Set([]domain.OptionRecord{
		{Label: "Active", Value: domain.StringKey("a")},
		{Label: "Suspended", Value: domain.StringKey("s"), Disabled: true},
	})

	got, ok := c.Lookup(domain.StringKey("s"))
	require.True(t, ok)
	assert.Equal(t, "Suspended", got.Label)
	assert.True(t, c.IsDisabled(domain.StringKey("s")))
	assert.False(t, c.IsDisabled(domain.StringKey("a")))
	assert.False(t, c.IsDisabled(domain.StringKey("missing")))
	assert.Equal(t, "", c.Label(domain.StringKey("missing")))
}

func TestSuggest(t *testing.T) {
	c := New(nil, func(string, ...any) {})
	c.Set([]domain.OptionRecord{
		{Label: "Apple", Value: domain.StringKey("apple")},
		{Label: "Banana", Value: domain.StringKey("banana")},
	})

	near, ok := c.Suggest(domain.StringKey("aple"))
	require.True(t, ok)
	assert.Equal(t, domain.StringKey("apple"), near)

	_, ok = c.Suggest(domain.StringKey("zzzzzzzzzz"))
	assert.False(t, ok)
}

func TestWarnIncludesSuggestion(t *testing.T) {
	var w warnings
	c := New(nil, w.warn)
	c.Set([]domain.OptionRecord{{Label: "Banana", Value: domain.StringKey("banana")}})

	c.Warn("toggle", domain.StringKey("bananna"))

	require.Len(t, w, 1)
	assert.Contains(t, w[0], `did you mean "banana"`)
}

func labels(opts []domain.OptionRecord) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}
