package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/domain"
	"selectkit/internal/ui/services/catalog"
	"selectkit/internal/ui/services/events"
)

func k(i int64) domain.Key { return domain.IntKey(i) }

func newService(t *testing.T, mode domain.Mode) (*Service, *[]string) {
	t.Helper()
	var warned []string
	cat := catalog.New(nil, func(format string, args ...any) { warned = append(warned, format) })
	cat.Set([]domain.OptionRecord{
		{Label: "One", Value: k(1)},
		{Label: "Two", Value: k(2)},
		{Label: "Three", Value: k(3)},
		{Label: "Four", Value: k(4)},
		{Label: "Suspended", Value: k(5), Disabled: true},
	})
	return NewService(events.NewBus(), cat, mode), &warned
}

func TestMultipleToggleRoundTrip(t *testing.T) {
	s, _ := newService(t, domain.Multiple)
	s.Toggle(k(2))
	before := s.Selection()

	r1 := s.Toggle(k(3))
	r2 := s.Toggle(k(3))

	assert.True(t, r1.Changed)
	assert.True(t, r2.Changed)
	assert.False(t, r1.Close)
	assert.True(t, before.Equal(s.Selection()))
}

func TestMultipleKeepsInsertionOrder(t *testing.T) {
	s, _ := newService(t, domain.Multiple)
	s.Toggle(k(3))
	s.Toggle(k(1))
	s.Toggle(k(4))
	s.Toggle(k(1))

	assert.Equal(t, []domain.Key{k(3), k(4)}, s.Selection().Keys())
}

func TestSingleReplaces(t *testing.T) {
	s, _ := newService(t, domain.Single)
	s.Toggle(k(1))
	r := s.Toggle(k(2))

	assert.Equal(t, Result{Changed: true, Close: true}, r)
	assert.Equal(t, []domain.Key{k(2)}, s.Selection().Keys())
}

func TestSingleReselectIsNoop(t *testing.T) {
	s, _ := newService(t, domain.Single)
	s.Toggle(k(1))

	r := s.Toggle(k(1))

	assert.Equal(t, Result{Reselected: true, Close: true}, r)
	got, ok := s.Selection().Key()
	require.True(t, ok)
	assert.Equal(t, k(1), got)
}

func TestDisabledToggleIsNoop(t *testing.T) {
	for _, mode := range []domain.Mode{domain.Single, domain.Multiple} {
		s, _ := newService(t, mode)
		bus := events.NewBus()
		s.bus = bus
		published := 0
		bus.Subscribe(events.EventType(SelectionChangedEvent{}), func(interface{}) { published++ })

		r := s.Toggle(k(5))

		assert.Equal(t, Result{}, r)
		assert.True(t, s.Selection().IsEmpty())
		assert.Zero(t, published)
	}
}

func TestUnknownKeyWarns(t *testing.T) {
	s, warned := newService(t, domain.Multiple)

	r := s.Toggle(k(42))

	assert.Equal(t, Result{}, r)
	assert.False(t, s.HasSelection())
	assert.Len(t, *warned, 1)
}

func TestClear(t *testing.T) {
	s, _ := newService(t, domain.Multiple)
	assert.False(t, s.Clear())

	s.Toggle(k(1))
	s.Toggle(k(2))
	assert.True(t, s.Clear())
	assert.Equal(t, domain.Multiple, s.Selection().Mode())
	assert.True(t, s.Selection().IsEmpty())
}

func TestDescribe(t *testing.T) {
	single, _ := newService(t, domain.Single)
	assert.Equal(t, "Pick one", single.Describe("Pick one"))
	single.Toggle(k(3))
	assert.Equal(t, "Three", single.Describe("Pick one"))

	multi, _ := newService(t, domain.Multiple)
	assert.Equal(t, "Pick", multi.Describe("Pick"))
	multi.Toggle(k(2))
	assert.Equal(t, "Two", multi.Describe("Pick"))
	multi.Toggle(k(4))
	assert.Equal(t, "2 selected", multi.Describe("Pick"))
}

func TestReconcile(t *testing.T) {
	s, warned := newService(t, domain.Multiple)

	// disabled keys from the host are kept, unknown ones dropped
	s.Reconcile(domain.NewMultiple(k(5), k(9), k(1)))

	assert.Equal(t, []domain.Key{k(5), k(1)}, s.Selection().Keys())
	assert.Len(t, *warned, 1)
}

func TestReconcileConvertsShape(t *testing.T) {
	s, _ := newService(t, domain.Single)

	s.Reconcile(domain.NewMultiple(k(2), k(3)))

	got, ok := s.Selection().Key()
	require.True(t, ok)
	assert.Equal(t, k(2), got)
}

func TestSetModeConverts(t *testing.T) {
	s, _ := newService(t, domain.Single)
	s.Toggle(k(4))

	s.SetMode(domain.Multiple)

	assert.Equal(t, []domain.Key{k(4)}, s.Selection().Keys())
	assert.Equal(t, domain.Multiple, s.Mode())
}
