package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/domain"
	"selectkit/internal/ui/viewmodels"
)

func openVM(n, focus int) viewmodels.ViewModel {
	vm := viewmodels.ViewModel{
		ID:         "dd",
		IsOpen:     true,
		Mode:       domain.Multiple,
		FocusIndex: focus,
		Selection:  domain.NewMultiple(domain.IntKey(1)),
		Summary:    "Opt 1",
	}
	for i := 0; i < n; i++ {
		vm.VisibleOptions = append(vm.VisibleOptions, viewmodels.OptionView{
			Option:   domain.OptionRecord{Label: "Opt " + string(rune('A'+i)), Value: domain.IntKey(int64(i))},
			Selected: i == 1,
			Focused:  i == focus,
		})
	}
	return vm
}

func TestRenderClosed(t *testing.T) {
	r := NewRenderer()
	vm := viewmodels.ViewModel{ID: "dd", Summary: "Pick one", Selection: domain.NoneSelected()}

	out, layout := r.Render(vm, RenderState{Width: 30})

	assert.Contains(t, out, "Pick one")
	assert.Equal(t, 1, strings.Count(out, "\n")+1)
	assert.True(t, layout.InTrigger(0))
	assert.False(t, layout.InMenu(0))
	assert.False(t, layout.InMenu(1))
}

func TestRenderOpenMapsOptionRows(t *testing.T) {
	r := NewRenderer()

	out, layout := r.Render(openVM(3, 0), RenderState{Width: 30, MaxVisible: 10})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "[x]")
	assert.Contains(t, lines[1], "›")
	assert.Equal(t, 1, layout.MenuTop)
	assert.Equal(t, 3, layout.MenuBottom)
	for row := 1; row <= 3; row++ {
		i, ok := layout.OptionAt(row)
		require.True(t, ok)
		assert.Equal(t, row-1, i)
	}
	_, ok := layout.OptionAt(0)
	assert.False(t, ok)
}

func TestRenderSearchLineIsPartOfMenu(t *testing.T) {
	r := NewRenderer()
	vm := openVM(2, -1)
	vm.Searchable = true

	_, layout := r.Render(vm, RenderState{Width: 30, SearchView: "ap"})

	assert.True(t, layout.InMenu(1))
	_, ok := layout.OptionAt(1)
	assert.False(t, ok)
	i, ok := layout.OptionAt(2)
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestRenderNoResults(t *testing.T) {
	r := NewRenderer()
	vm := openVM(0, -1)
	vm.Empty = true

	out, layout := r.Render(vm, RenderState{Width: 30})

	assert.Contains(t, out, "no results")
	assert.Empty(t, layout.Options)
	assert.True(t, layout.InMenu(1))
}

func TestRenderScrollsToFocus(t *testing.T) {
	r := NewRenderer()

	out, layout := r.Render(openVM(10, 9), RenderState{Width: 30, MaxVisible: 3})

	assert.Equal(t, 7, layout.Offset)
	assert.Contains(t, out, "↑ 7 more")
	assert.NotContains(t, out, "↓")
	i, ok := layout.OptionAt(layout.MenuBottom)
	require.True(t, ok)
	assert.Equal(t, 9, i)
}

func TestRenderTruncatesLabels(t *testing.T) {
	r := NewRenderer()
	vm := openVM(1, -1)
	vm.VisibleOptions[0].Option.Label = strings.Repeat("x", 100)

	out, _ := r.Render(vm, RenderState{Width: 20})

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 30))
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                       string
		offset, focus, count, size int
		want                       int
	}{
		{"fits", 3, 2, 4, 8, 0},
		{"focus inside", 2, 3, 20, 5, 2},
		{"focus above", 5, 1, 20, 5, 1},
		{"focus below", 0, 9, 20, 5, 5},
		{"no focus keeps offset", 4, -1, 20, 5, 4},
		{"list shrank", 18, -1, 10, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrollOffset(tt.offset, tt.focus, tt.count, tt.size))
		})
	}
}
