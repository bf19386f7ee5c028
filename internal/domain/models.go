package domain

import (
	"fmt"
	"strconv"
)

// KeyKind tells which half of a Key is meaningful
type KeyKind uint8

const (
	KeyString KeyKind = iota + 1
	KeyInt
)

// Key identifies an option. It is either a string or an integer and is
// comparable, so it can be used directly as a map key.
type Key struct {
	kind KeyKind
	s    string
	i    int64
}

// StringKey builds a string key
func StringKey(s string) Key {
	return Key{kind: KeyString, s: s}
}

// IntKey builds an integer key
func IntKey(i int64) Key {
	return Key{kind: KeyInt, i: i}
}

// KeyOf converts a host value (string or any integer type) into a Key
func KeyOf(v any) (Key, error) {
	switch t := v.(type) {
	case Key:
		return t, nil
	case string:
		return StringKey(t), nil
	case int:
		return IntKey(int64(t)), nil
	case int8:
		return IntKey(int64(t)), nil
	case int16:
		return IntKey(int64(t)), nil
	case int32:
		return IntKey(int64(t)), nil
	case int64:
		return IntKey(t), nil
	case uint8:
		return IntKey(int64(t)), nil
	case uint16:
		return IntKey(int64(t)), nil
	case uint32:
		return IntKey(int64(t)), nil
	case uint64:
		if t > 1<<63-1 {
			return Key{}, fmt.Errorf("%w: %d overflows int64", ErrInvalidKey, t)
		}
		return IntKey(int64(t)), nil
	case uint:
		if uint64(t) > 1<<63-1 {
			return Key{}, fmt.Errorf("%w: %d overflows int64", ErrInvalidKey, t)
		}
		return IntKey(int64(t)), nil
	case float64:
		// decoders hand us whole numbers as floats sometimes
		if t != float64(int64(t)) {
			return Key{}, fmt.Errorf("%w: %v is not a whole number", ErrInvalidKey, t)
		}
		return IntKey(int64(t)), nil
	default:
		return Key{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidKey, v)
	}
}

// Kind returns the key kind, or 0 for the zero Key
func (k Key) Kind() KeyKind { return k.kind }

// IsZero reports whether the key was never set
func (k Key) IsZero() bool { return k.kind == 0 }

// Str returns the string payload
func (k Key) Str() string { return k.s }

// Int returns the integer payload
func (k Key) Int() int64 { return k.i }

// Value returns the key as the host would have written it
func (k Key) Value() any {
	switch k.kind {
	case KeyString:
		return k.s
	case KeyInt:
		return k.i
	}
	return nil
}

func (k Key) String() string {
	switch k.kind {
	case KeyString:
		return k.s
	case KeyInt:
		return strconv.FormatInt(k.i, 10)
	}
	return "<none>"
}

// OptionRecord is a single selectable entry supplied by the host
type OptionRecord struct {
	Label      string
	Value      Key
	Disabled   bool
	Decoration any // opaque to the engine, passed through to the view
}

// Mode is the selection mode of a dropdown
type Mode int

const (
	Single Mode = iota
	Multiple
)

func (m Mode) String() string {
	if m == Multiple {
		return "multiple"
	}
	return "single"
}

// ParseMode converts "single"/"multiple" into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single":
		return Single, nil
	case "multiple", "multi":
		return Multiple, nil
	}
	return Single, fmt.Errorf("unknown selection mode %q", s)
}

// Selection is the current value of a dropdown: either a single optional key
// or an ordered set of keys. The zero value is Single with nothing selected.
type Selection struct {
	mode Mode
	key  Key
	keys []Key
}

// NoneSelected returns an empty single selection
func NoneSelected() Selection {
	return Selection{mode: Single}
}

// NewSingle returns a single selection holding key
func NewSingle(key Key) Selection {
	return Selection{mode: Single, key: key}
}

// NewMultiple returns a multiple selection holding keys in the given order.
// Repeated keys are kept once, at their first position.
func NewMultiple(keys ...Key) Selection {
	s := Selection{mode: Multiple, keys: make([]Key, 0, len(keys))}
	for _, k := range keys {
		if k.IsZero() || s.Contains(k) {
			continue
		}
		s.keys = append(s.keys, k)
	}
	return s
}

// EmptySelection returns the empty selection for mode
func EmptySelection(mode Mode) Selection {
	if mode == Multiple {
		return NewMultiple()
	}
	return NoneSelected()
}

// Mode returns the selection mode
func (s Selection) Mode() Mode { return s.mode }

// Key returns the selected key in Single mode
func (s Selection) Key() (Key, bool) {
	if s.mode != Single || s.key.IsZero() {
		return Key{}, false
	}
	return s.key, true
}

// Keys returns the selected keys. Single mode yields zero or one key.
func (s Selection) Keys() []Key {
	if s.mode == Single {
		if s.key.IsZero() {
			return nil
		}
		return []Key{s.key}
	}
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of selected keys
func (s Selection) Len() int {
	if s.mode == Single {
		if s.key.IsZero() {
			return 0
		}
		return 1
	}
	return len(s.keys)
}

// IsEmpty reports whether nothing is selected
func (s Selection) IsEmpty() bool { return s.Len() == 0 }

// Contains checks whether key is selected
func (s Selection) Contains(key Key) bool {
	if s.mode == Single {
		return !key.IsZero() && s.key == key
	}
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Equal compares mode, keys and key order
func (s Selection) Equal(o Selection) bool {
	if s.mode != o.mode {
		return false
	}
	if s.mode == Single {
		return s.key == o.key
	}
	if len(s.keys) != len(o.keys) {
		return false
	}
	for i := range s.keys {
		if s.keys[i] != o.keys[i] {
			return false
		}
	}
	return true
}

// With returns a copy with key appended (Multiple) or replacing the scalar (Single)
func (s Selection) With(key Key) Selection {
	if s.mode == Single {
		return NewSingle(key)
	}
	if s.Contains(key) {
		return s
	}
	keys := make([]Key, len(s.keys), len(s.keys)+1)
	copy(keys, s.keys)
	return Selection{mode: Multiple, keys: append(keys, key)}
}

// Without returns a copy with key removed
func (s Selection) Without(key Key) Selection {
	if s.mode == Single {
		if s.key == key {
			return NoneSelected()
		}
		return s
	}
	keys := make([]Key, 0, len(s.keys))
	for _, k := range s.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	return Selection{mode: Multiple, keys: keys}
}

// As converts the selection to mode. Going from Multiple to Single keeps the
// first key.
func (s Selection) As(mode Mode) Selection {
	if s.mode == mode {
		return s
	}
	if mode == Multiple {
		if s.key.IsZero() {
			return NewMultiple()
		}
		return NewMultiple(s.key)
	}
	if len(s.keys) == 0 {
		return NoneSelected()
	}
	return NewSingle(s.keys[0])
}

func (s Selection) String() string {
	if s.mode == Single {
		return fmt.Sprintf("single(%s)", s.key)
	}
	return fmt.Sprintf("multiple(%v)", s.keys)
}
