// Package enu implements declarative enumerated types: named, ordered options
// with unique integer values, exposed both as an ordered lookup table and as
// individually addressable accessors. Enums are declared once during program
// initialization and read-only afterwards; downstream consumers (persistence
// layers, client-side export tooling) only ever see the finished mapping.
package enu

import (
	"fmt"
	"iter"
	"math"
	"sync"
)

// Option is one (key, value) pair belonging to an enum. Options are created
// during declaration and immutable thereafter.
type Option struct {
	Key   string
	Value int
}

// valueSuffix is appended to an option key to form its value-accessor key,
// e.g. "draft" registers the accessors "draft" and "draft_value".
const valueSuffix = "_value"

// reservedNames are identifiers that cannot be used as option keys because
// they collide with operations exposed by the enum itself.
var reservedNames = map[string]struct{}{
	"name":         {},
	"option":       {},
	"option_value": {},
	"options":      {},
	"options_map":  {},
	"keys":         {},
	"values":       {},
	"default":      {},
	"contains":     {},
	"pairs":        {},
	"each":         {},
	"all":          {},
	"derive":       {},
	"get":          {},
	"key":          {},
	"value":        {},
	"len":          {},
}

// Enum is the type-level descriptor of one enumerated type. It owns the
// ordered key→value mapping and the accessor table generated per option.
// Declaration (Option, OptionValue) is serialized per enum; every read
// operation returns a view that cannot mutate internal state.
type Enum struct {
	mu        sync.RWMutex
	name      string
	opts      Options
	byKey     map[string]int // key -> index into opts
	byValue   map[int]string
	accessors map[string]func() any
}

// New creates an empty enum descriptor with the given type name, e.g.
// "post_status". Options are added afterwards with Option or OptionValue.
func New(name string) *Enum {
	return &Enum{
		name:      name,
		byKey:     map[string]int{},
		byValue:   map[int]string{},
		accessors: map[string]func() any{},
	}
}

// Name returns the enum's type name.
func (e *Enum) Name() string {
	return e.name
}

// Option declares a new option. With no explicit value the option is
// auto-assigned max(existing values)+1, or 0 for the first option. At most
// one explicit value may be supplied.
//
// Fails with ErrDuplicateName, ErrReservedName or ErrDuplicateValue; the
// enum is left unchanged on failure.
func (e *Enum) Option(key string, value ...int) error {
	if len(value) > 1 {
		return fmt.Errorf("enu: %s: option %q: at most one explicit value allowed, got %d", e.name, key, len(value))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkKey(key); err != nil {
		return err
	}

	// Resolve the value before the duplicate check so an explicit value
	// colliding with an auto-incrementable slot still fails loudly.
	v := e.nextValue()
	if len(value) == 1 {
		v = value[0]
	}
	if prev, ok := e.byValue[v]; ok {
		return fmt.Errorf("enu: %s: option %q: value %d already taken by %q: %w", e.name, key, v, prev, ErrDuplicateValue)
	}

	e.insert(key, v)
	return nil
}

// OptionValue declares a new option from an untyped value, as produced by
// YAML/JSON declaration files. A nil value means auto-assignment; any integer
// kind (and integral floats, which is how JSON decodes numbers) is accepted;
// everything else fails with ErrInvalidValue.
func (e *Enum) OptionValue(key string, value any) error {
	if value == nil {
		return e.Option(key)
	}
	v, err := intValue(value)
	if err != nil {
		return fmt.Errorf("enu: %s: option %q: %w", e.name, key, err)
	}
	return e.Option(key, v)
}

// checkKey validates a candidate option key against the current mapping and
// the accessor namespace. Caller holds the write lock.
func (e *Enum) checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("enu: %s: empty option name: %w", e.name, ErrReservedName)
	}
	if _, ok := e.byKey[key]; ok {
		return fmt.Errorf("enu: %s: option %q: %w", e.name, key, ErrDuplicateName)
	}
	if _, ok := reservedNames[key]; ok {
		return fmt.Errorf("enu: %s: option %q: %w", e.name, key, ErrReservedName)
	}
	// The new option registers two accessor keys; both must be free.
	for _, candidate := range []string{key, key + valueSuffix} {
		if _, ok := e.accessors[candidate]; ok {
			return fmt.Errorf("enu: %s: option %q: accessor %q already defined: %w", e.name, key, candidate, ErrReservedName)
		}
	}
	return nil
}

// nextValue implements the auto-increment policy: 0 for an empty mapping,
// max(existing values)+1 otherwise. Inherited values count toward the max.
// Caller holds the write lock.
func (e *Enum) nextValue() int {
	if len(e.opts) == 0 {
		return 0
	}
	next := math.MinInt
	for _, o := range e.opts {
		if o.Value >= next {
			next = o.Value + 1
		}
	}
	return next
}

// insert appends the option and registers its accessor pair. Caller holds
// the write lock and has validated key and value.
func (e *Enum) insert(key string, value int) {
	e.byKey[key] = len(e.opts)
	e.byValue[value] = key
	e.opts = append(e.opts, Option{Key: key, Value: value})
	e.accessors[key] = func() any { return key }
	e.accessors[key+valueSuffix] = func() any { return value }
}

// Options returns the full ordered mapping as an independent copy; mutating
// the returned slice never affects the enum.
func (e *Enum) Options() Options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(Options, len(e.opts))
	copy(out, e.opts)
	return out
}

// OptionsMap returns a key→value copy of the mapping. Use Options when
// declaration order matters.
func (e *Enum) OptionsMap() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]int, len(e.opts))
	for _, o := range e.opts {
		out[o.Key] = o.Value
	}
	return out
}

// Keys returns the option keys in declaration order.
func (e *Enum) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.opts))
	for i, o := range e.opts {
		out[i] = o.Key
	}
	return out
}

// Values returns the integer codes in declaration order, positionally
// matching Keys.
func (e *Enum) Values() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]int, len(e.opts))
	for i, o := range e.opts {
		out[i] = o.Value
	}
	return out
}

// Contains reports whether key is declared on this enum.
func (e *Enum) Contains(key string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.byKey[key]
	return ok
}

// Len returns the number of declared options.
func (e *Enum) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.opts)
}

// Default returns the first-declared option key. Fails with ErrEmptyEnum
// when no option has been declared yet.
func (e *Enum) Default() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.opts) == 0 {
		return "", fmt.Errorf("enu: %s: %w", e.name, ErrEmptyEnum)
	}
	return e.opts[0].Key, nil
}

// Get invokes the accessor registered under name: for a declared option
// "draft" the accessor "draft" yields the string "draft" and "draft_value"
// yields its integer code. The second result reports whether the accessor
// exists.
func (e *Enum) Get(name string) (any, bool) {
	e.mu.RLock()
	fn, ok := e.accessors[name]
	e.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Key is the typed form of the name accessor: it returns key itself when the
// option is declared.
func (e *Enum) Key(key string) (string, bool) {
	if e.Contains(key) {
		return key, true
	}
	return "", false
}

// Value is the typed form of the value accessor.
func (e *Enum) Value(key string) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	idx, ok := e.byKey[key]
	if !ok {
		return 0, false
	}
	return e.opts[idx].Value, true
}

// Pairs returns a restartable iterator over (key, value) pairs in
// declaration order. The sequence is a snapshot taken when Pairs is called.
func (e *Enum) Pairs() iter.Seq2[string, int] {
	opts := e.Options()
	return func(yield func(string, int) bool) {
		for _, o := range opts {
			if !yield(o.Key, o.Value) {
				return
			}
		}
	}
}

// All returns a restartable iterator over (ordinal, option) pairs in
// declaration order. The ordinal is the declaration position, which is not
// necessarily the stored integer value once explicit values are mixed in.
func (e *Enum) All() iter.Seq2[int, Option] {
	opts := e.Options()
	return func(yield func(int, Option) bool) {
		for i, o := range opts {
			if !yield(i, o) {
				return
			}
		}
	}
}

// Derive creates a new enum seeded with an independent copy of this enum's
// current mapping. Parent and child evolve independently afterwards: options
// added to either never appear in the other. Deriving from an already
// derived enum copies its extended mapping.
func (e *Enum) Derive(name string) *Enum {
	e.mu.RLock()
	defer e.mu.RUnlock()

	d := New(name)
	for _, o := range e.opts {
		d.insert(o.Key, o.Value)
	}
	return d
}

// intValue coerces an untyped declaration value to int. Integral floats are
// accepted because encoding/json decodes every number as float64.
func intValue(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %T(%v)", ErrInvalidValue, value, value)
}
