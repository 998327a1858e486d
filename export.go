package enu

import (
	"bytes"
	"encoding/json"
)

// Options is the ordered key→value mapping of one enum, in declaration
// order. It is always handed out as an independent copy, so callers may not
// corrupt the registry through it.
type Options []Option

// Keys returns the option keys in declaration order.
func (o Options) Keys() []string {
	out := make([]string, len(o))
	for i, opt := range o {
		out[i] = opt.Key
	}
	return out
}

// Values returns the integer codes in declaration order.
func (o Options) Values() []int {
	out := make([]int, len(o))
	for i, opt := range o {
		out[i] = opt.Value
	}
	return out
}

// Lookup returns the value stored under key.
func (o Options) Lookup(key string) (int, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return 0, false
}

// MarshalJSON encodes the mapping as a JSON object with keys in declaration
// order, e.g. {"draft":0,"published":1}. This is the shape persistence-layer
// integrations consume.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the enum in its client export shape: a JSON object
// mapping each option key to itself, in declaration order, e.g.
// {"draft":"draft","published":"published"}. Build tooling injects this into
// client-side source files.
func (e *Enum) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range e.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(k)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
