package namelist

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindTuple
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is a parsed namelist value: a scalar, a parenthesized tuple of
// scalars, or a sequence of values produced by a multi-token right-hand side.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
}

func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func Int(i int64) Value      { return Value{kind: KindInt, i: i} }
func Float(f float64) Value  { return Value{kind: KindFloat, f: f} }
func String(s string) Value  { return Value{kind: KindString, s: s} }
func Tuple(v ...Value) Value { return Value{kind: KindTuple, items: v} }

// Sequence wraps several values. Callers building a value from tokens should
// go through Tokenize, which leaves a single value unwrapped.
func Sequence(v ...Value) Value { return Value{kind: KindSequence, items: v} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsFloat returns the numeric value of an int or float.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Items returns the elements of a tuple or sequence, nil otherwise.
func (v Value) Items() []Value {
	if v.kind != KindTuple && v.kind != KindSequence {
		return nil
	}
	return v.items
}

func (v Value) Len() int { return len(v.Items()) }

// number returns the numeric value of a bool, int or float; T counts as 1.
func (v Value) number() (float64, bool) {
	if v.kind == KindBool {
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return v.AsFloat()
}

// Equal reports whether two values are the same. Bools, ints and floats
// compare by numeric value; tuples never equal sequences.
func (v Value) Equal(o Value) bool {
	if a, ok := v.number(); ok {
		b, ok := o.number()
		return ok && a == b
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindTuple, KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "T"
		}
		return "F"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case KindString:
		return "'" + v.s + "'"
	case KindTuple:
		return "(" + joinValues(v.items) + ")"
	case KindSequence:
		return "[" + joinValues(v.items) + "]"
	}
	return "<invalid>"
}

func joinValues(items []Value) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

// Interface converts the value to plain Go types: bool, int64, float64,
// string, or []any for tuples and sequences.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	}
	out := make([]any, len(v.items))
	for i, it := range v.items {
		out[i] = it.Interface()
	}
	return out
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) MarshalYAML() (any, error) {
	if v.kind != KindTuple {
		return v.Interface(), nil
	}
	// tuples render in flow style: [a, b]
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, it := range v.items {
		var child yaml.Node
		if err := child.Encode(it.Interface()); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &child)
	}
	return n, nil
}
