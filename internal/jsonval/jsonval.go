// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package jsonval implements a small in-memory JSON-like document.
//
// Documents are built by hand from the constructors in this package. There is
// no parser. Lookups never fail loudly: looking up a missing field or index
// yields a value of kind [Error], and the typed accessors return
// [opt.Option] values that are empty when the kind does not match.
package jsonval

import (
	"fmt"
	"slices"
	"strings"

	"go.astrophena.name/optthrow/opt"
)

// Kind is the variant of a [Value].
type Kind int

// Value kinds.
const (
	Error Kind = iota // result of a failed lookup; the zero Value
	Null
	Number
	String
	Boolean
	Object
	Array
)

var kindNames = [...]string{
	Error:   "error",
	Null:    "null",
	Number:  "number",
	String:  "string",
	Boolean: "boolean",
	Object:  "object",
	Array:   "array",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a node of a document. The zero Value has kind [Error].
type Value struct {
	kind   Kind
	num    float64
	str    string
	b      bool
	fields map[string]Value
	elems  []Value
}

// NewNull returns a null value.
func NewNull() Value { return Value{kind: Null} }

// NewNumber returns a number value.
func NewNumber(n float64) Value { return Value{kind: Number, num: n} }

// NewString returns a string value.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewBool returns a boolean value.
func NewBool(b bool) Value { return Value{kind: Boolean, b: b} }

// NewObject returns an object value. The map is not copied.
func NewObject(fields map[string]Value) Value { return Value{kind: Object, fields: fields} }

// NewArray returns an array value. The slice is not copied.
func NewArray(elems ...Value) Value { return Value{kind: Array, elems: elems} }

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Field returns the value stored under name. It returns an [Error] value if v
// is not an object or has no such field.
func (v Value) Field(name string) Value {
	if v.kind != Object {
		return Value{}
	}
	return v.fields[name]
}

// Index returns the i-th element. It returns an [Error] value if v is not an
// array or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.elems) {
		return Value{}
	}
	return v.elems[i]
}

// Float returns the number held by v.
func (v Value) Float() opt.Option[float64] {
	return opt.FromOk(v.num, v.kind == Number)
}

// Int returns the number held by v, truncated toward zero.
func (v Value) Int() opt.Option[int] {
	return opt.Map(v.Float(), func(f float64) int { return int(f) })
}

// Str returns the string held by v.
func (v Value) Str() opt.Option[string] {
	return opt.FromOk(v.str, v.kind == String)
}

// Bool returns the boolean held by v.
func (v Value) Bool() opt.Option[bool] {
	return opt.FromOk(v.b, v.kind == Boolean)
}

// Null reports presence if v is null.
func (v Value) Null() opt.Option[struct{}] {
	return opt.FromOk(struct{}{}, v.kind == Null)
}

// String returns a JSON-like rendering of v, for debugging. Object keys are
// sorted.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Number:
		fmt.Fprintf(sb, "%g", v.num)
	case String:
		fmt.Fprintf(sb, "%q", v.str)
	case Boolean:
		fmt.Fprintf(sb, "%t", v.b)
	case Object:
		keys := make([]string, 0, len(v.fields))
		for k := range v.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%q:", k)
			v.fields[k].write(sb)
		}
		sb.WriteByte('}')
	case Array:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.write(sb)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<error>")
	}
}
