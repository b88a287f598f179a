package fstr

import (
	"fmt"
	"math/big"
	"unsafe"
)

// Kind identifies the dynamic type of a captured [Arg].
type Kind int

// Argument kinds. Numeric kinds come first so the range checks in the
// parser stay cheap.
const (
	KindInt Kind = iota
	KindUint
	KindInt64
	KindUint64
	KindFloat
	KindBigFloat
	KindChar
	KindString
	KindPointer
	KindObject
)

const lastNumericKind = KindBigFloat

func (k Kind) numeric() bool  { return k <= lastNumericKind }
func (k Kind) unsigned() bool { return k == KindUint || k == KindUint64 }
func (k Kind) floating() bool { return k == KindFloat || k == KindBigFloat }

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt, KindUint, KindInt64, KindUint64:
		return "integer"
	case KindFloat, KindBigFloat:
		return "double"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindPointer:
		return "pointer"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// RenderFunc appends the textual form of v to buf. Implementations may
// ignore width; the engine pads the produced text with trailing spaces
// when it is shorter than the requested width.
type RenderFunc func(buf *Buffer, v any, width int)

// Arg is one captured formatting argument: a value tagged with its kind.
// Args are built only through the typed constructors ([Int], [Str], ...),
// which is what keeps a formatting call type-safe end to end. An Arg is
// immutable once captured.
//
// Captured values may reference caller-owned storage ([Str], [Bytes],
// [Obj]); that storage must stay valid until the session renders.
type Arg struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	bf   *big.Float
	s    string
	b    []byte
	obj  any
	fn   RenderFunc
}

// Kind returns the dynamic kind of the argument.
func (a Arg) Kind() Kind { return a.kind }

// Int captures a signed integer.
func Int(v int) Arg { return Arg{kind: KindInt, i: int64(v)} }

// Uint captures an unsigned integer.
func Uint(v uint) Arg { return Arg{kind: KindUint, u: uint64(v)} }

// Int64 captures a wide signed integer.
func Int64(v int64) Arg { return Arg{kind: KindInt64, i: v} }

// Uint64 captures a wide unsigned integer.
func Uint64(v uint64) Arg { return Arg{kind: KindUint64, u: v} }

// Float captures a floating-point value.
func Float(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// BigFloat captures an extended-precision floating-point value. The
// *big.Float must stay valid until the session renders.
func BigFloat(v *big.Float) Arg { return Arg{kind: KindBigFloat, bf: v} }

// Char captures a single byte character. There is no rune constructor:
// multi-byte characters must be converted to an integer kind explicitly,
// so the choice of representation is always the caller's.
func Char(c byte) Arg { return Arg{kind: KindChar, u: uint64(c)} }

// Str captures a string.
func Str(s string) Arg { return Arg{kind: KindString, s: s} }

// Bytes captures a byte slice as text. A slice with zero length but
// non-zero capacity is treated as NUL-terminated: the rendered length is
// found by scanning the backing array for the first zero byte.
func Bytes(b []byte) Arg { return Arg{kind: KindString, b: b} }

// Ptr captures a pointer for formatting. Arbitrary pointers are never
// captured implicitly; converting to unsafe.Pointer at the call site is
// the deliberate opt-in.
func Ptr(p unsafe.Pointer) Arg { return Arg{kind: KindPointer, u: uint64(uintptr(p))} }

// Obj captures a value of any type, rendered with its default textual
// form (fmt.Sprint) at format time.
func Obj(v any) Arg { return ObjWith(v, renderSprint) }

// ObjWith captures a value together with the function that renders it.
func ObjWith(v any, fn RenderFunc) Arg { return Arg{kind: KindObject, obj: v, fn: fn} }

func renderSprint(buf *Buffer, v any, _ int) {
	fmt.Fprint(buf, v)
}

// numInlineArgs is how many arguments a session stores before spilling
// to the heap.
const numInlineArgs = 10

// argList holds the ordered arguments of one session. The first
// numInlineArgs entries live inline; append moves the list to the heap
// transparently once they are exhausted. Purely a small-size
// optimization, not required for correctness.
type argList struct {
	args   []Arg
	inline [numInlineArgs]Arg
}

func (l *argList) add(a Arg) {
	if l.args == nil {
		l.args = l.inline[:0]
	}
	l.args = append(l.args, a)
}

func (l *argList) len() int { return len(l.args) }

func (l *argList) at(i int) *Arg { return &l.args[i] }
