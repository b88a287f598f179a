package fstr

import (
	"bytes"
	"fmt"
	"strconv"
)

func unknownCode(code byte, kind Kind) error {
	if r := rune(code); strconv.IsPrint(r) {
		return fmt.Errorf("%w '%c' for %s argument", ErrUnknownCode, r, kind)
	}
	return fmt.Errorf(`%w '\x%02x' for %s argument`, ErrUnknownCode, code, kind)
}

// renderArg dispatches one resolved placeholder to the kind-specific
// renderer. The spec flags have already been validated against the kind
// by the parser; only the type code remains to be checked here.
func renderArg(buf *Buffer, a *Arg, flags, width, prec int, typ byte) error {
	switch a.kind {
	case KindInt, KindInt64:
		return renderSigned(buf, a.i, flags, width, typ)
	case KindUint, KindUint64:
		return renderUnsigned(buf, a.u, 0, flags, width, typ)
	case KindFloat, KindBigFloat:
		return renderFloat(buf, a, flags, width, prec, typ)
	case KindChar:
		if typ != 0 && typ != 'c' {
			return unknownCode(typ, a.kind)
		}
		renderChar(buf, byte(a.u), width)
		return nil
	case KindString:
		if typ != 0 && typ != 's' {
			return unknownCode(typ, a.kind)
		}
		renderText(buf, a, width)
		return nil
	case KindPointer:
		if typ != 0 && typ != 'p' {
			return unknownCode(typ, a.kind)
		}
		// Pointers are the bit pattern through the integer path,
		// prefix forced on, lowercase digits.
		return renderUnsigned(buf, a.u, 0, flagHexPrefix, width, 'x')
	case KindObject:
		if typ != 0 {
			return unknownCode(typ, a.kind)
		}
		renderCustom(buf, a, width)
		return nil
	}
	return fmt.Errorf("%w: unsupported argument kind %d", ErrBadSpec, a.kind)
}

// renderSigned applies sign-and-magnitude for decimal output. Hex and
// octal render the two's-complement bit pattern with no sign.
func renderSigned(buf *Buffer, v int64, flags, width int, typ byte) error {
	if typ != 0 && typ != 'd' {
		return renderUnsigned(buf, uint64(v), 0, flags, width, typ)
	}
	var sign byte
	u := uint64(v)
	if v < 0 {
		sign = '-'
		u = -u
	} else if flags&flagPlus != 0 {
		sign = '+'
	}
	return renderUnsigned(buf, u, sign, flags, width, typ)
}

// renderUnsigned writes an integer right-to-left into a span reserved for
// max(width, natural size). The natural size counts the sign and the
// 0x/0X prefix, so width is a lower bound on total rendered length.
func renderUnsigned(buf *Buffer, n uint64, sign byte, flags, width int, typ byte) error {
	digits := "0123456789abcdef"
	var base uint64
	prefix := false
	switch typ {
	case 0, 'd':
		base = 10
	case 'x', 'X':
		base = 16
		prefix = flags&flagHexPrefix != 0
		if typ == 'X' {
			digits = "0123456789ABCDEF"
		}
	case 'o':
		base = 8
	default:
		return unknownCode(typ, KindInt)
	}

	size := 0
	if sign != 0 {
		size++
	}
	if prefix {
		size += 2
	}
	for v := n; ; {
		size++
		if v /= base; v == 0 {
			break
		}
	}
	if width < size {
		width = size
	}

	span := buf.Grow(width)
	p := width - 1
	for v := n; ; {
		span[p] = digits[v%base]
		p--
		if v /= base; v == 0 {
			break
		}
	}
	if prefix {
		span[p] = typ
		p--
		span[p] = '0'
		p--
	}
	left := 0
	fill := byte(' ')
	if flags&flagZero != 0 {
		fill = '0'
	}
	if sign != 0 {
		if flags&flagZero != 0 {
			// Sign takes the first column, zeros follow it.
			span[0] = sign
			left = 1
		} else {
			span[p] = sign
			p--
		}
	}
	for i := left; i <= p; i++ {
		span[i] = fill
	}
	return nil
}

// renderFloat delegates text conversion to the strconv/math-big
// converters, then applies sign and width by shifting in place.
func renderFloat(buf *Buffer, a *Arg, flags, width, prec int, typ byte) error {
	switch typ {
	case 0:
		typ = 'g'
	case 'e', 'E', 'f', 'g', 'G':
	case 'F':
		typ = 'f'
	default:
		return unknownCode(typ, a.kind)
	}

	start := buf.Len()
	buf.lazyInit()
	if a.kind == KindBigFloat {
		buf.buf = a.bf.Append(buf.buf, typ, prec)
	} else {
		buf.buf = strconv.AppendFloat(buf.buf, a.f, typ, prec, 64)
	}
	// strconv already signs infinities, so only add '+' when the
	// converter produced an unsigned form.
	if c := buf.buf[start]; flags&flagPlus != 0 && c != '-' && c != '+' {
		buf.Grow(1)
		copy(buf.buf[start+1:], buf.buf[start:buf.Len()-1])
		buf.buf[start] = '+'
	}
	padNumericLeft(buf, start, width, flags&flagZero != 0)
	return nil
}

// padNumericLeft right-justifies the bytes written since start to width.
// With zero fill a leading sign stays in the first column and zeros
// follow it; with space fill the padding precedes the sign.
func padNumericLeft(buf *Buffer, start, width int, zero bool) {
	n := buf.Len() - start
	if n >= width {
		return
	}
	pad := width - n
	buf.Grow(pad)
	b := buf.buf
	copy(b[start+pad:], b[start:start+n])
	fill := byte(' ')
	lo := start
	if zero {
		fill = '0'
		if c := b[start+pad]; c == '-' || c == '+' {
			b[start] = c
			b[start+pad] = '0'
			lo = start + 1
		}
	}
	for i := lo; i < start+pad; i++ {
		b[i] = fill
	}
}

func renderChar(buf *Buffer, c byte, width int) {
	if width < 1 {
		width = 1
	}
	span := buf.Grow(width)
	span[0] = c
	for i := 1; i < width; i++ {
		span[i] = ' '
	}
}

// renderText writes the text then trailing spaces up to width. A byte
// slice with zero length but spare capacity is NUL-terminated data: the
// length is found by scanning the backing array.
func renderText(buf *Buffer, a *Arg, width int) {
	if a.b == nil {
		n := len(a.s)
		if width < n {
			width = n
		}
		span := buf.Grow(width)
		copy(span, a.s)
		for i := n; i < width; i++ {
			span[i] = ' '
		}
		return
	}
	data := a.b
	if len(data) == 0 && cap(data) > 0 {
		full := data[:cap(data)]
		if i := bytes.IndexByte(full, 0); i >= 0 {
			data = full[:i]
		} else {
			data = full
		}
	}
	n := len(data)
	if width < n {
		width = n
	}
	span := buf.Grow(width)
	copy(span, data)
	for i := n; i < width; i++ {
		span[i] = ' '
	}
}

// renderCustom invokes the bound callback, then pads its output with
// trailing spaces like text when it came up short of width.
func renderCustom(buf *Buffer, a *Arg, width int) {
	start := buf.Len()
	a.fn(buf, a.obj, width)
	if n := buf.Len() - start; n < width {
		span := buf.Grow(width - n)
		for i := range span {
			span[i] = ' '
		}
	}
}
