package fstr

import (
	"fmt"
	"math"
)

// Format spec flags.
const (
	flagPlus = 1 << iota
	flagZero
	flagHexPrefix
)

// disambiguate picks the final diagnostic for an error found inside a
// placeholder. If the rest of the template contains the balancing '}' for
// the open placeholder, the specific error stands; otherwise the template
// is missing the closing brace and unmatched '{' takes precedence. Runs
// only on the error path.
func disambiguate(rest string, err error) error {
	depth := 1
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return err
			}
		}
	}
	return ErrUnmatchedOpen
}

// parseUint parses an unsigned decimal starting at t[s], which must be a
// digit. It returns the value and the position after the last digit.
// Values that do not fit a signed int are rejected.
func parseUint(t string, s int) (int, int, error) {
	v := 0
	for s < len(t) && '0' <= t[s] && t[s] <= '9' {
		d := int(t[s] - '0')
		if v > (math.MaxInt-d)/10 {
			return 0, s, ErrNumberTooBig
		}
		v = v*10 + d
		s++
	}
	return v, s, nil
}

// render scans the template, resolving each placeholder against args and
// appending output to buf. It stops at the first error; buffer content is
// then unspecified.
func render(tmpl string, args *argList, buf *Buffer) error {
	s := 0
	start := 0 // beginning of the pending literal run
	for s < len(tmpl) {
		c := tmpl[s]
		s++
		if c != '{' && c != '}' {
			continue
		}
		if s < len(tmpl) && tmpl[s] == c {
			// Doubled brace: flush through the first of the pair,
			// skip the second.
			buf.WriteString(tmpl[start:s])
			s++
			start = s
			continue
		}
		if c == '}' {
			return ErrUnmatchedClose
		}
		buf.WriteString(tmpl[start : s-1])

		// Argument index.
		if s >= len(tmpl) || tmpl[s] < '0' || tmpl[s] > '9' {
			return disambiguate(tmpl[s:], fmt.Errorf("%w: missing argument index", ErrBadSpec))
		}
		index, next, err := parseUint(tmpl, s)
		if err != nil {
			return disambiguate(tmpl[next:], err)
		}
		s = next
		if index >= args.len() {
			return disambiguate(tmpl[s:], ErrIndexOutOfRange)
		}
		arg := args.at(index)

		flags := 0
		width := 0
		prec := -1
		var typ byte
		if s < len(tmpl) && tmpl[s] == ':' {
			s++
			if s < len(tmpl) && tmpl[s] == '+' {
				s++
				if !arg.kind.numeric() {
					return disambiguate(tmpl[s:], fmt.Errorf("%w: '+' requires numeric argument", ErrBadSpec))
				}
				if arg.kind.unsigned() {
					return disambiguate(tmpl[s:], fmt.Errorf("%w: '+' requires signed argument", ErrBadSpec))
				}
				flags |= flagPlus
			}
			if s < len(tmpl) && tmpl[s] == '0' {
				s++
				if !arg.kind.numeric() {
					return disambiguate(tmpl[s:], fmt.Errorf("%w: '0' requires numeric argument", ErrBadSpec))
				}
				flags |= flagZero
			}

			if s < len(tmpl) && '0' <= tmpl[s] && tmpl[s] <= '9' {
				width, next, err = parseUint(tmpl, s)
				if err != nil {
					return disambiguate(tmpl[next:], err)
				}
				s = next
			}

			if s < len(tmpl) && tmpl[s] == '.' {
				s++
				if s >= len(tmpl) || tmpl[s] < '0' || tmpl[s] > '9' {
					return disambiguate(tmpl[s:], fmt.Errorf("%w: missing precision", ErrBadSpec))
				}
				prec, next, err = parseUint(tmpl, s)
				if err != nil {
					return disambiguate(tmpl[next:], err)
				}
				s = next
				if !arg.kind.floating() {
					return disambiguate(tmpl[s:], fmt.Errorf("%w: precision specifier requires floating-point argument", ErrBadSpec))
				}
			}

			if s < len(tmpl) && tmpl[s] != '}' {
				typ = tmpl[s]
				s++
			}
		}

		if s >= len(tmpl) || tmpl[s] != '}' {
			return ErrUnmatchedOpen
		}
		s++
		start = s

		if err := renderArg(buf, arg, flags, width, prec, typ); err != nil {
			return err
		}
	}
	buf.WriteString(tmpl[start:])
	return nil
}
