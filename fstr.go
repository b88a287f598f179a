package fstr

import (
	"errors"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling. Detail is attached by
// wrapping, so errors.Is works on every formatting failure.
var (
	ErrUnmatchedOpen   = errors.New("unmatched '{' in format")
	ErrUnmatchedClose  = errors.New("unmatched '}' in format")
	ErrIndexOutOfRange = errors.New("argument index is out of range in format")
	ErrNumberTooBig    = errors.New("number is too big in format")
	ErrBadSpec         = errors.New("invalid format specifier")
	ErrUnknownCode     = errors.New("unknown format code")
	ErrFinalized       = errors.New("session already rendered")
)

// Session is one formatting call: a template, the ordered arguments
// inserted so far, and the output buffer. Sessions are single-use and not
// safe for concurrent use.
//
// Rendering runs exactly once, on the first call to [Session.Text],
// [Session.Bytes], or [Session.Flush]. Inserted arguments may reference
// caller-owned storage; that storage only needs to outlive the first
// finalizing call. However the *Session is passed around, the finalizer
// cannot fire twice: later calls return the cached result or error.
type Session struct {
	tmpl string
	args argList
	buf  Buffer
	out  io.Writer // written on finalize when non-nil
	done bool
	err  error
}

// Begin starts a formatting call for tmpl. Nothing is rendered until the
// session is finalized.
func Begin(tmpl string) *Session {
	return &Session{tmpl: tmpl}
}

// Fprint starts a formatting call whose rendered bytes are written to w
// when the session is finalized.
func Fprint(w io.Writer, tmpl string) *Session {
	return &Session{tmpl: tmpl, out: w}
}

// Print starts a formatting call whose rendered bytes are written to
// standard output when the session is finalized.
func Print(tmpl string) *Session {
	return Fprint(os.Stdout, tmpl)
}

// Insert appends one argument. The argument's position in insertion
// order is the index referenced by {n} placeholders. Insert returns the
// session so calls chain:
//
//	s, err := fstr.Begin("{0} is {1:.3}").Insert(fstr.Str("pi")).Insert(fstr.Float(3.14159)).Text()
//
// Inserting after the session has rendered is an error reported by the
// finalizing methods.
func (s *Session) Insert(a Arg) *Session {
	if s.done {
		if s.err == nil {
			s.err = ErrFinalized
		}
		return s
	}
	s.args.add(a)
	return s
}

// finalize renders once. Every later call observes the first outcome.
func (s *Session) finalize() error {
	if s.done {
		return s.err
	}
	s.done = true
	s.err = render(s.tmpl, &s.args, &s.buf)
	if s.err == nil && s.out != nil {
		_, s.err = s.out.Write(s.buf.Bytes())
	}
	return s.err
}

// Text finalizes the session and returns the rendered string. On error
// the string is empty; a call never yields both output and an error.
func (s *Session) Text() (string, error) {
	if err := s.finalize(); err != nil {
		return "", err
	}
	return s.buf.String(), nil
}

// Bytes finalizes the session and returns the rendered bytes. The slice
// borrows the session's internal buffer and must not be retained past
// the session's lifetime or mutated.
func (s *Session) Bytes() ([]byte, error) {
	if err := s.finalize(); err != nil {
		return nil, err
	}
	return s.buf.Bytes(), nil
}

// Flush finalizes the session, reporting the rendering (and, for [Print]
// and [Fprint] sessions, write) outcome.
func (s *Session) Flush() error {
	return s.finalize()
}

// Format renders tmpl with args in one call.
func Format(tmpl string, args ...Arg) (string, error) {
	s := Begin(tmpl)
	for _, a := range args {
		s.Insert(a)
	}
	return s.Text()
}
