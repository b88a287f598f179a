// Package fstr renders text from templates with positional placeholders
// and explicitly typed arguments.
//
// It is printf without the unchecked variadic call: arguments are
// captured through typed constructors ([Int], [Float], [Str], ...) and
// every placeholder is validated against the kind of the argument it
// references at format time. A formatting call either yields the full
// rendered text or fails with exactly one descriptive error.
//
// # Sessions
//
// A formatting call is a [Session]: open it with [Begin], insert
// arguments in placeholder-index order, and finalize with
// [Session.Text], [Session.Bytes], or [Session.Flush]. Rendering happens
// exactly once, on the first finalizing call:
//
//	s, err := fstr.Begin("{0}: {1:+05}").
//		Insert(fstr.Str("offset")).
//		Insert(fstr.Int(-3)).
//		Text()
//	// "offset: -0003"
//
// [Format] is the one-shot shorthand. [Print] and [Fprint] attach an
// output writer that receives the rendered bytes on finalization:
//
//	fstr.Print("done in {0:.2}s\n").Insert(fstr.Float(1.234)).Flush()
//
// # Template syntax
//
// A placeholder is {index} or {index:spec}, where index is the zero-based
// insertion position of the argument and spec is
//
//	['+'] ['0'] [width] ['.' precision] [type]
//
// '+' forces a sign on signed numeric arguments, '0' selects zero fill,
// width is a lower bound on the rendered length (including any sign and
// 0x prefix), and precision applies to floating-point arguments only.
// Type codes are d, x, X, o for integers, e, E, f, F, g, G for floats,
// c for chars, s for strings, and p for pointers. Literal braces are
// written doubled: "{{" renders "{" and "}}" renders "}".
//
// # Custom types
//
// [Obj] captures any value and renders it with fmt.Sprint. [ObjWith]
// binds a caller-supplied [RenderFunc] instead, which appends directly
// to the output [Buffer]:
//
//	fstr.Format("{0}", fstr.ObjWith(p, renderPoint))
//
// # Errors
//
// The package exports sentinel errors for programmatic handling; detail
// is attached by wrapping, so use errors.Is:
//
//   - [ErrUnmatchedOpen], [ErrUnmatchedClose] — brace without a partner
//   - [ErrIndexOutOfRange] — placeholder references a missing argument
//   - [ErrNumberTooBig] — index or width overflows
//   - [ErrBadSpec] — flag or precision invalid for the argument's kind
//   - [ErrUnknownCode] — type code invalid for the argument's kind
//   - [ErrFinalized] — argument inserted after rendering
package fstr
