package fstr

// inlineBufferSize is the number of bytes a Buffer holds without touching
// the heap. Small rendered strings never allocate.
const inlineBufferSize = 500

// Buffer is a growable byte buffer with an inline first segment. The zero
// value is ready to use. A Buffer must not be copied after first use.
//
// Newly exposed bytes from [Buffer.Resize] or [Buffer.Grow] are not zeroed;
// callers must write them before reading. Any growth invalidates slices
// previously obtained from [Buffer.Bytes] or [Buffer.Grow].
type Buffer struct {
	buf    []byte
	inline [inlineBufferSize]byte
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int {
	if b.buf == nil {
		return inlineBufferSize
	}
	return cap(b.buf)
}

// lazyInit points buf at the inline segment so the zero value works
// without a constructor.
func (b *Buffer) lazyInit() {
	if b.buf == nil {
		b.buf = b.inline[:0]
	}
}

// grow reallocates so that capacity is at least need, preserving content.
// Growth is geometric: the new capacity is the larger of need and
// cap + cap/2.
func (b *Buffer) grow(need int) {
	c := cap(b.buf)
	if need < c+c/2 {
		need = c + c/2
	}
	nb := make([]byte, len(b.buf), need)
	copy(nb, b.buf)
	b.buf = nb
}

// Reserve ensures capacity for at least n bytes total. It never shrinks.
func (b *Buffer) Reserve(n int) {
	b.lazyInit()
	if n > cap(b.buf) {
		b.grow(n)
	}
}

// Resize sets the logical length to n, growing storage if needed. Bytes
// exposed by an extension are uninitialized.
func (b *Buffer) Resize(n int) {
	b.lazyInit()
	if n > cap(b.buf) {
		b.grow(n)
	}
	b.buf = b.buf[:n]
}

// Truncate discards all but the first n bytes. It panics if n exceeds the
// current length.
func (b *Buffer) Truncate(n int) {
	b.buf = b.buf[:n]
}

// Grow extends the buffer by n bytes and returns the newly exposed span.
// The span is only valid until the next growth.
func (b *Buffer) Grow(n int) []byte {
	l := b.Len()
	b.Resize(l + n)
	return b.buf[l:]
}

// Write appends p. It implements [io.Writer] and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	copy(b.Grow(len(p)), p)
	return len(p), nil
}

// WriteString appends s.
func (b *Buffer) WriteString(s string) {
	copy(b.Grow(len(s)), s)
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.Grow(1)[0] = c
	return nil
}

// Bytes returns the written bytes. The slice aliases the buffer's storage
// and is invalidated by further writes.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the written bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }
