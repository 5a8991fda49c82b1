package framebuf

import "io"

var (
	_ io.Writer     = (*Frame)(nil)
	_ io.ReaderFrom = (*Frame)(nil)
)

// Frame is a fixed-capacity buffer for incremental stream consumption.
// Appends fill the unused tail, Consume discards everything except the last
// preserve bytes, and the backing store is allocated once and never grows.
//
// A Frame is a single-owner value: it performs no locking and must not be
// used from multiple goroutines without external synchronization.
type Frame struct {
	buf      []byte
	preserve int
	written  int64
}

// New creates a Frame with the given capacity whose Consume operation retains
// the last preserve bytes. Negative sizes are treated as zero, and a preserve
// larger than capacity is clamped to capacity.
func New(capacity, preserve int) *Frame {
	if capacity < 0 {
		capacity = 0
	}
	if preserve < 0 {
		preserve = 0
	}
	if preserve > capacity {
		preserve = capacity
	}
	return &Frame{
		buf:      make([]byte, 0, capacity),
		preserve: preserve,
	}
}

// Append copies as many leading bytes of p as fit into the unused tail of the
// buffer and returns the number of bytes copied. It never fails: once the
// buffer is full it returns 0 and callers are expected to Consume before
// appending more. A return value smaller than len(p) means the remainder of p
// was dropped.
func (f *Frame) Append(p []byte) int {
	n := min(cap(f.buf)-len(f.buf), len(p))
	if n == 0 {
		return 0
	}
	f.buf = append(f.buf, p[:n]...)
	f.written += int64(n)
	return n
}

// Write implements io.Writer on top of Append. Unlike Append it reports a
// truncated write as io.ErrShortWrite so the Frame composes with io plumbing
// without silently losing bytes.
func (f *Frame) Write(p []byte) (int, error) {
	n := f.Append(p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// ReadFrom implements io.ReaderFrom by reading from r directly into the
// unused tail until the buffer is full or r is drained. Reaching EOF or
// filling the buffer are both success; callers Consume and call ReadFrom
// again to continue the stream.
func (f *Frame) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for len(f.buf) < cap(f.buf) {
		n, err := r.Read(f.buf[len(f.buf):cap(f.buf)])
		if n > 0 {
			f.buf = f.buf[:len(f.buf)+n]
			f.written += int64(n)
			total += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the currently buffered bytes without copying. The slice
// aliases the backing store and is valid only until the next mutating call.
func (f *Frame) Bytes() []byte {
	return f.buf
}

// Consume discards the buffered bytes except for the trailing preserve
// window, which it shifts to the front of the buffer. When fewer than
// preserve bytes are buffered everything is retained. The freed space becomes
// available to subsequent appends; discarded bytes are not cleared, the fill
// level alone gates validity.
func (f *Frame) Consume() {
	keep := min(f.preserve, len(f.buf))
	// copy is overlap-safe, the retained suffix may overlap its destination.
	copy(f.buf[:keep], f.buf[len(f.buf)-keep:])
	f.buf = f.buf[:keep]
}

// Reset drops all buffered bytes, ignoring the preserve window.
func (f *Frame) Reset() {
	f.buf = f.buf[:0]
}

// Len returns the number of currently buffered bytes.
func (f *Frame) Len() int {
	return len(f.buf)
}

// Cap returns the fixed capacity of the buffer.
func (f *Frame) Cap() int {
	return cap(f.buf)
}

// Free returns the number of bytes that can be appended before the buffer is
// full.
func (f *Frame) Free() int {
	return cap(f.buf) - len(f.buf)
}

// Preserve returns the number of trailing bytes retained by Consume.
func (f *Frame) Preserve() int {
	return f.preserve
}

// TotalWritten returns the lifetime total of bytes accepted into the buffer.
// Bytes dropped by a truncated append are not counted.
func (f *Frame) TotalWritten() int64 {
	return f.written
}
