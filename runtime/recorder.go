package suppose

// Span records the contiguous byte range consumed by one structural draw,
// as a half-open [Start, End) interval into the recorded buffer, tagged
// with its nesting depth. Spans form a properly nested forest: a child's
// range is always contained within its parent's.
type Span struct {
	Start int
	End   int
	Level int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.Start >= s.End }

// Recorder wraps an inner Source and records every byte drawn through it,
// along with a span for each structural draw. Draining the recorder with
// IntoPool yields a Pool that, replayed through the same generator,
// reproduces the identical value.
type Recorder struct {
	inner Source
	buf   *ByteBuffer
	spans []Span
	level int
}

// NewRecorder creates a recording source over inner.
func NewRecorder(inner Source) *Recorder {
	return &Recorder{inner: inner, buf: GetByteBuffer()}
}

// DrawByte forwards to the inner source and appends the byte drawn to the
// recording buffer.
func (r *Recorder) DrawByte() byte {
	b := r.inner.DrawByte()
	r.buf.AppendByte(b)
	return b
}

// Draw records one structural draw. A child recorder runs fn against the
// shared inner source; once fn completes, the parent absorbs the child's
// buffer as one contiguous block and its spans shifted to the block's
// offset, then records the enclosing span at the current depth. The
// handoff keeps nesting correct without sharing mutable state: raw bytes
// land in exactly one buffer at a time.
func (r *Recorder) Draw(fn func(Source)) {
	child := &Recorder{inner: r.inner, buf: GetByteBuffer(), level: r.level + 1}
	fn(child)

	start := r.buf.Len()
	r.buf.Append(child.buf.Bytes())
	for _, s := range child.spans {
		r.spans = append(r.spans, Span{Start: s.Start + start, End: s.End + start, Level: s.Level})
	}
	r.spans = append(r.spans, Span{Start: start, End: r.buf.Len(), Level: r.level})
	PutByteBuffer(child.buf)
	child.buf = nil
}

// Len returns the number of bytes recorded so far.
func (r *Recorder) Len() int { return r.buf.Len() }

// Spans returns the spans recorded so far, innermost-completed first
// within each structural draw. The slice must not be modified.
func (r *Recorder) Spans() []Span { return r.spans }

// Discard consumes the recorder without materializing a Pool, releasing
// its buffer for reuse. The recorder must not be used afterwards.
func (r *Recorder) Discard() {
	PutByteBuffer(r.buf)
	r.buf = nil
}

// IntoPool consumes the recorder and returns the recorded bytes and spans
// as an owned Pool. The recorder must not be used afterwards.
func (r *Recorder) IntoPool() *Pool {
	data := make([]byte, r.buf.Len())
	copy(data, r.buf.Bytes())
	PutByteBuffer(r.buf)
	r.buf = nil
	return &Pool{data: data, spans: r.spans}
}
