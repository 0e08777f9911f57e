package session

// Buffer is the editable text the session loads card content into and reads
// back on commit. Keystrokes reach the buffer directly, not through the session.
type Buffer interface {
	Lines() []string
	SetLines(lines []string)
}

// LineBuffer is a Buffer backed by a string slice.
type LineBuffer struct {
	lines []string
}

// NewLineBuffer returns a buffer holding lines.
func NewLineBuffer(lines ...string) *LineBuffer {
	return &LineBuffer{lines: lines}
}

func (b *LineBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *LineBuffer) SetLines(lines []string) {
	b.lines = append([]string(nil), lines...)
}
