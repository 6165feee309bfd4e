package state

// MessageLog is a fixed-capacity ring buffer of narrative lines. Pushing
// onto a full log evicts the oldest line.
type MessageLog struct {
	buf   []string
	start int
	n     int
}

// NewMessageLog creates a log holding at most capacity lines (minimum 1).
func NewMessageLog(capacity int) *MessageLog {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageLog{buf: make([]string, capacity)}
}

// Push appends a line.
func (l *MessageLog) Push(line string) {
	if l.n < len(l.buf) {
		l.buf[(l.start+l.n)%len(l.buf)] = line
		l.n++
		return
	}
	l.buf[l.start] = line
	l.start = (l.start + 1) % len(l.buf)
}

// Lines returns the retained lines, oldest first.
func (l *MessageLog) Lines() []string {
	out := make([]string, l.n)
	for i := 0; i < l.n; i++ {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}

// Last returns the newest line, or "" if empty.
func (l *MessageLog) Last() string {
	if l.n == 0 {
		return ""
	}
	return l.buf[(l.start+l.n-1)%len(l.buf)]
}

// Len returns the number of retained lines.
func (l *MessageLog) Len() int {
	return l.n
}

// Cap returns the capacity.
func (l *MessageLog) Cap() int {
	return len(l.buf)
}
