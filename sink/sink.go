package sink

import "sync"

// Sink is the outbound buffer of one connection.
// Consume never blocks: a full or closed sink drops the frame.
type Sink struct {
	frames chan []byte
	done   chan struct{}
	once   sync.Once
}

func NewSink(bufferSize int) *Sink {
	return &Sink{frames: make(chan []byte, bufferSize), done: make(chan struct{})}
}

// Consume is called by the hub broadcast.
// The connection writer takes it from Frames.
func (s *Sink) Consume(frame []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.frames <- frame:
		return true
	default:
		return false
	}
}

func (s *Sink) Frames() <-chan []byte { return s.frames }

func (s *Sink) Done() <-chan struct{} { return s.done }

func (s *Sink) Close() {
	s.once.Do(func() { close(s.done) })
}
