package sink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSink_DropsWhenFull(t *testing.T) {
	req := require.New(t)
	s := NewSink(2)

	req.True(s.Consume([]byte("1")))
	req.True(s.Consume([]byte("2")))
	req.False(s.Consume([]byte("3")))

	req.Equal("1", string(<-s.Frames()))
	req.True(s.Consume([]byte("4")))
	req.Equal("2", string(<-s.Frames()))
	req.Equal("4", string(<-s.Frames()))
}

func TestSink_ClosedRejects(t *testing.T) {
	req := require.New(t)
	s := NewSink(2)

	s.Close()
	s.Close()

	req.False(s.Consume([]byte("1")))
	_, open := <-s.Done()
	req.False(open)
}
