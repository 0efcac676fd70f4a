package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEvent struct{ N int }

func TestBusDeliversByTypeName(t *testing.T) {
	b := NewBus()
	got := make(chan int, 1)
	b.Subscribe(TypeOf(pingEvent{}), func(e interface{}) {
		got <- e.(pingEvent).N
	})

	b.Publish(pingEvent{N: 7})
	b.Publish("not subscribed")

	select {
	case n := <-got:
		assert.Equal(t, 7, n)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestRecorderKeepsOrder(t *testing.T) {
	r := &Recorder{}
	require.Nil(t, r.Last())

	r.Publish(pingEvent{N: 1})
	r.Publish(pingEvent{N: 2})

	assert.Equal(t, []interface{}{pingEvent{N: 1}, pingEvent{N: 2}}, r.Events())
	assert.Equal(t, pingEvent{N: 2}, r.Last())
}
