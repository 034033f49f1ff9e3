package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindings_SubscribeAndRelease(t *testing.T) {
	b := NewBindings()
	var got []Event

	release := b.Subscribe(EventPointerDown, func(e Event) { got = append(got, e) })
	assert.Equal(t, 1, b.Count())

	assert.Equal(t, 1, b.Dispatch(Event{Kind: EventPointerDown, Target: "a"}))
	assert.Equal(t, 0, b.Dispatch(Event{Kind: EventPointerMove}))

	release()
	release()
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, 0, b.Dispatch(Event{Kind: EventPointerDown, Target: "b"}))

	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Target)
}

func TestBindings_Close(t *testing.T) {
	b := NewBindings()
	calls := 0
	b.Subscribe(EventIntersect, func(Event) { calls++ })
	b.Subscribe(EventPointerMove, func(Event) { calls++ })

	b.Close()
	assert.Equal(t, 0, b.Count())

	release := b.Subscribe(EventIntersect, func(Event) { calls++ })
	assert.NotPanics(t, release)
	b.Dispatch(Event{Kind: EventIntersect})
	assert.Equal(t, 0, calls)
}

func TestBindings_HandlerMaySubscribe(t *testing.T) {
	b := NewBindings()
	b.Subscribe(EventPointerMove, func(Event) {
		b.Subscribe(EventPointerDown, func(Event) {})
	})
	b.Dispatch(Event{Kind: EventPointerMove})
	assert.Equal(t, 2, b.Count())
}
