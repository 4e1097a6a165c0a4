package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainHooks(t *testing.T) {
	var order []string

	chained := ChainHooks(
		LifecycleHooks{
			OnStart: func(*StartEvent) { order = append(order, "first start") },
			OnMove:  func(*MoveEvent) { order = append(order, "first move") },
		},
		LifecycleHooks{
			OnMove:  func(*MoveEvent) { order = append(order, "second move") },
			OnFrame: func(*FrameEvent) { order = append(order, "second frame") },
		},
	)

	chained.OnStart(&StartEvent{})
	chained.OnMove(&MoveEvent{})
	chained.OnFrame(&FrameEvent{})

	assert.Equal(t, []string{"first start", "first move", "second move", "second frame"}, order)
}
