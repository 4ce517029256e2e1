package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterTake(t *testing.T) {
	var r Register
	r.Set(SoftDrop)
	r.Set(SoftDrop)
	assert.True(t, r.Take(SoftDrop))
	assert.False(t, r.Take(SoftDrop))
}

func TestRegisterReset(t *testing.T) {
	var r Register
	r.Set(LossFlag)
	r.Set(MoveLeft)
	r.Reset()
	assert.Equal(t, []Command{ResetTrigger, MoveLeft}, r.Pending())
}

func TestRegisterConcurrentSet(t *testing.T) {
	var r Register
	var wg sync.WaitGroup
	for c := RotateCCW; c < commandCount; c++ {
		wg.Add(1)
		go func(c Command) {
			defer wg.Done()
			r.Set(c)
		}(c)
	}
	wg.Wait()
	assert.Len(t, r.Pending(), int(commandCount-RotateCCW))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "soft-drop", SoftDrop.String())
	assert.Equal(t, "unknown", Command(99).String())
}
