package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCoalesces(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 4)
	d := New(30*time.Millisecond, func() {
		calls.Add(1)
		done <- struct{}{}
	})

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, d.Pending())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}

func TestTriggerAfterRunSchedulesAgain(t *testing.T) {
	done := make(chan struct{}, 4)
	d := New(5*time.Millisecond, func() { done <- struct{}{} })

	for i := 0; i < 2; i++ {
		d.Trigger()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("run %d never happened", i)
		}
	}
}

func TestStopCancels(t *testing.T) {
	var calls atomic.Int32
	d := New(20*time.Millisecond, func() { calls.Add(1) })

	assert.False(t, d.Stop(), "nothing pending yet")
	d.Trigger()
	require.True(t, d.Stop())
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.False(t, d.Pending())
}

func TestConcurrentTriggers(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 16)
	d := New(20*time.Millisecond, func() {
		calls.Add(1)
		done <- struct{}{}
	})

	start := make(chan struct{})
	finished := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			<-start
			d.Trigger()
			finished <- struct{}{}
		}()
	}
	close(start)
	for i := 0; i < 8; i++ {
		<-finished
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
