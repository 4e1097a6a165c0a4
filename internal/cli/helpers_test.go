package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitOnSignal_Interrupt(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	codes := make(chan int, 1)
	exitOnSignal(sc, terminal.New(&bytes.Buffer{}), logging.NewNop(), func(code int) {
		codes <- code
	})

	sc.sigCh <- os.Interrupt

	select {
	case code := <-codes:
		assert.Equal(t, 130, code)
	case <-time.After(2 * time.Second):
		t.Fatal("exit was not called after the interrupt")
	}
	assert.Equal(t, os.Interrupt, sc.Signal())
	require.Error(t, sc.Err(), "context should be cancelled by the signal")
}

func TestExitOnSignal_CancelWithoutSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())

	called := make(chan int, 1)
	exitOnSignal(sc, terminal.New(&bytes.Buffer{}), logging.NewNop(), func(code int) {
		called <- code
	})

	sc.Cancel()

	assert.Never(t, func() bool { return len(called) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
	assert.Nil(t, sc.Signal())
}
