package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveTick(t *testing.T, source *Source, within time.Duration) bool {
	t.Helper()
	select {
	case _, ok := <-source.Ticks():
		return ok
	case <-time.After(within):
		return false
	}
}

func TestSourceIsIdleUntilStarted(t *testing.T) {
	source := New()
	defer source.Dispose()

	assert.False(t, receiveTick(t, source, 50*time.Millisecond))
}

func TestStartEmitsTicks(t *testing.T) {
	source := New()
	defer source.Dispose()

	source.Start(5 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.True(t, receiveTick(t, source, time.Second), "tick %d", i)
	}
}

func TestStopHaltsEmission(t *testing.T) {
	source := New()
	defer source.Dispose()

	source.Start(5 * time.Millisecond)
	require.True(t, receiveTick(t, source, time.Second))

	source.Stop()
	assert.False(t, receiveTick(t, source, 50*time.Millisecond))

	// Stopping again must be harmless.
	source.Stop()
	assert.False(t, receiveTick(t, source, 20*time.Millisecond))
}

func TestStartWhileActiveIsNoop(t *testing.T) {
	source := New()
	defer source.Dispose()

	source.Start(time.Hour)
	source.Start(5 * time.Millisecond)

	assert.False(t, receiveTick(t, source, 50*time.Millisecond))
}

func TestRestartAfterStop(t *testing.T) {
	source := New()
	defer source.Dispose()

	source.Start(time.Hour)
	source.Stop()
	source.Start(5 * time.Millisecond)

	assert.True(t, receiveTick(t, source, time.Second))
}

func TestDisposeClosesTicks(t *testing.T) {
	source := New()
	source.Start(5 * time.Millisecond)
	source.Dispose()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-source.Ticks():
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	// Commands after disposal return immediately.
	source.Start(time.Millisecond)
	source.Stop()
	source.Dispose()
}
