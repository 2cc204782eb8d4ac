package persist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoredRemaining(t *testing.T) {
	assert.Equal(t, 5*time.Second, StoredRemaining(15*time.Second, 10*time.Second))
	assert.Equal(t, time.Duration(0), StoredRemaining(10*time.Second, 10*time.Second))
	// Expired deadlines never store negative remainders.
	assert.Equal(t, time.Duration(0), StoredRemaining(3*time.Second, 10*time.Second))
}

func TestDeadline_InverseOfStoredRemaining(t *testing.T) {
	saveNow := 100 * time.Second
	deadline := saveNow + 5*time.Second
	stored := StoredRemaining(deadline, saveNow)

	// Reload after a restart: the clock restarted near zero.
	loadNow := 2 * time.Second
	rebased := Deadline(stored, loadNow)
	assert.Equal(t, 5*time.Second, rebased-loadNow)
}

func TestSecondsDurationBridge(t *testing.T) {
	d := 1500 * time.Millisecond
	assert.InDelta(t, 1.5, seconds(d), 1e-9)
	assert.Equal(t, d, duration(1.5))
}
