package persist

import "time"

// GameClock is the server's gameplay clock. It starts at zero on every
// boot, which is why skill/buff deadlines are persisted as remaining
// durations and rebased on load.
type GameClock interface {
	Now() time.Duration
}

// UptimeClock measures time since process start.
type UptimeClock struct {
	start time.Time
}

func NewUptimeClock() *UptimeClock {
	return &UptimeClock{start: time.Now()}
}

func (c *UptimeClock) Now() time.Duration {
	return time.Since(c.start)
}

// StoredRemaining converts an absolute deadline into the duration to
// persist. A deadline already in the past stores as zero.
func StoredRemaining(deadline, now time.Duration) time.Duration {
	if deadline <= now {
		return 0
	}
	return deadline - now
}

// Deadline rebases a stored remaining duration onto the current clock.
// It is the exact inverse of StoredRemaining around a save/load cycle.
func Deadline(remaining, now time.Duration) time.Duration {
	return now + remaining
}

// seconds/duration bridge the float seconds stored in the database and
// the time.Duration the live entity uses.
func seconds(d time.Duration) float64 {
	return d.Seconds()
}

func duration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
