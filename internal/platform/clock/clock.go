package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Millis converts t to epoch milliseconds, the unit persisted records use.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// Fixed is a Clock pinned to a single instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
