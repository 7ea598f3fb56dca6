package domain

import "time"

// Reading is the outcome of one fallible telemetry read. A reading that is
// not OK never carries a meaningful value.
type Reading[T any] struct {
	Value T
	OK    bool
}

func Available[T any](value T) Reading[T] {
	return Reading[T]{Value: value, OK: true}
}

func Unavailable[T any]() Reading[T] {
	return Reading[T]{}
}

// Battery is the raw charge level against its scale.
type Battery struct {
	Level int
	Scale int
}

// Percent truncates level/scale to a whole percentage.
func (b Battery) Percent() (int, bool) {
	if b.Scale <= 0 || b.Level < 0 {
		return 0, false
	}
	return b.Level * 100 / b.Scale, true
}

type WiFi struct {
	Enabled bool
	IPv4    string
}

type Memory struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

type MemoryUsage struct {
	UsedMB  int64
	TotalMB int64
}

// Usage converts to whole megabytes. A zero total cannot produce a percentage
// and is reported as not OK.
func (m Memory) Usage() (MemoryUsage, bool) {
	total := int64(m.TotalBytes / mib)
	if total <= 0 {
		return MemoryUsage{}, false
	}
	avail := int64(m.AvailableBytes / mib)
	return MemoryUsage{UsedMB: total - avail, TotalMB: total}, true
}

func (u MemoryUsage) Percent() int {
	if u.TotalMB <= 0 {
		return 0
	}
	return int(u.UsedMB * 100 / u.TotalMB)
}

// Volume is a mounted filesystem's free and total capacity in bytes.
type Volume struct {
	AvailableBytes uint64
	TotalBytes     uint64
}

// Traffic is a pair of byte counters. As a delta it may be negative after a
// device counter reset.
type Traffic struct {
	RxBytes int64
	TxBytes int64
}

type Uptime struct {
	Days    int64
	Hours   int64
	Minutes int64
}

// DecomposeUptime splits a millisecond counter by integer division; partial
// units are dropped, not rounded.
func DecomposeUptime(millis int64) Uptime {
	return Uptime{
		Days:    millis / (1000 * 60 * 60 * 24),
		Hours:   (millis / (1000 * 60 * 60)) % 24,
		Minutes: (millis / (1000 * 60)) % 60,
	}
}

// Snapshot holds one reading per metric kind, recomputed wholesale per tick.
type Snapshot struct {
	At          time.Time
	BatteryPct  Reading[int]
	WiFi        Reading[bool]
	IPv4        Reading[string]
	Memory      Reading[MemoryUsage]
	Storage     Reading[Volume]
	Removable   Reading[Volume]
	Uptime      Reading[Uptime]
	Temperature Reading[int]
	Network     Reading[Traffic]
}

const (
	mib = 1024 * 1024
	gib = 1024 * 1024 * 1024
)
