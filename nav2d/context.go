package nav2d

import (
	"fmt"
	"time"
)

// LogCategory classifies a BuildContext log entry.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// TimerLabel identifies one of Update()'s four settlement phases for
// performance-timer accounting.
type TimerLabel int

const (
	TimerRefresh TimerLabel = iota
	TimerRegroup
	TimerRebuildGroups
	TimerRebuildGraph

	numTimers
)

// Contexter is the pluggable sink BuildContext forwards to. Callers that
// don't care about logging can pass a NopContexter.
//
// Modelled on recast.Contexter (recast/context.go): a thin seam so the
// pipeline's progress/warning/error trail can be routed anywhere (stdout,
// a structured logger, a test recorder) without the core depending on a
// concrete logging library.
type Contexter interface {
	Log(category LogCategory, msg string)
}

// NopContexter discards every message. The zero value is ready to use.
type NopContexter struct{}

func (NopContexter) Log(LogCategory, string) {}

// BuildContext wraps a Contexter with the formatted helpers Update()'s
// settlement phases call, plus the four named performance timers those
// phases start and stop. Logging and timing share one enabled flag, set
// independently of which Contexter is installed; unlike recast.Context's
// enableLog/enableTimer pair, there is no separate log or timer toggle.
type BuildContext struct {
	enabled bool
	sink    Contexter

	start [numTimers]time.Time
	acc   [numTimers]time.Duration
}

// NewBuildContext returns a BuildContext forwarding to sink when enabled
// is true, and discarding every message when false. enabled also
// gates the performance timers, same as recast.Context's single state
// flag seeding both m_logEnabled and m_timerEnabled.
func NewBuildContext(enabled bool, sink Contexter) *BuildContext {
	if sink == nil {
		sink = NopContexter{}
	}
	return &BuildContext{enabled: enabled, sink: sink}
}

func (c *BuildContext) log(cat LogCategory, format string, v ...interface{}) {
	if !c.enabled {
		return
	}
	c.sink.Log(cat, fmt.Sprintf(format, v...))
}

// Progressf logs a progress-category message.
func (c *BuildContext) Progressf(format string, v ...interface{}) { c.log(LogProgress, format, v...) }

// Warningf logs a warning-category message.
func (c *BuildContext) Warningf(format string, v ...interface{}) { c.log(LogWarning, format, v...) }

// Errorf logs an error-category message.
func (c *BuildContext) Errorf(format string, v ...interface{}) { c.log(LogError, format, v...) }

// StartTimer marks the start of label's timed span. A no-op when the
// context is disabled, mirroring recast.BuildContext.StartTimer.
func (c *BuildContext) StartTimer(label TimerLabel) {
	if !c.enabled {
		return
	}
	c.start[label] = time.Now()
}

// StopTimer accumulates the elapsed time since the matching StartTimer
// call into label's running total.
func (c *BuildContext) StopTimer(label TimerLabel) {
	if !c.enabled {
		return
	}
	c.acc[label] += time.Since(c.start[label])
}

// AccumulatedTime returns the total time label has spent started, or 0 if
// timers are disabled or the label was never started.
func (c *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.enabled {
		return 0
	}
	return c.acc[label]
}

// ResetTimers zeroes every accumulated timer, matching
// recast.BuildContext.ResetTimers.
func (c *BuildContext) ResetTimers() {
	for i := range c.acc {
		c.acc[i] = 0
	}
}
