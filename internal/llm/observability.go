package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent describes one completed generation call.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives notifications about generation calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes one line per call to the given writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates a LogObserver writing to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "error"
		if event.ErrorCode != "" {
			status = "error=" + event.ErrorCode
		}
	}
	fmt.Fprintf(o.w, "[llm] %s task=%s model=%s latency=%dms %s\n",
		time.Now().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}
