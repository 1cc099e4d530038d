// Package trace records the scene manager's phase changes per tick so a
// transition sequence can be inspected offline.
package trace

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/curtain/internal/application/state"
)

// Event marks a phase change at a given tick.
type Event struct {
	Tick  int    `yaml:"tick"`
	Phase string `yaml:"phase"`
}

// Trace contains one recorded run.
type Trace struct {
	Version string  `yaml:"version"`
	Started string  `yaml:"started"`
	Events  []Event `yaml:"events"`
}

// Recorder collects a Trace from per-tick phase observations.
type Recorder struct {
	trace     Trace
	recording bool
	tick      int
	last      state.Phase
	observed  bool
}

// NewRecorder creates an active recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		trace: Trace{
			Version: "1.0",
			Started: time.Now().Format(time.RFC3339),
			Events:  make([]Event, 0, 64),
		},
		recording: true,
	}
}

// Observe records the manager phase for the current tick and advances
// the tick counter. An event is appended only when the phase differs
// from the previously observed one.
func (r *Recorder) Observe(phase state.Phase) {
	defer func() { r.tick++ }()
	if !r.recording {
		return
	}
	if r.observed && phase == r.last {
		return
	}
	r.trace.Events = append(r.trace.Events, Event{Tick: r.tick, Phase: phase.String()})
	r.last = phase
	r.observed = true
}

// Stop stops recording; later observations only advance the tick.
func (r *Recorder) Stop() {
	r.recording = false
}

// Tick returns the number of ticks observed so far.
func (r *Recorder) Tick() int {
	return r.tick
}

// EventCount returns the number of recorded phase changes.
func (r *Recorder) EventCount() int {
	return len(r.trace.Events)
}

// Data returns the recorded trace.
func (r *Recorder) Data() Trace {
	return r.trace
}

// Save writes the trace to a YAML file.
func (r *Recorder) Save(filename string) error {
	if len(r.trace.Events) == 0 {
		return fmt.Errorf("no events to save")
	}

	data, err := yaml.Marshal(r.trace)
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	return nil
}

// Load reads a trace back from a YAML file.
func Load(filename string) (*Trace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}
	return &tr, nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("trace_%s.yaml", time.Now().Format("20060102_150405"))
}
