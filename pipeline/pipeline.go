package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for documents that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ErrNotRunnable is returned when Run is called on a pipeline that has
// already run.
var ErrNotRunnable = errors.New("pipeline has already run")

// State tracks a pipeline through its single run.
type State int

const (
	StateIdle State = iota
	StateValidated
	StateRunning
	StateDone
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateValidated:
		return "validated"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// PassResult records what one pass changed.
type PassResult struct {
	Name  PassName
	Count int
}

// Result is the outcome of a run.
type Result struct {
	Mode        Mode
	Passes      []PassResult
	Output      string
	InputBytes  int
	OutputBytes int
}

// Count returns the change count for a pass, or 0 if it did not run.
func (r *Result) Count(name PassName) int {
	for _, p := range r.Passes {
		if p.Name == name {
			return p.Count
		}
	}
	return 0
}

// Ran reports whether a pass was part of the run.
func (r *Result) Ran(name PassName) bool {
	for _, p := range r.Passes {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Reduction returns how many bytes shorter the output is than the input.
func (r *Result) Reduction() int {
	return r.InputBytes - r.OutputBytes
}

// ReductionPercent returns Reduction as a percentage of the input size.
func (r *Result) ReductionPercent() float64 {
	if r.InputBytes == 0 {
		return 0
	}
	return float64(r.Reduction()) / float64(r.InputBytes) * 100
}

// Pipeline runs a validated plan once.
type Pipeline struct {
	cfg    Config
	passes []Pass
	state  State
}

// New validates cfg and builds its plan.
func New(cfg Config) (*Pipeline, error) {
	p := &Pipeline{cfg: cfg, state: StateIdle}
	passes, err := Plan(cfg)
	if err != nil {
		p.state = StateFailed
		return nil, err
	}
	p.passes = passes
	p.state = StateValidated
	return p, nil
}

// Passes returns the planned passes in order.
func (p *Pipeline) Passes() []Pass {
	return p.passes
}

// Config returns the configuration the pipeline was built from.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// State returns the current state.
func (p *Pipeline) State() State {
	return p.state
}

// Run applies every planned pass to text in order.
func (p *Pipeline) Run(text string) (*Result, error) {
	if p.state != StateValidated {
		return nil, fmt.Errorf("%w (state %s)", ErrNotRunnable, p.state)
	}
	p.state = StateRunning

	if !utf8.ValidString(text) {
		p.state = StateFailed
		return nil, ErrInvalidUTF8
	}

	res := &Result{
		Mode:       p.cfg.Mode(),
		InputBytes: len(text),
		Passes:     make([]PassResult, 0, len(p.passes)),
	}

	for _, pass := range p.passes {
		var n int
		text, n = pass.Apply(text)
		slog.Debug("pass complete", "pass", pass.Name, "count", n, "bytes", len(text))
		res.Passes = append(res.Passes, PassResult{Name: pass.Name, Count: n})
	}

	res.Output = text
	res.OutputBytes = len(text)
	p.state = StateDone
	slog.Info("cleaned", "mode", res.Mode, "passes", len(res.Passes), "input_bytes", res.InputBytes, "output_bytes", res.OutputBytes)
	return res, nil
}

// Clean is a convenience wrapper that builds a pipeline for cfg and runs it.
func Clean(text string, cfg Config) (*Result, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return p.Run(text)
}
