// Package progress drives a time-based progress value from 0 to 100.
//
// A Simulator stands in for a long-running computation: it emits a fixed
// increment every interval and signals completion once the value reaches
// 100. Swapping the Scheduler lets the same contract run on the wall clock
// or on a virtual clock in tests.
package progress

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Max is the terminal progress value.
const Max = 100

const (
	DefaultStep     = 5
	DefaultInterval = 150 * time.Millisecond
)

// ErrSimulatorMisuse is returned by Start when the simulator is not idle.
var ErrSimulatorMisuse = errors.New("simulator already started")

// State is the lifecycle state of a Simulator.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithStep sets the increment applied on every tick.
func WithStep(step int) Option {
	return func(s *Simulator) { s.step = step }
}

// WithInterval sets the delay between ticks.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) { s.interval = d }
}

// WithScheduler sets the clock the simulator schedules ticks on.
func WithScheduler(sched Scheduler) Option {
	return func(s *Simulator) { s.sched = sched }
}

// Simulator emits step, 2*step, ... up to Max, one value per interval.
//
// Callbacks run while the simulator's lock is held, so they are serialized
// with Cancel: once Cancel returns, no callback is running and none will
// run again. Callbacks must not call back into the simulator.
type Simulator struct {
	mu       sync.Mutex
	step     int
	interval time.Duration
	sched    Scheduler

	state      State
	value      int
	timer      Timer
	onTick     func(int)
	onComplete func()
}

// New creates an idle Simulator.
func New(opts ...Option) (*Simulator, error) {
	s := &Simulator{
		step:     DefaultStep,
		interval: DefaultInterval,
		sched:    ClockScheduler{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.step <= 0 {
		return nil, fmt.Errorf("progress step must be positive, got %d", s.step)
	}
	if s.interval <= 0 {
		return nil, fmt.Errorf("progress interval must be positive, got %s", s.interval)
	}
	if s.sched == nil {
		return nil, errors.New("progress scheduler is nil")
	}
	return s, nil
}

// Start begins emitting ticks. onTick receives each new value; onComplete
// runs once after the tick that reaches Max. Either callback may be nil.
func (s *Simulator) Start(onTick func(int), onComplete func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("%w: state %s", ErrSimulatorMisuse, s.state)
	}
	s.state = StateRunning
	s.onTick = onTick
	s.onComplete = onComplete
	s.timer = s.sched.AfterFunc(s.interval, s.tick)
	return nil
}

// Cancel stops the simulator and releases its pending timer. Cancel is
// idempotent and is a no-op once the run has completed.
func (s *Simulator) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle || s.state == StateRunning {
		s.state = StateCancelled
	}
	s.release()
}

// release drops the timer and callbacks. Caller holds mu.
func (s *Simulator) release() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.onTick = nil
	s.onComplete = nil
}

func (s *Simulator) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return
	}
	s.timer = nil

	s.value += s.step
	if s.value >= Max {
		s.value = Max
		s.state = StateCompleted
	}

	if s.onTick != nil {
		s.onTick(s.value)
	}

	if s.state == StateCompleted {
		if s.onComplete != nil {
			s.onComplete()
		}
		s.release()
		return
	}
	s.timer = s.sched.AfterFunc(s.interval, s.tick)
}

// State returns the current lifecycle state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Value returns the last emitted value.
func (s *Simulator) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Interval returns the delay between ticks.
func (s *Simulator) Interval() time.Duration {
	return s.interval
}

// TotalTicks returns how many ticks a full run emits.
func (s *Simulator) TotalTicks() int {
	return len(Values(s.step))
}

// Values returns the exact sequence a full run emits for the given step.
func Values(step int) []int {
	if step <= 0 {
		return nil
	}
	out := make([]int, 0, (Max+step-1)/step)
	for v := step; ; v += step {
		if v >= Max {
			out = append(out, Max)
			return out
		}
		out = append(out, v)
	}
}
