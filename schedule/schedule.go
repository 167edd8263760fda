// Package schedule runs callbacks after an amount of accumulated frame time.
// It is a frame-stepped timer queue: nothing fires between calls to Tick.
package schedule

import "sort"

// Handle identifies a scheduled callback for Cancel.
type Handle uint64

type timer struct {
	handle Handle
	due    float64
	fn     func()
}

// Scheduler fires callbacks in due order once Tick has advanced its clock
// past them. It is not safe for concurrent use.
type Scheduler struct {
	now    float64
	next   Handle
	timers []timer
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated frame time in seconds.
func (s *Scheduler) Now() float64 { return s.now }

func (s *Scheduler) Len() int { return len(s.timers) }

// After schedules fn to fire once seconds of frame time have elapsed.
func (s *Scheduler) After(seconds float64, fn func()) Handle {
	s.next++
	s.timers = append(s.timers, timer{handle: s.next, due: s.now + seconds, fn: fn})
	return s.next
}

// Cancel drops a pending callback. It reports whether one was pending.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, t := range s.timers {
		if t.handle == h {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Tick advances time by dt and fires every due callback in due order,
// earliest scheduled first on ties. Callbacks scheduled from inside a
// callback wait for a later Tick.
func (s *Scheduler) Tick(dt float64) {
	s.now += dt

	var due []timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
}

// Clear drops every pending callback.
func (s *Scheduler) Clear() {
	clear(s.timers)
	s.timers = s.timers[:0]
}
