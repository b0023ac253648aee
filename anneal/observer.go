// SPDX-License-Identifier: MIT
// Package: placer/anneal
//
// observer.go — per-step observation hooks.

package anneal

import "github.com/katalvlaran/placer/placement"

// Snapshot is the state reported to an Observer after an outer step.
type Snapshot struct {
	// Step is the 0-based index of the outer step that just finished.
	Step int
	// Temperature is the temperature the step ran at.
	Temperature float64
	// Cost is the total HPWL after the step.
	Cost int
	// Placement is the live placement. It must not be modified and is only
	// valid during the call; Clone it to keep it.
	Placement *placement.State
}

// Observer receives a Snapshot after every outer step. A non-nil error
// aborts the run and is returned by Run.
type Observer interface {
	Observe(Snapshot) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot) error

// Observe calls f(s).
func (f ObserverFunc) Observe(s Snapshot) error { return f(s) }

// Observers fans a snapshot out to every non-nil observer in order,
// stopping at the first error.
func Observers(obs ...Observer) Observer {
	list := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}

	return ObserverFunc(func(s Snapshot) error {
		for _, o := range list {
			if err := o.Observe(s); err != nil {
				return err
			}
		}
		return nil
	})
}
