// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"sync"

	"github.com/aurum-network/aurum/log"
)

// Discard drops all events.
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// LogEmitter writes events to the given logger.
type LogEmitter struct {
	logger log.Logger
}

// NewLogEmitter creates an emitter logging each event record.
func NewLogEmitter(logger log.Logger) *LogEmitter {
	return &LogEmitter{logger: logger}
}

// Emit implements Emitter.
func (e *LogEmitter) Emit(ev Event) {
	e.logger.Info("event", "name", ev.Name(), "record", ev)
}

// Recorder collects emitted events, for tests and in-process observers.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit implements Emitter.
func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns all recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Last returns the most recently recorded event, or nil.
func (r *Recorder) Last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
