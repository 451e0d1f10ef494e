package event

import (
	"sync/atomic"

	"github.com/lixenwraith/roam/parameter"
)

// EventQueue carries host input from the tcell goroutine into Session.Step
// Any goroutine may Push; only Step drains, once per frame
// A slot is readable once its published bit is set, so a half-written event is left for the next frame
// When input outruns the frame loop the oldest events are lost and counted
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // next slot to drain
	tail      atomic.Uint64 // next slot to claim
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the tail slot, fills it, then sets its published bit
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true)

		head := eq.head.Load()
		if next-head > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				eq.dropped.Add(next - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Drain appends pending events to dst in arrival order
// Published bits clear only after head advances; an overflow moving head restarts the drain
func (eq *EventQueue) Drain(dst []GameEvent) []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return dst
		}

		available := tail - head
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		start := len(dst)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			dst = append(dst, eq.events[idx])
		}
		taken := uint64(len(dst) - start)

		if eq.head.CompareAndSwap(head, head+taken) {
			for i := uint64(0); i < taken; i++ {
				eq.published[(head+i)&parameter.EventBufferMask].Store(false)
			}
			return dst
		}
		// A producer moved head on overflow, retry from the new head
		dst = dst[:start]
	}
}

// Len is a snapshot of the pending count, stale as soon as it returns
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	if diff := tail - head; diff < parameter.EventQueueSize {
		return int(diff)
	}
	return parameter.EventQueueSize
}

// Dropped returns how many events were overwritten before being drained
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
