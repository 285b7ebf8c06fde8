package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yolp/account-service/internal/core/ports"
)

type captureRecorder struct {
	mu     sync.Mutex
	events []ports.AuditEvent
	notify chan struct{}
}

func newCaptureRecorder() *captureRecorder {
	return &captureRecorder{notify: make(chan struct{}, 64)}
}

func (r *captureRecorder) Record(_ context.Context, event ports.AuditEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.notify <- struct{}{}
	return nil
}

func (r *captureRecorder) wait(t *testing.T, n int) []ports.AuditEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-r.notify:
		case <-deadline:
			t.Fatalf("timed out waiting for %d events", n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestDispatcher_RecordsEnqueuedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := newCaptureRecorder()
	d := NewDispatcher(2, recorder, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.AuditEvent{Username: "bduong0929", Action: ports.AuditActionSignup, Outcome: ports.AuditOutcomeSuccess})
	d.Enqueue(ports.AuditEvent{Username: "admin12345", Action: ports.AuditActionLogin, Outcome: ports.AuditOutcomeDenied})

	events := recorder.wait(t, 2)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := newCaptureRecorder()
	d := NewDispatcher(4, recorder, zerolog.Nop())
	d.Start(ctx)

	outcomes := []string{ports.AuditOutcomeRejected, ports.AuditOutcomeSuccess, ports.AuditOutcomeDenied}
	for _, o := range outcomes {
		d.Enqueue(ports.AuditEvent{Username: "bduong0929", Action: ports.AuditActionSignup, Outcome: o})
	}

	events := recorder.wait(t, len(outcomes))
	for i, o := range outcomes {
		if events[i].Outcome != o {
			t.Fatalf("event %d: got %s, want %s", i, events[i].Outcome, o)
		}
	}
}
