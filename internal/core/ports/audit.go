package ports

import (
	"context"
	"time"
)

// Audit actions and outcomes recorded for authentication activity.
const (
	AuditActionSignup = "signup"
	AuditActionLogin  = "login"

	AuditOutcomeSuccess  = "success"
	AuditOutcomeRejected = "rejected"
	AuditOutcomeDenied   = "denied"
)

// AuditEvent describes one authentication-related action.
type AuditEvent struct {
	Username string
	Action   string
	Outcome  string
	Reason   string
	At       time.Time
}

// AuditRecorder persists audit events. Called from background workers, not
// from the request path.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}
