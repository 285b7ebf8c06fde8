package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yolp/account-service/internal/core/ports"
)

const auditCollection = "auth_events"

// MongoAuditRepository appends authentication audit events. Writes happen
// off the request path, from the audit dispatcher workers.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Username string `bson:"username"`
	Action   string `bson:"action"`
	Outcome  string `bson:"outcome"`
	Reason   string `bson:"reason,omitempty"`
	At       int64  `bson:"at"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, event ports.AuditEvent) error {
	doc := mongoAuditEvent{
		Username: event.Username,
		Action:   event.Action,
		Outcome:  event.Outcome,
		Reason:   event.Reason,
		At:       event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
