package consumer

import (
	"context"
	"encoding/json"

	"github.com/RahimovIlhom/personnel-management/internal/bootstrap"
	"github.com/RahimovIlhom/personnel-management/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePersonnelLifecycle turns lifecycle events into audit records.
// The outbox worker may redeliver an event after a failed commit; the
// audit sink tolerates duplicates, so redelivery is just logged again.
func ConsumePersonnelLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.personnel_lifecycle")
	log.Info("personnel lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("personnel lifecycle consumer stopped")
				return
			}
			log.Error("fetch personnel lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.PersonnelStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode personnel lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		action := "PERSONNEL_STATUS_CHANGED"
		if event.EventType == events.EventTypeConverted {
			action = "PERSONNEL_CONVERTED"
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  action,
			Message: event.Reason,
			Meta: map[string]any{
				"personnel_id": event.PersonnelID,
				"kind":         event.Kind,
				"old_status":   event.OldStatus,
				"new_status":   event.NewStatus,
				"changed_by":   event.ChangedBy,
				"request_id":   event.RequestID,
				"occurred_at":  event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit personnel lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("personnel lifecycle event recorded",
			zap.String("event_type", event.EventType),
			zap.String("personnel_id", event.PersonnelID),
			zap.String("new_status", event.NewStatus),
		)
	}
}
