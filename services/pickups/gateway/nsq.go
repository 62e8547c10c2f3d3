package gateway

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/models"
	nsqpkg "github.com/greencycle/greencycle/internal/pkg/nsq"
)

// TopicPickupStatusChanged carries pickup lifecycle transitions
const TopicPickupStatusChanged = "pickup.status_changed"

// PickupGW publishes pickup events to NSQ
type PickupGW struct {
	producer *nsqpkg.Producer
}

// NewPickupGW creates a new pickup gateway. A nil producer disables
// publishing, which keeps the API usable when NSQ is not deployed.
func NewPickupGW(producer *nsqpkg.Producer) *PickupGW {
	return &PickupGW{producer: producer}
}

// PublishStatusChanged emits a status transition event
func (g *PickupGW) PublishStatusChanged(ctx context.Context, event *models.PickupStatusEvent) {
	if g.producer == nil {
		return
	}

	if err := g.producer.Publish(TopicPickupStatusChanged, event); err != nil {
		logger.Warn("Failed to publish pickup status event",
			logger.Err(err),
			logger.Int64("pickup_id", event.PickupID),
			logger.String("new_status", event.NewStatus),
		)
	}
}
