package gateway

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/models"
	nsqpkg "github.com/greencycle/greencycle/internal/pkg/nsq"
)

// TopicCollectorLocationUpdated carries collector position updates
const TopicCollectorLocationUpdated = "collector.location_updated"

// TrackingGW publishes tracking events to NSQ
type TrackingGW struct {
	producer *nsqpkg.Producer
}

// NewTrackingGW creates a new tracking gateway. A nil producer disables
// publishing, which keeps the API usable when NSQ is not deployed.
func NewTrackingGW(producer *nsqpkg.Producer) *TrackingGW {
	return &TrackingGW{producer: producer}
}

// PublishLocationUpdated emits a collector movement event
func (g *TrackingGW) PublishLocationUpdated(ctx context.Context, event *models.LocationEvent) {
	if g.producer == nil {
		return
	}

	if err := g.producer.Publish(TopicCollectorLocationUpdated, event); err != nil {
		logger.Warn("Failed to publish location event",
			logger.Err(err),
			logger.String("collector_id", event.CollectorID),
		)
	}
}
