package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/pkg/jobs"
	"github.com/ibuttimer/fyyur/pkg/messaging"
)

// EventTypeShowListed is published after a show is persisted.
const EventTypeShowListed = "show.listed"

// EventService queues domain events and hands them to the broker from background workers.
type EventService struct {
	queue     *jobs.Queue
	publisher messaging.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventService builds the service and its worker queue. Call Start before publishing.
func NewEventService(publisher messaging.Publisher, metrics *MetricsService, logger *zap.Logger, cfg jobs.QueueConfig) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	svc := &EventService{publisher: publisher, metrics: metrics, logger: logger, now: time.Now}
	cfg.Logger = logger
	cfg.DeadLetter = svc.deadLetter
	svc.queue = jobs.NewQueue("events", svc.handle, cfg)
	return svc
}

// Start launches the publishing workers.
func (s *EventService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop waits for in-flight publishes and closes the publisher.
func (s *EventService) Stop() {
	s.queue.Stop()
	if err := s.publisher.Close(); err != nil {
		s.logger.Warn("close event publisher", zap.Error(err))
	}
}

// PublishShowListed queues the show.listed event for show.
func (s *EventService) PublishShowListed(ctx context.Context, show models.Show) error {
	event := models.ShowListedEvent{
		ShowID:    show.ID,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
		StartTime: show.StartTime,
		EndTime:   show.EndTime(),
		ListedAt:  s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", EventTypeShowListed, err)
	}
	return s.queue.Enqueue(jobs.Job{ID: uuid.NewString(), Type: EventTypeShowListed, Payload: payload})
}

func (s *EventService) handle(ctx context.Context, job jobs.Job) error {
	err := s.publisher.Publish(ctx, messaging.Message{
		ID:        job.ID,
		Type:      job.Type,
		Body:      job.Payload,
		Timestamp: job.Enqueued,
	})
	s.metrics.RecordEventPublished(job.Type, err)
	return err
}

func (s *EventService) deadLetter(job jobs.Job, err error) {
	s.logger.Error("event dropped",
		zap.String("event_id", job.ID),
		zap.String("type", job.Type),
		zap.ByteString("payload", job.Payload),
		zap.Error(err),
	)
}
