package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/akovalyov/movie-catalog/internal/logger"
	"github.com/akovalyov/movie-catalog/internal/models"
)

// Event actions published by the services.
const (
	ActionUserRegistered = "user.registered"
	ActionMovieCreated   = "movie.created"
	ActionMovieUpdated   = "movie.updated"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a catalog event to Kafka. A nil writer disables publishing.
func publishEvent(ctx context.Context, w KafkaWriter, action, entityID string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action, "entity_id", entityID)
		return
	}

	ev := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    action,
		EntityID:  entityID,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "action", action, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "action", action, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "action", action, "entity_id", entityID)
	}
}
