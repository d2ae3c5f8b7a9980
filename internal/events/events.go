// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes profile change notifications to Kafka.
// Consumers (search indexing, audit) are outside of this repository.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=../mock/publisher_mock.go -package=mock

// Publisher delivers profile events.
type Publisher interface {
	Publish(ctx context.Context, event models.ProfileEvent) error
	Close() error
}

// ErrPublishing wraps every failure to deliver an event.
var ErrPublishing = errors.New("failed to publish profile event")

// messageWriter is the part of [kafka.Writer] the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewPublisher returns a Kafka publisher, or a no-op one when no broker is
// configured.
func NewPublisher(cfg config.Events, log *logger.Logger) Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info().Str("func", "events.NewPublisher").Msg("kafka brokers are not set, profile events disabled")
		return NewNopPublisher()
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	log.Info().
		Str("func", "events.NewPublisher").
		Strs("brokers", cfg.KafkaBrokers).
		Str("topic", cfg.KafkaTopic).
		Msg("kafka producer initialized")

	return newKafkaPublisher(writer, cfg.KafkaTopic)
}

func newKafkaPublisher(writer messageWriter, topic string) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, topic: topic}
}

// Publish writes the event keyed by user id, so events of one user keep
// their order within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event models.ProfileEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishing, err)
	}

	msg := kafka.Message{
		Key:     []byte(event.UserID),
		Value:   value,
		Headers: []kafka.Header{{Key: "type", Value: []byte(event.Type)}},
	}
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: "trace_id", Value: []byte(traceID)})
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrPublishing, p.topic, err)
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, models.ProfileEvent) error { return nil }

func (nopPublisher) Close() error { return nil }
