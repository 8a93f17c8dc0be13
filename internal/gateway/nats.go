package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/events"
)

const instanceHeader = "Instance-ID"

// NATSConfig holds configuration for the cross-instance event bridge
type NATSConfig struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultNATSConfig returns default bridge configuration
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           nats.DefaultURL,
		SubjectPrefix: "scores.events",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// NATSBridge relays events between instances over core NATS. Events
// published locally go out on the wire; events from other instances are
// fed into the local hub. Core NATS gives at-most-once delivery with no
// replay, which matches how viewer sessions are served.
type NATSBridge struct {
	nc         *nats.Conn
	sub        *nats.Subscription
	hub        *Hub
	config     NATSConfig
	instanceID string
}

// NewNATSBridge connects to NATS and starts relaying into the hub
func NewNATSBridge(hub *Hub, cfg NATSConfig) (*NATSBridge, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	b := &NATSBridge{
		nc:         nc,
		hub:        hub,
		config:     cfg,
		instanceID: uuid.New().String(),
	}

	sub, err := nc.Subscribe(fmt.Sprintf("%s.>", cfg.SubjectPrefix), b.handleMessage)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", cfg.SubjectPrefix, err)
	}
	b.sub = sub

	log.Info().
		Str("url", cfg.URL).
		Str("subject_prefix", cfg.SubjectPrefix).
		Str("instance_id", b.instanceID).
		Msg("NATS bridge started")

	return b, nil
}

// Publish sends an event to the other instances
func (b *NATSBridge) Publish(_ context.Context, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", b.config.SubjectPrefix, event.Type)
	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header: nats.Header{
			instanceHeader: []string{b.instanceID},
			"Event-ID":     []string{event.ID},
		},
	}

	if err := b.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}

	log.Debug().
		Str("subject", subject).
		Str("event_id", event.ID).
		Msg("event published to NATS")

	return nil
}

// handleMessage feeds an event from another instance into the local hub.
// Our own messages come back too; the instance header filters them out
// so local sessions do not see duplicates.
func (b *NATSBridge) handleMessage(msg *nats.Msg) {
	if msg.Header.Get(instanceHeader) == b.instanceID {
		return
	}

	var event events.Event
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		log.Error().Err(err).Str("subject", msg.Subject).Msg("failed to unmarshal NATS event")
		return
	}

	if err := b.hub.Publish(context.Background(), event); err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("failed to relay NATS event to hub")
	}
}

// Close drains the subscription and closes the connection
func (b *NATSBridge) Close() error {
	if b.sub != nil {
		if err := b.sub.Unsubscribe(); err != nil {
			log.Error().Err(err).Msg("failed to unsubscribe NATS bridge")
		}
	}
	if b.nc != nil {
		b.nc.Close()
	}
	return nil
}
