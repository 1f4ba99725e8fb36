package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/lumenops/vendor-extract-service/common/config"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// NatsBroker publishes extraction lifecycle events to NATS.
type NatsBroker struct {
	conn *nats.Conn
}

// SetupNatsBroker connects to the NATS server described by cfg. Returns
// (nil, nil) when NATS is disabled so callers can treat the broker as
// optional.
func SetupNatsBroker(cfg config.Config) (*NatsBroker, error) {
	if !cfg.Nats.Enabled {
		log.Info().Msg("NATS disabled, extraction events will not be published")
		return nil, nil
	}

	opts := []nats.Option{
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("Disconnected from NATS")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("server", nc.ConnectedUrl()).Msg("Reconnected to NATS")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info().Msg("NATS connection closed")
		}),
	}

	// Add auth if provided
	if cfg.Nats.Username != "" && cfg.Nats.Password != "" {
		opts = append(opts, nats.UserInfo(cfg.Nats.Username, cfg.Nats.Password))
	}

	conn, err := nats.Connect(cfg.Nats.URL(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info().Str("server", conn.ConnectedUrl()).Msg("Connected to NATS")
	return &NatsBroker{conn: conn}, nil
}

// Close drains the NATS connection.
func (b *NatsBroker) Close() error {
	if b == nil || b.conn == nil {
		return nil
	}
	if b.conn.IsConnected() {
		return b.conn.Drain()
	}
	return nil
}

// PublishEvent publishes an event to subject. A nil broker is a no-op so
// the publish path works with NATS disabled.
func (b *NatsBroker) PublishEvent(subject string, event interface{}) error {
	if b == nil || b.conn == nil {
		return nil
	}
	if !b.conn.IsConnected() {
		return fmt.Errorf("not connected to NATS")
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return b.conn.Publish(subject, msg)
}
