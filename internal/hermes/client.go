package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Header carrying the event type so consumers can filter without decoding.
const eventTypeHeader = "Tarsiah-Event"

// Client publishes comparison and table events. The API treats a nil Client
// as "events disabled".
type Client interface {
	Publish(subject string, data interface{}) error
	Close()
}

// NATSClient publishes onto a JetStream-backed subject space.
type NATSClient struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNATSClient(ctx context.Context, url string, logger *slog.Logger) (*NATSClient, error) {
	nc, err := nats.Connect(url,
		nats.Name("tarsiah"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("hermes disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("hermes reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	if err := ensureStream(ctx, nc); err != nil {
		// Core NATS publishing still works; events just are not retained.
		logger.Warn("event stream unavailable", "stream", StreamName, "error", err)
	}
	return &NATSClient{conn: nc, logger: logger}, nil
}

func ensureStream(ctx context.Context, nc *nats.Conn) error {
	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("jetstream: %w", err)
	}
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "proposal comparison and document table events",
		Subjects:    StreamSubjects(),
		MaxAge:      streamMaxAge,
	})
	return err
}

func (c *NATSClient) Publish(subject string, data interface{}) error {
	msg, err := newEventMsg(subject, data)
	if err != nil {
		return err
	}
	return c.conn.PublishMsg(msg)
}

// newEventMsg encodes data as a JSON event message on subject.
func newEventMsg(subject string, data interface{}) (*nats.Msg, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", subject, err)
	}
	msg := nats.NewMsg(subject)
	msg.Header.Set(eventTypeHeader, eventType(subject))
	msg.Header.Set("Content-Type", "application/json")
	msg.Data = payload
	return msg, nil
}

// Close flushes pending events before disconnecting.
func (c *NATSClient) Close() {
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("nats drain failed", "error", err)
		c.conn.Close()
	}
}
