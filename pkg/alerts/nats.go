package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const defaultAlertSubject = "pgradar.alerts"

type NATSConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	URL     string `json:"url" yaml:"url"`

	// Subject prefix; alerts go to <subject>.<instance>.<type>.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
}

// Publisher is the part of a NATS connection the channel uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSChannel publishes alerts as JSON on a NATS subject.
type NATSChannel struct {
	pub     Publisher
	conn    *nats.Conn
	subject string
}

// DialNATSChannel connects to the configured server and returns a channel
// that owns the connection.
func DialNATSChannel(cfg NATSConfig) (*NATSChannel, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name("pgradar"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}

	log.Printf("Alert channel connected to NATS at %s", cfg.URL)

	ch := NewNATSChannel(conn, cfg.Subject)
	ch.conn = conn

	return ch, nil
}

func NewNATSChannel(pub Publisher, subject string) *NATSChannel {
	if subject == "" {
		subject = defaultAlertSubject
	}

	return &NATSChannel{
		pub:     pub,
		subject: subject,
	}
}

func (*NATSChannel) Name() string {
	return "nats"
}

func (*NATSChannel) Accepts(*Alert) bool {
	return true
}

func (n *NATSChannel) Send(_ context.Context, alert *Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s.%s.%s", n.subject, alert.InstanceID, alert.Type)

	if err := n.pub.Publish(subject, data); err != nil {
		return fmt.Errorf("%w: %w", errNATSPublish, err)
	}

	return nil
}

func (n *NATSChannel) Close() {
	if n.conn != nil {
		n.conn.Close()
		log.Printf("Alert channel disconnected from NATS")
	}
}
