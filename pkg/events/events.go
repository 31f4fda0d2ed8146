package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewNATSPublisher(url string, logger *zap.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("ttravel-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn, logger: logger.Named("events")}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	n.logger.Debug("publishing event", zap.String("subject", subject), zap.ByteString("data", payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	return n.conn.Drain()
}

// NoopPublisher discards events. Used when NATS_URL is not set.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NoopPublisher) Close() error { return nil }

// Event subjects
const (
	ContactSubmitted     = "contact.submitted"
	NewsletterSubscribed = "newsletter.subscribed"
	GallerySubmitted     = "gallery.submitted"
	GalleryApproved      = "gallery.approved"
)

type ContactSubmittedEvent struct {
	SubmissionID string    `json:"submission_id"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	CreatedAt    time.Time `json:"created_at"`
}

type NewsletterSubscribedEvent struct {
	SubscriptionID string `json:"subscription_id"`
	Email          string `json:"email"`
	Reactivated    bool   `json:"reactivated"`
}

type GalleryImageEvent struct {
	ImageID      string    `json:"image_id"`
	Title        string    `json:"title"`
	UploaderName string    `json:"uploader_name"`
	At           time.Time `json:"at"`
}
