package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fractional-share-registry/config"
	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"

	"github.com/rs/zerolog"
)

// notifierRetryIntervals spaces out redelivery attempts.
var notifierRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

const deliveryMarkerTTL = 24 * time.Hour

// NotifierPayload is the JSON structure posted to the webhook URL.
type NotifierPayload struct {
	EventType string            `json:"event_type"`
	Data      NotifierEventData `json:"data"`
	Signature string            `json:"signature"`
}

// NotifierEventData carries the ledger event details in the webhook.
type NotifierEventData struct {
	EventID   string          `json:"event_id"`
	AssetID   *int64          `json:"asset_id,omitempty"`
	AccountID *string         `json:"account_id,omitempty"`
	Amount    *int64          `json:"amount,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier implements ports.EventNotifier. Delivery happens after
// commit, off the request path; the delivery marker keeps an event from
// being posted twice.
type WebhookNotifier struct {
	cfg        config.WebhookConfig
	sigSvc     ports.SignatureService
	marker     ports.DeliveryMarker
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(
	cfg config.WebhookConfig,
	sigSvc ports.SignatureService,
	marker ports.DeliveryMarker,
	httpClient HTTPClient,
	log zerolog.Logger,
) *WebhookNotifier {
	return &WebhookNotifier{
		cfg:        cfg,
		sigSvc:     sigSvc,
		marker:     marker,
		httpClient: httpClient,
		log:        log,
	}
}

// Enqueue schedules one committed event for delivery. A blank webhook
// URL disables the notifier.
func (n *WebhookNotifier) Enqueue(event *domain.LedgerEvent) {
	if n.cfg.URL == "" {
		return
	}
	go n.deliver(event)
}

func (n *WebhookNotifier) deliver(event *domain.LedgerEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), n.cfg.Timeout)
	defer cancel()

	first, err := n.marker.FirstDelivery(ctx, event.ID.String(), deliveryMarkerTTL)
	if err != nil {
		n.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("webhook: delivery marker check failed, delivering anyway")
	} else if !first {
		n.log.Debug().Str("event_id", event.ID.String()).Msg("webhook: event already delivered, skipping")
		return
	}

	data := NotifierEventData{
		EventID:   event.ID.String(),
		AssetID:   event.AssetID,
		Amount:    event.Amount,
		Payload:   event.Payload,
		Timestamp: event.CreatedAt.Unix(),
	}
	if event.AccountID != nil {
		id := event.AccountID.String()
		data.AccountID = &id
	}

	dataBytes, _ := json.Marshal(data)
	payload := NotifierPayload{
		EventType: string(event.Type),
		Data:      data,
		Signature: n.sigSvc.Sign(n.cfg.Secret, string(dataBytes)),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("webhook: failed to marshal payload")
		return
	}

	maxAttempts := n.cfg.MaxRetries
	if maxAttempts > len(notifierRetryIntervals) {
		maxAttempts = len(notifierRetryIntervals)
	}

	for attempt := 0; attempt <= maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(notifierRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, n.cfg.URL, bytes.NewReader(payloadBytes))
		if err != nil {
			n.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("webhook: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.httpClient.Do(req)
		if err != nil {
			n.log.Warn().Err(err).Str("event_id", event.ID.String()).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			n.log.Info().Str("event_id", event.ID.String()).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered")
			return
		}

		n.log.Warn().Str("event_id", event.ID.String()).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	n.log.Error().Str("event_id", event.ID.String()).Msg("webhook: all retry attempts exhausted")
}
