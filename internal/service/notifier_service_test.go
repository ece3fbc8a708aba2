package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fractional-share-registry/config"
	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testEvent() *domain.LedgerEvent {
	assetID := int64(7)
	accountID := uuid.New()
	amount := int64(300)
	return &domain.LedgerEvent{
		ID:        uuid.New(),
		Type:      domain.EventSharesPurchased,
		AssetID:   &assetID,
		AccountID: &accountID,
		Amount:    &amount,
		Payload:   []byte(`{"payment_sent":30000}`),
		CreatedAt: time.Now().UTC(),
	}
}

func TestWebhookNotifier_DeliversSignedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var received atomic.Pointer[NotifierPayload]
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload NotifierPayload
		require.NoError(t, json.Unmarshal(body, &payload))
		received.Store(&payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sigSvc := NewHMACSignatureService()
	marker := mocks.NewMockDeliveryMarker(ctrl)
	marker.EXPECT().FirstDelivery(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	notifier := NewWebhookNotifier(config.WebhookConfig{
		URL:        server.URL,
		Secret:     "webhook-secret",
		Timeout:    2 * time.Second,
		MaxRetries: 0,
	}, sigSvc, marker, server.Client(), zerolog.Nop())

	event := testEvent()
	notifier.deliver(event)

	payload := received.Load()
	require.NotNil(t, payload)
	assert.Equal(t, string(domain.EventSharesPurchased), payload.EventType)
	assert.Equal(t, event.ID.String(), payload.Data.EventID)
	assert.Equal(t, int64(7), *payload.Data.AssetID)

	dataBytes, err := json.Marshal(payload.Data)
	require.NoError(t, err)
	assert.True(t, sigSvc.Verify("webhook-secret", string(dataBytes), payload.Signature),
		"signature should cover the event data")
}

func TestWebhookNotifier_SkipsAlreadyDeliveredEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	marker := mocks.NewMockDeliveryMarker(ctrl)
	marker.EXPECT().FirstDelivery(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	notifier := NewWebhookNotifier(config.WebhookConfig{
		URL:     server.URL,
		Secret:  "webhook-secret",
		Timeout: 2 * time.Second,
	}, NewHMACSignatureService(), marker, server.Client(), zerolog.Nop())

	notifier.deliver(testEvent())

	assert.Equal(t, int32(0), calls.Load(), "duplicate event should not be posted")
}

func TestWebhookNotifier_MarkerFailureStillDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	marker := mocks.NewMockDeliveryMarker(ctrl)
	marker.EXPECT().FirstDelivery(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, assert.AnError)

	notifier := NewWebhookNotifier(config.WebhookConfig{
		URL:     server.URL,
		Secret:  "webhook-secret",
		Timeout: 2 * time.Second,
	}, NewHMACSignatureService(), marker, server.Client(), zerolog.Nop())

	notifier.deliver(testEvent())

	assert.Equal(t, int32(1), calls.Load(), "marker outage degrades to at-least-once delivery")
}

func TestWebhookNotifier_BlankURLDisablesDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No marker or client expectations: Enqueue must return without
	// spawning a delivery.
	notifier := NewWebhookNotifier(config.WebhookConfig{},
		NewHMACSignatureService(), mocks.NewMockDeliveryMarker(ctrl), http.DefaultClient, zerolog.Nop())

	notifier.Enqueue(testEvent())
}
