package models

import (
	"net/http"
	"strings"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// Trusted header names accepted from upstream gateways.
const (
	HeaderPaymentConfirmSource = "X-Payment-Confirm-Source"
	HeaderHsLatency            = "X-Hs-Latency"
	HeaderClientSource         = "X-Client-Source"
	HeaderClientVersion        = "X-Client-Version"
)

// PaymentSource identifies which surface initiated a payment operation.
type PaymentSource string

const (
	PaymentSourceMerchantServer        PaymentSource = "merchant_server"
	PaymentSourcePostman               PaymentSource = "postman"
	PaymentSourceDashboard             PaymentSource = "dashboard"
	PaymentSourceSdk                   PaymentSource = "sdk"
	PaymentSourceWebhook               PaymentSource = "webhook"
	PaymentSourceExternalAuthenticator PaymentSource = "external_authenticator"
)

// AllPaymentSources lists every defined payment source.
var AllPaymentSources = []PaymentSource{
	PaymentSourceMerchantServer,
	PaymentSourcePostman,
	PaymentSourceDashboard,
	PaymentSourceSdk,
	PaymentSourceWebhook,
	PaymentSourceExternalAuthenticator,
}

// ParsePaymentSource validates a raw payment source string.
func ParsePaymentSource(value string) (PaymentSource, error) {
	s := PaymentSource(value)
	for _, known := range AllPaymentSources {
		if s == known {
			return s, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "payment_confirm_source"}
}

// ForInternalUseOnly reports whether the source is reserved for flows the
// engine itself originates. External callers must never claim these.
func (s PaymentSource) ForInternalUseOnly() bool {
	switch s {
	case PaymentSourceWebhook, PaymentSourceExternalAuthenticator:
		return true
	case PaymentSourceMerchantServer, PaymentSourcePostman,
		PaymentSourceDashboard, PaymentSourceSdk:
		return false
	}
	return false
}

// HeaderPayload carries the trusted request metadata extracted from gateway
// headers. LatencyMetrics is always populated; the confirm source is nil
// when the header is absent.
type HeaderPayload struct {
	PaymentConfirmSource *PaymentSource
	LatencyMetrics       bool
	ClientSource         string
	ClientVersion        string
}

// HeaderPayloadFromHeaders extracts and validates the trusted headers.
// A malformed or internal-only confirm source fails the whole request; the
// remaining headers are best effort.
func HeaderPayloadFromHeaders(headers http.Header) (*HeaderPayload, error) {
	payload := &HeaderPayload{
		ClientSource:  headers.Get(HeaderClientSource),
		ClientVersion: headers.Get(HeaderClientVersion),
	}

	if raw := headers.Get(HeaderPaymentConfirmSource); raw != "" {
		source, err := ParsePaymentSource(strings.ToLower(raw))
		if err != nil {
			return nil, &apperrors.InvalidRequestData{
				Message: "invalid data received in payment_confirm_source header",
			}
		}
		if source.ForInternalUseOnly() {
			return nil, &apperrors.InvalidRequestData{
				Message: "payment_confirm_source header should not be internal",
			}
		}
		payload.PaymentConfirmSource = &source
	}

	payload.LatencyMetrics = headers.Get(HeaderHsLatency) == "true"

	return payload, nil
}
