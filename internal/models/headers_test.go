package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

func TestHeaderPayloadFromHeadersConfirmSource(t *testing.T) {
	for _, source := range []PaymentSource{
		PaymentSourceMerchantServer,
		PaymentSourcePostman,
		PaymentSourceDashboard,
		PaymentSourceSdk,
	} {
		headers := http.Header{}
		headers.Set(HeaderPaymentConfirmSource, string(source))

		payload, err := HeaderPayloadFromHeaders(headers)
		require.NoError(t, err, "source %q", source)
		require.NotNil(t, payload.PaymentConfirmSource)
		require.Equal(t, source, *payload.PaymentConfirmSource)
	}
}

func TestHeaderPayloadFromHeadersRejectsInternalSources(t *testing.T) {
	for _, source := range []PaymentSource{
		PaymentSourceWebhook,
		PaymentSourceExternalAuthenticator,
	} {
		headers := http.Header{}
		headers.Set(HeaderPaymentConfirmSource, string(source))

		_, err := HeaderPayloadFromHeaders(headers)
		require.Error(t, err, "source %q", source)
		var invalid *apperrors.InvalidRequestData
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "payment_confirm_source header should not be internal", invalid.Message)
	}
}

func TestHeaderPayloadFromHeadersRejectsUnknownSource(t *testing.T) {
	headers := http.Header{}
	headers.Set(HeaderPaymentConfirmSource, "browser")

	_, err := HeaderPayloadFromHeaders(headers)
	require.Error(t, err)
	var invalid *apperrors.InvalidRequestData
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "invalid data received in payment_confirm_source header", invalid.Message)
}

func TestHeaderPayloadFromHeadersConfirmSourceCaseInsensitive(t *testing.T) {
	headers := http.Header{}
	headers.Set(HeaderPaymentConfirmSource, "Dashboard")

	payload, err := HeaderPayloadFromHeaders(headers)
	require.NoError(t, err)
	require.NotNil(t, payload.PaymentConfirmSource)
	require.Equal(t, PaymentSourceDashboard, *payload.PaymentConfirmSource)
}

func TestHeaderPayloadFromHeadersLatencyFlag(t *testing.T) {
	cases := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{name: "absent", set: false, want: false},
		{name: "true", value: "true", set: true, want: true},
		{name: "false", value: "false", set: true, want: false},
		{name: "uppercase is not true", value: "TRUE", set: true, want: false},
		{name: "garbage", value: "yes", set: true, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			if tc.set {
				headers.Set(HeaderHsLatency, tc.value)
			}

			payload, err := HeaderPayloadFromHeaders(headers)
			require.NoError(t, err)
			require.Equal(t, tc.want, payload.LatencyMetrics)
		})
	}
}

func TestHeaderPayloadFromHeadersClientMetadata(t *testing.T) {
	headers := http.Header{}
	headers.Set(HeaderClientSource, "checkout-sdk")
	headers.Set(HeaderClientVersion, "2.14.0")

	payload, err := HeaderPayloadFromHeaders(headers)
	require.NoError(t, err)
	require.Equal(t, "checkout-sdk", payload.ClientSource)
	require.Equal(t, "2.14.0", payload.ClientVersion)
	require.Nil(t, payload.PaymentConfirmSource)
}

func TestPaymentSourceForInternalUseOnly(t *testing.T) {
	expected := map[PaymentSource]bool{
		PaymentSourceMerchantServer:        false,
		PaymentSourcePostman:               false,
		PaymentSourceDashboard:             false,
		PaymentSourceSdk:                   false,
		PaymentSourceWebhook:               true,
		PaymentSourceExternalAuthenticator: true,
	}
	require.Len(t, expected, len(AllPaymentSources))

	for _, source := range AllPaymentSources {
		require.Equal(t, expected[source], source.ForInternalUseOnly(), "source %q", source)
	}
}
