package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

var nonRoutableConnectors = map[Connector]bool{
	ConnectorGpayments:      true,
	ConnectorNetcetera:      true,
	ConnectorPlaid:          true,
	ConnectorRiskified:      true,
	ConnectorSignifyd:       true,
	ConnectorThreedsecureio: true,
}

func TestConnectorRoutable(t *testing.T) {
	for _, connector := range AllConnectors {
		routable, err := connector.Routable()
		if nonRoutableConnectors[connector] {
			require.Error(t, err, "connector %q", connector)
			var invalid *apperrors.InvalidValue
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, fmt.Sprintf("%s is not a routable connector", connector), invalid.Message)
			continue
		}
		require.NoError(t, err, "connector %q", connector)
		require.Equal(t, string(connector), string(routable))
	}
}

func TestParseConnector(t *testing.T) {
	parsed, err := ParseConnector("stripe")
	require.NoError(t, err)
	require.Equal(t, ConnectorStripe, parsed)

	_, err = ParseConnector("acmepay")
	require.Error(t, err)
	var incorrect *apperrors.IncorrectValueProvided
	require.ErrorAs(t, err, &incorrect)
	require.Equal(t, "connector", incorrect.FieldName)
}
