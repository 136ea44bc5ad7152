package models

import (
	"fmt"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// Connector is any integrated external system, including authentication and
// fraud providers that can never carry payment traffic themselves.
type Connector string

const (
	ConnectorAdyen           Connector = "adyen"
	ConnectorAirwallex       Connector = "airwallex"
	ConnectorAuthorizedotnet Connector = "authorizedotnet"
	ConnectorBambora         Connector = "bambora"
	ConnectorBluesnap        Connector = "bluesnap"
	ConnectorBraintree       Connector = "braintree"
	ConnectorCheckout        Connector = "checkout"
	ConnectorCoinbase        Connector = "coinbase"
	ConnectorCybersource     Connector = "cybersource"
	ConnectorDlocal          Connector = "dlocal"
	ConnectorFiserv          Connector = "fiserv"
	ConnectorGlobalpay       Connector = "globalpay"
	ConnectorGpayments       Connector = "gpayments"
	ConnectorKlarna          Connector = "klarna"
	ConnectorMollie          Connector = "mollie"
	ConnectorMultisafepay    Connector = "multisafepay"
	ConnectorNetcetera       Connector = "netcetera"
	ConnectorNuvei           Connector = "nuvei"
	ConnectorOpennode        Connector = "opennode"
	ConnectorPayme           Connector = "payme"
	ConnectorPaypal          Connector = "paypal"
	ConnectorPayu            Connector = "payu"
	ConnectorPlaid           Connector = "plaid"
	ConnectorRapyd           Connector = "rapyd"
	ConnectorRiskified       Connector = "riskified"
	ConnectorShift4          Connector = "shift4"
	ConnectorSignifyd        Connector = "signifyd"
	ConnectorSquare          Connector = "square"
	ConnectorStripe          Connector = "stripe"
	ConnectorThreedsecureio  Connector = "threedsecureio"
	ConnectorTrustpay        Connector = "trustpay"
	ConnectorVolt            Connector = "volt"
	ConnectorWise            Connector = "wise"
	ConnectorWorldline       Connector = "worldline"
	ConnectorWorldpay        Connector = "worldpay"
	ConnectorZen             Connector = "zen"
)

// AllConnectors lists every integrated connector.
var AllConnectors = []Connector{
	ConnectorAdyen,
	ConnectorAirwallex,
	ConnectorAuthorizedotnet,
	ConnectorBambora,
	ConnectorBluesnap,
	ConnectorBraintree,
	ConnectorCheckout,
	ConnectorCoinbase,
	ConnectorCybersource,
	ConnectorDlocal,
	ConnectorFiserv,
	ConnectorGlobalpay,
	ConnectorGpayments,
	ConnectorKlarna,
	ConnectorMollie,
	ConnectorMultisafepay,
	ConnectorNetcetera,
	ConnectorNuvei,
	ConnectorOpennode,
	ConnectorPayme,
	ConnectorPaypal,
	ConnectorPayu,
	ConnectorPlaid,
	ConnectorRapyd,
	ConnectorRiskified,
	ConnectorShift4,
	ConnectorSignifyd,
	ConnectorSquare,
	ConnectorStripe,
	ConnectorThreedsecureio,
	ConnectorTrustpay,
	ConnectorVolt,
	ConnectorWise,
	ConnectorWorldline,
	ConnectorWorldpay,
	ConnectorZen,
}

// ParseConnector validates a raw connector string.
func ParseConnector(value string) (Connector, error) {
	c := Connector(value)
	for _, known := range AllConnectors {
		if c == known {
			return c, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "connector"}
}

// RoutableConnector is a connector that payment traffic can be routed
// through. Authentication, fraud and data providers are excluded by
// construction.
type RoutableConnector string

const (
	RoutableAdyen           RoutableConnector = "adyen"
	RoutableAirwallex       RoutableConnector = "airwallex"
	RoutableAuthorizedotnet RoutableConnector = "authorizedotnet"
	RoutableBambora         RoutableConnector = "bambora"
	RoutableBluesnap        RoutableConnector = "bluesnap"
	RoutableBraintree       RoutableConnector = "braintree"
	RoutableCheckout        RoutableConnector = "checkout"
	RoutableCoinbase        RoutableConnector = "coinbase"
	RoutableCybersource     RoutableConnector = "cybersource"
	RoutableDlocal          RoutableConnector = "dlocal"
	RoutableFiserv          RoutableConnector = "fiserv"
	RoutableGlobalpay       RoutableConnector = "globalpay"
	RoutableKlarna          RoutableConnector = "klarna"
	RoutableMollie          RoutableConnector = "mollie"
	RoutableMultisafepay    RoutableConnector = "multisafepay"
	RoutableNuvei           RoutableConnector = "nuvei"
	RoutableOpennode        RoutableConnector = "opennode"
	RoutablePayme           RoutableConnector = "payme"
	RoutablePaypal          RoutableConnector = "paypal"
	RoutablePayu            RoutableConnector = "payu"
	RoutableRapyd           RoutableConnector = "rapyd"
	RoutableShift4          RoutableConnector = "shift4"
	RoutableSquare          RoutableConnector = "square"
	RoutableStripe          RoutableConnector = "stripe"
	RoutableTrustpay        RoutableConnector = "trustpay"
	RoutableVolt            RoutableConnector = "volt"
	RoutableWise            RoutableConnector = "wise"
	RoutableWorldline       RoutableConnector = "worldline"
	RoutableWorldpay        RoutableConnector = "worldpay"
	RoutableZen             RoutableConnector = "zen"
)

// Routable converts the connector into its routable form. Providers that
// only do authentication, fraud scoring or account data are rejected so
// routing configuration cannot reference them.
func (c Connector) Routable() (RoutableConnector, error) {
	switch c {
	case ConnectorAdyen:
		return RoutableAdyen, nil
	case ConnectorAirwallex:
		return RoutableAirwallex, nil
	case ConnectorAuthorizedotnet:
		return RoutableAuthorizedotnet, nil
	case ConnectorBambora:
		return RoutableBambora, nil
	case ConnectorBluesnap:
		return RoutableBluesnap, nil
	case ConnectorBraintree:
		return RoutableBraintree, nil
	case ConnectorCheckout:
		return RoutableCheckout, nil
	case ConnectorCoinbase:
		return RoutableCoinbase, nil
	case ConnectorCybersource:
		return RoutableCybersource, nil
	case ConnectorDlocal:
		return RoutableDlocal, nil
	case ConnectorFiserv:
		return RoutableFiserv, nil
	case ConnectorGlobalpay:
		return RoutableGlobalpay, nil
	case ConnectorKlarna:
		return RoutableKlarna, nil
	case ConnectorMollie:
		return RoutableMollie, nil
	case ConnectorMultisafepay:
		return RoutableMultisafepay, nil
	case ConnectorNuvei:
		return RoutableNuvei, nil
	case ConnectorOpennode:
		return RoutableOpennode, nil
	case ConnectorPayme:
		return RoutablePayme, nil
	case ConnectorPaypal:
		return RoutablePaypal, nil
	case ConnectorPayu:
		return RoutablePayu, nil
	case ConnectorRapyd:
		return RoutableRapyd, nil
	case ConnectorShift4:
		return RoutableShift4, nil
	case ConnectorSquare:
		return RoutableSquare, nil
	case ConnectorStripe:
		return RoutableStripe, nil
	case ConnectorTrustpay:
		return RoutableTrustpay, nil
	case ConnectorVolt:
		return RoutableVolt, nil
	case ConnectorWise:
		return RoutableWise, nil
	case ConnectorWorldline:
		return RoutableWorldline, nil
	case ConnectorWorldpay:
		return RoutableWorldpay, nil
	case ConnectorZen:
		return RoutableZen, nil
	case ConnectorGpayments, ConnectorNetcetera, ConnectorPlaid,
		ConnectorRiskified, ConnectorSignifyd, ConnectorThreedsecureio:
		return "", &apperrors.InvalidValue{
			Message: fmt.Sprintf("%s is not a routable connector", c),
		}
	}
	return "", &apperrors.InvalidValue{
		Message: fmt.Sprintf("%s is not a routable connector", c),
	}
}
