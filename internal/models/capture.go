package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaptureStatus is the restricted state machine for an individual capture
// when a payment runs multiple partial captures. It is only ever produced by
// narrowing an AttemptStatus through AttemptStatus.CaptureStatus.
type CaptureStatus string

const (
	CaptureStatusStarted CaptureStatus = "started"
	CaptureStatusCharged CaptureStatus = "charged"
	CaptureStatusPending CaptureStatus = "pending"
	CaptureStatusFailed  CaptureStatus = "failed"
)

// AllCaptureStatuses lists every defined capture status.
var AllCaptureStatuses = []CaptureStatus{
	CaptureStatusStarted,
	CaptureStatusCharged,
	CaptureStatusPending,
	CaptureStatusFailed,
}

// Capture is one partial capture against an authorized payment.
type Capture struct {
	CaptureID       string
	PaymentID       string
	AttemptID       string
	Status          CaptureStatus
	Amount          decimal.Decimal
	Currency        string
	Connector       RoutableConnector
	CaptureSequence int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
