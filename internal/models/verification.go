package models

// WebhookVerificationRequest asks the verifier service whether a connector
// notification is authentic. Sent over NATS request/reply.
type WebhookVerificationRequest struct {
	Connector  string `json:"connector"`
	EventID    string `json:"event_id"`
	ObjectID   string `json:"object_id"`
	MerchantID string `json:"merchant_id"`
}

// WebhookVerificationResponse is the verifier's verdict.
type WebhookVerificationResponse struct {
	Decision string `json:"decision"` // accept, reject
	Reason   string `json:"reason"`
}
