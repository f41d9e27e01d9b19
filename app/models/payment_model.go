package models

import "encoding/json"

// StatusApproved is the only provider status that triggers a notification.
const StatusApproved = "approved"

// CreatePaymentRequest is the body of POST /create-payment. Nome and email
// are optional; the handler fills in placeholders before calling the
// provider.
type CreatePaymentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Nome     string  `json:"nome" validate:"lte=255"`
	Telefone string  `json:"telefone" validate:"lte=20"`
	Email    string  `json:"email" validate:"omitempty,email,lte=255"`
}

// PaymentRequest is what the pipeline submits to the payment provider. It is
// ephemeral; nothing about it is persisted locally.
type PaymentRequest struct {
	Amount        float64
	PayerName     string
	PayerEmail    string
	CustomerPhone string
}

// Payment is the provider's authoritative record for a payment. The webhook
// pipeline fetches it fresh on every event; no local copy of the status is
// ever treated as authoritative. The id keeps the provider's JSON number
// representation so it round-trips unchanged to clients.
type Payment struct {
	ID                json.Number            `json:"id"`
	Status            string                 `json:"status"`
	TransactionAmount float64                `json:"transaction_amount"`
	QRCode            string                 `json:"qr_code,omitempty"`
	QRCodeBase64      string                 `json:"qr_code_base64,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// CustomerPhone returns the phone stashed in the provider metadata when the
// payment was created, or "" when absent.
func (p *Payment) CustomerPhone() string {
	if p.Metadata == nil {
		return ""
	}
	phone, _ := p.Metadata["customer_phone"].(string)
	return phone
}
