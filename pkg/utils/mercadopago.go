package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lojapratica/pix-backend/app/models"
)

const defaultMercadoPagoBaseURL = "https://api.mercadopago.com"

// MercadoPagoClient wraps the two payment operations used by the pipeline:
// creating a PIX payment and fetching the authoritative record by id.
type MercadoPagoClient struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

func NewMercadoPagoClient(accessToken string) *MercadoPagoClient {
	return &MercadoPagoClient{
		BaseURL:     defaultMercadoPagoBaseURL,
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type mpPayment struct {
	ID                 json.Number            `json:"id"`
	Status             string                 `json:"status"`
	TransactionAmount  float64                `json:"transaction_amount"`
	Metadata           map[string]interface{} `json:"metadata"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (p *mpPayment) toPayment() *models.Payment {
	return &models.Payment{
		ID:                p.ID,
		Status:            p.Status,
		TransactionAmount: p.TransactionAmount,
		Metadata:          p.Metadata,
		QRCode:            p.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      p.PointOfInteraction.TransactionData.QRCodeBase64,
	}
}

// CreatePayment submits a PIX payment. The raw customer phone travels in the
// provider metadata so it survives the round trip back through the webhook.
func (mc *MercadoPagoClient) CreatePayment(ctx context.Context, p models.PaymentRequest) (*models.Payment, error) {
	payload := map[string]interface{}{
		"transaction_amount": p.Amount,
		"payment_method_id":  "pix",
		"payer": map[string]interface{}{
			"email":      p.PayerEmail,
			"first_name": p.PayerName,
		},
		"metadata": map[string]interface{}{
			"customer_phone": p.CustomerPhone,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mc.BaseURL+"/v1/payments", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mc.AccessToken)
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	return mc.doPayment(req)
}

// GetPayment fetches the authoritative payment record. The webhook pipeline
// never trusts the event payload; status always comes from here.
func (mc *MercadoPagoClient) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/payments/%s", mc.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+mc.AccessToken)

	return mc.doPayment(req)
}

func (mc *MercadoPagoClient) doPayment(req *http.Request) (*models.Payment, error) {
	res, err := mc.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 300 {
		return nil, &APIError{StatusCode: res.StatusCode, Body: body}
	}

	var mp mpPayment
	if err := json.Unmarshal(body, &mp); err != nil {
		return nil, fmt.Errorf("decoding payment response: %w", err)
	}
	return mp.toPayment(), nil
}
