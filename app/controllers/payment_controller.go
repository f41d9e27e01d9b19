package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lojapratica/pix-backend/app/models"
	"github.com/lojapratica/pix-backend/pkg/utils"
)

// PaymentProvider is the slice of the payment API the pipeline needs.
type PaymentProvider interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
}

// Notifier delivers the confirmation message to the customer.
type Notifier interface {
	SendText(ctx context.Context, to, body string) error
}

type PaymentController struct {
	Provider PaymentProvider
	Notifier Notifier
	Log      *zap.Logger
}

// CreatePayment handles POST /create-payment: builds the provider request
// with placeholder defaults, stashes the raw phone in the provider metadata
// and relays the scannable code back to the caller. Nothing is persisted.
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	req := &models.CreatePaymentRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	email := req.Email
	if email == "" {
		email = "no-email@teste.com"
	}
	nome := req.Nome
	if nome == "" {
		nome = "Cliente"
	}

	payment, err := pc.Provider.CreatePayment(c.UserContext(), models.PaymentRequest{
		Amount:        req.Amount,
		PayerName:     nome,
		PayerEmail:    email,
		CustomerPhone: req.Telefone,
	})
	if err != nil {
		pc.Log.Error("payment creation failed", zap.Error(err), zap.Float64("amount", req.Amount))
		var apiErr *utils.APIError
		if errors.As(err, &apiErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   apiErr.Diagnostics(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"id":       payment.ID,
		"qr":       payment.QRCode,
		"qrBase64": payment.QRCodeBase64,
	})
}

// Webhook handles POST /webhook-mp, the provider's payment-status callback.
// The event is never trusted at face value: the payment is re-fetched from
// the provider and only an approved status with a known customer phone
// triggers the WhatsApp confirmation. A delivery failure on the messaging
// side still acknowledges the webhook, otherwise the provider would retry
// and duplicate the notification for an already-approved payment.
//
// Duplicate webhook deliveries for the same approved payment send the
// message again; there is no notified-payment ledger.
func (pc *PaymentController) Webhook(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return c.SendStatus(http.StatusBadRequest)
	}

	paymentID := resolvePaymentID(payload)
	if paymentID == "" {
		return c.SendStatus(http.StatusBadRequest)
	}

	payment, err := pc.Provider.GetPayment(c.UserContext(), paymentID)
	if err != nil {
		pc.Log.Error("webhook payment lookup failed", zap.Error(err), zap.String("payment_id", paymentID))
		return c.SendStatus(http.StatusInternalServerError)
	}

	if payment.Status != models.StatusApproved {
		return c.SendStatus(http.StatusOK)
	}

	telefone := payment.CustomerPhone()
	if telefone == "" {
		return c.SendStatus(http.StatusOK)
	}
	to := utils.NormalizePhone(telefone)

	body := fmt.Sprintf("🎉 Pagamento aprovado!\n\nPIX confirmado com sucesso.\nValor: R$ %s",
		formatAmount(payment.TransactionAmount))
	if err := pc.Notifier.SendText(c.UserContext(), to, body); err != nil {
		pc.Log.Error("confirmation message failed", zap.Error(err),
			zap.String("payment_id", paymentID), zap.String("to", to))
	}

	return c.SendStatus(http.StatusOK)
}

// resolvePaymentID extracts data.id from the event payload. The provider
// sends the id both as a JSON string and as a number depending on the event
// source, so both shapes resolve.
func resolvePaymentID(payload map[string]interface{}) string {
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return ""
	}
	switch v := data["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
