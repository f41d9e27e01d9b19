package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGraphBaseURL = "https://graph.facebook.com"

// WhatsAppClient sends text messages through the WhatsApp Cloud API.
type WhatsAppClient struct {
	BaseURL    string
	Token      string
	PhoneID    string
	HTTPClient *http.Client
}

func NewWhatsAppClient(token, phoneID string) *WhatsAppClient {
	return &WhatsAppClient{
		BaseURL:    defaultGraphBaseURL,
		Token:      token,
		PhoneID:    phoneID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

// SendText delivers a text message to an international-format number.
func (wc *WhatsAppClient) SendText(ctx context.Context, to, body string) error {
	msg := whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: body},
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v20.0/%s/messages", wc.BaseURL, wc.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+wc.Token)

	res, err := wc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		respBody, _ := io.ReadAll(res.Body)
		return &APIError{StatusCode: res.StatusCode, Body: respBody}
	}
	return nil
}
