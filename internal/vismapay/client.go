package vismapay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tiketti-payments/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://www.vismapay.com/pbwapi"

	// apiVersion signs auth_payment requests, methodsVersion the
	// merchant_payment_methods listing. Both are fixed by the gateway.
	apiVersion     = "w3.1"
	methodsVersion = "2"

	// Only EUR is supported: the minor-unit conversion in checkout assumes
	// a 2-decimal currency.
	currency = "EUR"
)

// Client talks to the Visma Pay pbwapi. All outbound requests carry an
// HMAC-SHA256 authcode computed from the sub-merchant private key; the same
// key verifies inbound callback parameters.
type Client struct {
	apiKey     string
	privateKey string
	baseURL    string
	lang       string
	httpClient *http.Client
}

// Validator is the part of the client the callback handler needs.
type Validator interface {
	ValidateCallback(q url.Values) bool
}

func NewClient(apiKey, privateKey string) *Client {
	if apiKey == "" || privateKey == "" {
		logger.L().Warn("vismapay client created with empty credentials")
	}

	return &Client{
		apiKey:     apiKey,
		privateKey: privateKey,
		baseURL:    defaultBaseURL,
		lang:       "en",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithLang sets the language code sent in the payment method descriptor.
func (c *Client) WithLang(lang string) *Client {
	if lang != "" {
		c.lang = lang
	}
	return c
}

// Authcode computes the MAC over the given fields: uppercase hex of
// HMAC-SHA256 keyed with the private key over the fields joined with "|".
// The field order is fixed per message type by the gateway.
func (c *Client) Authcode(parts ...string) string {
	mac := hmac.New(sha256.New, []byte(c.privateKey))
	mac.Write([]byte(strings.Join(parts, "|")))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// CreateToken registers a payment with the gateway and returns the token
// used to send the customer to the hosted payment page. amount is in euro
// cents and must be non-negative; callbackURL receives both the customer
// return redirect and the server-to-server notify call.
func (c *Client) CreateToken(ctx context.Context, orderNumber string, amount int64, email, callbackURL string) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_number", orderNumber),
		zap.Int64("amount", amount),
	)

	body := tokenRequest{
		Version:     apiVersion,
		APIKey:      c.apiKey,
		OrderNumber: orderNumber,
		Amount:      amount,
		Currency:    currency,
		Email:       email,
		PaymentMethod: paymentMethodSpec{
			Type:      "e-payment",
			ReturnURL: callbackURL,
			NotifyURL: callbackURL,
			Lang:      c.lang,
		},
		Authcode: c.Authcode(c.apiKey, orderNumber),
	}

	var res tokenResponse
	if err := c.post(ctx, "/auth_payment", body, &res); err != nil {
		log.Error("token request failed", zap.Error(err))
		return "", err
	}

	if res.Result != 0 {
		log.Warn("gateway rejected token request",
			zap.Int("result", res.Result),
			zap.Strings("errors", res.Errors),
		)
		return "", &RejectedError{Result: res.Result, Errors: res.Errors, URL: res.URL}
	}

	if res.Token == "" {
		return "", &ProtocolError{Reason: "result 0 without token"}
	}

	log.Info("payment token created")
	return res.Token, nil
}

// PaymentMethods lists the payment options enabled for the merchant.
func (c *Client) PaymentMethods(ctx context.Context) (*PaymentMethodsResponse, error) {
	body := methodsRequest{
		Version:  methodsVersion,
		APIKey:   c.apiKey,
		Currency: currency,
		Authcode: c.Authcode(c.apiKey),
	}

	var res PaymentMethodsResponse
	if err := c.post(ctx, "/merchant_payment_methods", body, &res); err != nil {
		logger.FromCtx(ctx).Error("payment methods request failed", zap.Error(err))
		return nil, err
	}

	if res.Result != 0 {
		return nil, &RejectedError{Result: res.Result, Errors: res.Errors}
	}

	return &res, nil
}

// PaymentURL builds the hosted payment page URL for a token. No network call.
func (c *Client) PaymentURL(token string) string {
	return c.baseURL + "/token/" + token
}

// ValidateCallback checks the authcode of an inbound redirect/notify request
// against the private key. The MAC covers RETURN_CODE and ORDER_NUMBER, with
// SETTLED and then INCIDENT_ID appended only when present in the query; an
// absent optional field is omitted, not replaced with an empty string.
// An unparseable callback is never authentic, so this returns false instead
// of an error for any missing required field.
func (c *Client) ValidateCallback(q url.Values) bool {
	if !q.Has("RETURN_CODE") || !q.Has("ORDER_NUMBER") || !q.Has("AUTHCODE") {
		return false
	}

	parts := []string{q.Get("RETURN_CODE"), q.Get("ORDER_NUMBER")}
	if q.Has("SETTLED") {
		parts = append(parts, q.Get("SETTLED"))
	}
	if q.Has("INCIDENT_ID") {
		parts = append(parts, q.Get("INCIDENT_ID"))
	}

	return hmac.Equal([]byte(q.Get("AUTHCODE")), []byte(c.Authcode(parts...)))
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return &CommunicationError{Op: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return &CommunicationError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &CommunicationError{Op: "post " + path, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &CommunicationError{Op: "read response", Err: err}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return &CommunicationError{Op: "decode response", Err: err}
	}

	return nil
}
