// Package payment is the handoff client for the third-party payment gateway.
// The gateway is an opaque collaborator: the service initializes a
// transaction for the computed total and later verifies the reference token
// it handed back. Gateway internals are out of scope.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Common errors returned by the client.
var (
	ErrGatewayStatus = errors.New("payment gateway returned unexpected status")
	ErrBadPayload    = errors.New("payment gateway returned unexpected payload")
)

// Transaction is the gateway's handle for one payment attempt. The guest is
// redirected to AuthorizationURL; Reference is the opaque token verified
// afterwards.
type Transaction struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
}

// Client talks to the payment gateway's REST API.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a payment gateway client.
func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// InitializeTransaction opens a transaction for the given amount in currency
// subunits and returns the gateway's reference and authorization URL.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amountSubunits int64) (*Transaction, error) {
	payload, err := json.Marshal(map[string]any{
		"email":  email,
		"amount": amountSubunits,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Status bool        `json:"status"`
		Data   Transaction `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if !resp.Status || resp.Data.Reference == "" {
		return nil, fmt.Errorf("%w: transaction not initialized", ErrGatewayStatus)
	}
	return &resp.Data, nil
}

// VerifyTransaction reports whether the gateway confirms the reference as a
// successful payment.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (bool, error) {
	body, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return false, err
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return resp.Status && resp.Data.Status == "success", nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrGatewayStatus, resp.StatusCode, string(body))
	}
	return body, nil
}
