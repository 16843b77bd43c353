package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/catalodge/roomboard/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "guest@example.com", body["email"])
		assert.Equal(t, float64(150000), body["amount"])

		w.Write([]byte(`{"status":true,"data":{
			"reference":"ref123",
			"authorization_url":"https://gateway.example/pay/ref123",
			"access_code":"ac1"
		}}`))
	}))
	defer server.Close()

	client := payment.NewClient(server.URL, "sk_test_abc", time.Second)
	tx, err := client.InitializeTransaction(context.Background(), "guest@example.com", 150000)
	require.NoError(t, err)
	assert.Equal(t, "ref123", tx.Reference)
	assert.Equal(t, "https://gateway.example/pay/ref123", tx.AuthorizationURL)
}

func TestInitializeTransactionGatewayDeclines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false}`))
	}))
	defer server.Close()

	client := payment.NewClient(server.URL, "sk", time.Second)
	_, err := client.InitializeTransaction(context.Background(), "guest@example.com", 1000)
	assert.ErrorIs(t, err, payment.ErrGatewayStatus)
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/verify/ref123", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":{"status":"success"}}`))
	}))
	defer server.Close()

	client := payment.NewClient(server.URL, "sk", time.Second)
	ok, err := client.VerifyTransaction(context.Background(), "ref123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyTransactionNotSuccessful(t *testing.T) {
	// The envelope status alone is not enough; the transaction itself must be
	// marked successful.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{"status":"abandoned"}}`))
	}))
	defer server.Close()

	client := payment.NewClient(server.URL, "sk", time.Second)
	ok, err := client.VerifyTransaction(context.Background(), "ref123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGatewayErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := payment.NewClient(server.URL, "bad-key", time.Second)
	_, err := client.VerifyTransaction(context.Background(), "ref123")
	assert.ErrorIs(t, err, payment.ErrGatewayStatus)
}
