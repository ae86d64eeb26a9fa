package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "webhook-secret"

func hmacHex(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func momoConfig(baseURL string) config.Provider {
	return config.Provider{BaseURL: baseURL, APIKey: "momo-key", Secret: testSecret}
}

func paylineConfig(baseURL string) config.Provider {
	return config.Provider{BaseURL: baseURL, APIKey: "payline-key", Secret: testSecret}
}

func TestRegistry_Get(t *testing.T) {
	momo := payment.NewMomoGateway(momoConfig("http://momo.local"))
	payline := payment.NewPaylineGateway(paylineConfig("http://payline.local"))
	registry := payment.NewRegistry(momo, payline)

	gw, err := registry.Get(payment.MomoName)
	require.NoError(t, err)
	assert.Equal(t, payment.MomoName, gw.Name())

	gw, err = registry.Get(payment.PaylineName)
	require.NoError(t, err)
	assert.Equal(t, payment.PaylineName, gw.Name())

	_, err = registry.Get("cash")
	assert.ErrorIs(t, err, entities.ErrUnknownProvider)
}

func TestMomoGateway_CreateInvoice(t *testing.T) {
	order := entities.Order{ID: "order-1", TotalMinor: 2000}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/invoices", r.URL.Path)
			assert.Equal(t, "Bearer momo-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "order-1", req["external_id"])
			assert.Equal(t, float64(2000), req["amount"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{
				"invoice_id":   "inv-1",
				"checkout_url": "https://momo.example/pay/inv-1",
			})
		}))
		defer srv.Close()

		gw := payment.NewMomoGateway(momoConfig(srv.URL))
		invoice, err := gw.CreateInvoice(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, "inv-1", invoice.ProviderRef)
		assert.Equal(t, "https://momo.example/pay/inv-1", invoice.CheckoutURL)
	})

	t.Run("provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		gw := payment.NewMomoGateway(momoConfig(srv.URL))
		_, err := gw.CreateInvoice(context.Background(), order)
		assert.ErrorIs(t, err, entities.ErrProviderUnavailable)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		gw := payment.NewMomoGateway(momoConfig("http://127.0.0.1:1"))
		_, err := gw.CreateInvoice(context.Background(), order)
		assert.ErrorIs(t, err, entities.ErrProviderUnavailable)
	})
}

func TestMomoGateway_CheckStatus(t *testing.T) {
	testCases := []struct {
		name       string
		momoStatus string
		want       payment.Status
	}{
		{name: "success", momoStatus: "SUCCESS", want: payment.StatusAccepted},
		{name: "failed", momoStatus: "FAILED", want: payment.StatusRefused},
		{name: "rejected", momoStatus: "REJECTED", want: payment.StatusRefused},
		{name: "cancelled", momoStatus: "CANCELLED", want: payment.StatusCancelled},
		{name: "pending", momoStatus: "PENDING", want: payment.StatusWaiting},
		{name: "open", momoStatus: "OPEN", want: payment.StatusWaiting},
		{name: "unexpected value", momoStatus: "ON_HOLD", want: payment.StatusUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/invoices/inv-1", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]string{"status": tc.momoStatus})
			}))
			defer srv.Close()

			gw := payment.NewMomoGateway(momoConfig(srv.URL))
			status, err := gw.CheckStatus(context.Background(), "inv-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}

	t.Run("provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		gw := payment.NewMomoGateway(momoConfig(srv.URL))
		status, err := gw.CheckStatus(context.Background(), "inv-1")
		assert.ErrorIs(t, err, entities.ErrProviderUnavailable)
		assert.Equal(t, payment.StatusUnknown, status)
	})
}

func TestPaylineGateway_CreateInvoice(t *testing.T) {
	order := entities.Order{ID: "order-1", Email: "buyer@example.com", TotalMinor: 2000}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoice/create", r.URL.Path)
		assert.Equal(t, "payline-key", r.Header.Get("X-Api-Key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "order-1", req["reference"])
		assert.Equal(t, "buyer@example.com", req["customer"])

		json.NewEncoder(w).Encode(map[string]string{
			"token":       "tok-1",
			"payment_url": "https://payline.example/pay/tok-1",
		})
	}))
	defer srv.Close()

	gw := payment.NewPaylineGateway(paylineConfig(srv.URL))
	invoice, err := gw.CreateInvoice(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", invoice.ProviderRef)
	assert.Equal(t, "https://payline.example/pay/tok-1", invoice.CheckoutURL)
}

func TestPaylineGateway_CheckStatus(t *testing.T) {
	testCases := []struct {
		name  string
		state string
		want  payment.Status
	}{
		{name: "completed", state: "completed", want: payment.StatusAccepted},
		{name: "refused", state: "refused", want: payment.StatusRefused},
		{name: "cancelled", state: "cancelled", want: payment.StatusCancelled},
		{name: "pending", state: "pending", want: payment.StatusWaiting},
		{name: "initiated", state: "initiated", want: payment.StatusWaiting},
		{name: "unexpected value", state: "frozen", want: payment.StatusUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/invoice/status/tok-1", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]string{"state": tc.state})
			}))
			defer srv.Close()

			gw := payment.NewPaylineGateway(paylineConfig(srv.URL))
			status, err := gw.CheckStatus(context.Background(), "tok-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestGateway_VerifySignature(t *testing.T) {
	body := []byte(`{"invoice_id":"inv-1"}`)
	gw := payment.NewMomoGateway(momoConfig("http://momo.local"))

	assert.True(t, gw.VerifySignature(body, hmacHex(testSecret, body)))
	assert.False(t, gw.VerifySignature(body, hmacHex("other-secret", body)))
	assert.False(t, gw.VerifySignature([]byte(`{"invoice_id":"inv-2"}`), hmacHex(testSecret, body)))
	assert.False(t, gw.VerifySignature(body, "not-hex"))
	assert.False(t, gw.VerifySignature(body, ""))
}

func TestGateway_ParseWebhook(t *testing.T) {
	momo := payment.NewMomoGateway(momoConfig("http://momo.local"))
	payline := payment.NewPaylineGateway(paylineConfig("http://payline.local"))

	ref, err := momo.ParseWebhook([]byte(`{"invoice_id":"inv-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "inv-1", ref)

	_, err = momo.ParseWebhook([]byte(`{}`))
	assert.Error(t, err)

	_, err = momo.ParseWebhook([]byte(`not json`))
	assert.Error(t, err)

	ref, err = payline.ParseWebhook([]byte(`{"token":"tok-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "tok-1", ref)

	_, err = payline.ParseWebhook([]byte(`{}`))
	assert.Error(t, err)
}
