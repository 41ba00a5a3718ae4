package paymongo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"furever/config"
	"furever/infras/otel/mocks"
	"furever/infras/paymongo"

	"github.com/stretchr/testify/assert"
)

func TestCentavoConversion(t *testing.T) {
	tests := []struct {
		name     string
		php      float64
		centavos int64
	}{
		{"whole pesos", 1500, 150000},
		{"with centavos", 1234.56, 123456},
		{"rounds half up", 0.005, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.centavos, paymongo.PhpToCentavos(tt.php))
		})
	}

	assert.InDelta(t, 1234.56, paymongo.CentavosToPHP(123456), 0.001)
	assert.InDelta(t, 1500.0, paymongo.CentavosToPHP(paymongo.PhpToCentavos(1500)), 0.001)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) paymongo.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.PayMongo.BaseURL = server.URL
	cfg.External.PayMongo.SecretKey = "sk_test_abc"
	cfg.External.PayMongo.TimeoutSeconds = 5

	return paymongo.New(cfg, mocks.NewOtel())
}

func TestCreateRefundSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/refunds", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Basic ")

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"id":"ref_123","attributes":{"status":"pending","amount":150000}}}`))
	})

	refund, err := client.CreateRefund(context.Background(), paymongo.RefundRequest{
		PaymentID: "pay_abc",
		Amount:    150000,
		Reason:    "requested_by_customer",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ref_123", refund.ID)
	assert.Equal(t, "pending", refund.Status)
}

func TestCreateRefundGatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"detail":"amount exceeds refundable balance"}]}`))
	})

	_, err := client.CreateRefund(context.Background(), paymongo.RefundRequest{
		PaymentID: "pay_abc",
		Amount:    150000,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "amount exceeds refundable balance")
}
