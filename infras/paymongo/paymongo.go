package paymongo

//go:generate go run go.uber.org/mock/mockgen -source=./paymongo.go -destination=./mocks/paymongo_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"furever/config"
	"furever/infras/otel"
	"furever/shared/constant"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeoutSeconds = 30

	refundsPath = "/refunds"
)

// PhpToCentavos converts a peso amount to the integer centavos PayMongo expects.
func PhpToCentavos(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentavosToPHP converts centavos back to a peso amount.
func CentavosToPHP(centavos int64) float64 {
	return float64(centavos) / 100
}

type RefundRequest struct {
	PaymentID string
	Amount    int64 // centavos
	Reason    string
	Notes     string
}

type Refund struct {
	ID     string
	Status string
}

// Error carries the gateway's own error detail for operator diagnosis.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("paymongo: %s (http %d)", e.Detail, e.StatusCode)
}

type Client interface {
	CreateRefund(ctx context.Context, req RefundRequest) (Refund, error)
}

type clientImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	httpClient *http.Client
}

func New(cfg *config.Config, otl otel.Otel) Client {
	timeout := cfg.External.PayMongo.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		cfg:  cfg,
		otel: otl,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

type refundAttributes struct {
	Amount    int64  `json:"amount"`
	PaymentID string `json:"payment_id"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty"`
}

type refundEnvelope struct {
	Data struct {
		ID         string           `json:"id"`
		Attributes refundAttributes `json:"attributes"`
	} `json:"data"`
}

type errorEnvelope struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (c *clientImpl) CreateRefund(ctx context.Context, req RefundRequest) (res Refund, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paymongo.CreateRefund")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := refundEnvelope{}
	payload.Data.Attributes = refundAttributes{
		Amount:    req.Amount,
		PaymentID: req.PaymentID,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return res, fmt.Errorf("failed to encode refund request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.External.PayMongo.BaseURL+refundsPath, bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("failed to build refund request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Basic "+basicAuth(c.cfg.External.PayMongo.SecretKey))

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("payment_id", req.PaymentID).Msg("paymongo refund request failed")

		return res, fmt.Errorf("failed to call paymongo: %w", err)
	}
	defer httpRes.Body.Close()

	resBody, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return res, fmt.Errorf("failed to read paymongo response: %w", err)
	}

	if httpRes.StatusCode < http.StatusOK || httpRes.StatusCode >= http.StatusMultipleChoices {
		detail := "refund rejected by gateway"

		var gatewayErr errorEnvelope
		if err := json.Unmarshal(resBody, &gatewayErr); err == nil && len(gatewayErr.Errors) > 0 {
			detail = gatewayErr.Errors[0].Detail
		}

		return res, &Error{StatusCode: httpRes.StatusCode, Detail: detail}
	}

	var envelope refundEnvelope
	if err := json.Unmarshal(resBody, &envelope); err != nil {
		return res, fmt.Errorf("failed to decode paymongo response: %w", err)
	}

	log.Info().
		Str("refund_id", envelope.Data.ID).
		Str("payment_id", req.PaymentID).
		Int64("amount", req.Amount).
		Msg("paymongo refund created")

	return Refund{
		ID:     envelope.Data.ID,
		Status: envelope.Data.Attributes.Status,
	}, nil
}

// basicAuth renders the secret key the way PayMongo expects: base64("sk:").
func basicAuth(secretKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(secretKey + ":"))
}
