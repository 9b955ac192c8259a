package webpay

//go:generate go run go.uber.org/mock/mockgen -source=./webpay.go -destination=./mocks/webpay_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/otel"
	"hostal/shared/constant"
)

const (
	headerCommerceCode = "Tbk-Api-Key-Id"
	headerAPIKey       = "Tbk-Api-Key-Secret"

	createPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"
	commitPath = "/rswebpaytransaction/api/webpay/v1.2/transactions/%s"

	requestTimeout = 15 * time.Second
)

// ResponseCodeApproved is the gateway response code for an authorized payment.
const ResponseCodeApproved = 0

type CreateRequest struct {
	BuyOrder  string  `json:"buy_order"`
	SessionID string  `json:"session_id"`
	Amount    float64 `json:"amount"`
	ReturnURL string  `json:"return_url"`
}

type CreateResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type CommitResponse struct {
	BuyOrder          string  `json:"buy_order"`
	SessionID         string  `json:"session_id"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	AuthorizationCode string  `json:"authorization_code"`
	ResponseCode      int     `json:"response_code"`
	TransactionDate   string  `json:"transaction_date"`
}

// Gateway is the hosted-payment integration: Create opens a transaction and
// returns the token plus the URL the browser is redirected to; Commit confirms
// the transaction when the gateway posts the token back.
type Gateway interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResponse, error)
	Commit(ctx context.Context, token string) (*CommitResponse, error)
}

type gatewayImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Gateway {
	return &gatewayImpl{
		config: cfg,
		client: &http.Client{Timeout: requestTimeout},
		otel:   otl,
	}
}

func (g *gatewayImpl) Create(ctx context.Context, req CreateRequest) (res *CreateResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelWebpayScopeName, constant.OtelWebpayScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("webpay.buy_order", req.BuyOrder)

	res = &CreateResponse{}
	if err = g.do(ctx, http.MethodPost, g.config.External.Webpay.BaseURL+createPath, req, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (g *gatewayImpl) Commit(ctx context.Context, token string) (res *CommitResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelWebpayScopeName, constant.OtelWebpayScopeName+".Commit")
	defer scope.End()
	defer scope.TraceIfError(err)

	url := g.config.External.Webpay.BaseURL + fmt.Sprintf(commitPath, token)

	res = &CommitResponse{}
	if err = g.do(ctx, http.MethodPut, url, nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (g *gatewayImpl) do(ctx context.Context, method, url string, body, out any) error {
	var payload bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("failed to encode gateway request: %w", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, method, url, &payload)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	request.Header.Set(headerCommerceCode, g.config.External.Webpay.CommerceCode)
	request.Header.Set(headerAPIKey, g.config.External.Webpay.APIKey)

	response, err := g.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("gateway request failed")

		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", response.StatusCode).Str("url", url).Msg("gateway returned error status")

		return fmt.Errorf("gateway returned status %d", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return nil
}
