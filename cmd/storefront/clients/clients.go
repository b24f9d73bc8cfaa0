package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/cmd/storefront/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// OrdersClient fetches a client's order history from the storefront API.
// It is the single data source of the order-history view: transport
// problems come back as the returned error, application-level problems
// come back inside OrdersResult.Error.
type OrdersClient struct {
	APIAddress string
	client     *resty.Client
	logger     *zap.SugaredLogger
}

func NewOrdersClient(addr string, logger *zap.SugaredLogger) *OrdersClient {
	return &OrdersClient{
		APIAddress: addr,
		client:     resty.New().SetTimeout(10 * time.Second),
		logger:     logger,
	}
}

func (oc *OrdersClient) GetOrders(ctx context.Context, clientID string) (*models.OrdersResult, error) {
	resp, err := oc.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/api/clients/%s/orders", oc.APIAddress, clientID))
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	oc.logger.Debugf("GET %s/api/clients/%s/orders response status: %s", oc.APIAddress, clientID, resp.Status())

	var result models.OrdersResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && result.Error == "" {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status())
	}

	return &result, nil
}

// PaymentClient asks the external payment system for per-order
// settlement status. Used by the reconciliation worker pool.
type PaymentClient struct {
	PaymentSystemAddress string
	client               *resty.Client
	logger               *zap.SugaredLogger
}

func NewPaymentClient(addr string, logger *zap.SugaredLogger) *PaymentClient {
	return &PaymentClient{
		PaymentSystemAddress: addr,
		client:               resty.New().SetTimeout(10 * time.Second),
		logger:               logger,
	}
}

func (pc *PaymentClient) GetPaymentStatus(orderID string) (*models.PaymentResponse, error) {
	resp, err := pc.client.R().
		Get(fmt.Sprintf("%s/api/payments/%s", pc.PaymentSystemAddress, orderID))
	if err != nil {
		return nil, fmt.Errorf("get payment status: %w", err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return nil, fmt.Errorf("payment for order %s not registered", orderID)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status())
	}

	var result models.PaymentResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}

	return &result, nil
}
