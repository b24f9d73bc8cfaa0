package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_requests_total",
		Help: "HTTP requests served, by method.",
	}, []string{"method"})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Orders accepted via the API.",
	})

	ordersFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_order_history_fetches_total",
		Help: "Order-history list fetches served.",
	})

	paymentsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_payments_reconciled_total",
		Help: "Payment statuses settled by the reconciliation workers.",
	})
)
