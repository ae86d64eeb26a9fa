package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_order_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created with reserved stock",
		},
	)

	ordersRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_order_service",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of order creation attempts rejected",
		},
	)

	paymentEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_order_service",
			Subsystem: "payments",
			Name:      "events_total",
			Help:      "Total number of reconciled payment events by resulting status",
		},
		[]string{"provider", "payment_status"},
	)

	webhookSignatureFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_order_service",
			Subsystem: "payments",
			Name:      "webhook_signature_failures_total",
			Help:      "Total number of webhooks rejected on signature verification",
		},
		[]string{"provider"},
	)

	adminTransitions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_order_service",
			Subsystem: "admin",
			Name:      "transitions_total",
			Help:      "Total number of successful admin order transitions",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersRejected,
		paymentEvents,
		webhookSignatureFailures,
		adminTransitions,
	)
}
