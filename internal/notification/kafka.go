package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var publishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "shop_order_service",
	Subsystem: "notifications",
	Name:      "publish_failures_total",
	Help:      "Total number of notification events that failed to publish.",
}, []string{"type"})

const (
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
	EventOrderShipped   = "order.shipped"
)

// Event — сообщение для воркера рассылок. Сервис только публикует
// и никогда не ждёт результата отправки письма.
type Event struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	Email        string    `json:"email"`
	CustomerName string    `json:"customer_name,omitempty"`
	TotalMinor   int64     `json:"total_minor"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type kafkaDispatcher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaDispatcher(logger *slog.Logger, cfg config.Kafka) *kafkaDispatcher {
	return &kafkaDispatcher{
		logger: logger.With(slog.String("dispatcher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (d *kafkaDispatcher) OrderPaid(ctx context.Context, order entities.Order) error {
	return d.publish(ctx, EventOrderPaid, order)
}

func (d *kafkaDispatcher) OrderCancelled(ctx context.Context, order entities.Order) error {
	return d.publish(ctx, EventOrderCancelled, order)
}

func (d *kafkaDispatcher) OrderShipped(ctx context.Context, order entities.Order) error {
	return d.publish(ctx, EventOrderShipped, order)
}

func (d *kafkaDispatcher) publish(ctx context.Context, eventType string, order entities.Order) error {
	value, err := json.Marshal(Event{
		Type:         eventType,
		OrderID:      order.ID,
		Email:        order.Email,
		CustomerName: order.CustomerName,
		TotalMinor:   order.TotalMinor,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	})
	if err != nil {
		publishFailures.WithLabelValues(eventType).Inc()
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	d.logger.Debug("notification published",
		slog.String("type", eventType), slog.String("order_id", order.ID))
	return nil
}

func (d *kafkaDispatcher) Close() error {
	return d.writer.Close()
}
