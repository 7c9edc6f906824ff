package consumer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Eursukkul/restaurant-service/internal/jsonutil"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

// CatalogItem is the payload of a catalog.* message.
type CatalogItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   *bool           `json:"available"`
	Featured    bool            `json:"featured"`
}

func (ci CatalogItem) input() service.MenuInput {
	available := true
	if ci.Available != nil {
		available = *ci.Available
	}
	return service.MenuInput{
		Name:        ci.Name,
		Description: ci.Description,
		Price:       ci.Price,
		Category:    ci.Category,
		Available:   available,
		Featured:    ci.Featured,
	}
}

type MenuConsumer struct {
	svc service.MenuService
}

func NewMenuConsumer(svc service.MenuService) *MenuConsumer {
	return &MenuConsumer{svc: svc}
}

// Start upserts catalog items from msgs until the channel closes. done is
// closed once the last delivery has been settled.
func (mc *MenuConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) (done <-chan struct{}) {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for msg := range msgs {
			mc.handleMessage(ctx, msg)
		}
		slog.Info("catalog consumer stopped")
	}()
	return finished
}

func (mc *MenuConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var item CatalogItem
	if err := jsonutil.Unmarshal(msg.Body, &item); err != nil {
		slog.Warn("catalog message rejected", slog.String("routing_key", msg.RoutingKey), slog.Any("error", err))
		_ = msg.Nack(false, false)
		return
	}

	err := mc.svc.ImportMenuItem(ctx, item.input())
	var verr validation.Errors
	switch {
	case err == nil:
		slog.Info("catalog item synced", slog.String("name", item.Name))
		_ = msg.Ack(false)
	case errors.As(err, &verr):
		slog.Warn("catalog item rejected", slog.String("name", item.Name), slog.Any("error", err))
		_ = msg.Nack(false, false)
	default:
		slog.Error("catalog item not stored", slog.String("name", item.Name), slog.Any("error", err))
		_ = msg.Nack(false, true)
	}
}
