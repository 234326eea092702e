package reporting

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"loycal/internal/domain"
)

type StoreInterface interface {
	RecordPaidOrder(event domain.OrderEvent) error
	Summary(restaurantID string) (*Summary, error)
}

var _ StoreInterface = (*Store)(nil)

// Consumer feeds paid-order events into the aggregate store.
type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[agg-svc] starting reporting consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[agg-svc] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[agg-svc] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(event)
	}
}

func (c *Consumer) ProcessOrder(event domain.OrderEvent) {
	if event.Type != domain.EventOrderPaid {
		return
	}
	log.Printf("[agg-svc] processing paid order %s for restaurant %s (total %.2f)",
		event.OrderID, event.RestaurantID, event.Total)

	if err := c.Store.RecordPaidOrder(event); err != nil {
		log.Printf("[agg-svc] error recording paid order %s: %v", event.OrderID, err)
		return
	}
}
