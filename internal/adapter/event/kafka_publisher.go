package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

const saleTopic = "sale-events"

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

// NewKafkaPublisher connects a sync producer, retrying while the broker
// comes up.
func NewKafkaPublisher(broker string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error
	for i := 1; i <= 5; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			return &KafkaPublisher{producer: producer}, nil
		}
		log.Printf("waiting for kafka... (%d/5): %v", i, err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect kafka: %w", err)
}

type saleCreatedEvent struct {
	SaleID     int64           `json:"sale_id"`
	CustomerID string          `json:"customer_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OrderDate  time.Time       `json:"order_date"`
}

func (k *KafkaPublisher) PublishSaleCreated(ctx context.Context, sale domain.Sale) error {
	payload, err := json.Marshal(saleCreatedEvent{
		SaleID:     sale.ID,
		CustomerID: sale.CustomerID,
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		TotalPrice: sale.TotalPrice,
		OrderDate:  sale.OrderDate,
	})
	if err != nil {
		return fmt.Errorf("marshal sale event: %w", err)
	}

	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: saleTopic,
		Key:   sarama.StringEncoder(strconv.FormatInt(sale.ProductID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (k *KafkaPublisher) Close() error {
	return k.producer.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishSaleCreated(ctx context.Context, sale domain.Sale) error {
	return nil
}
