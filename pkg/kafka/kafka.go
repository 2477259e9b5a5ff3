package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

const NotificationTopic = "frontdesk.notifications"

type Config struct {
	Addrs         []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	ConsumerGroup string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"frontdesk"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumerGroup(cfg Config) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, cfg.ConsumerGroup, defaultCfg)
}

// Consume runs the handler against the topics until ctx is canceled.
// sarama returns from Consume on every rebalance, hence the loop.
func Consume(ctx context.Context, cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := cg.Consume(ctx, topics, h); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
