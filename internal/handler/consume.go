package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
)

type sendMessage func(ctx context.Context, token, id, content string) error

// Consumer replays decline notices whose in-band delivery failed. A message
// that still cannot be delivered is left unmarked and redelivered on the
// next session.
type Consumer struct {
	send sendMessage
	log  *zap.Logger
}

func NewConsumer(send sendMessage, log *zap.Logger) *Consumer {
	return &Consumer{
		send: send,
		log:  log.Named("consumer"),
	}
}

// Setup is run at the start of every session, including after rebalances;
// it must stay safe to call repeatedly on the same handler.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg model.NotificationMsg
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("notification unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.send(context.Background(), msg.Token, msg.ReservationID, msg.Content); err != nil {
				consumer.log.Error("notification replay",
					zap.String("id", msg.ReservationID), zap.Error(err))
				continue
			}

			consumer.log.Debug("notification delivered",
				zap.String("id", msg.ReservationID),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
