package handler

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	if q.producer == nil {
		return errors.New("notification queue is not configured")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(uuid.NewString()),
		Value: sarama.StringEncoder(data),
	}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
