package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/pkg/archetype"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService folds detection results into the per-archetype counters
// off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.StatsMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal stats message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	// A hybrid detection counts toward both labels.
	labels := []string{payload.Primary}
	if payload.Secondary != nil {
		labels = append(labels, *payload.Secondary)
	}

	for _, label := range labels {
		if err := cs.bumpStat(ctx, payload.UserId, label, payload.DetectedAt); err != nil {
			log.Printf("[ERROR] Failed to update stat %s for user %s: %v", label, payload.UserId, err)
			msg.Nack() // Nack for retriable errors
			return
		}
	}

	msg.Ack()
}

func (cs *consumerService) bumpStat(ctx context.Context, userId uuid.UUID, label string, detectedAt time.Time) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	stat, err := uow.StatRepository().FindOne(ctx, userId, label)
	if err != nil {
		return err
	}
	if stat == nil {
		stat = &entity.ArchetypeStat{
			UserId:    userId,
			Archetype: archetype.Archetype(label),
		}
	}

	stat.Count++
	if detectedAt.After(stat.LastDetectedAt) {
		stat.LastDetectedAt = detectedAt
	}

	return uow.StatRepository().Save(ctx, stat)
}
