package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/pkg/archetype"
	"mindshift-be/pkg/events"
	pktNats "mindshift-be/pkg/nats"

	"github.com/google/uuid"
)

type IInterventionService interface {
	Recommendations(ctx context.Context, userId uuid.UUID, catalogKey string) ([]*dto.InterventionOptionResponse, error)
	RecordFeedback(ctx context.Context, userId uuid.UUID, req *dto.RecordFeedbackRequest) error
}

// lockStripes bounds the feedback lock set. Striping keeps memory constant
// no matter how many users the service sees.
const lockStripes = 64

type interventionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger

	// Serializes the feedback read-modify-write per user so concurrent
	// submissions cannot lose an adjustment step.
	userLocks [lockStripes]sync.Mutex
}

func NewInterventionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IInterventionService {
	return &interventionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Recommendations returns the catalog options for an archetype key, ranked
// by the user's learned effectiveness scores. A score read failure degrades
// to default ordering instead of failing the request.
func (s *interventionService) Recommendations(ctx context.Context, userId uuid.UUID, catalogKey string) ([]*dto.InterventionOptionResponse, error) {
	options := archetype.OptionsFor(catalogKey)

	scores := make(map[string]float64)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.EffectivenessRepository().FindAllByUserId(ctx, userId)
	if err != nil {
		s.logger.Warn("InterventionService", "Failed to load effectiveness scores, using defaults", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	} else {
		for _, row := range rows {
			scores[row.InterventionId] = row.Score
		}
	}

	ranked := archetype.Rank(options, scores)

	res := make([]*dto.InterventionOptionResponse, len(ranked))
	for i, opt := range ranked {
		res[i] = &dto.InterventionOptionResponse{
			Id:            opt.ID,
			Label:         opt.Label,
			Description:   opt.Description,
			Duration:      opt.Duration,
			Embodied:      opt.Embodied,
			Priority:      opt.Priority,
			Emoji:         opt.Emoji,
			Effectiveness: opt.Effectiveness,
		}
	}

	return res, nil
}

// RecordFeedback folds one feedback submission into the user's score for
// the intervention. The write is fire-and-forget: failures are logged and
// the caller still gets a success.
func (s *interventionService) RecordFeedback(ctx context.Context, userId uuid.UUID, req *dto.RecordFeedbackRequest) error {
	lock := s.lockFor(userId)
	lock.Lock()
	defer lock.Unlock()

	fb := archetype.Feedback{
		Helpful:         req.Helpful,
		ReturnedToFocus: req.ReturnedToFocus,
		EmotionalRating: req.EmotionalRating,
	}

	newScore, mastered, err := s.applyFeedback(ctx, userId, req.InterventionId, fb)
	if err != nil {
		s.logger.Warn("InterventionService", "Failed to persist feedback", map[string]interface{}{
			"user_id":         userId,
			"intervention_id": req.InterventionId,
			"error":           err.Error(),
		})
		return nil
	}

	s.publishFeedbackEvents(ctx, userId, req.InterventionId, req.Helpful, newScore, mastered)
	return nil
}

func (s *interventionService) applyFeedback(ctx context.Context, userId uuid.UUID, interventionId string, fb archetype.Feedback) (float64, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return 0, false, err
	}

	row, err := uow.EffectivenessRepository().FindOne(ctx, userId, interventionId)
	if err != nil {
		uow.Rollback()
		return 0, false, err
	}

	current := archetype.DefaultEffectiveness
	if row != nil {
		current = row.Score
	}

	newScore := archetype.NextEffectiveness(current, fb)
	mastered := newScore >= 1.0 && current < 1.0

	eff := &entity.InterventionEffectiveness{
		UserId:         userId,
		InterventionId: interventionId,
		Score:          newScore,
		UpdatedAt:      time.Now(),
	}
	if err := uow.EffectivenessRepository().Upsert(ctx, eff); err != nil {
		uow.Rollback()
		return 0, false, err
	}

	if err := uow.Commit(); err != nil {
		return 0, false, err
	}

	return newScore, mastered, nil
}

func (s *interventionService) publishFeedbackEvents(ctx context.Context, userId uuid.UUID, interventionId string, helpful bool, score float64, mastered bool) {
	if s.eventPublisher == nil {
		return
	}

	evt := events.NewFeedbackRecorded(userId, interventionId, helpful, score)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("InterventionService", "Failed to publish FEEDBACK_RECORDED event", map[string]interface{}{"error": err.Error()})
	}

	if mastered {
		evt := events.NewInterventionMastered(userId, interventionId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("InterventionService", "Failed to publish INTERVENTION_MASTERED event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *interventionService) lockFor(userId uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(userId[:])
	return &s.userLocks[h.Sum32()%lockStripes]
}
