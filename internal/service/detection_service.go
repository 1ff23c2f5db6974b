package service

import (
	"context"
	"encoding/json"
	"time"

	"mindshift-be/internal/config"
	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/specification"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/pkg/archetype"
	"mindshift-be/pkg/events"
	pktNats "mindshift-be/pkg/nats"

	"github.com/google/uuid"
)

type IDetectionService interface {
	Detect(ctx context.Context, userId uuid.UUID, req *dto.DetectRequest) (*dto.DetectionResponse, error)
	Current(ctx context.Context, userId uuid.UUID) (*dto.DetectionResponse, error)
	History(ctx context.Context, userId uuid.UUID, query *dto.HistoryQuery) (*dto.DetectionHistoryResponse, error)
	Stats(ctx context.Context, userId uuid.UUID) ([]*dto.ArchetypeStatResponse, error)
}

type detectionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	engineCfg        config.EngineConfig
	logger           logger.ILogger
}

func NewDetectionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	engineCfg config.EngineConfig,
	log logger.ILogger,
) IDetectionService {
	return &detectionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		engineCfg:        engineCfg,
		logger:           log,
	}
}

// Detect classifies the signal vector and returns the result immediately.
// Persistence and event publication are best-effort: a storage outage must
// never cost the user their classification.
func (s *detectionService) Detect(ctx context.Context, userId uuid.UUID, req *dto.DetectRequest) (*dto.DetectionResponse, error) {
	detection := archetype.Detect(req.DetectionSignals)

	det := &entity.ArchetypeDetection{
		Id:                  uuid.New(),
		UserId:              userId,
		Primary:             detection.Primary,
		Secondary:           detection.Secondary,
		ConfidencePrimary:   detection.ConfidencePrimary,
		ConfidenceSecondary: detection.ConfidenceSecondary,
		Signals:             detection.Signals,
		Message:             detection.Message,
		Emoji:               detection.Emoji,
		DetectedAt:          detection.DetectedAt,
		CreatedAt:           time.Now(),
	}

	if err := s.persist(ctx, det); err != nil {
		s.logger.Warn("DetectionService", "Failed to persist detection, returning result anyway", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	s.publishStats(ctx, det)
	s.publishDetectedEvent(ctx, det)

	return toDetectionResponse(det), nil
}

func (s *detectionService) persist(ctx context.Context, det *entity.ArchetypeDetection) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.DetectionRepository().Create(ctx, det); err != nil {
		uow.Rollback()
		return err
	}

	if err := uow.CurrentDetectionRepository().Upsert(ctx, det); err != nil {
		uow.Rollback()
		return err
	}

	return uow.Commit()
}

func (s *detectionService) publishStats(ctx context.Context, det *entity.ArchetypeDetection) {
	var secondary *string
	if det.Secondary != nil {
		sec := string(*det.Secondary)
		secondary = &sec
	}

	msgPayload := dto.StatsMessage{
		UserId:     det.UserId,
		Primary:    string(det.Primary),
		Secondary:  secondary,
		DetectedAt: det.DetectedAt,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		s.logger.Warn("DetectionService", "Failed to marshal stats message", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("DetectionService", "Failed to publish stats message", map[string]interface{}{"error": err.Error()})
	}
}

func (s *detectionService) publishDetectedEvent(ctx context.Context, det *entity.ArchetypeDetection) {
	if s.eventPublisher == nil {
		return
	}

	var secondary *string
	if det.Secondary != nil {
		sec := string(*det.Secondary)
		secondary = &sec
	}

	evt := events.NewArchetypeDetected(det.UserId, string(det.Primary), secondary, det.Message, det.Emoji)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("DetectionService", "Failed to publish ARCHETYPE_DETECTED event", map[string]interface{}{"error": err.Error()})
	}
}

// Current returns the user's latest detection, or nil when the user has
// never run a detection.
func (s *detectionService) Current(ctx context.Context, userId uuid.UUID) (*dto.DetectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	det, err := uow.CurrentDetectionRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, nil
	}

	return toDetectionResponse(det), nil
}

func (s *detectionService) History(ctx context.Context, userId uuid.UUID, query *dto.HistoryQuery) (*dto.DetectionHistoryResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = s.engineCfg.HistoryPageSize
	}
	if limit > s.engineCfg.HistoryPageMaxSize {
		limit = s.engineCfg.HistoryPageMaxSize
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
	}
	if query.Archetype != "" {
		specs = append(specs, specification.ByPrimaryArchetype{Archetype: query.Archetype})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.DetectionRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "detected_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	detections, err := uow.DetectionRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.DetectionResponse, len(detections))
	for i, det := range detections {
		items[i] = toDetectionResponse(det)
	}

	return &dto.DetectionHistoryResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *detectionService) Stats(ctx context.Context, userId uuid.UUID) ([]*dto.ArchetypeStatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.StatRepository().FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ArchetypeStatResponse, len(stats))
	for i, stat := range stats {
		res[i] = &dto.ArchetypeStatResponse{
			Archetype:      stat.Archetype,
			Count:          stat.Count,
			LastDetectedAt: stat.LastDetectedAt,
		}
	}

	return res, nil
}

func toDetectionResponse(det *entity.ArchetypeDetection) *dto.DetectionResponse {
	return &dto.DetectionResponse{
		Id:                  det.Id,
		Primary:             det.Primary,
		Secondary:           det.Secondary,
		ConfidencePrimary:   det.ConfidencePrimary,
		ConfidenceSecondary: det.ConfidenceSecondary,
		Signals:             det.Signals,
		Message:             det.Message,
		Emoji:               det.Emoji,
		CatalogKey:          det.CatalogKey(),
		DetectedAt:          det.DetectedAt,
	}
}
