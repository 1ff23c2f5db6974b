package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mindshift-be/internal/config"
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/memory"
	"mindshift-be/pkg/archetype"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		StatsTopic:         "ARCHETYPE_STATS_TEST",
		HistoryPageSize:    50,
		HistoryPageMaxSize: 200,
	}
}

func newTestDetectionService(t *testing.T) (IDetectionService, *gochannel.GoChannel, *memory.RepositoryFactory) {
	t.Helper()

	factory := memory.NewRepositoryFactory()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	cfg := testEngineConfig()

	svc := NewDetectionService(
		factory,
		NewPublisherService(cfg.StatsTopic, pubSub),
		nil,
		cfg,
		log,
	)
	return svc, pubSub, factory
}

func intPtr(v int) *int { return &v }

func feelingPtr(v archetype.Feeling) *archetype.Feeling { return &v }

func anxiousRequest() *dto.DetectRequest {
	return &dto.DetectRequest{
		DetectionSignals: archetype.DetectionSignals{
			Feeling:      feelingPtr(archetype.FeelingAnxious),
			AnxietyLevel: intPtr(9),
		},
	}
}

func drainedRequest() *dto.DetectRequest {
	return &dto.DetectRequest{
		DetectionSignals: archetype.DetectionSignals{
			EnergyLevel: intPtr(2),
		},
	}
}

func TestDetectPersistsHistoryAndCurrent(t *testing.T) {
	svc, _, _ := newTestDetectionService(t)
	userId := uuid.New()
	ctx := context.Background()

	first, err := svc.Detect(ctx, userId, anxiousRequest())
	require.NoError(t, err)
	assert.Equal(t, archetype.Fear, first.Primary)

	second, err := svc.Detect(ctx, userId, drainedRequest())
	require.NoError(t, err)
	assert.Equal(t, archetype.LowEnergy, second.Primary)

	history, err := svc.History(ctx, userId, &dto.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), history.Total)
	assert.Len(t, history.Items, 2)

	current, err := svc.Current(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.Id, current.Id)
	assert.Equal(t, archetype.LowEnergy, current.Primary)
}

func TestDetectIsDeterministic(t *testing.T) {
	svc, _, _ := newTestDetectionService(t)
	userId := uuid.New()
	ctx := context.Background()

	a, err := svc.Detect(ctx, userId, anxiousRequest())
	require.NoError(t, err)
	b, err := svc.Detect(ctx, userId, anxiousRequest())
	require.NoError(t, err)

	assert.Equal(t, a.Primary, b.Primary)
	assert.Equal(t, a.Secondary, b.Secondary)
	assert.Equal(t, a.ConfidencePrimary, b.ConfidencePrimary)
	assert.Equal(t, a.ConfidenceSecondary, b.ConfidenceSecondary)
	assert.Equal(t, a.CatalogKey, b.CatalogKey)
}

func TestCurrentNilBeforeFirstDetection(t *testing.T) {
	svc, _, _ := newTestDetectionService(t)

	current, err := svc.Current(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestHistoryFiltersByArchetype(t *testing.T) {
	svc, _, _ := newTestDetectionService(t)
	userId := uuid.New()
	ctx := context.Background()

	_, err := svc.Detect(ctx, userId, anxiousRequest())
	require.NoError(t, err)
	_, err = svc.Detect(ctx, userId, drainedRequest())
	require.NoError(t, err)

	history, err := svc.History(ctx, userId, &dto.HistoryQuery{Archetype: string(archetype.Fear)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), history.Total)
	require.Len(t, history.Items, 1)
	assert.Equal(t, archetype.Fear, history.Items[0].Primary)
}

func TestHistoryScopedPerUser(t *testing.T) {
	svc, _, _ := newTestDetectionService(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Detect(ctx, alice, anxiousRequest())
	require.NoError(t, err)

	history, err := svc.History(ctx, bob, &dto.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), history.Total)
	assert.Empty(t, history.Items)
}

func TestHistoryPaginationLimits(t *testing.T) {
	svc, _, _ := newTestDetectionService(t)
	userId := uuid.New()
	ctx := context.Background()

	// Limit 0 falls back to the default page size.
	history, err := svc.History(ctx, userId, &dto.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 50, history.Limit)

	// Oversized limits are capped.
	history, err = svc.History(ctx, userId, &dto.HistoryQuery{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 200, history.Limit)
}

func TestStatsConsumerFoldsDetections(t *testing.T) {
	svc, pubSub, factory := newTestDetectionService(t)
	userId := uuid.New()
	ctx := context.Background()

	consumer := NewConsumerService(pubSub, testEngineConfig().StatsTopic, factory)
	require.NoError(t, consumer.Consume(ctx))

	_, err := svc.Detect(ctx, userId, anxiousRequest())
	require.NoError(t, err)
	_, err = svc.Detect(ctx, userId, anxiousRequest())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		stats, err := svc.Stats(ctx, userId)
		if err != nil || len(stats) != 1 {
			return false
		}
		return stats[0].Archetype == archetype.Fear && stats[0].Count == 2
	}, 2*time.Second, 10*time.Millisecond)
}
