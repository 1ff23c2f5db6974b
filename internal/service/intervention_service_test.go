package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/memory"
	"mindshift-be/pkg/archetype"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterventionService(t *testing.T) IInterventionService {
	t.Helper()

	factory := memory.NewRepositoryFactory()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
	return NewInterventionService(factory, nil, log)
}

func helpfulFeedback(interventionId string) *dto.RecordFeedbackRequest {
	return &dto.RecordFeedbackRequest{
		InterventionId:  interventionId,
		Helpful:         true,
		ReturnedToFocus: true,
		EmotionalRating: 4,
	}
}

func unhelpfulFeedback(interventionId string) *dto.RecordFeedbackRequest {
	return &dto.RecordFeedbackRequest{
		InterventionId: interventionId,
		Helpful:        false,
	}
}

func scoreOf(t *testing.T, options []*dto.InterventionOptionResponse, id string) float64 {
	t.Helper()
	for _, opt := range options {
		if opt.Id == id {
			return opt.Effectiveness
		}
	}
	t.Fatalf("option %s not found", id)
	return 0
}

func TestRecommendationsDefaultOrder(t *testing.T) {
	svc := newTestInterventionService(t)

	res, err := svc.Recommendations(context.Background(), uuid.New(), string(archetype.Fear))
	require.NoError(t, err)
	require.Len(t, res, 3)

	// No feedback yet, authored order with default scores.
	assert.Equal(t, "fear_two_minute_start", res[0].Id)
	for _, opt := range res {
		assert.Equal(t, archetype.DefaultEffectiveness, opt.Effectiveness)
	}
}

func TestRecommendationsUnknownArchetypeFallsBack(t *testing.T) {
	svc := newTestInterventionService(t)

	res, err := svc.Recommendations(context.Background(), uuid.New(), "perfectionism")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "fear_two_minute_start", res[0].Id)
}

func TestFeedbackSaturatesAtOne(t *testing.T) {
	svc := newTestInterventionService(t)
	userId := uuid.New()
	ctx := context.Background()

	// 0.5 + 5 * 0.1 hits the ceiling exactly.
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordFeedback(ctx, userId, helpfulFeedback("fear_box_breathing")))
	}

	res, err := svc.Recommendations(ctx, userId, string(archetype.Fear))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scoreOf(t, res, "fear_box_breathing"), 1e-9)

	// Further positive feedback stays clamped.
	require.NoError(t, svc.RecordFeedback(ctx, userId, helpfulFeedback("fear_box_breathing")))
	res, err = svc.Recommendations(ctx, userId, string(archetype.Fear))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scoreOf(t, res, "fear_box_breathing"), 1e-9)
}

func TestFeedbackFloorsAtZero(t *testing.T) {
	svc := newTestInterventionService(t)
	userId := uuid.New()
	ctx := context.Background()

	// 0.5 - 10 * 0.05 hits the floor exactly.
	for i := 0; i < 12; i++ {
		require.NoError(t, svc.RecordFeedback(ctx, userId, unhelpfulFeedback("energy_power_walk")))
	}

	res, err := svc.Recommendations(ctx, userId, string(archetype.LowEnergy))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, scoreOf(t, res, "energy_power_walk"), 1e-9)
}

func TestHelpfulWithoutReturnToFocusLeavesScore(t *testing.T) {
	svc := newTestInterventionService(t)
	userId := uuid.New()
	ctx := context.Background()

	req := &dto.RecordFeedbackRequest{
		InterventionId: "confusion_brain_dump",
		Helpful:        true,
	}
	require.NoError(t, svc.RecordFeedback(ctx, userId, req))

	res, err := svc.Recommendations(ctx, userId, string(archetype.Confusion))
	require.NoError(t, err)
	assert.InDelta(t, archetype.DefaultEffectiveness, scoreOf(t, res, "confusion_brain_dump"), 1e-9)
}

func TestFeedbackReordersRecommendations(t *testing.T) {
	svc := newTestInterventionService(t)
	userId := uuid.New()
	ctx := context.Background()

	// Boost the last authored fear option and demote the first.
	require.NoError(t, svc.RecordFeedback(ctx, userId, helpfulFeedback("fear_box_breathing")))
	require.NoError(t, svc.RecordFeedback(ctx, userId, unhelpfulFeedback("fear_two_minute_start")))

	res, err := svc.Recommendations(ctx, userId, string(archetype.Fear))
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "fear_box_breathing", res[0].Id)
	assert.Equal(t, "fear_worst_case_note", res[1].Id)
	assert.Equal(t, "fear_two_minute_start", res[2].Id)
}

func TestConcurrentFeedbackLosesNoSteps(t *testing.T) {
	svc := newTestInterventionService(t)
	userId := uuid.New()
	ctx := context.Background()

	// Eight parallel misses from the 0.5 baseline must all land:
	// 0.5 - 8 * 0.05 = 0.1. A lost read-modify-write would leave more.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.RecordFeedback(ctx, userId, unhelpfulFeedback("chronic_env_reset")))
		}()
	}
	wg.Wait()

	res, err := svc.Recommendations(ctx, userId, string(archetype.Chronic))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, scoreOf(t, res, "chronic_env_reset"), 1e-9)
}

func TestFeedbackScoresAreScopedPerUser(t *testing.T) {
	svc := newTestInterventionService(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.RecordFeedback(ctx, alice, helpfulFeedback("fear_box_breathing")))

	res, err := svc.Recommendations(ctx, bob, string(archetype.Fear))
	require.NoError(t, err)
	assert.InDelta(t, archetype.DefaultEffectiveness, scoreOf(t, res, "fear_box_breathing"), 1e-9)
}

func TestFeedbackScoresCrossArchetypeLists(t *testing.T) {
	svc := newTestInterventionService(t)
	userId := uuid.New()
	ctx := context.Background()

	// The hybrid list shares no ids with the base lists, so a boost there
	// must not disturb base ordering.
	require.NoError(t, svc.RecordFeedback(ctx, userId, helpfulFeedback("hybrid_fl_breath_walk")))

	secondary := archetype.LowEnergy
	res, err := svc.Recommendations(ctx, userId, archetype.Key(archetype.Fear, &secondary))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "hybrid_fl_breath_walk", res[0].Id)

	fearRes, err := svc.Recommendations(ctx, userId, string(archetype.Fear))
	require.NoError(t, err)
	assert.Equal(t, "fear_two_minute_start", fearRes[0].Id)
}
