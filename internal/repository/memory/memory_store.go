package memory

import (
	"context"
	"sort"
	"sync"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/contract"
	"mindshift-be/internal/repository/specification"
	"mindshift-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// store is a go-cache backed stand-in for the Postgres repositories. It backs
// the unit tests and can serve as a degraded-mode store when the database is
// unreachable. Entries never expire; the engine owns eviction policy, not the
// cache.
type store struct {
	mu      sync.Mutex
	history *cache.Cache // user_id -> []*entity.ArchetypeDetection
	current *cache.Cache // user_id -> *entity.ArchetypeDetection
	scores  *cache.Cache // user_id -> map[intervention_id]*entity.InterventionEffectiveness
	stats   *cache.Cache // user_id -> map[archetype]*entity.ArchetypeStat
}

func newStore() *store {
	return &store{
		history: cache.New(cache.NoExpiration, 0),
		current: cache.New(cache.NoExpiration, 0),
		scores:  cache.New(cache.NoExpiration, 0),
		stats:   cache.New(cache.NoExpiration, 0),
	}
}

// RepositoryFactory is the in-memory unitofwork.RepositoryFactory. All units
// of work share one store; Begin/Commit/Rollback are no-ops because there is
// nothing transactional to roll back in a cache.
type RepositoryFactory struct {
	store *store
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{store: newStore()}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

type memoryUnitOfWork struct {
	store *store
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) DetectionRepository() contract.DetectionRepository {
	return &detectionRepository{store: u.store}
}

func (u *memoryUnitOfWork) CurrentDetectionRepository() contract.CurrentDetectionRepository {
	return &currentDetectionRepository{store: u.store}
}

func (u *memoryUnitOfWork) EffectivenessRepository() contract.EffectivenessRepository {
	return &effectivenessRepository{store: u.store}
}

func (u *memoryUnitOfWork) StatRepository() contract.StatRepository {
	return &statRepository{store: u.store}
}

// Detection history

type detectionRepository struct {
	store *store
}

func (r *detectionRepository) Create(ctx context.Context, detection *entity.ArchetypeDetection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if detection.Id == uuid.Nil {
		detection.Id = uuid.New()
	}
	key := detection.UserId.String()
	var list []*entity.ArchetypeDetection
	if x, found := r.store.history.Get(key); found {
		list = x.([]*entity.ArchetypeDetection)
	}
	copied := *detection
	list = append(list, &copied)
	r.store.history.Set(key, list, cache.DefaultExpiration)
	return nil
}

// FindAll understands the subset of specifications the services actually
// use: ByUserID, ByPrimaryArchetype, OrderBy("detected_at") and Pagination.
func (r *detectionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchetypeDetection, error) {
	rows := r.filtered(specs...)

	limit, offset := -1, 0
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			sort.SliceStable(rows, func(i, j int) bool {
				if s.Desc {
					return rows[i].DetectedAt.After(rows[j].DetectedAt)
				}
				return rows[i].DetectedAt.Before(rows[j].DetectedAt)
			})
		case specification.Pagination:
			limit, offset = s.Limit, s.Offset
		}
	}

	if offset > 0 {
		if offset >= len(rows) {
			return []*entity.ArchetypeDetection{}, nil
		}
		rows = rows[offset:]
	}
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *detectionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filtered(specs...))), nil
}

func (r *detectionRepository) filtered(specs ...specification.Specification) []*entity.ArchetypeDetection {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rows []*entity.ArchetypeDetection
	for _, item := range r.store.history.Items() {
		rows = append(rows, item.Object.([]*entity.ArchetypeDetection)...)
	}

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			rows = filterDetections(rows, func(d *entity.ArchetypeDetection) bool {
				return d.UserId == s.UserID
			})
		case specification.ByPrimaryArchetype:
			rows = filterDetections(rows, func(d *entity.ArchetypeDetection) bool {
				return string(d.Primary) == s.Archetype
			})
		}
	}
	return rows
}

func filterDetections(rows []*entity.ArchetypeDetection, keep func(*entity.ArchetypeDetection) bool) []*entity.ArchetypeDetection {
	out := rows[:0:0]
	for _, d := range rows {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Current detection

type currentDetectionRepository struct {
	store *store
}

func (r *currentDetectionRepository) Upsert(ctx context.Context, detection *entity.ArchetypeDetection) error {
	copied := *detection
	r.store.current.Set(detection.UserId.String(), &copied, cache.DefaultExpiration)
	return nil
}

func (r *currentDetectionRepository) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.ArchetypeDetection, error) {
	if x, found := r.store.current.Get(userId.String()); found {
		return x.(*entity.ArchetypeDetection), nil
	}
	return nil, nil
}

// Effectiveness scores

type effectivenessRepository struct {
	store *store
}

func (r *effectivenessRepository) userScores(userId uuid.UUID) map[string]*entity.InterventionEffectiveness {
	if x, found := r.store.scores.Get(userId.String()); found {
		return x.(map[string]*entity.InterventionEffectiveness)
	}
	return nil
}

func (r *effectivenessRepository) FindOne(ctx context.Context, userId uuid.UUID, interventionId string) (*entity.InterventionEffectiveness, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if scores := r.userScores(userId); scores != nil {
		if e, ok := scores[interventionId]; ok {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *effectivenessRepository) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.InterventionEffectiveness, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	scores := r.userScores(userId)
	out := make([]*entity.InterventionEffectiveness, 0, len(scores))
	for _, e := range scores {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *effectivenessRepository) Upsert(ctx context.Context, effectiveness *entity.InterventionEffectiveness) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	scores := r.userScores(effectiveness.UserId)
	if scores == nil {
		scores = make(map[string]*entity.InterventionEffectiveness)
	}
	copied := *effectiveness
	scores[effectiveness.InterventionId] = &copied
	r.store.scores.Set(effectiveness.UserId.String(), scores, cache.DefaultExpiration)
	return nil
}

// Archetype stats

type statRepository struct {
	store *store
}

func (r *statRepository) userStats(userId uuid.UUID) map[string]*entity.ArchetypeStat {
	if x, found := r.store.stats.Get(userId.String()); found {
		return x.(map[string]*entity.ArchetypeStat)
	}
	return nil
}

func (r *statRepository) FindOne(ctx context.Context, userId uuid.UUID, archetype string) (*entity.ArchetypeStat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if stats := r.userStats(userId); stats != nil {
		if s, ok := stats[archetype]; ok {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *statRepository) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ArchetypeStat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stats := r.userStats(userId)
	out := make([]*entity.ArchetypeStat, 0, len(stats))
	for _, s := range stats {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (r *statRepository) Save(ctx context.Context, stat *entity.ArchetypeStat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stats := r.userStats(stat.UserId)
	if stats == nil {
		stats = make(map[string]*entity.ArchetypeStat)
	}
	copied := *stat
	stats[string(stat.Archetype)] = &copied
	r.store.stats.Set(stat.UserId.String(), stats, cache.DefaultExpiration)
	return nil
}
