package scan

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/repository"
)

var errInjected = errors.New("injected failure")

// fakeRepository keeps committed reward states in memory. It does not lock
// rows, so concurrent writers race unless the caller serializes them.
type fakeRepository struct {
	mu     sync.Mutex
	states map[string]*domain.UserRewardState

	beginErr  error
	saveErr   error
	commitErr error
	commits   int
}

func newFakeRepository(states ...*domain.UserRewardState) *fakeRepository {
	r := &fakeRepository{states: make(map[string]*domain.UserRewardState)}
	for _, s := range states {
		r.states[s.UserID] = cloneState(s)
	}
	return r
}

func (r *fakeRepository) committed(userID string) *domain.UserRewardState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.states[userID]; ok {
		return cloneState(s)
	}
	return nil
}

func (r *fakeRepository) CreateUser(_ context.Context, state *domain.UserRewardState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.UserID] = cloneState(state)
	return nil
}

func (r *fakeRepository) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	s := r.committed(userID)
	if s == nil {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{ID: s.UserID, Name: s.Name, Email: s.Email, CreatedAt: s.CreatedAt}, nil
}

func (r *fakeRepository) GetUserByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeRepository) GetRewardState(_ context.Context, userID string) (*domain.UserRewardState, error) {
	s := r.committed(userID)
	if s == nil {
		return nil, domain.ErrUserNotFound
	}
	return s, nil
}

func (r *fakeRepository) ListScans(context.Context, string, int) ([]domain.Scan, error) {
	return nil, nil
}

func (r *fakeRepository) ListTransactions(context.Context, string, int) ([]domain.RewardTransaction, error) {
	return nil, nil
}

func (r *fakeRepository) BeginTx(context.Context) (repository.RewardStateTx, error) {
	if r.beginErr != nil {
		return nil, r.beginErr
	}
	return &fakeTx{repo: r}, nil
}

type fakeTx struct {
	repo    *fakeRepository
	pending *domain.UserRewardState
	closed  bool
}

func (t *fakeTx) GetRewardStateForUpdate(ctx context.Context, userID string) (*domain.UserRewardState, error) {
	return t.repo.GetRewardState(ctx, userID)
}

func (t *fakeTx) SaveRewardState(_ context.Context, state *domain.UserRewardState) error {
	if t.repo.saveErr != nil {
		return t.repo.saveErr
	}
	t.pending = cloneState(state)
	return nil
}

func (t *fakeTx) Commit(context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	t.closed = true
	if t.pending != nil {
		t.repo.mu.Lock()
		t.repo.states[t.pending.UserID] = t.pending
		t.repo.commits++
		t.repo.mu.Unlock()
	}
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.pending = nil
	return nil
}

func cloneState(s *domain.UserRewardState) *domain.UserRewardState {
	c := *s
	c.Scans = append([]domain.Scan(nil), s.Scans...)
	c.RewardTransactions = append([]domain.RewardTransaction(nil), s.RewardTransactions...)
	c.Achievements = make(map[string]domain.Achievement, len(s.Achievements))
	for k, v := range s.Achievements {
		c.Achievements[k] = v
	}
	return &c
}
