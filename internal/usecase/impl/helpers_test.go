package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
	"github.com/nadoran78/mytable/internal/domain/repository"
	mockRepo "github.com/nadoran78/mytable/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int {
	return &v
}

// at builds a wall-clock instant in the process zone, which is the zone the services fall back to.
func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

// txRepos wires a mock transaction manager that runs the callback against the given repositories.
type txRepos struct {
	accounts     *mockRepo.MockAccountRepository
	stores       *mockRepo.MockStoreRepository
	reservations *mockRepo.MockReservationRepository
	reviews      *mockRepo.MockReviewRepository
}

func expectTransactions(t *testing.T, txManager *mockRepo.MockTransactionManager, repos txRepos) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if repos.accounts != nil {
		factory.EXPECT().NewAccountRepository().Return(repos.accounts).Maybe()
	}
	if repos.stores != nil {
		factory.EXPECT().NewStoreRepository().Return(repos.stores).Maybe()
	}
	if repos.reservations != nil {
		factory.EXPECT().NewReservationRepository().Return(repos.reservations).Maybe()
	}
	if repos.reviews != nil {
		factory.EXPECT().NewReviewRepository().Return(repos.reviews).Maybe()
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

// reservationTable backs a mock ReservationRepository with an in-memory table so
// scenario tests observe the state their writes leave behind.
type reservationTable struct {
	mu   sync.Mutex
	rows map[string]entity.Reservation
}

func newReservationTable(rows ...*entity.Reservation) *reservationTable {
	table := &reservationTable{rows: make(map[string]entity.Reservation)}
	for _, r := range rows {
		if r.Version == 0 {
			r.Version = 1
		}
		table.rows[r.UID] = *r
	}

	return table
}

func (tb *reservationTable) get(uid string) entity.Reservation {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	return tb.rows[uid]
}

func (tb *reservationTable) bind(repo *mockRepo.MockReservationRepository) {
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Reservation")).
		RunAndReturn(func(_ context.Context, r *entity.Reservation) error {
			tb.mu.Lock()
			defer tb.mu.Unlock()
			tb.rows[r.UID] = *r

			return nil
		}).Maybe()

	repo.EXPECT().FindByUID(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, uid string) (*entity.Reservation, error) {
			tb.mu.Lock()
			defer tb.mu.Unlock()
			row, ok := tb.rows[uid]
			if !ok {
				return nil, repository.ErrReservationNotFound
			}

			return &row, nil
		}).Maybe()

	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Reservation")).
		RunAndReturn(func(_ context.Context, r *entity.Reservation) error {
			tb.mu.Lock()
			defer tb.mu.Unlock()
			stored, ok := tb.rows[r.UID]
			if !ok || stored.Version != r.Version {
				return repository.ErrStaleReservation
			}
			r.Version++
			tb.rows[r.UID] = *r

			return nil
		}).Maybe()

	repo.EXPECT().FindAllByStatusAndDateTimeBefore(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, status entity.ReservationStatus, before time.Time) ([]*entity.Reservation, error) {
			tb.mu.Lock()
			defer tb.mu.Unlock()
			var out []*entity.Reservation
			for _, row := range tb.rows {
				if row.Status == status && row.DateTime.Before(before) {
					copied := row
					out = append(out, &copied)
				}
			}

			return out, nil
		}).Maybe()
}
