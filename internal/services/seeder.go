package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cordial-dev/cordial/internal/models"
	"github.com/cordial-dev/cordial/internal/store"
	"github.com/cordial-dev/cordial/pkg/improv"
	"github.com/cordial-dev/cordial/pkg/scheduler"
)

// Seeder fills the directory with made-up guests.
type Seeder struct {
	guests  store.Crud[models.Guest]
	improv  *improv.Improv
	workers int
}

func NewSeeder(guests store.Crud[models.Guest], improv *improv.Improv, workers int) *Seeder {
	return &Seeder{guests: guests, improv: improv, workers: workers}
}

// Seed creates count guests using at most workers concurrent inserts. It
// returns the guests that were created and the joined errors of those that were not.
func (s *Seeder) Seed(ctx context.Context, count int) ([]models.Guest, error) {
	guests, err := s.improv.Guests(count)
	if err != nil {
		return nil, err
	}

	sched := scheduler.NewScheduler[models.Guest](s.workers)
	defer sched.Close()

	futures := make([]*scheduler.Future[scheduler.Result[models.Guest]], 0, len(guests))
	for _, g := range guests {
		futures = append(futures, sched.AddWork(func(ctx context.Context) (models.Guest, error) {
			return s.guests.Create(ctx, g)
		}))
	}

	var (
		created []models.Guest
		errs    []error
	)
	for _, r := range scheduler.Wait(ctx, futures) {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		created = append(created, r.Data)
	}

	zap.S().Named("seeder").Infow("seeding finished", "created", len(created), "failed", len(errs))
	return created, errors.Join(errs...)
}
