package jobs

import (
	"context"
	"log"
	"time"

	"foodcart/internal/services"

	"github.com/go-co-op/gocron/v2"
)

const refreshBatchSize = 100

// Scheduler runs background maintenance. Currently only the geopoint refresh
// job: cached address resolutions older than the configured age are
// re-resolved against the provider. A zero age disables refresh and cached
// coordinates never expire.
type Scheduler struct {
	scheduler gocron.Scheduler
	geoCache  services.GeoCacheService
	age       time.Duration
	interval  time.Duration
}

func NewScheduler(geoCache services.GeoCacheService, age, interval time.Duration) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		scheduler: scheduler,
		geoCache:  geoCache,
		age:       age,
		interval:  interval,
	}

	if age > 0 {
		_, err := scheduler.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(s.refreshGeopoints, context.Background()),
			gocron.WithName("geopoint-refresh"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	if s.age <= 0 {
		log.Printf("Geopoint refresh disabled, cached coordinates never expire")
		return
	}
	log.Printf("Starting scheduler: refreshing geopoints older than %s every %s", s.age, s.interval)
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) refreshGeopoints(ctx context.Context) {
	cutoff := time.Now().Add(-s.age)
	refreshed, err := s.geoCache.RefreshOlderThan(ctx, cutoff, refreshBatchSize)
	if err != nil {
		log.Printf("Geopoint refresh failed: %v", err)
		return
	}
	if refreshed > 0 {
		log.Printf("Refreshed %d stale geopoints", refreshed)
	}
}
