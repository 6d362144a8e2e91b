package session

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically deletes expired session records.
type Sweeper struct {
	store    Store
	interval time.Duration
}

// NewSweeper creates a sweeper with the given interval.
func NewSweeper(store Store, interval time.Duration) *Sweeper {
	return &Sweeper{store: store, interval: interval}
}

// Run starts the sweep loop and blocks until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	log.Println("Starting session sweeper...")

	s.sweepOnce(ctx)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session sweeper shutting down.")
			return
		case <-timer.C:
			s.sweepOnce(ctx)
			timer.Reset(s.interval)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	deleted, err := s.store.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("Error sweeping expired sessions: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Swept %d expired sessions", deleted)
	}
}
