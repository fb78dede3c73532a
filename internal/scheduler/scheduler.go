package scheduler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"tamaverse/internal/app/ports"
)

// Scheduler drives the automatic tick. At most one timer loop is ever
// active: Start tears down any previous loop before spawning a new one, so
// restarting also resets the interval. While paused no ticks fire at all;
// there is no catch-up when resuming.
type Scheduler struct {
	Interval time.Duration
	Tick     func(ctx context.Context) error

	mu     sync.Mutex
	paused bool
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go s.loop(loopCtx, done)
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.Paused() {
				continue
			}
			if err := s.Tick(ctx); err != nil {
				// No save yet is the normal idle state, not a failure.
				if errors.Is(err, ports.ErrNotFound) {
					continue
				}
				log.Printf("scheduler: tick failed: %v", err)
			}
		}
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
		s.cancel = nil
		s.done = nil
	}
}

func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}
