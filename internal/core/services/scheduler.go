package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driving"
	"github.com/probe-labs/scout-cli/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.DiscoveryScheduler = (*Scheduler)(nil)

// Scheduler drives periodic incremental refresh and periodic full
// re-discovery on two independent timers. Both start only after the
// bootstrap delay. No overlap guard exists between the timers; the
// engine serialises store mutations, so concurrent passes cannot
// corrupt invariants.
type Scheduler struct {
	config domain.EngineConfig
	engine driving.DiscoveryEngine

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler over an engine.
func NewScheduler(config domain.EngineConfig, engine driving.DiscoveryEngine) *Scheduler {
	return &Scheduler{
		config: config,
		engine: engine,
	}
}

// Start begins both timers after the bootstrap delay. This method
// blocks until the context is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	// Bootstrap delay before either timer fires.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-stopCh:
		return nil
	case <-time.After(s.config.BootstrapDelay):
	}

	refresh := time.NewTicker(s.config.RefreshInterval)
	defer refresh.Stop()
	discovery := time.NewTicker(s.config.DiscoveryInterval)
	defer discovery.Stop()

	logger.Info("Scheduler started: refresh %s, discovery %s",
		s.config.RefreshInterval, s.config.DiscoveryInterval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-refresh.C:
			s.runPass("refresh", s.engine.Refresh)
		case <-discovery.C:
			s.runPass("full-discovery", s.engine.FullDiscovery)
		}
	}
}

// runPass executes one scheduled pass. Eviction must keep running even
// when a prior pass failed partway, so errors are logged and dropped.
func (s *Scheduler) runPass(name string, pass func(context.Context) error) {
	s.wg.Add(1)
	defer s.wg.Done()

	passID := uuid.New().String()[:8]
	logger.Debug("Pass %s (%s) starting", name, passID)
	if err := pass(context.Background()); err != nil {
		logger.Error("Pass %s (%s) failed: %v", name, passID, err)
		return
	}
	logger.Debug("Pass %s (%s) complete", name, passID)
}

// Stop cancels both timers as a unit and waits for any in-flight pass.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}
