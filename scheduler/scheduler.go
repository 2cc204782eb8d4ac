// Package scheduler runs named background tasks, most importantly the
// periodic world checkpoint that batch-saves every online character.
package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler manages named periodic and delayed tasks. Task panics are
// recovered and logged so one bad tick cannot kill the checkpoint loop.
type Scheduler struct {
	mu     sync.Mutex
	cancel map[string]func()
	logger *zap.Logger
}

func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cancel: make(map[string]func()),
		logger: logger,
	}
}

// Every runs fn on a fixed interval until Remove or Stop. A task with the
// same name is replaced.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) {
	stop := make(chan struct{})
	s.replace(name, func() { close(stop) })

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.run(name, fn)
			case <-stop:
				return
			}
		}
	}()
	s.logger.Info("scheduled periodic task",
		zap.String("task", name), zap.Duration("interval", interval))
}

// After runs fn once after delay unless removed first.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) {
	timer := time.AfterFunc(delay, func() {
		s.run(name, fn)
		s.mu.Lock()
		delete(s.cancel, name)
		s.mu.Unlock()
	})
	s.replace(name, func() { timer.Stop() })
}

// Remove cancels the named task if it exists.
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cancel[name]; ok {
		c()
		delete(s.cancel, name)
	}
}

// Stop cancels every task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, c := range s.cancel {
		c()
		delete(s.cancel, name)
	}
}

func (s *Scheduler) replace(name string, cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.cancel[name]; ok {
		old()
	}
	s.cancel[name] = cancel
}

func (s *Scheduler) run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked",
				zap.String("task", name), zap.Any("recover", r))
		}
	}()
	fn()
}
