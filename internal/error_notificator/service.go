package error_notificator

import (
	"context"
	"sync"
	"time"
)

// Service forwards alerts to infra, dropping repeats of the same source and
// error text inside the cooldown window. A nil infra drops everything.
type Service struct {
	infra    Notificator
	cooldown time.Duration

	mu   sync.Mutex
	last map[string]time.Time
	now  func() time.Time
}

func NewService(infra Notificator, cooldown time.Duration) *Service {
	return &Service{
		infra:    infra,
		cooldown: cooldown,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

func (s *Service) Notify(ctx context.Context, source string, err error, details string) error {
	if s.infra == nil {
		return nil
	}
	if s.suppressed(source, err) {
		return nil
	}
	return s.infra.Notify(ctx, source, err, details)
}

func (s *Service) suppressed(source string, err error) bool {
	if s.cooldown <= 0 {
		return false
	}
	key := source
	if err != nil {
		key += "|" + err.Error()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if at, ok := s.last[key]; ok && now.Sub(at) < s.cooldown {
		return true
	}
	s.last[key] = now
	return false
}
