package cache

import (
	"errors"
	"sync/atomic"
)

var ErrNotFound = errors.New("no audio response available")

// Slot is the process-wide "latest reply" holder. Concurrent requests race on
// it and the last writer wins; a reader always gets one writer's whole payload.
type Slot struct {
	latest atomic.Pointer[[]byte]
}

func NewSlot() *Slot {
	return &Slot{}
}

// Put stores a private copy of data. A nil or empty payload empties the slot.
func (s *Slot) Put(data []byte) {
	if len(data) == 0 {
		s.latest.Store(nil)
		return
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.latest.Store(&cp)
}

func (s *Slot) Clear() {
	s.latest.Store(nil)
}

// Get returns the stored payload. Callers must not modify it.
func (s *Slot) Get() ([]byte, error) {
	p := s.latest.Load()
	if p == nil {
		return nil, ErrNotFound
	}
	return *p, nil
}
