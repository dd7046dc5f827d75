// Package store wraps a string-keyed blob backend with a JSON codec and
// change notification. Read and write failures are logged and reported as
// booleans, never raised: callers proceed as if the read found nothing or
// the write silently failed.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Store struct {
	kv  KV
	log *zap.Logger

	mu   sync.Mutex
	subs []chan string
}

func New(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Get reads and decodes the value under key into out. It returns false if
// the key is absent or the value does not decode; out is left untouched in
// that case.
func (s *Store) Get(key string, out any) bool {
	b, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("store read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		s.log.Warn("store value corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set encodes v and writes it under key, returning false on any failure.
func (s *Store) Set(key string, v any) bool {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("store encode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := s.kv.Set(key, b); err != nil {
		s.log.Warn("store write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	s.publish(key)
	return true
}

// Remove deletes the value under key.
func (s *Store) Remove(key string) bool {
	if err := s.kv.Remove(key); err != nil {
		s.log.Warn("store remove failed", zap.String("key", key), zap.Error(err))
		return false
	}
	s.publish(key)
	return true
}

// Subscribe returns a channel that receives the key of every successful
// Set or Remove. Slow subscribers miss notifications rather than blocking
// writers; consumers are expected to re-query the store, not to treat the
// stream as a log.
func (s *Store) Subscribe(buffer int) <-chan string {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan string, buffer)

	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) publish(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- key:
		default:
		}
	}
}
