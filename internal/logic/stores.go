package logic

import (
	"sync"

	"pupfinder/internal/domain"
)

// MemoryDogStore is an in-memory implementation of DogStore
type MemoryDogStore struct {
	mu   sync.RWMutex
	dogs map[string]domain.Dog
}

// NewMemoryDogStore creates a new memory-based dog store
func NewMemoryDogStore() *MemoryDogStore {
	return &MemoryDogStore{
		dogs: make(map[string]domain.Dog),
	}
}

func (s *MemoryDogStore) GetDog(id string) (domain.Dog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dog, ok := s.dogs[id]
	return dog, ok
}

func (s *MemoryDogStore) AddDogs(dogs ...domain.Dog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range dogs {
		s.dogs[d.ID] = d
	}
}

func (s *MemoryDogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dogs)
}

func (s *MemoryDogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dogs = make(map[string]domain.Dog)
}
