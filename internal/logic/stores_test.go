package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pupfinder/internal/domain"
)

func TestMemoryDogStore(t *testing.T) {
	s := NewMemoryDogStore()
	s.AddDogs(domain.Dog{ID: "a", Name: "Rex"}, domain.Dog{ID: "b", Name: "Fido"})
	assert.Equal(t, 2, s.Len())

	dog, ok := s.GetDog("a")
	assert.True(t, ok)
	assert.Equal(t, "Rex", dog.Name)

	s.AddDogs(domain.Dog{ID: "a", Name: "Rex II"})
	dog, _ = s.GetDog("a")
	assert.Equal(t, "Rex II", dog.Name)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	_, ok = s.GetDog("a")
	assert.False(t, ok)
}
