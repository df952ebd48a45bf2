package slots

import (
	"math/rand"
	"sync"
)

// RandomSource источник случайных значений в диапазоне [0, 1)
type RandomSource interface {
	Float64() float64
}

// LockedSource потокобезопасная обёртка над *rand.Rand
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource создает источник с заданным seed
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// ConstantSource всегда возвращает одно и то же значение
type ConstantSource float64

func (c ConstantSource) Float64() float64 {
	return float64(c)
}

// SequenceSource возвращает значения по кругу, для детерминированных тестов
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
