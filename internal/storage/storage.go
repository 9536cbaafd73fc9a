package storage

import (
	"sync"
	"time"
)

// BearingData хранит последний пеленг на один ориентир
type BearingData struct {
	Bearing   float64 // градусы против часовой стрелки от оси робота
	UpdatedAt time.Time
}

// Storage отвечает за хранение последних пеленгов по ориентирам
type Storage struct {
	mu   sync.RWMutex
	data map[string]BearingData
	now  func() time.Time
}

// NewStorage инициализирует сторедж
func NewStorage() *Storage {
	return &Storage{
		data: make(map[string]BearingData),
		now:  time.Now,
	}
}

// Set обновляет пеленг по ориентиру
func (s *Storage) Set(landmarkID string, bearing float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[landmarkID] = BearingData{
		Bearing:   bearing,
		UpdatedAt: s.now(),
	}
}

// Get возвращает пеленг по ориентиру
func (s *Storage) Get(landmarkID string) (BearingData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[landmarkID]
	return data, ok
}

// GetAll возвращает все данные
func (s *Storage) GetAll() map[string]BearingData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// копия мапы, чтобы снаружи не меняли оригинал
	result := make(map[string]BearingData, len(s.data))
	for k, v := range s.data {
		result[k] = v
	}
	return result
}
