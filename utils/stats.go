package utils

import "time"

// Stats tracks one case's run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts the clock for a new case
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one evolved generation and how long it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
