package utils

import "time"

// historySize is how many recent board fingerprints are kept for cycle detection
const historySize = 5

// Stats tracks the progress of an evolving board
type Stats struct {
	Generation        int
	Population        int
	AveragePopulation float64
	StartTime         time.Time

	history  []string
	stagnant bool
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a generation. fingerprint identifies the board state.
func (s *Stats) Update(generation int, population int, fingerprint string) {
	s.Generation = generation
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	// Static boards and oscillators with period up to 3 repeat a recent fingerprint
	s.stagnant = false
	for i := max(0, len(s.history)-3); i < len(s.history); i++ {
		if s.history[i] == fingerprint {
			s.stagnant = true
			break
		}
	}

	s.history = append(s.history, fingerprint)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the last recorded board repeated a recent one
func (s *Stats) IsStagnant() bool {
	return s.stagnant
}

// Status summarizes the last recorded generation
func (s *Stats) Status() string {
	switch {
	case s.Population == 0:
		return "Extinct"
	case s.stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// GenerationsPerSecond returns the average rate since the stats were created
func (s *Stats) GenerationsPerSecond() float64 {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Generation) / elapsed
}
