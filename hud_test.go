package main

import "testing"

func TestClockSeconds(t *testing.T) {
	tests := []struct {
		name     string
		timeLeft float64
		want     int
	}{
		{"full clock", 100, 100},
		{"rounds up near the top", 99.9, 100},
		{"rounds down below the midpoint", 99.4, 99},
		{"rounds up from the midpoint", 42.5, 43},
		{"last second rounds up", 0.6, 1},
		{"expired", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clockSeconds(tt.timeLeft); got != tt.want {
				t.Errorf("clockSeconds(%g) = %d, want %d", tt.timeLeft, got, tt.want)
			}
		})
	}
}
