package main

import "testing"

func TestTickLimit(t *testing.T) {
	tests := []struct {
		name     string
		maxTicks int64
		period   float64
		fps      int
		want     int64
	}{
		{"unlimited", 0, 0, 60, 0},
		{"max ticks only", 500, 0, 60, 500},
		{"period only", 0, 2, 60, 120},
		{"period shorter than max", 500, 2, 60, 120},
		{"max shorter than period", 100, 2, 60, 100},
		{"period below one frame", 0, 0.001, 60, 1},
		{"negative period ignored", 300, -1, 60, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tickLimit(tt.maxTicks, tt.period, tt.fps); got != tt.want {
				t.Errorf("tickLimit(%d, %v, %d) = %d, want %d", tt.maxTicks, tt.period, tt.fps, got, tt.want)
			}
		})
	}
}
