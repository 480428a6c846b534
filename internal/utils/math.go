package utils

import "math"

// Round2 rounds half away from zero to two decimals
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WinRate returns 100*wins/games rounded to two decimals, or 0 when there are no games
func WinRate(wins, games int64) float64 {
	if games <= 0 {
		return 0
	}
	if wins < 0 {
		wins = 0
	}
	if wins > games {
		wins = games
	}
	return Round2(100 * float64(wins) / float64(games))
}

// Clamp bounds v to [min, max]. A zero v takes def first.
func Clamp(v, def, min, max int) int {
	if v == 0 {
		v = def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
