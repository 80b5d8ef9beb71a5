package ui

// cleanFraction converts a clean percentage to a bar fill in [0, 1].
func cleanFraction(percent float64) float32 {
	return float32(min(max(percent, 0), 100) / 100)
}
