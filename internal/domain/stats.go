package domain

import (
	"fmt"
	"math"
)

// WinRatePercent rounds to the nearest whole percent and reports 0 for an
// empty record instead of dividing by zero.
func WinRatePercent(wins, losses int) int {
	games := wins + losses
	if games == 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(games) * 100))
}

// FormatKDA renders (kills+assists)/deaths with two decimals, or the literal
// "Perfect" for a deathless record.
func FormatKDA(kills, deaths, assists int) string {
	if deaths == 0 {
		return "Perfect"
	}
	return fmt.Sprintf("%.2f", float64(kills+assists)/float64(deaths))
}
