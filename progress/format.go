// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"time"
)

// formatDuration renders a duration the way humans read remaining time.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}

	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60

		return fmt.Sprintf("%dm %ds", m, s)
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	return fmt.Sprintf("%dh %dm", h, m)
}

// formatUnits trims trailing zeros from unit counts so integer progress
// renders as "5/10" while fractional progress keeps its decimals.
func formatUnits(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%.2f", v)
}
