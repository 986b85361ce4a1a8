package knapp

import (
	"strconv"
	"strings"

	"github.com/rapport-chat/rapport/pkg/models"
)

// conditionOps in check order. Two-char operators come first so ">=" is not
// read as ">".
var conditionOps = []string{">=", "<=", "==", "!=", ">", "<"}

// checkCondition evaluates a single closeness comparison like
// "closeness > 0.7". Only the closeness dimension is supported; anything
// unparseable evaluates to false, which disarms the trigger rather than
// failing the turn.
func checkCondition(condition string, closeness float64) bool {
	s := strings.TrimSpace(condition)
	val := models.Clamp01(closeness)

	for _, op := range conditionOps {
		idx := strings.Index(s, op)
		if idx == -1 {
			continue
		}
		left := strings.TrimSpace(s[:idx])
		right := strings.TrimSpace(s[idx+len(op):])
		if left != "closeness" {
			return false
		}
		threshold, err := strconv.ParseFloat(right, 64)
		if err != nil {
			return false
		}
		threshold = models.Clamp01(threshold)

		switch op {
		case ">=":
			return val >= threshold
		case "<=":
			return val <= threshold
		case "==":
			// Float comparison tolerance.
			return abs(val-threshold) < 0.01
		case "!=":
			return abs(val-threshold) >= 0.01
		case ">":
			return val > threshold
		case "<":
			return val < threshold
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
