package planner

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/beeline/internal/domain"
)

// DueAmount is the resolved "what's owed" figure for one goal. The two
// telemetry shapes (target delta vs bare-minimum string) are resolved
// exactly once per goal so the downstream arithmetic never probes
// optional fields.
type DueAmount struct {
	Kind domain.DueKind
	// Delta is in units of goal progress. Signed for the minimum-due
	// shape (direction is informational there); clamped non-negative
	// for the target shape.
	Delta float64
}

// ResolveDueAmount picks the telemetry shape for a goal. A goal with no
// current value resolves to DueUnknown and owes nothing computable.
func ResolveDueAmount(t domain.GoalTelemetry) DueAmount {
	if t.CurrentValue == nil {
		return DueAmount{Kind: domain.DueUnknown}
	}

	if t.TargetValue != nil {
		var delta float64
		if t.Direction > 0 {
			delta = *t.TargetValue - *t.CurrentValue
		} else {
			delta = *t.CurrentValue - *t.TargetValue
		}
		// A goal already past its target owes nothing, never a credit.
		if delta < 0 {
			delta = 0
		}
		return DueAmount{Kind: domain.DueTargetDelta, Delta: delta}
	}

	return DueAmount{Kind: domain.DueMinimum, Delta: ParseMinimumDue(t.MinimumDue)}
}

// ParseMinimumDue parses a bare-minimum figure. A colon means a
// sign-prefixed HH:MM duration converted to decimal hours; otherwise
// the string is a plain decimal. Unparseable input falls back to 0
// rather than failing the goal.
func ParseMinimumDue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		sign := 1.0
		if strings.HasPrefix(s, "-") {
			sign = -1
		}
		parts := strings.SplitN(strings.TrimLeft(s, "+-"), ":", 2)
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0
		}
		return sign * (float64(hours) + float64(minutes)/60.0)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
