package planner

import (
	"testing"

	"github.com/alexanderramin/beeline/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestParseMinimumDue_Duration(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"-0:30", -0.5},
		{"+0:30", 0.5},
		{"-1:15", -1.25},
		{"2:00", 2.0},
		{"+10:45", 10.75},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ParseMinimumDue(tt.input), 1e-9, "input %q", tt.input)
	}
}

func TestParseMinimumDue_Decimal(t *testing.T) {
	assert.Equal(t, 1.5, ParseMinimumDue("1.5"))
	assert.Equal(t, -3.0, ParseMinimumDue("-3"))
	assert.Equal(t, 0.0, ParseMinimumDue("0"))
}

func TestParseMinimumDue_MalformedFallsBackToZero(t *testing.T) {
	for _, input := range []string{"", "garbage", "1:xx", "x:30", ":", "--"} {
		assert.Equal(t, 0.0, ParseMinimumDue(input), "input %q", input)
	}
}

func TestResolveDueAmount_NoDatapoints(t *testing.T) {
	due := ResolveDueAmount(domain.GoalTelemetry{TargetValue: fptr(50)})
	assert.Equal(t, domain.DueUnknown, due.Kind)
	assert.Equal(t, 0.0, due.Delta)
}

func TestResolveDueAmount_TargetMoreIsBetter(t *testing.T) {
	due := ResolveDueAmount(domain.GoalTelemetry{
		CurrentValue: fptr(10),
		TargetValue:  fptr(50),
		Direction:    1,
	})
	assert.Equal(t, domain.DueTargetDelta, due.Kind)
	assert.Equal(t, 40.0, due.Delta)
}

func TestResolveDueAmount_TargetLessIsBetter(t *testing.T) {
	due := ResolveDueAmount(domain.GoalTelemetry{
		CurrentValue: fptr(80),
		TargetValue:  fptr(75),
		Direction:    -1,
	})
	assert.Equal(t, domain.DueTargetDelta, due.Kind)
	assert.Equal(t, 5.0, due.Delta)
}

func TestResolveDueAmount_PastTargetClampsToZero(t *testing.T) {
	due := ResolveDueAmount(domain.GoalTelemetry{
		CurrentValue: fptr(60),
		TargetValue:  fptr(50),
		Direction:    1,
	})
	assert.Equal(t, 0.0, due.Delta)
}

func TestResolveDueAmount_MinimumDueShape(t *testing.T) {
	due := ResolveDueAmount(domain.GoalTelemetry{
		CurrentValue: fptr(12),
		MinimumDue:   "-0:30",
	})
	assert.Equal(t, domain.DueMinimum, due.Kind)
	assert.InDelta(t, -0.5, due.Delta, 1e-9)
}
