package beeminder

import "github.com/alexanderramin/beeline/internal/domain"

// goalPayload mirrors the subset of the v1 goal resource we consume.
type goalPayload struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Curval   *float64 `json:"curval"`
	Goalval  *float64 `json:"goalval"`
	Losedate int64    `json:"losedate"`
	Safebuf  int      `json:"safebuf"`
	Pledge   float64  `json:"pledge"`
	Rate     *float64 `json:"rate"`
	Runits   string   `json:"runits"`
	Yaw      int      `json:"yaw"`
	Baremin  string   `json:"baremin"`
	Limsum   string   `json:"limsum"`
	Gunits   string   `json:"gunits"`
}

func (p goalPayload) telemetry() domain.GoalTelemetry {
	var rate float64
	if p.Rate != nil {
		rate = *p.Rate
	}
	return domain.GoalTelemetry{
		Slug:          p.Slug,
		Title:         p.Title,
		CurrentValue:  p.Curval,
		TargetValue:   p.Goalval,
		DeadlineEpoch: p.Losedate,
		SafeDays:      p.Safebuf,
		Pledge:        p.Pledge,
		Rate:          rate,
		RateUnit:      domain.RateUnit(p.Runits),
		Direction:     p.Yaw,
		MinimumDue:    p.Baremin,
		Summary:       p.Limsum,
		Units:         p.Gunits,
	}
}

// Datapoint is one recorded progress entry on a goal.
type Datapoint struct {
	ID        string  `json:"id"`
	Value     float64 `json:"value"`
	Comment   string  `json:"comment"`
	Timestamp int64   `json:"timestamp"`
}

// NewDatapoint describes a progress entry to submit. RequestID is an
// idempotency key so a retried submission is not double-counted.
type NewDatapoint struct {
	Value     float64
	Timestamp int64 // 0 means "now" (server-assigned)
	Comment   string
	RequestID string
}
