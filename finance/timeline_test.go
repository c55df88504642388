package finance

import (
	"testing"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTimelineDurationColumns(t *testing.T) {
	estimates := []models.ProjectEstimate{
		{ProjectID: "P1", IsEstimated: true, EstimatedDuration: 3},
	}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, map[string]string{"P1": "100%"}),
	}
	teams := map[string]string{"E1": "BE"}

	rows := ProjectTimeline(allocs, teams, estimates)
	require.Len(t, rows, 1)
	require.Equal(t, "BE", rows[0].Team)

	// A 3-month project occupies capacity in columns 3..6 only, so E1 is
	// fully available in columns 1 and 2 and absent afterwards.
	assert.Equal(t, []string{"E1 (100%)"}, rows[0].Columns[0])
	assert.Equal(t, []string{"E1 (100%)"}, rows[0].Columns[1])
	for d := 3; d <= TimelineHorizon; d++ {
		assert.Empty(t, rows[0].Columns[d-1], "column %d", d)
	}
}

func TestProjectTimelinePartialAvailability(t *testing.T) {
	estimates := []models.ProjectEstimate{
		{ProjectID: "P1", IsEstimated: true, EstimatedDuration: 1},
	}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, map[string]string{"P1": "40%"}),
	}
	teams := map[string]string{"E1": "BE"}

	rows := ProjectTimeline(allocs, teams, estimates)
	require.Len(t, rows, 1)

	// Every column scopes P1 in (duration 1 <= d for all d); columns are
	// recomputed independently, so each shows the same 60%.
	for d := 1; d <= TimelineHorizon; d++ {
		assert.Equal(t, []string{"E1 (60%)"}, rows[0].Columns[d-1], "column %d", d)
	}
}

func TestProjectTimelineOmitsFullyAllocatedTeams(t *testing.T) {
	estimates := []models.ProjectEstimate{
		{ProjectID: "P1", IsEstimated: true, EstimatedDuration: 1},
	}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, map[string]string{"P1": "100%"}),
		allocRow("E2", "Dev", "Senior", false, map[string]string{"P1": "50%"}),
	}
	teams := map[string]string{"E1": "BE", "E2": "FE"}

	rows := ProjectTimeline(allocs, teams, estimates)
	require.Len(t, rows, 1)
	assert.Equal(t, "FE", rows[0].Team)
}

func TestProjectTimelineUnknownTeamBucket(t *testing.T) {
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, nil),
	}

	rows := ProjectTimeline(allocs, map[string]string{}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0].Team)
}

func TestForecastProfit(t *testing.T) {
	estimates := []models.ProjectEstimate{
		{ProjectID: "P1", IsEstimated: true, TeamRevenues: map[string]float64{"BE": 50000000, "FE": 20000000}},
		{ProjectID: "P2", IsEstimated: true, TeamRevenues: map[string]float64{"BE": 30000000}},
		{ProjectID: "P3", IsEstimated: false, TeamRevenues: map[string]float64{"BE": 99000000}},
	}
	costs := map[string]float64{"BE": 50000000}

	out := ForecastProfit(estimates, costs)
	require.Len(t, out, 2)

	assert.Equal(t, TeamForecast{Team: "BE", Revenue: 80000000, Cost: 50000000, Profit: 30000000}, out[0])
	assert.Equal(t, TeamForecast{Team: "FE", Revenue: 20000000, Cost: 0, Profit: 20000000}, out[1])
}

func TestForecastProfitExcludesIdleTeams(t *testing.T) {
	estimates := []models.ProjectEstimate{
		{ProjectID: "P1", IsEstimated: true, TeamRevenues: map[string]float64{"BE": 0}},
	}
	costs := map[string]float64{"QA": 0}

	assert.Empty(t, ForecastProfit(estimates, costs))
}

func TestForecastProfitCostOnlyTeamIncluded(t *testing.T) {
	costs := map[string]float64{"QA": 10000000}

	out := ForecastProfit(nil, costs)
	require.Len(t, out, 1)
	assert.Equal(t, -10000000.0, out[0].Profit)
}
