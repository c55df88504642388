package finance

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
)

// TimelineHorizon is the number of forward-looking columns in the staffing
// timeline.
const TimelineHorizon = 6

// TimelineRow is one team's availability over the horizon. Columns[d-1]
// holds "{code} ({available}%)" labels for the d-month column.
type TimelineRow struct {
	Team    string                    `json:"team"`
	Columns [TimelineHorizon][]string `json:"columns"`
}

// AvailableLabel formats one timeline cell entry.
func AvailableLabel(code string, available float64) string {
	return fmt.Sprintf("%s (%s%%)", code, strconv.FormatFloat(available, 'f', -1, 64))
}

// ProjectTimeline recomputes availability once per duration column. Column d
// scopes to estimated projects whose duration is at most d months, so a
// 3-month project occupies capacity in columns 3 through 6 and is absent
// from 1 and 2. Each column is an independent recomputation over the full
// dataset; no depletion carries forward. teamByCode maps employee code to
// team; employees without a team fall under "-". Teams with no availability
// in any column are dropped from the output.
func ProjectTimeline(allocs []models.Allocate, teamByCode map[string]string, estimates []models.ProjectEstimate) []TimelineRow {
	byTeam := make(map[string]*TimelineRow)
	for d := 1; d <= TimelineHorizon; d++ {
		scope := InScopeProjects(estimates, d)
		for _, a := range allocs {
			total := TotalAllocated(a, scope)
			if total >= 100 {
				continue
			}
			team, ok := teamByCode[a.EmployeeCode]
			if !ok || team == "" {
				team = "-"
			}
			row, ok := byTeam[team]
			if !ok {
				row = &TimelineRow{Team: team}
				byTeam[team] = row
			}
			row.Columns[d-1] = append(row.Columns[d-1], AvailableLabel(a.EmployeeCode, 100-total))
		}
	}

	out := make([]TimelineRow, 0, len(byTeam))
	for _, row := range byTeam {
		hasAny := false
		for _, col := range row.Columns {
			if len(col) > 0 {
				hasAny = true
				break
			}
		}
		if !hasAny {
			continue
		}
		for i := range row.Columns {
			sort.Strings(row.Columns[i])
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}

// TeamForecast is one team's projected monthly revenue against its average
// cost.
type TeamForecast struct {
	Team    string  `json:"team"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// ForecastProfit sums per-team revenue estimates across projects flagged for
// forecasting and subtracts each team's average monthly cost. Teams with
// zero revenue and zero cost are left out.
func ForecastProfit(estimates []models.ProjectEstimate, costs map[string]float64) []TeamForecast {
	revenue := make(map[string]float64)
	for _, e := range estimates {
		if !e.IsEstimated {
			continue
		}
		for team, amount := range e.TeamRevenues {
			revenue[team] += amount
		}
	}

	teams := make(map[string]bool)
	for team := range revenue {
		teams[team] = true
	}
	for team := range costs {
		teams[team] = true
	}

	out := make([]TeamForecast, 0, len(teams))
	for team := range teams {
		r := revenue[team]
		c := costs[team]
		if r == 0 && c == 0 {
			continue
		}
		out = append(out, TeamForecast{Team: team, Revenue: r, Cost: c, Profit: r - c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}
