package finance

import (
	"sort"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
)

// CallKHRole is the extra bucket for employees flagged for customer calls.
// Membership there is in addition to the (role, position) group, not instead
// of it.
const CallKHRole = "Call KH"

// GroupKey identifies one availability bucket.
type GroupKey struct {
	Role     string `json:"role"`
	Position string `json:"position"`
}

// AvailableEmployee is one employee's spare capacity within a group.
type AvailableEmployee struct {
	EmployeeCode string  `json:"employee_code"`
	Available    float64 `json:"available_percentage"`
}

// AvailabilityGroup is the per-(role, position) output of the availability
// report. Headcount is the group's spare capacity expressed in full-time
// equivalents.
type AvailabilityGroup struct {
	GroupKey
	Employees []AvailableEmployee `json:"employees"`
	Headcount float64             `json:"headcount"`
}

// GroupKeys classifies one allocation row into its availability buckets: the
// (role, position) group always, plus the Call KH bucket when flagged.
func GroupKeys(a models.Allocate) []GroupKey {
	keys := []GroupKey{{Role: a.Role, Position: a.Position}}
	if a.CallKH {
		keys = append(keys, GroupKey{Role: CallKHRole})
	}
	return keys
}

// TotalAllocated sums the employee's allocation percentages across in-scope
// projects only. Percentage strings were normalized to numerics at the
// boundary; anything unparsable counted as 0.
func TotalAllocated(a models.Allocate, inScope map[string]bool) float64 {
	var total float64
	for projectID, pct := range a.ProjectAllocations {
		if inScope[projectID] {
			total += pct.Value
		}
	}
	return total
}

// Availability computes each employee's spare capacity against the in-scope
// project set and groups the available ones. An employee allocated at 100 or
// more is excluded; everyone else reports 100 - totalAllocated.
func Availability(allocs []models.Allocate, inScope map[string]bool) []AvailabilityGroup {
	grouped := make(map[GroupKey][]AvailableEmployee)
	for _, a := range allocs {
		total := TotalAllocated(a, inScope)
		if total >= 100 {
			continue
		}
		entry := AvailableEmployee{
			EmployeeCode: a.EmployeeCode,
			Available:    100 - total,
		}
		for _, key := range GroupKeys(a) {
			grouped[key] = append(grouped[key], entry)
		}
	}

	out := make([]AvailabilityGroup, 0, len(grouped))
	for key, employees := range grouped {
		var sum float64
		for _, e := range employees {
			sum += e.Available
		}
		sort.Slice(employees, func(i, j int) bool {
			return employees[i].EmployeeCode < employees[j].EmployeeCode
		})
		out = append(out, AvailabilityGroup{
			GroupKey:  key,
			Employees: employees,
			Headcount: Round2(sum / 100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// InScopeProjects collects the IDs of estimates flagged for forecasting. A
// maxDuration of 0 disables duration filtering; otherwise projects whose
// estimated duration exceeds it are left out.
func InScopeProjects(estimates []models.ProjectEstimate, maxDuration int) map[string]bool {
	scope := make(map[string]bool)
	for _, e := range estimates {
		if !e.IsEstimated {
			continue
		}
		if maxDuration > 0 && e.EstimatedDuration > maxDuration {
			continue
		}
		scope[e.ProjectID] = true
	}
	return scope
}
