package finance

import (
	"testing"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocRow(code, role, position string, callKH bool, allocations map[string]string) models.Allocate {
	parsed := make(map[string]models.FlexNumber, len(allocations))
	for projectID, pct := range allocations {
		parsed[projectID] = models.FlexFromString(pct)
	}
	return models.Allocate{
		EmployeeCode:       code,
		Role:               role,
		Position:           position,
		CallKH:             callKH,
		ProjectAllocations: parsed,
	}
}

func TestTotalAllocatedScoping(t *testing.T) {
	a := allocRow("E1", "Dev", "Senior", false, map[string]string{
		"P1": "60%",
		"P2": "50%",
		"P3": "30%",
	})

	// P3 is out of scope and must not count.
	scope := map[string]bool{"P1": true, "P2": true}
	assert.Equal(t, 110.0, TotalAllocated(a, scope))
}

func TestAvailabilityOverAllocatedExcluded(t *testing.T) {
	scope := map[string]bool{"P1": true, "P2": true}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, map[string]string{"P1": "60%", "P2": "50%"}),
	}

	// 110 allocated >= 100 excludes the employee entirely.
	assert.Empty(t, Availability(allocs, scope))
}

func TestAvailabilityExactly100Excluded(t *testing.T) {
	scope := map[string]bool{"P1": true}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, map[string]string{"P1": "100%"}),
	}

	// The gate is totalAllocated < 100, so exactly 100 is out.
	assert.Empty(t, Availability(allocs, scope))
}

func TestAvailabilityPartialAllocation(t *testing.T) {
	scope := map[string]bool{"P1": true}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", false, map[string]string{"P1": "40%"}),
	}

	groups := Availability(allocs, scope)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Employees, 1)
	assert.Equal(t, "E1", groups[0].Employees[0].EmployeeCode)
	assert.Equal(t, 60.0, groups[0].Employees[0].Available)
	assert.Equal(t, 0.6, groups[0].Headcount)
}

func TestAvailabilityCallKHMultiMembership(t *testing.T) {
	scope := map[string]bool{"P1": true}
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Senior", true, map[string]string{"P1": "25%"}),
		allocRow("E2", "Dev", "Senior", false, map[string]string{"P1": "50%"}),
	}

	groups := Availability(allocs, scope)
	require.Len(t, groups, 2)

	// Call KH sorts before Dev; E1 appears in both groups.
	assert.Equal(t, CallKHRole, groups[0].Role)
	require.Len(t, groups[0].Employees, 1)
	assert.Equal(t, "E1", groups[0].Employees[0].EmployeeCode)
	assert.Equal(t, 75.0, groups[0].Employees[0].Available)

	assert.Equal(t, "Dev", groups[1].Role)
	require.Len(t, groups[1].Employees, 2)
	assert.Equal(t, 1.25, groups[1].Headcount)
}

func TestAvailabilityIgnoresOutOfScopeAllocations(t *testing.T) {
	// Nothing in scope means everyone is fully available.
	allocs := []models.Allocate{
		allocRow("E1", "Dev", "Junior", false, map[string]string{"P1": "100%"}),
	}

	groups := Availability(allocs, map[string]bool{})
	require.Len(t, groups, 1)
	assert.Equal(t, 100.0, groups[0].Employees[0].Available)
}

func TestParsePercentFallback(t *testing.T) {
	assert.Equal(t, 25.0, models.FlexFromString("25%").Value)
	assert.Equal(t, 50.0, models.FlexFromString(" 50% ").Value)
	assert.Equal(t, 75.5, models.FlexFromString("75.5").Value)
	assert.Equal(t, 0.0, models.FlexFromString("n/a").Value)
}

func TestInScopeProjects(t *testing.T) {
	estimates := []models.ProjectEstimate{
		{ProjectID: "P1", IsEstimated: true, EstimatedDuration: 2},
		{ProjectID: "P2", IsEstimated: true, EstimatedDuration: 5},
		{ProjectID: "P3", IsEstimated: false, EstimatedDuration: 1},
	}

	all := InScopeProjects(estimates, 0)
	assert.Equal(t, map[string]bool{"P1": true, "P2": true}, all)

	short := InScopeProjects(estimates, 3)
	assert.Equal(t, map[string]bool{"P1": true}, short)
}
