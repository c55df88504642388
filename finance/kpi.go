package finance

// ConvertedVND computes the VND-equivalent bill for one billing row:
// hours x rate x fxRate x percentage / 100. Unparsable inputs have already
// been normalized to 0 at the boundary, so a bad factor yields 0, never an
// error.
func ConvertedVND(hours, rate, fxRate, percentage float64) float64 {
	return hours * rate * fxRate * percentage / 100
}

// TotalPayment is the amount actually paid out for the row.
func TotalPayment(companyPayment, salary13 float64) float64 {
	return companyPayment + salary13
}

// PercentageRatio is total payment over total earn, as a percentage. The
// zero-denominator guard returns 0 rather than NaN or Inf and must stay.
func PercentageRatio(totalPayment, convertedVND, packageVND float64) float64 {
	total := convertedVND + packageVND
	if total == 0 {
		return 0
	}
	return totalPayment / total * 100
}

// SalaryCoefficient is the employee's KPI amount relative to basic salary,
// rounded to 3 decimals. Zero basic salary yields 0, guarded the same way as
// PercentageRatio.
func SalaryCoefficient(kpi, basicSalary float64) float64 {
	if basicSalary <= 0 {
		return 0
	}
	return Round3(kpi / basicSalary)
}
