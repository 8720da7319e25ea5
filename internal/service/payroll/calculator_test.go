package payroll

import (
	"testing"

	"github.com/nimbus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimalEqual(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)), "%s = %s, want %d", field, got.String(), want)
}

// Full month of presence with no adjustments is the baseline breakdown.
func TestCalculate_FullMonth(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(30000),
		Attendance:   payroll.AttendanceTotals{PresentDays: 30},
	})

	assert.Equal(t, 30, rec.TotalDays)
	assert.Equal(t, 30.0, rec.DaysWorked)
	assert.Equal(t, 30.0, rec.PayableDays)
	assert.Equal(t, 0.0, rec.AbsentDays)
	assertDecimalEqual(t, 30000, rec.BasicSalary, "basic salary")
	assertDecimalEqual(t, 12000, rec.HRA, "hra")
	assertDecimalEqual(t, 6000, rec.DA, "da")
	assertDecimalEqual(t, 48000, rec.GrossSalary, "gross salary")
	assertDecimalEqual(t, 7200, rec.Tax, "tax")
	assertDecimalEqual(t, 3600, rec.ProvidentFund, "provident fund")
	assertDecimalEqual(t, 360, rec.Insurance, "insurance")
	assertDecimalEqual(t, 36840, rec.NetSalary, "net salary")
}

func TestCalculate_HalfDaysAndLeave(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(30000),
		Attendance: payroll.AttendanceTotals{
			PresentDays: 20,
			HalfDays:    4,
			LeaveDays:   2,
		},
	})

	assert.Equal(t, 22.0, rec.DaysWorked)
	assert.Equal(t, 2.0, rec.PaidLeaveDays)
	assert.Equal(t, 24.0, rec.PayableDays)
	assert.Equal(t, 6.0, rec.AbsentDays)
	assertDecimalEqual(t, 24000, rec.BasicSalary, "basic salary")
}

// A weekend day with present status is already in the present count, so it
// earns its daily rate twice: once as a worked day and once as extra pay.
func TestCalculate_WeekendWorkPaysDouble(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(30000),
		Attendance: payroll.AttendanceTotals{
			PresentDays:     4,
			WeekendWorkDays: 2,
		},
	})

	assert.Equal(t, 4.0, rec.DaysWorked)
	assert.Equal(t, 2.0, rec.ExtraDays)
	assertDecimalEqual(t, 4000, rec.BasicSalary, "basic salary")
	assertDecimalEqual(t, 2000, rec.ExtraPay, "extra pay")
}

func TestCalculate_ManualExtraDaysAddToWeekendDays(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(30000),
		Attendance:   payroll.AttendanceTotals{WeekendWorkDays: 1},
		Adjustments:  payroll.PeriodAdjustments{ManualExtraDays: 2.5},
	})

	assert.Equal(t, 3.5, rec.ExtraDays)
	assertDecimalEqual(t, 3500, rec.ExtraPay, "extra pay")
}

func TestCalculate_OvertimePay(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(16000),
		Attendance: payroll.AttendanceTotals{
			PresentDays:   30,
			TotalOvertime: decimal.NewFromInt(10),
		},
	})

	// hourly rate 100, times 10 hours, times 1.5
	assertDecimalEqual(t, 1500, rec.OvertimePay, "overtime pay")
}

func TestCalculate_BonusesAndDeductions(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(30000),
		Attendance:   payroll.AttendanceTotals{PresentDays: 30},
		Adjustments: payroll.PeriodAdjustments{
			TotalBonuses:    decimal.NewFromInt(2000),
			TotalDeductions: decimal.NewFromInt(500),
		},
	})

	assertDecimalEqual(t, 50000, rec.GrossSalary, "gross salary")
	assertDecimalEqual(t, 2000, rec.Bonuses, "bonuses")
	assertDecimalEqual(t, 500, rec.OtherDeductions, "other deductions")
	// 50000 - 7500 tax - 3600 pf - 375 esi - 500 deductions
	assertDecimalEqual(t, 38025, rec.NetSalary, "net salary")
}

// Net salary has no floor: heavy deductions push it below zero.
func TestCalculate_NetCanGoNegative(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(3000),
		Attendance:   payroll.AttendanceTotals{PresentDays: 10},
		Adjustments:  payroll.PeriodAdjustments{TotalDeductions: decimal.NewFromInt(2000)},
	})

	// gross 1600, tax 240, pf 120, esi 12, deductions 2000
	assertDecimalEqual(t, -772, rec.NetSalary, "net salary")
	assert.True(t, rec.NetSalary.IsNegative())
}

// A month with no attendance at all zeroes every earned component; the
// net is minus the deductions, not clamped at zero.
func TestCalculate_AllAbsent(t *testing.T) {
	rec := Calculate(CalculationInput{
		MonthlyBasic: decimal.NewFromInt(30000),
		Adjustments:  payroll.PeriodAdjustments{TotalDeductions: decimal.NewFromInt(1500)},
	})

	assert.Equal(t, 0.0, rec.PayableDays)
	assert.Equal(t, 30.0, rec.AbsentDays)
	assertDecimalEqual(t, 0, rec.BasicSalary, "basic salary")
	assertDecimalEqual(t, 0, rec.GrossSalary, "gross salary")
	assertDecimalEqual(t, 0, rec.Tax, "tax")
	assertDecimalEqual(t, 0, rec.ProvidentFund, "provident fund")
	assertDecimalEqual(t, -1500, rec.NetSalary, "net salary")
}

func TestCalculate_Deterministic(t *testing.T) {
	in := CalculationInput{
		MonthlyBasic: decimal.NewFromInt(45000),
		Attendance: payroll.AttendanceTotals{
			PresentDays:     22,
			HalfDays:        2,
			LeaveDays:       1,
			TotalOvertime:   decimal.NewFromInt(8),
			WeekendWorkDays: 1,
		},
		Adjustments: payroll.PeriodAdjustments{
			ManualExtraDays: 1,
			TotalBonuses:    decimal.NewFromInt(1500),
			TotalDeductions: decimal.NewFromInt(300),
		},
	}

	first := Calculate(in)
	second := Calculate(in)

	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.Equal(t, first.PayableDays, second.PayableDays)
}
