package payroll

import (
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// The pay formula assumes a fixed 30-day month and a 160-hour working
// month regardless of the calendar.
var (
	standardMonthDays  = decimal.NewFromInt(30)
	standardMonthHours = decimal.NewFromInt(160)
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	hraRate            = decimal.NewFromFloat(0.40)
	daRate             = decimal.NewFromFloat(0.20)
	taxRate            = decimal.NewFromFloat(0.15)
	pfRate             = decimal.NewFromFloat(0.12)
	esiRate            = decimal.NewFromFloat(0.0075)
)

// CalculationInput carries everything the pay formula needs for one
// employee and period.
type CalculationInput struct {
	MonthlyBasic decimal.Decimal
	Attendance   payroll.AttendanceTotals
	Adjustments  payroll.PeriodAdjustments
}

// Calculate derives a full payroll breakdown from attendance and
// adjustment aggregates. It is deterministic: the same input always
// produces the same output.
//
// Weekend days with present or half-day status are included in the worked
// day counts and counted again as automatic extra days, so they are paid
// at double the daily rate. Bonuses are summed regardless of their
// approval flag. Net salary has no floor and goes negative when
// deductions exceed gross pay.
func Calculate(in CalculationInput) payroll.Record {
	workedDays := float64(in.Attendance.PresentDays) + float64(in.Attendance.HalfDays)*0.5
	paidLeaveDays := float64(in.Attendance.LeaveDays)
	payableDays := workedDays + paidLeaveDays
	totalDays := 30
	absentDays := float64(totalDays) - payableDays
	extraDays := float64(in.Attendance.WeekendWorkDays) + in.Adjustments.ManualExtraDays

	dailyRate := in.MonthlyBasic.Div(standardMonthDays)
	hourlyRate := in.MonthlyBasic.Div(standardMonthHours)

	basicSalary := decimal.NewFromFloat(payableDays).Mul(dailyRate)
	extraPay := decimal.NewFromFloat(extraDays).Mul(dailyRate)
	overtimePay := in.Attendance.TotalOvertime.Mul(hourlyRate).Mul(overtimeMultiplier)

	hra := basicSalary.Mul(hraRate)
	da := basicSalary.Mul(daRate)
	grossSalary := basicSalary.Add(hra).Add(da).Add(overtimePay).Add(extraPay).Add(in.Adjustments.TotalBonuses)

	tax := grossSalary.Mul(taxRate)
	pf := basicSalary.Mul(pfRate)
	esi := grossSalary.Mul(esiRate)
	netSalary := grossSalary.Sub(tax).Sub(pf).Sub(esi).Sub(in.Adjustments.TotalDeductions)

	return payroll.Record{
		TotalDays:       totalDays,
		DaysWorked:      workedDays,
		PaidLeaveDays:   paidLeaveDays,
		PayableDays:     payableDays,
		AbsentDays:      absentDays,
		ExtraDays:       extraDays,
		HoursWorked:     in.Attendance.TotalHours,
		OvertimeHours:   in.Attendance.TotalOvertime,
		BasicSalary:     basicSalary,
		HRA:             hra,
		DA:              da,
		OvertimePay:     overtimePay,
		ExtraPay:        extraPay,
		Bonuses:         in.Adjustments.TotalBonuses,
		GrossSalary:     grossSalary,
		Tax:             tax,
		ProvidentFund:   pf,
		Insurance:       esi,
		OtherDeductions: in.Adjustments.TotalDeductions,
		NetSalary:       netSalary,
	}
}
