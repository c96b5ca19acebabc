package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Period ventana móvil para los resúmenes de ventas.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod acepta day|week|month y sus equivalentes dia|semana|mes.
func ParsePeriod(s string) (Period, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "dia", "día":
		return PeriodDay, true
	case "week", "semana":
		return PeriodWeek, true
	case "month", "mes":
		return PeriodMonth, true
	}
	return "", false
}

// Window devuelve [from, to) para el periodo según el calendario de loc:
// day = hoy; week = desde hace 7 días; month = desde hace 30 días; todas hasta el fin de hoy.
func (p Period) Window(now time.Time, loc *time.Location) (from, to time.Time, ok bool) {
	today := StartOfDay(now, loc)
	to = today.AddDate(0, 0, 1)
	switch p {
	case PeriodDay:
		return today, to, true
	case PeriodWeek:
		return today.AddDate(0, 0, -7), to, true
	case PeriodMonth:
		return today.AddDate(0, 0, -30), to, true
	}
	return time.Time{}, time.Time{}, false
}

// StartOfDay medianoche del día de t en loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SalesSummary agregados de ventas de una ventana.
type SalesSummary struct {
	Period           Period
	From             time.Time
	To               time.Time
	Count            int64
	TotalRevenueBase decimal.Decimal
	TotalUnitsSold   int64
}
