package view

import (
	"fmt"
	"time"

	"tableflip.dev/diario/pkg/daykey"
)

var (
	monthNames = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
	weekdayNames = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	weekdayShort = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
)

// WeekdayHeaders are the calendar column titles, Sunday first.
func WeekdayHeaders() []string {
	return []string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
}

// MonthTitle renders "marzo de 2024".
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}

// ShortWeekday renders "mar" for a Tuesday.
func ShortWeekday(t time.Time) string {
	return weekdayShort[t.Weekday()]
}

// ShortDate renders "5/3/2024".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// LongDate renders "martes, 5 de marzo de 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year())
}

// KeyDate renders a day key as ShortDate. Keys that are not days come back
// unchanged.
func KeyDate(k daykey.Key) string {
	t, err := k.Time(time.UTC)
	if err != nil {
		return string(k)
	}
	return ShortDate(t)
}

// KeyLongDate renders a day key as LongDate.
func KeyLongDate(k daykey.Key) string {
	t, err := k.Time(time.UTC)
	if err != nil {
		return string(k)
	}
	return LongDate(t)
}
