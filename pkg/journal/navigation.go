package journal

import (
	"tableflip.dev/diario/pkg/daykey"
)

// ShowSection switches the visible section. Spanish names are accepted. It
// reports false, changing nothing, for an unknown section.
func (s *Service) ShowSection(name string) bool {
	sec, ok := ParseSection(name)
	if !ok {
		return false
	}
	s.state.Cursor.Section = sec
	s.render(RegionNav, sec.Region())
	return true
}

// PrevMonth pages the calendar back one month.
func (s *Service) PrevMonth() {
	s.state.Cursor.Month = s.state.Cursor.Month.AddDate(0, -1, 0)
	s.render(RegionCalendar)
}

// NextMonth pages the calendar forward one month.
func (s *Service) NextMonth() {
	s.state.Cursor.Month = s.state.Cursor.Month.AddDate(0, 1, 0)
	s.render(RegionCalendar)
}

// SelectDay moves the cursor to key and opens its day detail. Keys that are
// not calendar days are refused.
func (s *Service) SelectDay(key daykey.Key) bool {
	k, err := daykey.Parse(string(key))
	if err != nil {
		return false
	}
	s.state.Cursor.SelectedDate = k
	s.state.Cursor.DayOpen = true
	s.render(RegionCalendar, RegionDay)
	return true
}

// CloseDay hides the day detail. The selected date stays.
func (s *Service) CloseDay() {
	if !s.state.Cursor.DayOpen {
		return
	}
	s.state.Cursor.DayOpen = false
	s.render(RegionDay)
}
