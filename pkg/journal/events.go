package journal

import (
	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/notify"
)

// AddEvent files an event under date, which may be a day key or an ISO date.
func (s *Service) AddEvent(title, date, startTime, endTime string) bool {
	_, ok := s.CreateEvent(EventInput{Title: title, Date: date, StartTime: startTime, EndTime: endTime})
	return ok
}

// CreateEvent validates in and appends the event to its day.
func (s *Service) CreateEvent(in EventInput) (*entry.DatedEvent, bool) {
	if err := Validate.Struct(in); err != nil {
		switch failedField(err) {
		case "StartTime", "EndTime":
			s.Notify(notify.Error, MsgBadDate)
		default:
			s.Notify(notify.Error, MsgEventIncomplete)
		}
		return nil, false
	}
	key, err := daykey.Parse(in.Date)
	if err != nil {
		s.Notify(notify.Error, MsgBadDate)
		return nil, false
	}

	ev := &entry.Event{
		ID:        s.newID(),
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		CreatedAt: entry.Now(s.clock.Now()),
	}
	if s.state.Events == nil {
		s.state.Events = map[daykey.Key][]*entry.Event{}
	}
	s.state.Events[key] = append(s.state.Events[key], ev)
	s.persisted("events", s.Persistence.SaveEvents(s.state.Events))
	s.Notify(notify.Success, MsgEventAdded)
	s.render(RegionEvents, RegionCalendar, RegionDashboard, RegionStatistics, RegionDay)
	return &entry.DatedEvent{Event: ev, Date: key}, true
}
