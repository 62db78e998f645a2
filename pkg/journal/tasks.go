package journal

import (
	"strings"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/notify"
)

// AddTask files a task under the selected date.
func (s *Service) AddTask(symbol glyph.Symbol, content string) bool {
	return s.AddTaskOn(symbol, content, "")
}

// AddTaskOn files a task under date. An empty date means the selected date.
func (s *Service) AddTaskOn(symbol glyph.Symbol, content, date string) bool {
	_, ok := s.CreateTask(TaskInput{Symbol: symbol, Content: content, Date: date})
	return ok
}

// CreateTask validates in and appends the task, returning it.
func (s *Service) CreateTask(in TaskInput) (*entry.Task, bool) {
	if in.Symbol == "" {
		in.Symbol = glyph.Task
	}
	if err := Validate.Struct(in); err != nil {
		if failedField(err) == "Symbol" {
			s.Notify(notify.Error, MsgBadSymbol)
		} else {
			s.Notify(notify.Error, MsgTaskEmpty)
		}
		return nil, false
	}

	date := s.state.Cursor.SelectedDate
	if strings.TrimSpace(in.Date) != "" {
		k, err := daykey.Parse(in.Date)
		if err != nil {
			s.Notify(notify.Error, MsgBadDate)
			return nil, false
		}
		date = k
	}

	now := s.clock.Now()
	t := &entry.Task{
		ID:        s.newID(),
		Symbol:    in.Symbol,
		Content:   in.Content,
		Date:      date,
		Completed: false,
		CreatedAt: entry.Now(now),
	}
	s.state.Tasks = append(s.state.Tasks, t)
	s.persisted("tasks", s.Persistence.SaveTasks(s.state.Tasks))
	s.Notify(notify.Success, MsgTaskAdded)
	s.render(RegionTasks, RegionCalendar, RegionDashboard, RegionDay)
	return t, true
}

// ToggleCompletion flips the completed flag of the task with id. It reports
// false when no such task exists.
func (s *Service) ToggleCompletion(id string) bool {
	t, ok := s.state.Task(id)
	if !ok {
		return false
	}
	t.Toggle()
	s.persisted("tasks", s.Persistence.SaveTasks(s.state.Tasks))
	s.render(RegionTasks, RegionDashboard, RegionCalendar, RegionStatistics, RegionDay)
	return true
}

// MigrateTasks rolls every open task dated today forward to tomorrow with the
// migrated symbol. Tasks on other days are left alone. It returns the number
// of migrated tasks.
func (s *Service) MigrateTasks() int {
	now := s.clock.Now()
	today, tomorrow := daykey.Today(now), daykey.Tomorrow(now)

	n := 0
	for _, t := range s.state.Tasks {
		if t.Date == today && !t.Completed {
			t.Migrate(tomorrow)
			n++
		}
	}
	s.persisted("tasks", s.Persistence.SaveTasks(s.state.Tasks))
	s.render(RegionTasks, RegionCalendar, RegionDashboard, RegionDay)
	s.Notify(notify.Success, MsgTasksMigrated)
	return n
}

// ClearCompletedTasks removes every completed task once the Confirmer agrees.
// It returns the number removed.
func (s *Service) ClearCompletedTasks() int {
	n := s.state.CompletedCount()
	if n == 0 {
		s.Notify(notify.Warning, MsgNothingToClear)
		return 0
	}
	if s.confirmer == nil || !s.confirmer.Confirm(ClearPrompt(n)) {
		return 0
	}

	kept := make([]*entry.Task, 0, len(s.state.Tasks)-n)
	for _, t := range s.state.Tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	s.state.Tasks = kept
	s.persisted("tasks", s.Persistence.SaveTasks(s.state.Tasks))
	s.render(RegionTasks, RegionCalendar, RegionDashboard, RegionStatistics, RegionDay)
	s.Notify(notify.Success, ClearedMessage(n))
	return n
}
