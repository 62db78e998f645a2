package view

import (
	"math"
	"strings"
	"testing"
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/journal"
)

// now is Tuesday 2024-03-05.
var now = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func newState() *journal.State {
	return journal.NewState(now)
}

func task(id string, date daykey.Key, done bool) *entry.Task {
	return &entry.Task{ID: id, Symbol: glyph.Task, Content: "task " + id, Date: date, Completed: done}
}

func TestFormats(t *testing.T) {
	if got := MonthTitle(2024, time.March); got != "marzo de 2024" {
		t.Fatalf("unexpected month title %q", got)
	}
	if got := LongDate(now); got != "martes, 5 de marzo de 2024" {
		t.Fatalf("unexpected long date %q", got)
	}
	if got := KeyDate("2024-3-5"); got != "5/3/2024" {
		t.Fatalf("unexpected short date %q", got)
	}
	if got := KeyDate("garbage"); got != "garbage" {
		t.Fatalf("expected invalid key shown as is, got %q", got)
	}
	if got := ShortWeekday(now); got != "mar" {
		t.Fatalf("unexpected weekday %q", got)
	}
}

func TestMonthGrid(t *testing.T) {
	st := newState()
	st.Tasks = []*entry.Task{task("1", "2024-3-10", false), task("2", "2024-3-11", true)}
	st.Events = map[daykey.Key][]*entry.Event{
		"2024-3-12": {{ID: "e", Title: "Dentist"}},
		"2024-3-13": {},
	}
	st.Cursor.SelectedDate = "2024-3-20"

	cal := MonthGrid(st, 2024, time.March, now)
	if cal.Title != "marzo de 2024" {
		t.Fatalf("unexpected title %q", cal.Title)
	}
	// March 1st 2024 is a Friday: five padding cells, then 31 days.
	if len(cal.Cells) != 5+31 {
		t.Fatalf("expected 36 cells, got %d", len(cal.Cells))
	}
	for i := 0; i < 5; i++ {
		if !cal.Cells[i].Empty() {
			t.Fatalf("expected cell %d empty", i)
		}
	}
	cell := func(day int) Cell { return cal.Cells[5+day-1] }
	if c := cell(1); c.Key != "2024-3-1" || c.Day != 1 {
		t.Fatalf("unexpected first day %+v", c)
	}
	if !cell(10).HasTasks || cell(11).HasTasks {
		t.Fatalf("only open tasks mark a day")
	}
	if !cell(12).HasEvents || cell(13).HasEvents {
		t.Fatalf("only non-empty event lists mark a day")
	}
	if !cell(5).IsToday || cell(6).IsToday {
		t.Fatalf("expected only the 5th marked today")
	}
	if !cell(20).IsSelected {
		t.Fatalf("expected the 20th selected")
	}
	rows := cal.Rows()
	if len(rows) != 6 || len(rows[5]) != 1 {
		t.Fatalf("unexpected rows %d, last %d", len(rows), len(rows[len(rows)-1]))
	}
}

func TestMonthGridLeapFebruary(t *testing.T) {
	cal := MonthGrid(newState(), 2024, time.February, now)
	// February 1st 2024 is a Thursday.
	if len(cal.Cells) != 4+29 {
		t.Fatalf("expected 33 cells, got %d", len(cal.Cells))
	}
	if DaysIn(2023, time.February) != 28 {
		t.Fatalf("expected 28 days in February 2023")
	}
}

func TestCalendarPageFollowsCursor(t *testing.T) {
	st := newState()
	st.Cursor.Month = time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	if cal := CalendarPage(st, now); cal.Year != 2023 || cal.Month != time.December {
		t.Fatalf("unexpected page %d-%d", cal.Year, cal.Month)
	}
}

func TestTaskLists(t *testing.T) {
	st := newState()
	l := Tasks(st)
	if l.PendingEmpty() != NoPendingTasks || l.CompletedEmpty() != NoCompletedTasks {
		t.Fatalf("expected empty state lines")
	}
	st.Tasks = []*entry.Task{task("1", "2024-3-5", false), task("2", "2024-3-5", true), task("3", "2024-3-6", false)}
	l = Tasks(st)
	if len(l.Pending) != 2 || len(l.Completed) != 1 {
		t.Fatalf("unexpected split %d/%d", len(l.Pending), len(l.Completed))
	}
	if l.Pending[0].ToggleLabel != "✓" || l.Completed[0].ToggleLabel != "↩" {
		t.Fatalf("unexpected toggle labels")
	}
	if l.Pending[1].DateLabel != "6/3/2024" {
		t.Fatalf("unexpected date label %q", l.Pending[1].DateLabel)
	}
}

func TestEventPartition(t *testing.T) {
	st := newState()
	st.Events = map[daykey.Key][]*entry.Event{
		"2024-3-4":  {{ID: "yesterday", StartTime: "9:00", EndTime: "10:00"}},
		"2024-3-5":  {{ID: "today"}},
		"2024-3-6":  {nil, {ID: "tomorrow"}},
		"2024-3-10": {{ID: "soon"}},
		"2024-10-1": {{ID: "october"}},
		"2024-2-1":  {{ID: "february"}},
		"someday":   {{ID: "bad key"}},
		"2024-3-20": {},
	}
	l := Events(st, now)

	var up, past []string
	for _, e := range l.Upcoming {
		up = append(up, e.ID)
	}
	for _, e := range l.Past {
		past = append(past, e.ID)
	}
	wantUp := []string{"today", "tomorrow", "soon", "october"}
	wantPast := []string{"yesterday", "february", "bad key"}
	if len(up) != len(wantUp) || len(past) != len(wantPast) {
		t.Fatalf("unexpected partition up=%v past=%v", up, past)
	}
	for i := range wantUp {
		if up[i] != wantUp[i] {
			t.Fatalf("upcoming[%d] = %s, want %s", i, up[i], wantUp[i])
		}
	}
	for i := range wantPast {
		if past[i] != wantPast[i] {
			t.Fatalf("past[%d] = %s, want %s", i, past[i], wantPast[i])
		}
	}
	if l.Past[0].TimeLabel != "9:00 - 10:00" {
		t.Fatalf("unexpected time label %q", l.Past[0].TimeLabel)
	}
	for _, e := range l.Upcoming {
		if e.Date.Before(daykey.Today(now)) {
			t.Fatalf("past event %s listed as upcoming", e.ID)
		}
	}

	empty := Events(newState(), now)
	if empty.UpcomingEmpty() != NoUpcomingEvents || empty.PastEmpty() != NoPastEvents {
		t.Fatalf("expected empty state lines")
	}
}

func TestEmotionLogMostRecentFirst(t *testing.T) {
	st := newState()
	if Emotions(st, now).EmptyText() != NoEmotions {
		t.Fatalf("expected empty state line")
	}
	st.Emotions = []*entry.Emotion{
		{ID: "1", Emotion: entry.Sad, Intensity: 2, Date: entry.Now(now.Add(-48 * time.Hour))},
		{ID: "2", Emotion: entry.Happy, Note: "Good day", Intensity: 4, Date: entry.Now(now)},
	}
	log := Emotions(st, now)
	if log.Entries[0].ID != "2" || log.Entries[1].ID != "1" {
		t.Fatalf("expected most recent first")
	}
	first := log.Entries[0]
	if first.Emoji != "😊" || first.Stars != "★★★★☆" || first.DateLabel != "5/3/2024" {
		t.Fatalf("unexpected item %+v", first)
	}
	if log.Entries[1].Note != NoNote {
		t.Fatalf("expected note fallback, got %q", log.Entries[1].Note)
	}
}

func TestDayDetail(t *testing.T) {
	st := newState()
	st.Tasks = []*entry.Task{task("1", "2024-3-5", false), task("2", "2024-3-5", true), task("3", "2024-3-6", false)}
	st.Events = map[daykey.Key][]*entry.Event{"2024-3-5": {{ID: "e1"}, {ID: "e2"}}}

	d := DayDetail(st, "2024-3-5")
	if d.Title != "martes, 5 de marzo de 2024" {
		t.Fatalf("unexpected title %q", d.Title)
	}
	if len(d.Tasks) != 2 || len(d.Events) != 2 {
		t.Fatalf("unexpected detail %d tasks %d events", len(d.Tasks), len(d.Events))
	}
	empty := DayDetail(st, "2024-3-7")
	if empty.TasksEmpty() != NoDayTasks || empty.EventsEmpty() != NoDayEvents {
		t.Fatalf("expected empty state lines")
	}
}

func TestDashboard(t *testing.T) {
	st := newState()
	st.Tasks = []*entry.Task{task("1", "2024-3-1", false), task("2", "2024-3-5", true), task("3", "2024-3-9", false)}
	st.Events = map[daykey.Key][]*entry.Event{
		"2024-3-4": {{ID: "past"}},
		"2024-3-5": {{ID: "today"}, {ID: "today2"}},
		"2024-4-1": {{ID: "later"}},
		"nope":     {{ID: "bad"}},
	}
	d := Home(st, now)
	if d.PendingTasks != 2 || d.UpcomingEvents != 3 {
		t.Fatalf("unexpected counts %+v", d)
	}
	if d.HasMood || d.MoodEmoji != "" {
		t.Fatalf("expected no mood without entries")
	}
	found := false
	for _, q := range quotes {
		if q == d.Quote {
			found = true
		}
	}
	if !found {
		t.Fatalf("unexpected quote %q", d.Quote)
	}
	if Home(st, now).Quote != d.Quote {
		t.Fatalf("expected the quote to stay fixed")
	}
}

func TestDashboardMoodScenario(t *testing.T) {
	svc, err := journal.New(newFakeStore(), journal.Options{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.AddEmotion("feliz", "Good day", 4)
	d := Home(svc.State(), now)
	if d.MoodEmoji != "😊" || d.MoodPhrase != "¡Hoy es un gran día!" {
		t.Fatalf("unexpected mood %q %q", d.MoodEmoji, d.MoodPhrase)
	}

	svc.AddEmotion("aburrido", "", 3)
	d = Home(svc.State(), now)
	if !d.HasMood || d.MoodEmoji != "" || d.MoodPhrase != "" {
		t.Fatalf("expected empty lookups for an unknown label, got %+v", d)
	}
}

func TestEmotionPie(t *testing.T) {
	st := newState()
	p := EmotionPie(st, ChartWidth, ChartHeight)
	if p.Placeholder != PiePlaceholder || len(p.Wedges) != 0 {
		t.Fatalf("expected placeholder for no data")
	}

	for _, e := range []string{entry.Tired, entry.Happy, entry.Tired, entry.Sad, entry.Tired, entry.Happy} {
		st.Emotions = append(st.Emotions, &entry.Emotion{Emotion: e})
	}
	p = EmotionPie(st, ChartWidth, ChartHeight)
	if p.Placeholder != "" {
		t.Fatalf("unexpected placeholder")
	}
	if p.Radius != 140 {
		t.Fatalf("expected radius 140, got %v", p.Radius)
	}
	if len(p.Wedges) != 3 {
		t.Fatalf("expected 3 wedges, got %d", len(p.Wedges))
	}
	wantLabels := []string{entry.Tired, entry.Happy, entry.Sad}
	sum, tally := 0.0, 0
	for i, w := range p.Wedges {
		if w.Label != wantLabels[i] {
			t.Fatalf("wedge %d: expected %s, got %s", i, wantLabels[i], w.Label)
		}
		if w.Color.Hex != paletteHex[i] {
			t.Fatalf("wedge %d: unexpected color %s", i, w.Color.Hex)
		}
		if math.Abs(w.Share()-float64(w.Count)/float64(p.Total)) > 1e-9 {
			t.Fatalf("wedge %d not proportional", i)
		}
		if math.Abs(w.Start-sum) > 1e-9 {
			t.Fatalf("wedge %d does not start where the previous ended", i)
		}
		sum += w.Sweep
		tally += w.Count
	}
	if tally != len(st.Emotions) || p.Total != len(st.Emotions) {
		t.Fatalf("tallies %d do not sum to %d", tally, len(st.Emotions))
	}
	if math.Abs(sum-2*math.Pi) > 1e-9 {
		t.Fatalf("sweeps sum to %v, want 2π", sum)
	}
	if p.Wedges[0].Text != "cansado (3)" {
		t.Fatalf("unexpected text %q", p.Wedges[0].Text)
	}
	// Half the circle: the label sits at angle π/2, straight below the centre.
	if math.Abs(p.Wedges[0].TextX-200) > 1e-9 || math.Abs(p.Wedges[0].TextY-(150+98)) > 1e-9 {
		t.Fatalf("unexpected label position %v,%v", p.Wedges[0].TextX, p.Wedges[0].TextY)
	}
}

func TestPaletteCycles(t *testing.T) {
	st := newState()
	for i := 0; i < 9; i++ {
		st.Emotions = append(st.Emotions, &entry.Emotion{Emotion: string(rune('a' + i))})
	}
	p := EmotionPie(st, ChartWidth, ChartHeight)
	if p.Wedges[7].Color.Hex != paletteHex[0] || p.Wedges[8].Color.Hex != paletteHex[1] {
		t.Fatalf("expected palette to wrap around")
	}
}

func TestProductivityChart(t *testing.T) {
	st := newState()
	st.Tasks = []*entry.Task{
		task("1", "2024-3-5", true),
		task("2", "2024-3-5", true),
		task("3", "2024-3-3", true),
		task("4", "2024-3-3", false),
		task("5", "2024-2-27", true),
		task("6", "2024-2-20", true),
	}
	p := ProductivityChart(st, now, ChartWidth, ChartHeight)
	if len(p.Bars) != 7 {
		t.Fatalf("expected 7 bars, got %d", len(p.Bars))
	}
	wantKeys := []daykey.Key{"2024-2-28", "2024-2-29", "2024-3-1", "2024-3-2", "2024-3-3", "2024-3-4", "2024-3-5"}
	wantVals := []int{0, 0, 0, 0, 1, 0, 2}
	for i, b := range p.Bars {
		if b.Key != wantKeys[i] || b.Value != wantVals[i] {
			t.Fatalf("bar %d: got %s=%d, want %s=%d", i, b.Key, b.Value, wantKeys[i], wantVals[i])
		}
		if (b.ValueText == "") != (b.Value == 0) {
			t.Fatalf("bar %d: value label only when positive", i)
		}
	}
	if p.Bars[6].Label != "mar" || p.Bars[0].Label != "mié" {
		t.Fatalf("unexpected weekday labels %q %q", p.Bars[0].Label, p.Bars[6].Label)
	}
	if p.Max != 2 || p.Title != "Tareas Completadas por Día" {
		t.Fatalf("unexpected chart %+v", p)
	}
	// 320px of chart split in 7 slots; bars take 60% of a slot.
	slot := 320.0 / 7
	if math.Abs(p.Bars[0].Width-slot*0.6) > 1e-9 || math.Abs(p.Bars[0].X-(40+slot*0.2)) > 1e-9 {
		t.Fatalf("unexpected first bar geometry %+v", p.Bars[0])
	}
	if p.Bars[6].Height != 220 || p.Bars[6].Y != 40 {
		t.Fatalf("expected tallest bar to fill the chart, got %+v", p.Bars[6])
	}
	if p.Bars[4].Height != 110 {
		t.Fatalf("expected half height bar, got %v", p.Bars[4].Height)
	}
	if want := p.Bars[3].X + p.Bars[3].Width/2; math.Abs(p.Bars[3].TextX-want) > 1e-9 {
		t.Fatalf("expected labels centered on the bar, got %v want %v", p.Bars[3].TextX, want)
	}
}

func TestBarFillDeepensWithValue(t *testing.T) {
	st := newState()
	st.Tasks = []*entry.Task{
		task("1", "2024-3-5", true),
		task("2", "2024-3-5", true),
		task("3", "2024-3-4", true),
	}
	p := ProductivityChart(st, now, ChartWidth, ChartHeight)
	empty, half, full := p.Bars[0].Fill, p.Bars[5].Fill, p.Bars[6].Fill

	if !strings.EqualFold(full.Hex, barColorHex) {
		t.Fatalf("expected the busiest day in the chart color, got %s", full.Hex)
	}
	if empty.Hex != barTrack.Hex {
		t.Fatalf("expected an empty day on the track color, got %s", empty.Hex)
	}
	lightness := func(s Swatch) float64 {
		l, _, _ := s.Color.Lab()
		return l
	}
	if !(lightness(empty) > lightness(half) && lightness(half) > lightness(full)) {
		t.Fatalf("expected fills to darken with value: %s %s %s", empty.Hex, half.Hex, full.Hex)
	}
	if empty.Ink != inkDark {
		t.Fatalf("expected dark ink on the washed out track, got %s", empty.Ink)
	}
}

func TestSwatchInkFollowsLightness(t *testing.T) {
	tests := map[string]struct {
		hex  string
		want string
	}{
		"yellow":   {hex: "#FFCE56", want: inkDark},
		"teal":     {hex: "#4BC0C0", want: inkDark},
		"purple":   {hex: "#9966FF", want: inkLight},
		"black":    {hex: "#000000", want: inkLight},
		"white":    {hex: "#FFFFFF", want: inkDark},
		"charcoal": {hex: "#333333", want: inkLight},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := mustSwatch(tc.hex).Ink; got != tc.want {
				t.Fatalf("ink on %s: got %s, want %s", tc.hex, got, tc.want)
			}
		})
	}
}

func TestProductivityEmptyUsesUnitScale(t *testing.T) {
	p := ProductivityChart(newState(), now, ChartWidth, ChartHeight)
	if p.Max != 1 {
		t.Fatalf("expected scale 1, got %d", p.Max)
	}
	for _, b := range p.Bars {
		if b.Height != 0 || b.ValueText != "" {
			t.Fatalf("expected flat bars, got %+v", b)
		}
	}
	if p.Bars[6].Key != daykey.Today(now) {
		t.Fatalf("expected today last")
	}
}

func TestStats(t *testing.T) {
	st := newState()
	st.Tasks = []*entry.Task{task("1", "2024-3-5", true), task("2", "2024-3-5", false)}
	st.Events = map[daykey.Key][]*entry.Event{"2024-3-5": {{}, {}}, "2024-3-6": {{}}}
	st.Emotions = []*entry.Emotion{{Emotion: entry.Happy}}
	s := Stats(st, now)
	if s.TotalTasks != 2 || s.CompletedTasks != 1 || s.TotalEvents != 3 || s.TotalEmotions != 1 {
		t.Fatalf("unexpected stats %+v", s)
	}
}
