package view

import (
	"fmt"
	"math"
	"strconv"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/journal"
)

// Default chart canvas size.
const (
	ChartWidth  = 400
	ChartHeight = 300
)

const (
	PiePlaceholder   = "Registra emociones para ver estadísticas"
	ProductivityName = "Tareas Completadas por Día"

	barPadding  = 40.0
	barColorHex = "#819A91"

	inkDark  = "#1E1E1E"
	inkLight = "#FFFFFF"
	// inkThreshold is the CIE L*, scaled to 0..1, above which dark ink reads
	// better than light.
	inkThreshold = 0.6
	// trackTint is how far an empty bar is washed toward white.
	trackTint = 0.7
)

// ProductivityDays is the width of the productivity window.
const ProductivityDays = 7

var paletteHex = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40", "#8AC926"}

// Swatch is a chart color with the ink that stays legible on top of it.
type Swatch struct {
	Hex   string         `json:"hex"`
	Ink   string         `json:"ink"`
	Color colorful.Color `json:"-"`
}

func mustSwatch(hex string) Swatch {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("view: bad palette color %q: %v", hex, err))
	}
	return Swatch{Hex: hex, Ink: inkOn(c), Color: c}
}

func newSwatch(c colorful.Color) Swatch {
	c = c.Clamped()
	return Swatch{Hex: c.Hex(), Ink: inkOn(c), Color: c}
}

// inkOn picks dark or light text by the perceptual lightness of c.
func inkOn(c colorful.Color) string {
	l, _, _ := c.Lab()
	if l > inkThreshold {
		return inkDark
	}
	return inkLight
}

var (
	palette = func() []Swatch {
		out := make([]Swatch, len(paletteHex))
		for i, h := range paletteHex {
			out[i] = mustSwatch(h)
		}
		return out
	}()
	barColor = mustSwatch(barColorHex)
	barTrack = newSwatch(barColor.Color.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, trackTint))
)

// Palette returns the cyclic wedge palette.
func Palette() []Swatch {
	return append([]Swatch(nil), palette...)
}

// Wedge is one pie slice. Angles are radians, clockwise from 3 o'clock, as a
// canvas draws them.
type Wedge struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Color Swatch  `json:"color"`
	Start float64 `json:"start"`
	Sweep float64 `json:"sweep"`
	Text  string  `json:"text"`
	TextX float64 `json:"textX"`
	TextY float64 `json:"textY"`
}

// Share is the wedge's fraction of the whole.
func (w Wedge) Share() float64 {
	return w.Sweep / (2 * math.Pi)
}

// Pie is the emotion distribution chart.
type Pie struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Radius  float64 `json:"radius"`
	Total   int     `json:"total"`
	Wedges  []Wedge `json:"wedges"`
	// Placeholder replaces the chart when nothing was logged.
	Placeholder string `json:"placeholder,omitempty"`
}

// EmotionPie tallies mood entries per label, in order of first appearance,
// and lays the tallies out as wedges on a width x height canvas.
func EmotionPie(st *journal.State, width, height float64) Pie {
	p := Pie{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2, Wedges: []Wedge{}}
	p.Radius = math.Min(p.CenterX, p.CenterY) - 10

	var labels []string
	counts := map[string]int{}
	for _, e := range st.Emotions {
		if _, seen := counts[e.Emotion]; !seen {
			labels = append(labels, e.Emotion)
		}
		counts[e.Emotion]++
		p.Total++
	}
	if p.Total == 0 {
		p.Placeholder = PiePlaceholder
		return p
	}

	start := 0.0
	for i, label := range labels {
		n := counts[label]
		sweep := float64(n) / float64(p.Total) * 2 * math.Pi
		mid := start + sweep/2
		p.Wedges = append(p.Wedges, Wedge{
			Label: label,
			Count: n,
			Color: palette[i%len(palette)],
			Start: start,
			Sweep: sweep,
			Text:  fmt.Sprintf("%s (%d)", label, n),
			TextX: p.CenterX + math.Cos(mid)*p.Radius*0.7,
			TextY: p.CenterY + math.Sin(mid)*p.Radius*0.7,
		})
		start += sweep
	}
	return p
}

// Bar is one day of the productivity chart.
type Bar struct {
	Key    daykey.Key `json:"key"`
	Label  string     `json:"label"`
	Value  int        `json:"value"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	// Fill deepens from the washed out track toward the chart color as
	// Value approaches the maximum.
	Fill Swatch `json:"fill"`
	// ValueText is empty for days with nothing completed.
	ValueText string `json:"valueText"`
	// TextX is where the day and value labels are centered.
	TextX  float64 `json:"textX"`
	LabelY float64 `json:"labelY"`
	ValueY float64 `json:"valueY"`
}

// Productivity is the completed-tasks-per-day chart.
type Productivity struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
	Title   string  `json:"title"`
	TitleX  float64 `json:"titleX"`
	TitleY  float64 `json:"titleY"`
	// Max is the scale denominator, never below 1.
	Max   int    `json:"max"`
	Color Swatch `json:"color"`
	Bars  []Bar  `json:"bars"`
}

// ProductivityChart counts completed tasks for each of the last seven days,
// today last, and lays them out as bars on a width x height canvas.
func ProductivityChart(st *journal.State, now time.Time, width, height float64) Productivity {
	keys := daykey.LastDays(now, ProductivityDays)
	counts := make([]int, len(keys))
	for i, k := range keys {
		for _, t := range st.Tasks {
			if t.Completed && t.Date == k {
				counts[i]++
			}
		}
	}

	p := Productivity{
		Width:   width,
		Height:  height,
		Padding: barPadding,
		Title:   ProductivityName,
		TitleX:  width / 2,
		TitleY:  20,
		Max:     1,
		Color:   barColor,
		Bars:    make([]Bar, 0, len(keys)),
	}
	for _, c := range counts {
		if c > p.Max {
			p.Max = c
		}
	}

	chartWidth := width - barPadding*2
	chartHeight := height - barPadding*2
	slot := chartWidth / float64(len(keys))
	barWidth, barSpacing := slot*0.6, slot*0.4

	for i, k := range keys {
		h := float64(counts[i]) / float64(p.Max) * chartHeight
		x := barPadding + float64(i)*(barWidth+barSpacing) + barSpacing/2
		y := height - barPadding - h
		b := Bar{
			Key:    k,
			Label:  keyWeekday(k, now),
			Value:  counts[i],
			X:      x,
			Y:      y,
			Width:  barWidth,
			Height: h,
			Fill:   newSwatch(barTrack.Color.BlendLab(barColor.Color, float64(counts[i])/float64(p.Max))),
			TextX:  x + barWidth/2,
			LabelY: height - barPadding + 20,
			ValueY: y - 5,
		}
		if counts[i] > 0 {
			b.ValueText = strconv.Itoa(counts[i])
		}
		p.Bars = append(p.Bars, b)
	}
	return p
}

func keyWeekday(k daykey.Key, now time.Time) string {
	t, err := k.Time(now.Location())
	if err != nil {
		return ""
	}
	return ShortWeekday(t)
}

// Statistics is the statistics section.
type Statistics struct {
	TotalTasks     int          `json:"totalTasks"`
	CompletedTasks int          `json:"completedTasks"`
	TotalEvents    int          `json:"totalEvents"`
	TotalEmotions  int          `json:"totalEmotions"`
	Emotions       Pie          `json:"emotions"`
	Productivity   Productivity `json:"productivity"`
}

// Stats builds the statistics section with default chart sizes.
func Stats(st *journal.State, now time.Time) Statistics {
	s := Statistics{
		TotalTasks:    len(st.Tasks),
		TotalEmotions: len(st.Emotions),
		Emotions:      EmotionPie(st, ChartWidth, ChartHeight),
		Productivity:  ProductivityChart(st, now, ChartWidth, ChartHeight),
	}
	s.CompletedTasks = st.CompletedCount()
	for _, evs := range st.Events {
		s.TotalEvents += len(evs)
	}
	return s
}
