// Package period resolves relative date phrases ("hoje", "semana que vem")
// into concrete time windows anchored at an injectable clock.
package period

import (
	"strings"
	"time"

	"oficina/internal/core/normalize"
	"oficina/internal/platform/timex"
)

// Window is a closed time range. Day windows run from 00:00:00.000 to
// 23:59:59.999; week windows run Sunday through Saturday
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type span int

const (
	spanDay span = iota
	spanWeek
)

// rule maps a folded phrase to a window relative to now. Rules fire in
// order and the first containment match wins: today, then tomorrow, then
// this week, then next week. "depois de amanha" sits before "amanha"
// because the shorter phrase is a substring of the longer one
type rule struct {
	phrase string
	span   span
	offset int // days for spanDay, weeks for spanWeek
}

var rules = []rule{
	{phrase: "hoje", span: spanDay, offset: 0},
	{phrase: "depois de amanha", span: spanDay, offset: 2},
	{phrase: "amanha", span: spanDay, offset: 1},
	{phrase: "essa semana", span: spanWeek, offset: 0},
	{phrase: "esta semana", span: spanWeek, offset: 0},
	{phrase: "nesta semana", span: spanWeek, offset: 0},
	{phrase: "proxima semana", span: spanWeek, offset: 1},
	{phrase: "semana que vem", span: spanWeek, offset: 1},
}

// Resolver turns relative date text into Windows
type Resolver struct {
	folder *normalize.Folder
	now    func() time.Time
}

// New creates a Resolver on the wall clock
func New() *Resolver { return NewWithClock(time.Now) }

// NewWithClock creates a Resolver anchored at the given clock, for tests
// and replay
func NewWithClock(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{folder: normalize.New(), now: now}
}

// Resolve matches text against the phrase table and returns the resolved
// window. The second return is false when no phrase matches
func (r *Resolver) Resolve(text string) (Window, bool) {
	folded := r.folder.Fold(text)
	if folded == "" {
		return Window{}, false
	}
	for _, rl := range rules {
		if !strings.Contains(folded, rl.phrase) {
			continue
		}
		return r.window(rl), true
	}
	if wd, ok := weekdayIn(folded); ok {
		return r.weekdayWindow(wd), true
	}
	return Window{}, false
}

func (r *Resolver) window(rl rule) Window {
	now := r.now()
	switch rl.span {
	case spanWeek:
		anchor := now.AddDate(0, 0, 7*rl.offset)
		return Window{Start: timex.WeekStart(anchor), End: timex.WeekEnd(anchor)}
	default:
		day := now.AddDate(0, 0, rl.offset)
		return Window{Start: timex.DayStart(day), End: timex.DayEnd(day)}
	}
}

var weekdays = []struct {
	phrase string
	day    time.Weekday
}{
	{"segunda", time.Monday},
	{"terca", time.Tuesday},
	{"quarta", time.Wednesday},
	{"quinta", time.Thursday},
	{"sexta", time.Friday},
	{"sabado", time.Saturday},
	{"domingo", time.Sunday},
}

func weekdayIn(folded string) (time.Weekday, bool) {
	for _, w := range weekdays {
		if strings.Contains(folded, w.phrase) {
			return w.day, true
		}
	}
	return 0, false
}

// weekdayWindow resolves a bare weekday name to the next occurrence of that
// day, counting today as a match
func (r *Resolver) weekdayWindow(wd time.Weekday) Window {
	now := r.now()
	delta := (int(wd) - int(now.Weekday()) + 7) % 7
	day := now.AddDate(0, 0, delta)
	return Window{Start: timex.DayStart(day), End: timex.DayEnd(day)}
}
