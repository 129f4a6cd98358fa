// Package clock formats the start page's time readout and drives the
// one-second tick that keeps it live.
package clock

import (
	"context"
	"fmt"
	"time"

	"startpage/model"
)

// Readout is one formatted clock tick.
type Readout struct {
	Time string `json:"time"`
	Date string `json:"date"`
	Zone string `json:"zone"`
}

// Format renders a wall-clock instant per the selected time format:
// zero-padded 24h, or 12h with no leading zero and an AM/PM suffix.
// The date string is fixed-locale: short weekday, short month, day.
func Format(t time.Time, format model.TimeFormat) Readout {
	var clock string
	if format == model.Format12h {
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		suffix := "AM"
		if t.Hour() >= 12 {
			suffix = "PM"
		}
		clock = fmt.Sprintf("%d:%02d:%02d %s", hour, t.Minute(), t.Second(), suffix)
	} else {
		clock = fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}

	return Readout{
		Time: clock,
		Date: t.Format("Mon, Jan 2"),
		Zone: t.Format("MST"),
	}
}

// Run emits a formatted readout once per second until the context is
// cancelled. The format callback is read on every tick so settings
// changes take effect immediately.
func Run(ctx context.Context, format func() model.TimeFormat, emit func(Readout)) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	emit(Format(time.Now(), format()))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			emit(Format(now, format()))
		}
	}
}
