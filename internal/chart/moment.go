package chart

import (
	"fmt"
	"time"

	"github.com/litescript/ls-planisphere/internal/timesys"
)

// Moment is a civil date and time read off the observer's local clock.
type Moment struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

// MomentFromTime converts a time.Time, as displayed in its own
// location, into a Moment.
func MomentFromTime(t time.Time) Moment {
	return Moment{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// JulianDay returns the Julian day number of the moment on its own
// clock. Feed the result to a Clock conversion to move between time
// systems.
func (m Moment) JulianDay() float64 {
	return timesys.JulianDay(m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second)
}

// Time materializes the moment in a fixed zone at the given UTC offset.
func (m Moment) Time(utcOffsetHours float64) time.Time {
	zone := time.FixedZone("", int(utcOffsetHours*3600))
	sec := int(m.Second)
	nsec := int((m.Second - float64(sec)) * 1e9)
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, sec, nsec, zone)
}

// Add steps the moment by a duration, carrying across day, month and
// year boundaries.
func (m Moment) Add(d time.Duration, utcOffsetHours float64) Moment {
	return MomentFromTime(m.Time(utcOffsetHours).Add(d))
}

func (m Moment) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02.0f",
		m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second)
}
