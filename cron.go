package briefing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultSchedule is the schedule the briefing job ships with.
	DefaultSchedule = "33 3 * * *"

	// DefaultTimezone is the zone DefaultSchedule is evaluated in.
	DefaultTimezone = "Asia/Kolkata"
)

var weekdays = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// standardParser accepts the classic 5-field format:
// "minute hour day-of-month month day-of-week".
var standardParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Field is one position of a cron expression. Any is true for the "*"
// wildcard, in which case Value is meaningless.
type Field struct {
	Value uint8
	Any   bool
}

// ScheduleDescription is the parsed shape of a 5-field cron expression.
// It is built fresh by ParseCron and carries no state beyond one call.
type ScheduleDescription struct {
	Minute     Field
	Hour       Field
	DayOfMonth Field
	Month      Field
	DayOfWeek  Field
}

// ParseCron parses expr into its five fields. Each field must be "*" or a
// base-10 integer from 0 to 255; anything else (steps, ranges, lists,
// names, larger numbers) reports ok == false. Values within that range are
// not checked against cron bounds, so minute 75 parses and renders as is.
func ParseCron(expr string) (desc ScheduleDescription, ok bool) {
	tokens := strings.Fields(expr)
	if len(tokens) != 5 {
		return desc, false
	}

	fields := []*Field{&desc.Minute, &desc.Hour, &desc.DayOfMonth, &desc.Month, &desc.DayOfWeek}
	for i, token := range tokens {
		f, valid := parseField(token)
		if !valid {
			return ScheduleDescription{}, false
		}
		*fields[i] = f
	}
	return desc, true
}

func parseField(token string) (Field, bool) {
	if token == "*" {
		return Field{Any: true}, true
	}
	n, err := strconv.ParseUint(token, 10, 8)
	if err != nil {
		return Field{}, false
	}
	return Field{Value: uint8(n)}, true
}

// DescribeCron renders expr as a single English sentence, for example
// "every day at 3:33 AM" for "33 3 * * *".
//
// DescribeCron never fails. When expr is not five whitespace-separated
// fields of wildcards and integers it is returned unchanged, so strings
// that are already human readable pass straight through.
func DescribeCron(expr string) string {
	desc, ok := ParseCron(expr)
	if !ok {
		return expr
	}
	return desc.String()
}

// String renders the description as a sentence. The day phrase is chosen
// by precedence: a literal weekday 0-6, then a literal day of month, then
// every day. The month field does not take part.
func (d ScheduleDescription) String() string {
	var day string
	switch {
	case !d.DayOfWeek.Any && d.DayOfWeek.Value <= 6:
		day = "every " + weekdays[d.DayOfWeek.Value]
	case !d.DayOfMonth.Any:
		day = fmt.Sprintf("on day %d of every month", d.DayOfMonth.Value)
	default:
		day = "every day"
	}

	switch {
	case !d.Hour.Any && !d.Minute.Any:
		return day + " at " + clock(d.Hour.Value, d.Minute.Value)
	case !d.Hour.Any:
		return fmt.Sprintf("%s, every minute past %s", day, hour12(d.Hour.Value))
	case !d.Minute.Any:
		return fmt.Sprintf("%s, at minute %d of every hour", day, d.Minute.Value)
	default:
		return day + ", every minute"
	}
}

// clock formats a 24-hour time as "3:05 PM". Out-of-range values are
// rendered literally.
func clock(hour, minute uint8) string {
	h, suffix := twelveHour(hour)
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

func hour12(hour uint8) string {
	h, suffix := twelveHour(hour)
	return fmt.Sprintf("%d %s", h, suffix)
}

func twelveHour(hour uint8) (int, string) {
	h := int(hour)
	switch {
	case h == 0:
		return 12, "AM"
	case h < 12:
		return h, "AM"
	case h == 12:
		return h, "PM"
	case h <= 23:
		return h - 12, "PM"
	default:
		return h, "PM"
	}
}

// ValidCron reports whether expr is a standard 5-field expression the
// scheduler would accept, including steps, ranges, lists and names.
func ValidCron(expr string) bool {
	_, err := standardParser.Parse(expr)
	return err == nil
}

// NextRun returns the first time after from that expr fires, evaluated in
// loc. A nil loc means UTC. The result is expressed in loc.
func NextRun(expr string, loc *time.Location, from time.Time) (time.Time, error) {
	schedule, err := standardParser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	if loc == nil {
		loc = time.UTC
	}

	next := schedule.Next(from.In(loc))
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("cron expression %q never fires", expr)
	}
	return next, nil
}
