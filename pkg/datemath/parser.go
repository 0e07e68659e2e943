package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks)$`)

// Parser resolves day expressions such as "today" or "next friday" to the
// start of that day in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a day expression to midnight of that day. baseTime is the
// reference point, usually time.Now(). An empty expression means today.
//
// Accepted: today, tomorrow, yesterday, in N days, in N weeks, next <weekday>,
// <weekday> (the next occurrence, today included) and YYYY-MM-DD.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	switch relative {
	case "", "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime, false)
	}

	if _, ok := weekdays[relative]; ok {
		return p.parseWeekday(relative, baseTime, true)
	}

	if t, err := time.ParseInLocation(DayLayout, relative, p.location); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDay, relative)
}

// DayKey formats t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) DayKey(t time.Time) string {
	return t.In(p.location).Format(DayLayout)
}

// parseInDuration handles patterns like "in 3 days" and "in 2 weeks".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDuration, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	if strings.HasPrefix(matches[2], "week") {
		amount *= 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
}

// parseWeekday returns the next occurrence of dayName. With includeToday the
// base day itself qualifies.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, includeToday bool) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
