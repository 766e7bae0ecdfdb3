package book

import (
	"sort"
	"time"
)

// DefaultWindowDays is the lookahead used when the caller gives none.
const DefaultWindowDays = 7

// Greeting is one upcoming congratulation: who, and on which day to reach
// out. Date is the congratulation date, i.e. the anniversary already rolled
// off a weekend onto the following Monday.
type Greeting struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays returns every contact whose congratulation date falls
// inside [today, today+windowDays], both ends inclusive. The window check
// uses the rolled date, so a weekend shift can pull a birthday into the
// window or push it out. Results are ordered by congratulation date, with
// ties in insertion order.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) []Greeting {
	today = truncateToDay(today)
	end := today.AddDate(0, 0, windowDays)

	var out []Greeting
	for _, rec := range b.Records() {
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		candidate := nextOccurrence(birthday.Date(), today)
		congrats := rollOffWeekend(candidate)
		if congrats.Before(today) || congrats.After(end) {
			continue
		}
		out = append(out, Greeting{Name: rec.Name().String(), Date: congrats})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// nextOccurrence returns the next anniversary of birthday on or after today.
// A Feb 29 birthday falls back to Feb 28 in non-leap years.
func nextOccurrence(birthday, today time.Time) time.Time {
	candidate := anniversaryInYear(birthday, today.Year())
	if candidate.Before(today) {
		candidate = anniversaryInYear(birthday, today.Year()+1)
	}
	return candidate
}

func anniversaryInYear(birthday time.Time, year int) time.Time {
	month, day := birthday.Month(), birthday.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// rollOffWeekend moves Saturday and Sunday dates to the following Monday.
// It never rolls backward.
func rollOffWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
