// Package date переводит календарные даты в Unix-время и обратно.
//
// Календарная дата хранится как полночь UTC. Во внешнем представлении это
// Unix-время полуночи того же дня в часовом поясе сервиса.
package date

import "time"

// FromUnix возвращает календарную дату момента ts в часовом поясе loc.
func FromUnix(ts int64, loc *time.Location) time.Time {
	t := time.Unix(ts, 0).In(loc)
	return Of(t)
}

// ToUnix возвращает Unix-время полуночи даты d в часовом поясе loc.
func ToUnix(d time.Time, loc *time.Location) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc).Unix()
}

// Of отбрасывает время и часовой пояс, оставляя календарный день.
func Of(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
