package clock

import "time"

// Clock возвращает текущее время в заданном часовом поясе.
// Календарная дата "сегодня" для договоров берется из этого пояса
type Clock struct {
	loc *time.Location
}

// New создает часы для часового пояса loc (nil - UTC)
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc}
}

// NewFromName создает часы по имени часового пояса IANA
func NewFromName(name string) (*Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return New(loc), nil
}

// Now возвращает текущее время
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location возвращает часовой пояс часов
func (c *Clock) Location() *time.Location {
	return c.loc
}
