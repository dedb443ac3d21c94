package utils

import "time"

// ParseDate lê uma data no formato YYYY-MM-DD. Texto vazio retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseTimestamp aceita RFC3339 ou YYYY-MM-DD. Texto vazio retorna nil.
func ParseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	timestamp, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ParseDate(value)
	}

	return &timestamp, nil
}

// EndOfDay retorna o último instante do dia de t
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
