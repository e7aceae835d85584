package utils

import (
	"fmt"
	"time"
)

// ParseDateOrToday converte yyyy-mm-dd; vazio retorna o dia atual no fuso informado
func ParseDateOrToday(dateStr string, loc *time.Location) (time.Time, error) {
	if dateStr == "" {
		return Today(time.Now(), loc), nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q, use o formato yyyy-mm-dd", dateStr)
	}

	return date, nil
}

// Today retorna a meia-noite (UTC) do dia corrente no fuso informado
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
