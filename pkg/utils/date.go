package utils

import (
	"math"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// EndOfDay estende o timestamp para o último instante do dia, para que a
// data final do filtro seja inclusiva.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// MonthKey formata o mês de uma data como YYYY-MM, a chave dos baldes mensais.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthsBetween conta quantos meses inteiros a janela cobre, com mínimo de 1.
// Usa o mês comercial de 30 dias, como o sistema de origem.
func MonthsBetween(start, end time.Time) int {
	if !end.After(start) {
		return 1
	}

	months := int(math.Ceil(end.Sub(start).Hours() / (30 * 24)))
	if months < 1 {
		return 1
	}

	return months
}

// WithinWindow informa se t está dentro da janela [start, end].
func WithinWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
