package http

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// parseDecimalParam convierte un query param opcional a decimal.
// Cadena vacía devuelve nil sin error.
func parseDecimalParam(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseIntParam convierte un query param opcional a int.
func parseIntParam(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parseDateParam convierte un query param YYYY-MM-DD a time.Time.
func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// reportRange resuelve el rango de fechas de un reporte: por defecto los
// últimos 30 días, y fecha_fin se extiende al final del día para incluirlo.
func reportRange(fechaInicio, fechaFin string) (time.Time, time.Time, error) {
	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -30)
	if t, err := parseDateParam(fechaInicio); err != nil {
		return desde, hasta, err
	} else if t != nil {
		desde = *t
	}
	if t, err := parseDateParam(fechaFin); err != nil {
		return desde, hasta, err
	} else if t != nil {
		hasta = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return desde, hasta, nil
}
