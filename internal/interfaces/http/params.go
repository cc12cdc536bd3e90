package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const formatJour = "2006-01-02"

// parsePeriode lit les query params from/to (YYYY-MM-DD). À défaut la période
// part du jour courant et couvre defaultJours jours. La borne `to` est exclue.
func parsePeriode(c *fiber.Ctx, defaultJours int) (from, to time.Time, err error) {
	now := time.Now().UTC()
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 0, defaultJours)

	if s := c.Query("from"); s != "" {
		from, err = time.Parse(formatJour, s)
		if err != nil {
			return from, to, fmt.Errorf("from invalide, format attendu %s", formatJour)
		}
		to = from.AddDate(0, 0, defaultJours)
	}
	if s := c.Query("to"); s != "" {
		to, err = time.Parse(formatJour, s)
		if err != nil {
			return from, to, fmt.Errorf("to invalide, format attendu %s", formatJour)
		}
	}
	if !to.After(from) {
		return from, to, fmt.Errorf("to doit être postérieur à from")
	}
	return from, to, nil
}

// parseJour lit un query param date (YYYY-MM-DD), jour courant à défaut.
func parseJour(c *fiber.Ctx, cle string) (time.Time, error) {
	s := c.Query(cle)
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(formatJour, s)
	if err != nil {
		return t, fmt.Errorf("%s invalide, format attendu %s", cle, formatJour)
	}
	return t, nil
}
