// Package seed generates synthetic recruiting datasets for demos and
// load tests.
package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/okian/gridpath/internal/domain/model"
)

// sourceHeader mirrors the raw header row of the scraped dataset,
// including the column names the store must normalize.
var sourceHeader = []string{
	"year", "name", "school", "committedTo", "city", "stateProvince",
	"country", "class_year", "latitude", "longitude",
	"ranking", "stars", "rating", "height", "weight",
}

// WriteCSV writes recruits to path in the raw source format.
func WriteCSV(path string, recruits []model.Recruit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(sourceHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range recruits {
		if err := w.Write(row(r)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing dataset file: %w", err)
	}
	return nil
}

// row serializes one recruit in source column order.
func row(r model.Recruit) []string {
	return []string{
		strconv.Itoa(r.Year),
		r.PlayerName,
		r.School,
		r.CommittedTo,
		r.City,
		r.StateProvince,
		r.Country,
		strconv.Itoa(r.ClassYear),
		coord(r.Latitude),
		coord(r.Longitude),
		strconv.Itoa(r.Ranking),
		strconv.Itoa(r.Stars),
		strconv.FormatFloat(r.Rating, 'f', 4, 64),
		strconv.FormatFloat(r.Height, 'f', 1, 64),
		strconv.FormatFloat(r.Weight, 'f', 1, 64),
	}
}

// coord renders a nullable coordinate; missing values stay empty so the
// admission rule sees them as absent.
func coord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}
