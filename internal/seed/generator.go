// Package seed generates synthetic recruiting datasets for demos and
// load tests.
package seed

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/okian/gridpath/internal/domain/model"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Class-year generation range.
const (
	firstClassYear = 2020
	classYearSpan  = 6
)

// Defect kinds injected when a defect ratio is configured. These rows
// must be dropped by the store's admission rule.
const (
	defectMissingCoords = 0
	defectEmptySchool   = 1
	defectEmptyCollege  = 2
	defectZeroClassYear = 3
	defectKinds         = 4
)

// hometown is a city a synthetic recruit can come from.
type hometown struct {
	city  string
	state string
	lat   float64
	lng   float64
}

var hometowns = []hometown{
	{"Columbus", "OH", 39.9612, -82.9988},
	{"Cleveland", "OH", 41.4993, -81.6944},
	{"Dallas", "TX", 32.7767, -96.7970},
	{"Houston", "TX", 29.7604, -95.3698},
	{"Atlanta", "GA", 33.7490, -84.3880},
	{"Miami", "FL", 25.7617, -80.1918},
	{"Tampa", "FL", 27.9506, -82.4572},
	{"Los Angeles", "CA", 34.0522, -118.2437},
	{"Birmingham", "AL", 33.5186, -86.8104},
	{"Charlotte", "NC", 35.2271, -80.8431},
}

var colleges = []string{
	"Ohio State",
	"Alabama",
	"Georgia",
	"Texas",
	"Michigan",
	"Clemson",
	"Oregon",
	"Notre Dame",
}

var highSchools = []string{
	"Central High",
	"St. Francis Academy",
	"Northside Prep",
	"Eastlake High",
	"Jefferson High",
	"Valley Christian",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// pick returns a random index below n.
func pick(n int) int {
	i, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(i.Int64())
}

// Generate produces count synthetic recruits. defectRatio in [0, 1]
// controls the fraction of rows deliberately violating the admission
// rule, so the generated file exercises load-time filtering end to end.
func Generate(count int, defectRatio float64) []model.Recruit {
	recruits := make([]model.Recruit, 0, count)
	for i := 0; i < count; i++ {
		town := hometowns[pick(len(hometowns))]
		classYear := firstClassYear + pick(classYearSpan)
		lat, lng := town.lat, town.lng

		r := model.Recruit{
			Year:          classYear,
			ClassYear:     classYear,
			PlayerName:    fmt.Sprintf("Player %s", uuid.New().String()[:8]),
			School:        highSchools[pick(len(highSchools))],
			CommittedTo:   colleges[pick(len(colleges))],
			City:          town.city,
			StateProvince: town.state,
			Country:       "USA",
			Latitude:      &lat,
			Longitude:     &lng,
			Ranking:       1 + pick(300),
			Stars:         2 + pick(4),
			Rating:        0.70 + getRandomFloat()*0.30,
			Height:        70 + getRandomFloat()*8,
			Weight:        170 + getRandomFloat()*120,
		}

		if getRandomFloat() < defectRatio {
			breakRecord(&r)
		}
		recruits = append(recruits, r)
	}
	return recruits
}

// breakRecord mutates a recruit so the admission rule drops it.
func breakRecord(r *model.Recruit) {
	switch pick(defectKinds) {
	case defectMissingCoords:
		r.Latitude = nil
		r.Longitude = nil
	case defectEmptySchool:
		r.School = ""
	case defectEmptyCollege:
		r.CommittedTo = ""
	case defectZeroClassYear:
		r.ClassYear = 0
	}
}
