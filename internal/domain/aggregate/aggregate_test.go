package aggregate_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/okian/gridpath/internal/domain/aggregate"
	"github.com/okian/gridpath/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(v float64) *float64 { return &v }

func recruit(classYear int, school, college, city, state, country string, lat, lng float64) model.Recruit {
	return model.Recruit{
		Year:          classYear,
		ClassYear:     classYear,
		School:        school,
		CommittedTo:   college,
		City:          city,
		StateProvince: state,
		Country:       country,
		Latitude:      ptr(lat),
		Longitude:     ptr(lng),
	}
}

func TestUniqueColleges(t *testing.T) {
	Convey("Given records with duplicate colleges", t, func() {
		records := []model.Recruit{
			recruit(2024, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2024, "B", "Alabama", "Y", "AL", "USA", 2, 2),
			recruit(2024, "C", "Ohio State", "Z", "OH", "USA", 3, 3),
			recruit(2024, "D", "Georgia", "W", "GA", "USA", 4, 4),
		}

		Convey("When computing the unique colleges", func() {
			colleges := aggregate.UniqueColleges(records)

			Convey("Then output is strictly sorted ascending with no duplicates", func() {
				So(colleges, ShouldResemble, []string{"Alabama", "Georgia", "Ohio State"})
				So(sort.StringsAreSorted(colleges), ShouldBeTrue)
			})
		})

		Convey("When the input is empty", func() {
			Convey("Then the output is empty, not nil-failure", func() {
				So(aggregate.UniqueColleges(nil), ShouldBeEmpty)
			})
		})
	})
}

func TestYearBounds(t *testing.T) {
	Convey("Given records spanning several class years", t, func() {
		records := []model.Recruit{
			recruit(2021, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2026, "B", "Alabama", "Y", "AL", "USA", 2, 2),
			recruit(2023, "C", "Georgia", "Z", "GA", "USA", 3, 3),
		}

		Convey("Then bounds are the min and max class year", func() {
			So(aggregate.YearBounds(records), ShouldResemble, model.YearRange{Min: 2021, Max: 2026})
		})
	})

	Convey("Given an empty input", t, func() {
		Convey("Then the fixed default range is returned", func() {
			So(aggregate.YearBounds(nil), ShouldResemble, model.YearRange{Min: 2023, Max: 2025})
		})
	})

	Convey("Given only implausible class years", t, func() {
		records := []model.Recruit{
			recruit(0, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2030, "B", "Alabama", "Y", "AL", "USA", 2, 2),
			recruit(2031, "C", "Georgia", "Z", "GA", "USA", 3, 3),
		}

		Convey("Then values at or outside (0, 2030) are ignored and the default applies", func() {
			So(aggregate.YearBounds(records), ShouldResemble, model.YearRange{Min: 2023, Max: 2025})
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Given a mixed record set", t, func() {
		records := []model.Recruit{
			recruit(2024, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2024, "B", "Alabama", "Y", "AL", "USA", 2, 2),
			recruit(2022, "C", "Ohio State", "Z", "OH", "USA", 3, 3),
			recruit(2024, "D", "Ohio State", "W", "ON", "CAN", 4, 4),
		}

		Convey("When filtering by year range only", func() {
			got := aggregate.Filter(records, 2023, 2025, aggregate.AllColleges)

			Convey("Then out-of-range and non-USA records are excluded", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].School, ShouldEqual, "A")
				So(got[1].School, ShouldEqual, "B")
			})
		})

		Convey("When filtering by a college substring", func() {
			got := aggregate.Filter(records, 2023, 2025, "Ohio")

			Convey("Then committedTo is matched case-insensitively as a substring", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].CommittedTo, ShouldEqual, "Ohio State")
			})

			Convey("And the match ignores case entirely", func() {
				So(aggregate.Filter(records, 2023, 2025, "ohio state"), ShouldHaveLength, 1)
			})
		})

		Convey("When a record has country CAN", func() {
			got := aggregate.Filter(records, 2024, 2024, "Ohio State")

			Convey("Then it is excluded regardless of year and college match", func() {
				for _, r := range got {
					So(r.Country, ShouldEqual, "USA")
				}
				So(got, ShouldHaveLength, 1)
			})
		})

		Convey("When a record is missing coordinates", func() {
			uncharted := recruit(2024, "E", "Georgia", "V", "GA", "USA", 0, 0)
			uncharted.Latitude = nil
			got := aggregate.Filter(append(records, uncharted), 2023, 2025, aggregate.AllColleges)

			Convey("Then it is excluded", func() {
				So(got, ShouldHaveLength, 2)
			})
		})

		Convey("When startYear exceeds endYear", func() {
			Convey("Then the result is empty, never an error", func() {
				So(aggregate.Filter(records, 2025, 2023, aggregate.AllColleges), ShouldBeEmpty)
			})
		})

		Convey("When filtering is applied twice with the same parameters", func() {
			once := aggregate.Filter(records, 2023, 2025, "Ohio")
			twice := aggregate.Filter(once, 2023, 2025, "Ohio")

			Convey("Then the filter is idempotent", func() {
				So(reflect.DeepEqual(once, twice), ShouldBeTrue)
			})
		})
	})
}

func TestPathways(t *testing.T) {
	Convey("Given two recruits on the same pathway", t, func() {
		records := []model.Recruit{
			recruit(2024, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2024, "A", "Ohio State", "X", "OH", "USA", 1, 1),
		}

		Convey("When aggregating pathways", func() {
			pathways := aggregate.Pathways(records)

			Convey("Then one entry with count 2 is produced", func() {
				So(pathways, ShouldHaveLength, 1)
				So(pathways[0].Count, ShouldEqual, 2)
				So(pathways[0].School, ShouldEqual, "A")
				So(pathways[0].College, ShouldEqual, "Ohio State")
			})
		})
	})

	Convey("Given recruits on distinct pathways", t, func() {
		records := []model.Recruit{
			recruit(2024, "B", "Georgia", "Y", "GA", "USA", 2, 2),
			recruit(2024, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2024, "B", "Georgia", "Q", "GA", "USA", 9, 9),
		}

		Convey("When aggregating pathways", func() {
			pathways := aggregate.Pathways(records)

			Convey("Then output follows first-seen key insertion order", func() {
				So(pathways, ShouldHaveLength, 2)
				So(pathways[0].School, ShouldEqual, "B")
				So(pathways[1].School, ShouldEqual, "A")
			})

			Convey("And representative fields come from the first matching record", func() {
				So(pathways[0].City, ShouldEqual, "Y")
				So(pathways[0].Latitude, ShouldEqual, 2)
			})

			Convey("And counts sum to the number of input records", func() {
				total := 0
				for _, p := range pathways {
					total += p.Count
				}
				So(total, ShouldEqual, len(records))
			})
		})
	})
}

func TestCities(t *testing.T) {
	Convey("Given recruits from overlapping cities", t, func() {
		records := []model.Recruit{
			recruit(2024, "A", "Ohio State", "Columbus", "OH", "USA", 1, 1),
			recruit(2024, "B", "Alabama", "Columbus", "OH", "USA", 5, 5),
			recruit(2024, "C", "Georgia", "Columbus", "GA", "USA", 2, 2),
		}

		Convey("When aggregating cities", func() {
			cities := aggregate.Cities(records)

			Convey("Then the key is (city, stateProvince)", func() {
				So(cities, ShouldHaveLength, 2)
				So(cities[0].City, ShouldEqual, "Columbus")
				So(cities[0].StateProvince, ShouldEqual, "OH")
				So(cities[0].Count, ShouldEqual, 2)
				So(cities[1].StateProvince, ShouldEqual, "GA")
				So(cities[1].Count, ShouldEqual, 1)
			})

			Convey("And representative coordinates come from the first record", func() {
				So(cities[0].Latitude, ShouldEqual, 1)
			})

			Convey("And counts sum to the number of input records", func() {
				total := 0
				for _, c := range cities {
					total += c.Count
				}
				So(total, ShouldEqual, len(records))
			})
		})
	})
}

func TestColleges(t *testing.T) {
	Convey("Given recruits committed to overlapping colleges", t, func() {
		records := []model.Recruit{
			recruit(2024, "A", "Ohio State", "X", "OH", "USA", 1, 1),
			recruit(2024, "B", "Ohio State", "Y", "OH", "USA", 2, 2),
			recruit(2024, "C", "Georgia", "Z", "GA", "USA", 3, 3),
		}

		Convey("When aggregating colleges", func() {
			colleges := aggregate.Colleges(records)

			Convey("Then counts follow first-seen order and sum to input length", func() {
				So(colleges, ShouldHaveLength, 2)
				So(colleges[0].College, ShouldEqual, "Ohio State")
				So(colleges[0].Count, ShouldEqual, 2)
				So(colleges[1].College, ShouldEqual, "Georgia")
				So(colleges[1].Count, ShouldEqual, 1)

				total := 0
				for _, c := range colleges {
					total += c.Count
				}
				So(total, ShouldEqual, len(records))
			})
		})

		Convey("When the input is empty", func() {
			Convey("Then the output is empty", func() {
				So(aggregate.Colleges(nil), ShouldBeEmpty)
			})
		})
	})
}
