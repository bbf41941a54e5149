package service_test

import (
	"context"
	"testing"

	repository "github.com/okian/gridpath/internal/adapters/repository"
	service "github.com/okian/gridpath/internal/app"
	"github.com/okian/gridpath/internal/domain/geo"
	"github.com/okian/gridpath/internal/domain/model"
	"github.com/okian/gridpath/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(v float64) *float64 { return &v }

// fakeStore implements repository.Store over a fixed record set.
type fakeStore struct {
	records []model.Recruit
	err     error
	loads   int
}

func (f *fakeStore) Load(_ context.Context) ([]model.Recruit, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeStore) Loaded() bool { return f.err == nil }

func (f *fakeStore) Count(_ context.Context) int { return len(f.records) }

func (f *fakeStore) Reset() {}

func fixtureRecords() []model.Recruit {
	return []model.Recruit{
		{
			ClassYear: 2024, School: "Central High", CommittedTo: "Ohio State",
			City: "Columbus", StateProvince: "OH", Country: "USA",
			Latitude: ptr(39.9612), Longitude: ptr(-82.9988),
		},
		{
			ClassYear: 2024, School: "Central High", CommittedTo: "Ohio State",
			City: "Columbus", StateProvince: "OH", Country: "USA",
			Latitude: ptr(39.9612), Longitude: ptr(-82.9988),
		},
		{
			ClassYear: 2025, School: "Northside Prep", CommittedTo: "Georgia",
			City: "Atlanta", StateProvince: "GA", Country: "USA",
			Latitude: ptr(33.7490), Longitude: ptr(-84.3880),
		},
	}
}

func TestService(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("initializing logger: %v", err)
	}
	ctx := context.Background()

	Convey("Given a started service over a fixed record set", t, func() {
		store := &fakeStore{records: fixtureRecords()}
		resolver := geo.NewStaticResolver(geo.WithLocations(map[string]geo.Coordinates{
			"Ohio State": {Latitude: 40.0067, Longitude: -83.0305},
		}))
		svc := service.New(
			service.WithLogger(logger.Get()),
			service.WithStore(store),
			service.WithResolver(resolver),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When listing colleges", func() {
			colleges, err := svc.Colleges(ctx)

			Convey("Then they are distinct and sorted", func() {
				So(err, ShouldBeNil)
				So(colleges, ShouldResemble, []string{"Georgia", "Ohio State"})
			})
		})

		Convey("When asking for year bounds", func() {
			bounds, err := svc.YearBounds(ctx)

			Convey("Then the dataset range is returned", func() {
				So(err, ShouldBeNil)
				So(bounds, ShouldResemble, model.YearRange{Min: 2024, Max: 2025})
			})
		})

		Convey("When aggregating pathways for the full range", func() {
			pathways, err := svc.Pathways(ctx, 2024, 2025, "all")

			Convey("Then counts are grouped per school-college pair", func() {
				So(err, ShouldBeNil)
				So(pathways, ShouldHaveLength, 2)
				So(pathways[0].Count, ShouldEqual, 2)
				So(pathways[1].Count, ShouldEqual, 1)
			})
		})

		Convey("When aggregating pathways with an empty college", func() {
			pathways, err := svc.Pathways(ctx, 2024, 2025, "")

			Convey("Then it behaves as all colleges", func() {
				So(err, ShouldBeNil)
				So(pathways, ShouldHaveLength, 2)
			})
		})

		Convey("When aggregating cities for a substring-matched college", func() {
			cities, err := svc.Cities(ctx, 2024, 2025, "ohio")

			Convey("Then only Ohio State commits contribute", func() {
				So(err, ShouldBeNil)
				So(cities, ShouldHaveLength, 1)
				So(cities[0].City, ShouldEqual, "Columbus")
				So(cities[0].Count, ShouldEqual, 2)
			})
		})

		Convey("When building college summaries", func() {
			summaries, err := svc.CollegeSummaries(ctx, 2024, 2025, "all")

			Convey("Then resolver coordinates decorate known colleges", func() {
				So(err, ShouldBeNil)
				So(summaries, ShouldHaveLength, 2)
				So(summaries[0].College, ShouldEqual, "Ohio State")
				So(summaries[0].Latitude, ShouldNotBeNil)
				So(*summaries[0].Latitude, ShouldEqual, 40.0067)
			})

			Convey("And unknown colleges keep nil coordinates", func() {
				So(err, ShouldBeNil)
				So(summaries[1].College, ShouldEqual, "Georgia")
				So(summaries[1].Latitude, ShouldBeNil)
			})
		})

		Convey("When requesting stats", func() {
			stats := svc.GetStats()

			Convey("Then cache state is exposed", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["loaded"], ShouldBeTrue)
				So(stats["records"], ShouldEqual, 3)
				So(stats["hasResolver"], ShouldBeTrue)
			})
		})
	})

	Convey("Given a service whose store cannot load", t, func() {
		store := &fakeStore{err: repository.ErrLoad}
		svc := service.New(
			service.WithLogger(logger.Get()),
			service.WithStore(store),
		)

		Convey("When starting", func() {
			err := svc.Start(ctx)

			Convey("Then start succeeds and the failure surfaces per call", func() {
				So(err, ShouldBeNil)

				_, err := svc.Colleges(ctx)
				So(err, ShouldWrap, repository.ErrLoad)
			})
		})
	})
}
