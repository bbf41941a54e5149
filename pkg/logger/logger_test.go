package logger_test

import (
	"context"
	"testing"

	"github.com/okian/gridpath/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			log := logger.Get()
			So(log, ShouldNotBeNil)

			// Should not panic.
			ctx := context.Background()
			log.Info(ctx, "info message", logger.String("k", "v"))
			log.Debug(ctx, "debug message", logger.Int("n", 1))
			log.Warn(ctx, "warn message", logger.Float64("f", 1.5))
			log.Error(ctx, "error message", logger.Bool("b", true))
		})

		Convey("Then Named returns a scoped logger", func() {
			So(logger.Named("store"), ShouldNotBeNil)
		})

		Convey("Then Sync never fails", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels parse", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("info"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString(" error "), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
		})

		Convey("Then unknown levels are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
