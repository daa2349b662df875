package service_test

import (
	"context"
	"testing"

	repository "github.com/mergington/activities/internal/adapters/repository"
	app "github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func testRoster() roster.Roster {
	return roster.Roster{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce school plays",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"ella@mergington.edu"},
		},
	}
}

func startedService(opts ...app.Option) *app.Service {
	_ = logger.Init()
	svc := app.New(append([]app.Option{app.WithRoster(testRoster())}, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestServiceStart(t *testing.T) {
	Convey("Given a service with a test roster", t, func() {
		ctx := context.Background()

		Convey("When starting it", func() {
			svc := startedService()
			defer svc.Stop()

			Convey("Then the registry is seeded", func() {
				activities, err := svc.List(ctx)
				So(err, ShouldBeNil)
				So(len(activities), ShouldEqual, 2)
				So(activities["Chess Club"].Participants, ShouldContain, "michael@mergington.edu")
			})

			Convey("And starting twice is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})

		Convey("When starting with the embedded default roster", func() {
			_ = logger.Init()
			svc := app.New()
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			activities, err := svc.List(ctx)
			So(err, ShouldBeNil)
			So(activities, ShouldContainKey, "Chess Club")
			So(activities, ShouldContainKey, "Programming Class")
			So(activities, ShouldContainKey, "Gym Class")
		})

		Convey("When injecting a pre-built store", func() {
			_ = logger.Init()
			store := repository.NewMemStore()
			svc := app.New(app.WithStore(store), app.WithRoster(testRoster()))
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then the service operates on the injected store", func() {
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})
	})
}

func TestServiceSignupAndUnregister(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService()
		defer svc.Stop()

		Convey("When a new student signs up", func() {
			err := svc.Signup(ctx, "Chess Club", "new@mergington.edu")

			Convey("Then the registration is visible in List", func() {
				So(err, ShouldBeNil)
				activities, _ := svc.List(ctx)
				So(activities["Chess Club"].Participants, ShouldContain, "new@mergington.edu")
			})
		})

		Convey("When the same student signs up twice", func() {
			So(svc.Signup(ctx, "Chess Club", "dup@mergington.edu"), ShouldBeNil)
			err := svc.Signup(ctx, "Chess Club", "dup@mergington.edu")

			Convey("Then the duplicate is rejected", func() {
				So(err, ShouldEqual, repository.ErrAlreadyRegistered)
			})
		})

		Convey("When the activity does not exist", func() {
			So(svc.Signup(ctx, "Knitting Circle", "a@mergington.edu"),
				ShouldEqual, repository.ErrActivityNotFound)
			So(svc.Unregister(ctx, "Knitting Circle", "a@mergington.edu"),
				ShouldEqual, repository.ErrActivityNotFound)
		})

		Convey("When unregistering a seeded participant", func() {
			err := svc.Unregister(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then the email disappears from List", func() {
				So(err, ShouldBeNil)
				activities, _ := svc.List(ctx)
				So(activities["Chess Club"].Participants, ShouldNotContain, "michael@mergington.edu")
			})
		})

		Convey("When unregistering a student who never signed up", func() {
			err := svc.Unregister(ctx, "Chess Club", "stranger@mergington.edu")

			Convey("Then the request is rejected", func() {
				So(err, ShouldEqual, repository.ErrNotRegistered)
			})
		})
	})
}

func TestServiceCapacityEnforcement(t *testing.T) {
	Convey("Given a service with capacity enforcement on", t, func() {
		ctx := context.Background()
		svc := startedService(app.WithCapacityEnforcement(true))
		defer svc.Stop()

		Convey("When Drama Club reaches its capacity of two", func() {
			So(svc.Signup(ctx, "Drama Club", "second@mergington.edu"), ShouldBeNil)
			err := svc.Signup(ctx, "Drama Club", "third@mergington.edu")

			Convey("Then further signups are rejected", func() {
				So(err, ShouldEqual, repository.ErrActivityFull)
			})
		})
	})
}

func TestServiceGetStats(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()

		Convey("When it has not been started", func() {
			svc := app.New(app.WithRoster(testRoster()))
			stats := svc.GetStats()

			Convey("Then stats report not started and omit counts", func() {
				So(stats["started"], ShouldBeFalse)
				So(stats, ShouldNotContainKey, "totalActivities")
			})
		})

		Convey("When it is started", func() {
			svc := startedService()
			defer svc.Stop()

			stats := svc.GetStats()

			Convey("Then stats expose registry counts", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["totalActivities"], ShouldEqual, 2)
				So(stats["totalParticipants"], ShouldEqual, 2)
			})

			Convey("And gauges can be refreshed without panicking", func() {
				So(func() { svc.RefreshGauges(ctx) }, ShouldNotPanic)
			})
		})
	})
}
