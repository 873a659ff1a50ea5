package application

import (
	"context"
	"strings"
	"testing"

	"karltracker/internal/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckForMatch(t *testing.T) {
	Convey("Given a tracker with a stored marker of M1", t, func() {
		ctx := context.Background()
		log := &callLog{}
		riot := &fakeRiot{
			log:     log,
			puuid:   "puuid-1",
			matchID: "M2",
			detail: &models.MatchInfo{
				GameDuration: 1500,
				GameMode:     "CLASSIC",
				Participants: []models.Participant{
					{PUUID: "other", Kills: 1, Win: true},
					{PUUID: "puuid-1", Kills: 3, Deaths: 4, Assists: 5, Win: true},
				},
			},
			rank: "SILVER I (12 LP)",
		}
		marker := &fakeMarker{log: log, value: "M1"}
		notifier := &fakeNotifier{log: log}
		recorder := &fakeRecorder{}
		svc := NewTrackerServiceImpl("Karl", riot, marker, notifier, nopLogger{}, WithRecorder(recorder))

		Convey("A new match is stored, then announced", func() {
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotified)
			So(log.list(), ShouldResemble, []string{
				"resolve:Karl", "latest:puuid-1", "marker.get", "marker.set:M2",
				"detail:M2", "rank:puuid-1", "notify",
			})
			So(marker.value, ShouldEqual, "M2")
			So(notifier.messages, ShouldHaveLength, 1)
			So(notifier.messages[0], ShouldContainSubstring, "Victory!")
			So(notifier.messages[0], ShouldContainSubstring, "💀 **KDA**: 3/4/5")
			So(notifier.messages[0], ShouldContainSubstring, "SILVER I (12 LP)")
			So(recorder.outcomes, ShouldResemble, []string{"notified"})
			So(recorder.notifyErrs, ShouldResemble, []error{nil})
		})

		Convey("An unchanged match writes nothing and sends nothing", func() {
			riot.matchID = "M1"
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNoChange)
			So(log.list(), ShouldNotContain, "marker.set:M1")
			So(log.list(), ShouldNotContain, "notify")
			So(notifier.messages, ShouldBeEmpty)
		})

		Convey("The marker is updated even when the detail fetch fails", func() {
			riot.detailErr = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeDetailUnavailable)
			So(marker.value, ShouldEqual, "M2")
			So(notifier.messages, ShouldBeEmpty)

			Convey("and the same match is not retried next cycle", func() {
				So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNoChange)
			})
		})

		Convey("An unresolved player short-circuits the chain", func() {
			riot.puuidErr = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomePlayerUnresolved)
			So(log.list(), ShouldResemble, []string{"resolve:Karl"})
		})

		Convey("Missing match history short-circuits before the marker", func() {
			riot.matchErr = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNoHistory)
			So(log.list(), ShouldResemble, []string{"resolve:Karl", "latest:puuid-1"})
		})

		Convey("A marker read failure counts as no prior match", func() {
			marker.getErr = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotified)
			So(marker.value, ShouldEqual, "M2")
		})

		Convey("A marker write failure is recorded and the cycle continues", func() {
			marker.setErr = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotified)
			So(recorder.markerFailures, ShouldEqual, 1)
			So(notifier.messages, ShouldHaveLength, 1)
		})

		Convey("A match without the tracked player aborts before notifying", func() {
			riot.detail.Participants = []models.Participant{{PUUID: "other"}}
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeParticipantMissing)
			So(marker.value, ShouldEqual, "M2")
			So(log.list(), ShouldNotContain, "notify")
		})

		Convey("A rank lookup failure renders as Unknown", func() {
			riot.rankErr = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotified)
			So(notifier.messages[0], ShouldContainSubstring, "🏅 **Current Rank**: Unknown")
		})

		Convey("A loss closes with the picked phrase", func() {
			var offered []string
			svc := NewTrackerServiceImpl("Karl", riot, marker, notifier, nopLogger{},
				WithFormatter(NewFormatter(WithPhrasePicker(func(p []string) string {
					offered = p
					return p[2]
				}))),
			)
			riot.detail.Participants[1].Win = false

			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotified)
			So(offered, ShouldResemble, LossPhrases)
			So(notifier.messages[0], ShouldContainSubstring, "🏆 **Result**: Defeat... 😞")
			So(strings.HasSuffix(notifier.messages[0], "\n\n"+LossPhrases[2]), ShouldBeTrue)
		})

		Convey("A win never consults the picker", func() {
			svc := NewTrackerServiceImpl("Karl", riot, marker, notifier, nopLogger{},
				WithFormatter(NewFormatter(WithPhrasePicker(func([]string) string {
					panic("picker called on a win")
				}))),
			)
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotified)
			So(strings.HasSuffix(notifier.messages[0], "\n\nGreat job, keep it up!"), ShouldBeTrue)
		})

		Convey("A failed send is reported", func() {
			notifier.err = errBoom
			So(svc.CheckForMatch(ctx), ShouldEqual, OutcomeNotifyFailed)
			So(recorder.notifyErrs, ShouldResemble, []error{errBoom})
			So(marker.value, ShouldEqual, "M2")
		})
	})
}
