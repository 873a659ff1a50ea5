package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFileMarker(t *testing.T) {
	Convey("Given a file marker in an empty directory", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "lastMatchId.txt")
		m := NewFileMarker(path)

		Convey("A missing file reads as no prior match", func() {
			id, err := m.Get(ctx)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "")
		})

		Convey("Set then Get round trips the id", func() {
			So(m.Set(ctx, "EUN1_3456"), ShouldBeNil)
			id, err := m.Get(ctx)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "EUN1_3456")

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "EUN1_3456")
		})

		Convey("Surrounding whitespace is trimmed on read", func() {
			So(os.WriteFile(path, []byte("  EUN1_77\n"), 0o644), ShouldBeNil)
			id, err := m.Get(ctx)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "EUN1_77")
		})

		Convey("Set overwrites the previous id", func() {
			So(m.Set(ctx, "EUN1_1"), ShouldBeNil)
			So(m.Set(ctx, "EUN1_2"), ShouldBeNil)
			id, _ := m.Get(ctx)
			So(id, ShouldEqual, "EUN1_2")
		})

		Convey("An unwritable path surfaces an error", func() {
			bad := NewFileMarker(filepath.Join(t.TempDir(), "missing", "dir", "marker.txt"))
			So(bad.Set(ctx, "EUN1_1"), ShouldNotBeNil)
		})
	})

	Convey("An empty path falls back to the default file name", t, func() {
		So(NewFileMarker("").path, ShouldEqual, DefaultMarkerFile)
	})
}

func TestMarkerSQLite(t *testing.T) {
	Convey("Given a fresh sqlite marker", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "data", "tracker.db")
		repo, err := NewSQLiteRepository(ctx, path)
		So(err, ShouldBeNil)
		defer repo.Close()

		Convey("A missing row reads as no prior match", func() {
			id, err := repo.Get(ctx)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "")
		})

		Convey("Set upserts and survives a reopen", func() {
			So(repo.Set(ctx, "EUN1_1"), ShouldBeNil)
			So(repo.Set(ctx, "EUN1_2"), ShouldBeNil)
			So(repo.Close(), ShouldBeNil)

			reopened, err := NewSQLiteRepository(ctx, path)
			So(err, ShouldBeNil)
			defer reopened.Close()

			id, err := reopened.Get(ctx)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "EUN1_2")
		})
	})
}

func TestNewRepository(t *testing.T) {
	Convey("The file repository has nothing to close", t, func() {
		repo := NewFileRepository(filepath.Join(t.TempDir(), "m.txt"))
		_, ok := repo.Marker.(*FileMarker)
		So(ok, ShouldBeTrue)
		So(repo.Close(), ShouldBeNil)
	})
}
func TestConfigDSN(t *testing.T) {
	Convey("DSN renders every connection field", t, func() {
		cfg := Config{Host: "db", Port: "5432", Username: "u", Password: "p", DBName: "karl", SSLMode: "disable"}
		So(cfg.DSN(), ShouldEqual, "host=db port=5432 user=u dbname=karl password=p sslmode=disable")
	})
}
