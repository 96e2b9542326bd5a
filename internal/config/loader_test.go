package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	Convey("Given a new config", t, func() {
		cfg := New()

		Convey("Then it should have sensible defaults", func() {
			So(cfg.Addr, ShouldEqual, ":3000")
			So(cfg.AutosaveDelayMS, ShouldEqual, 500)
			So(cfg.StorageDriver, ShouldEqual, "file")
			So(cfg.AIProvider, ShouldEqual, "none")
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a YAML file and env overrides", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "resume.yaml")
		So(os.WriteFile(path, []byte("addr: \":8081\"\nstorage_driver: memory\nai_language: German\n"), 0o644), ShouldBeNil)

		t.Setenv("RESUME_CONFIG", path)
		t.Setenv("RESUME_AI_LANGUAGE", "French")
		t.Setenv("RESUME_AUTOSAVE_DELAY_MS", "250")

		cfg, err := Load(context.Background())

		Convey("Then env wins over file and file wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8081")
			So(cfg.StorageDriver, ShouldEqual, "memory")
			So(cfg.AILanguage, ShouldEqual, "French")
			So(cfg.AutosaveDelayMS, ShouldEqual, 250)
		})
	})

	Convey("Given an unknown storage driver", t, func() {
		t.Setenv("RESUME_STORAGE_DRIVER", "floppy")
		_, err := Load(context.Background())

		Convey("Then loading fails as invalid", func() {
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given the postgres driver without a database url", t, func() {
		t.Setenv("RESUME_STORAGE_DRIVER", "postgres")
		_, err := Load(context.Background())
		So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
	})
}
