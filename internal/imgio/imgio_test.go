// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package imgio

import (
	"path/filepath"
	"testing"

	"github.com/gazed/tracer"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	img := tracer.NewImage(4, 3)
	img.Set(1, 2, tracer.Color{1, 0, 0}, false)
	img.Set(2, 0, tracer.Color{0, 1, 0}, false)

	path := filepath.Join(t.TempDir(), "out")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path + ".png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Width != img.Width || loaded.Height != img.Height {
		t.Fatalf("expected %dx%d, got %dx%d", img.Width, img.Height, loaded.Width, loaded.Height)
	}
	got := loaded.Get(1, 2)
	if got.X < 0.9 || got.Y > 0.1 {
		t.Errorf("expected red pixel at (1,2), got %v", got)
	}
}

func TestSaveAppendsPngExtension(t *testing.T) {
	img := tracer.NewImage(2, 2)
	path := filepath.Join(t.TempDir(), "render")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path + ".png"); err != nil {
		t.Errorf("expected .png to have been appended: %v", err)
	}
}

func TestLoadMissingFileReturnsIoError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected an error loading a missing file")
	}
	var ioErr *tracer.IoError
	if !asIoError(err, &ioErr) {
		t.Errorf("expected *tracer.IoError, got %T", err)
	}
}

func asIoError(err error, target **tracer.IoError) bool {
	e, ok := err.(*tracer.IoError)
	if ok {
		*target = e
	}
	return ok
}
