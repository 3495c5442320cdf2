// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command tracer renders a scene description to a PNG image.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gazed/tracer"
	"github.com/gazed/tracer/internal/imgio"
	"github.com/gazed/tracer/internal/sceneyaml"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "path to the scene description")
	outPath := flag.String("out", "", "output file; defaults to the scene's own output.file name")
	flag.Parse()

	loaded, err := sceneyaml.Load(*scenePath)
	if err != nil {
		log.Fatalf("tracer: %v", err)
	}

	out := loaded.Output
	if *outPath != "" {
		out = *outPath
	}

	log.Printf("tracer: rendering %dx%d, %d samples, %d bounces",
		loaded.Image.Width, loaded.Image.Height, loaded.Camera.Samples, loaded.Camera.Bounces)

	start := time.Now()
	tracer.Render(loaded.Scene, loaded.Camera, loaded.Image)
	log.Printf("tracer: rendered in %s", time.Since(start))

	if err := imgio.Save(loaded.Image, out); err != nil {
		log.Fatalf("tracer: %v", err)
	}
	log.Printf("tracer: wrote %s", out)
}
