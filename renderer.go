// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import (
	"log"
	"runtime"
	"sync"
)

// shadowBias keeps a scattered ray from immediately re-intersecting the
// surface it just left due to floating point rounding at t=0.
const shadowBias = 0.001

// RayColor recursively estimates the radiance arriving along r by
// tracing it against scene, accumulating emitted light and attenuating by
// each surface's scatter color, down to a maximum of depth bounces. A ray
// that escapes the scene samples the background; a ray that exhausts its
// bounce budget contributes no further light.
func RayColor(r Ray, scene *Scene, depth int, rng *RNG) Color {
	if depth <= 0 {
		return Black
	}

	var hit HitInfo
	if !scene.Hit(r, Interval{Min: shadowBias, Max: Infinity}, &hit) {
		return scene.SampleBackground(r.Dir)
	}

	emitted := hit.Mat.Emission(hit.U, hit.V, hit.P)
	attenuation, scattered, ok := hit.Mat.Scatter(r, &hit, rng)
	if !ok {
		return emitted
	}
	return emitted.Add(attenuation.Mul(RayColor(scattered, scene, depth-1, rng)))
}

// Render fills img by tracing cam.Samples rays per pixel against scene,
// gamma-encoding and quantizing the averaged result. scene.Prepare runs
// once, single-threaded, before any row is traced, so that Hittable
// variants with cached derived state (Quad's plane basis) are fully
// built before concurrent Hit calls ever touch them. Rows are then
// distributed over a worker pool sized to the number of available CPUs:
// each worker reads row indices off a shared channel and owns its own
// RNG, since math/rand.Rand is not safe for concurrent use. Which worker
// (and so which RNG stream) renders a given row depends on scheduling,
// so pixel values are not reproducible across runs. Each completed row
// logs a progress line;
// the standard logger serializes concurrent writers, so no extra
// synchronization is needed for that alone.
func Render(scene *Scene, cam *Camera, img *Image) {
	scene.Prepare()

	rows := make(chan int, img.Height)
	for y := 0; y < img.Height; y++ {
		rows <- y
	}
	close(rows)

	workers := runtime.NumCPU()
	if workers > img.Height {
		workers = img.Height
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := NewRNG(seed)
			for y := range rows {
				renderRow(scene, cam, img, y, rng)
				log.Printf("tracer: row %d/%d done", y+1, img.Height)
			}
		}(int64(w) + 1)
	}
	wg.Wait()
}

func renderRow(scene *Scene, cam *Camera, img *Image, y int, rng *RNG) {
	for x := 0; x < img.Width; x++ {
		sum := Black
		for k := 0; k < cam.Samples; k++ {
			r := cam.SampleRay(x, y, k, rng)
			sum = sum.Add(RayColor(r, scene, cam.Bounces, rng))
		}
		avg := sum.Scale(1 / float64(cam.Samples))
		img.Set(x, y, avg, true)
	}
}
