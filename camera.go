// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import "math"

// Camera derives the viewport and defocus-disk basis from a small set of
// human-facing parameters (position, look-at, field of view) and then
// hands out jittered sample rays per pixel. Setup must be called once
// before SampleRay; constructing a Camera with a struct literal and
// calling SampleRay without Setup produces a degenerate all-zero basis.
type Camera struct {
	Samples      int
	Bounces      int
	LookFrom     Vec3
	LookAt       Vec3
	VUp          Vec3
	VFov         float64 // vertical field of view, in degrees.
	DefocusAngle float64 // in degrees; 0 disables depth of field.
	FocusDist    float64
	ImageWidth   int
	ImageHeight  int

	pixel00      Vec3
	pixelDeltaU  Vec3
	pixelDeltaV  Vec3
	defocusU     Vec3
	defocusV     Vec3
	stratum      int // floor(sqrt(Samples)); 0 disables stratification.
}

// Setup computes the camera's viewport basis and defocus disk axes from
// its configured parameters. It must be called whenever any parameter
// changes.
func (c *Camera) Setup() {
	if c.VUp == (Vec3{}) {
		c.VUp = Vec3{0, 1, 0}
	}
	aspect := float64(c.ImageWidth) / float64(c.ImageHeight)
	theta := Rad(c.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := aspect * viewportHeight

	w := c.LookFrom.Sub(c.LookAt).Unit()
	u := Cross(c.VUp, w).Unit()
	v := Cross(w, u)

	viewportU := u.Scale(viewportWidth)
	viewportV := v.Neg().Scale(viewportHeight)

	c.pixelDeltaU = viewportU.Scale(1 / float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Scale(1 / float64(c.ImageHeight))

	viewportUpperLeft := c.LookFrom.
		Sub(w.Scale(c.FocusDist)).
		Sub(viewportU.Scale(0.5)).
		Sub(viewportV.Scale(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Scale(0.5))

	defocusRadius := c.FocusDist * math.Tan(Rad(c.DefocusAngle/2))
	c.defocusU = u.Scale(defocusRadius)
	c.defocusV = v.Scale(defocusRadius)

	c.stratum = int(math.Sqrt(float64(c.Samples)))
}

// SampleRay returns the k-th jittered sample ray through pixel (i,j). The
// first stratum*stratum samples are drawn one per cell of a stratum x
// stratum grid covering the pixel footprint; any samples beyond that are
// drawn from an unstratified uniform square, which only happens when
// Samples is not a perfect square.
func (c *Camera) SampleRay(i, j, k int, rng *RNG) Ray {
	var dx, dy float64
	if c.stratum > 0 && k < c.stratum*c.stratum {
		si := k % c.stratum
		sj := k / c.stratum
		dx, dy = rng.RandomInStratifiedSquare(si, sj, 1/float64(c.stratum))
	} else {
		dx, dy = rng.RandomInSquare()
	}

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Scale(float64(i) + dx)).
		Add(c.pixelDeltaV.Scale(float64(j) + dy))

	origin := c.LookFrom
	if c.DefocusAngle > 0 {
		origin = c.defocusOrigin(rng)
	}
	return Ray{Origin: origin, Dir: pixelSample.Sub(origin)}
}

func (c *Camera) defocusOrigin(rng *RNG) Vec3 {
	p := rng.RandomOnDisk()
	return c.LookFrom.Add(c.defocusU.Scale(p.X)).Add(c.defocusV.Scale(p.Y))
}
