// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

// Scene is the sole owner of every object, material, and texture that
// makes up a render. It is itself a Hittable: tracing a ray against a
// scene means linearly testing it against every object and keeping the
// closest hit. Referential integrity between a loaded scene's named
// textures/materials and the objects that use them is the loader's
// responsibility (see internal/sceneyaml); Scene only needs to keep the
// final values alive and traceable.
type Scene struct {
	Objects   []Hittable
	Materials []Material
	Textures  []Texture

	Skybox       Texture // nil means no skybox configured.
	Background   Color   // flat fallback used when Skybox is nil.
}

// NewScene returns an empty scene with the given flat background color.
func NewScene(background Color) *Scene {
	return &Scene{Background: background}
}

// AddTexture keeps t alive for the life of the scene. Objects or other
// textures that reference t do so by holding it directly; this call is
// bookkeeping so textures with no other referent (e.g. a top-level named
// texture only used by the skybox) are not collected as unused.
func (s *Scene) AddTexture(t Texture) {
	s.Textures = append(s.Textures, t)
}

// AddMaterial keeps m alive for the life of the scene, mirroring
// AddTexture.
func (s *Scene) AddMaterial(m Material) {
	s.Materials = append(s.Materials, m)
}

// AddObject adds a primitive to the scene's trace list.
func (s *Scene) AddObject(h Hittable) {
	s.Objects = append(s.Objects, h)
}

// AddSkybox installs a cubemap (or any other Texture) as the scene's
// environment. Passing nil reverts to the flat Background color.
func (s *Scene) AddSkybox(t Texture) {
	s.Skybox = t
}

// preparer is implemented by Hittable variants that cache derived state
// ahead of tracing, such as Quad's plane basis. Preparing happens once,
// single-threaded, before the object is ever handed to concurrent Hit
// calls.
type preparer interface {
	Prepare()
}

// Prepare readies every object in the scene for concurrent tracing. It
// must run to completion before Render starts its worker pool: Hittable
// implementations that cache derived state (Quad's plane basis) assume
// single-threaded setup and read-only access afterward.
func (s *Scene) Prepare() {
	for _, obj := range s.Objects {
		if p, ok := obj.(preparer); ok {
			p.Prepare()
		}
	}
}

// Hit tests r against every object in the scene, keeping the closest
// intersection within tSpan. This is a linear scan: the spec does not call
// for a bounding volume hierarchy, and a scene sized for an offline batch
// render does not need one to finish in reasonable time.
func (s *Scene) Hit(r Ray, tSpan Interval, info *HitInfo) bool {
	var temp HitInfo
	hitAnything := false
	closest := tSpan.Max

	for _, obj := range s.Objects {
		if obj.Hit(r, Interval{Min: tSpan.Min, Max: closest}, &temp) {
			hitAnything = true
			closest = temp.Tval
			*info = temp
		}
	}
	return hitAnything
}

// SampleBackground returns the environment radiance seen along dir when a
// ray escapes the scene without hitting anything.
func (s *Scene) SampleBackground(dir Vec3) Color {
	if s.Skybox != nil {
		return s.Skybox.Sample(0, 0, Vec3{}, dir.Unit())
	}
	return s.Background
}
