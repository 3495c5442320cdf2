// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sceneyaml parses a scene description document into a runnable
// tracer.Scene, tracer.Camera, and output image. The document format is
// plain YAML with a handful of top-level sections: camera, output,
// textures, materials, objects, and an optional skybox.
package sceneyaml

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gazed/tracer"
	"github.com/gazed/tracer/internal/imgio"
)

type document struct {
	Camera    cameraDoc              `yaml:"camera"`
	Output    outputDoc              `yaml:"output"`
	Textures  map[string]textureDoc  `yaml:"textures"`
	Materials map[string]materialDoc `yaml:"materials"`
	Objects   []objectDoc            `yaml:"objects"`
	Skybox    *skyboxDoc             `yaml:"skybox"`
}

type cameraDoc struct {
	Samples      int       `yaml:"samples"`
	Bounces      int       `yaml:"bounces"`
	Position     []float64 `yaml:"position"`
	LookAt       []float64 `yaml:"look at"`
	Up           []float64 `yaml:"up"`
	Fov          float64   `yaml:"fov"`
	DefocusAngle float64   `yaml:"defocus angle"`
	FocusDist    float64   `yaml:"focus distance"`
}

type outputDoc struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FileName string `yaml:"file name"`
}

type textureDoc struct {
	Type  string      `yaml:"type"`
	Value []float64   `yaml:"value"`
	Scale float64     `yaml:"scale"`
	Even  interface{} `yaml:"even"`
	Odd   interface{} `yaml:"odd"`
	File  string      `yaml:"file"`
}

type materialDoc struct {
	Type                string      `yaml:"type"`
	Albedo              interface{} `yaml:"albedo"`
	Smoothness          float64     `yaml:"smoothness"`
	SpecularProbability float64     `yaml:"specular probability"`
	NormalMap           string      `yaml:"normal map"`
	NormalStrength      float64     `yaml:"normal strength"`
	RefractionIndex     float64     `yaml:"refraction index"`
	Tint                []float64   `yaml:"tint"`
	Emission            interface{} `yaml:"emission"`
}

type objectDoc struct {
	Type     string    `yaml:"type"`
	Position []float64 `yaml:"position"`
	Radius   float64   `yaml:"radius"`
	QVec     []float64 `yaml:"q"`
	UVec     []float64 `yaml:"u"`
	VVec     []float64 `yaml:"v"`
	Material string    `yaml:"material"`
	OneSided bool      `yaml:"one sided"`
}

type skyboxDoc struct {
	Color []float64         `yaml:"color"`
	Faces map[string]string `yaml:"faces"`
}

// Loaded is the result of parsing a scene document: a camera, a scene,
// and the output image ready to be filled in by tracer.Render.
type Loaded struct {
	Camera *tracer.Camera
	Scene  *tracer.Scene
	Image  *tracer.Image
	Output string
}

// baseDir is a loading-time concern: texture/image file paths in a scene
// document are relative to the document itself, not the process's
// working directory.
type loader struct {
	baseDir   string
	textures  map[string]tracer.Texture
	resolving map[string]bool
	doc       *document
}

// Load reads and parses the scene document at path.
func Load(path string) (*Loaded, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &tracer.IoError{Path: path, Err: err}
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &tracer.ConfigError{Err: fmt.Errorf("parse %s: %w", path, err)}
	}

	l := &loader{
		baseDir:   filepath.Dir(path),
		textures:  map[string]tracer.Texture{},
		resolving: map[string]bool{},
		doc:       &doc,
	}
	return l.build()
}

func (l *loader) build() (*Loaded, error) {
	if l.doc.Output.Width <= 0 || l.doc.Output.Height <= 0 {
		return nil, &tracer.ConfigError{Field: "output", Err: fmt.Errorf("width and height must be positive")}
	}

	scene := tracer.NewScene(tracer.Black)
	if l.doc.Skybox != nil {
		sky, err := l.buildSkybox(l.doc.Skybox)
		if err != nil {
			return nil, err
		}
		if c, ok := sky.(tracer.SolidTexture); ok {
			scene.Background = c.Value
		} else {
			scene.AddSkybox(sky)
		}
	}

	materials := map[string]tracer.Material{}
	for name, md := range l.doc.Materials {
		mat, err := l.buildMaterial(md)
		if err != nil {
			return nil, &tracer.ConfigError{Field: "materials." + name, Err: err}
		}
		materials[name] = mat
		scene.AddMaterial(mat)
	}
	for _, tex := range l.textures {
		scene.AddTexture(tex)
	}

	for i, od := range l.doc.Objects {
		mat, ok := materials[od.Material]
		if !ok {
			return nil, &tracer.ConfigError{Field: fmt.Sprintf("objects[%d].material", i), Err: fmt.Errorf("unknown material %q", od.Material)}
		}
		obj, err := buildObject(od, mat)
		if err != nil {
			return nil, &tracer.ConfigError{Field: fmt.Sprintf("objects[%d]", i), Err: err}
		}
		scene.AddObject(obj)
	}

	cam := &tracer.Camera{
		Samples:      orDefault(l.doc.Camera.Samples, 32),
		Bounces:      orDefault(l.doc.Camera.Bounces, 8),
		LookFrom:     vecOrDefault(l.doc.Camera.Position, tracer.V3(0, 0, 0)),
		LookAt:       vecOrDefault(l.doc.Camera.LookAt, tracer.V3(0, 0, -1)),
		VUp:          vecOrDefault(l.doc.Camera.Up, tracer.V3(0, 1, 0)),
		VFov:         orDefaultF(l.doc.Camera.Fov, 90),
		DefocusAngle: l.doc.Camera.DefocusAngle,
		FocusDist:    orDefaultF(l.doc.Camera.FocusDist, 1),
		ImageWidth:   l.doc.Output.Width,
		ImageHeight:  l.doc.Output.Height,
	}
	cam.Setup()

	out := l.doc.Output.FileName
	if out == "" {
		out = "render"
	}

	return &Loaded{
		Camera: cam,
		Scene:  scene,
		Image:  tracer.NewImage(l.doc.Output.Width, l.doc.Output.Height),
		Output: out,
	}, nil
}

func (l *loader) buildSkybox(sb *skyboxDoc) (tracer.Texture, error) {
	if len(sb.Color) == 3 {
		return tracer.SolidTexture{Value: vecOrDefault(sb.Color, tracer.Black)}, nil
	}
	if len(sb.Faces) == 6 {
		var faces [6]*tracer.Image
		order := []string{"+x", "-x", "+y", "-y", "+z", "-z"}
		for i, key := range order {
			path, ok := sb.Faces[key]
			if !ok {
				return nil, &tracer.ConfigError{Field: "skybox.faces", Err: fmt.Errorf("missing face %q", key)}
			}
			img, err := imgio.Load(filepath.Join(l.baseDir, path))
			if err != nil {
				return nil, err
			}
			faces[i] = img
		}
		return tracer.CubemapTexture{Faces: faces}, nil
	}
	return nil, &tracer.ConfigError{Field: "skybox", Err: fmt.Errorf("must specify either color or all six faces")}
}

// resolveTexture resolves a YAML value that is either an inline RGB
// triple, an inline texture definition, or a reference to a name in the
// textures section. Named textures are memoized so a texture shared by
// several materials is only built once.
func (l *loader) resolveTexture(v interface{}) (tracer.Texture, error) {
	switch val := v.(type) {
	case nil:
		return tracer.SolidTexture{Value: tracer.White}, nil
	case string:
		return l.resolveNamedTexture(val)
	case []interface{}:
		c, err := toColorAny(val)
		if err != nil {
			return nil, err
		}
		return tracer.SolidTexture{Value: c}, nil
	default:
		return nil, fmt.Errorf("unrecognized texture value %v", v)
	}
}

func (l *loader) resolveNamedTexture(name string) (tracer.Texture, error) {
	if t, ok := l.textures[name]; ok {
		return t, nil
	}
	if l.resolving[name] {
		return nil, fmt.Errorf("texture %q has a circular reference", name)
	}
	td, ok := l.doc.Textures[name]
	if !ok {
		return nil, fmt.Errorf("unknown texture %q", name)
	}
	l.resolving[name] = true
	t, err := l.buildTexture(td)
	delete(l.resolving, name)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	l.textures[name] = t
	return t, nil
}

func (l *loader) buildTexture(td textureDoc) (tracer.Texture, error) {
	switch td.Type {
	case "solid", "":
		c, err := toColor(td.Value)
		if err != nil {
			return nil, err
		}
		return tracer.SolidTexture{Value: c}, nil
	case "checker3d":
		even, err := l.resolveTexture(td.Even)
		if err != nil {
			return nil, err
		}
		odd, err := l.resolveTexture(td.Odd)
		if err != nil {
			return nil, err
		}
		return tracer.Checker3DTexture{Scale: orDefaultF(td.Scale, 1), Even: even, Odd: odd}, nil
	case "checker-uv":
		even, err := l.resolveTexture(td.Even)
		if err != nil {
			return nil, err
		}
		odd, err := l.resolveTexture(td.Odd)
		if err != nil {
			return nil, err
		}
		return tracer.CheckerUVTexture{Scale: orDefaultF(td.Scale, 1), Even: even, Odd: odd}, nil
	case "image":
		img, err := imgio.Load(filepath.Join(l.baseDir, td.File))
		if err != nil {
			return nil, err
		}
		return tracer.ImageTexture{Img: img}, nil
	default:
		return nil, fmt.Errorf("unknown texture type %q", td.Type)
	}
}

func (l *loader) buildMaterial(md materialDoc) (tracer.Material, error) {
	switch md.Type {
	case "lambertian", "":
		albedo, err := l.resolveTexture(md.Albedo)
		if err != nil {
			return nil, err
		}
		mat := tracer.Lambertian{
			Albedo:              albedo,
			Smoothness:          md.Smoothness,
			SpecularProbability: md.SpecularProbability,
			NormalStrength:      orDefaultF(md.NormalStrength, 1),
		}
		if md.NormalMap != "" {
			img, err := imgio.Load(filepath.Join(l.baseDir, md.NormalMap))
			if err != nil {
				return nil, err
			}
			mat.NormalMap = img
		}
		return mat, nil
	case "metal":
		albedo, err := l.resolveTexture(md.Albedo)
		if err != nil {
			return nil, err
		}
		return tracer.Metal{Albedo: albedo, Smoothness: md.Smoothness}, nil
	case "dielectric":
		ri := md.RefractionIndex
		if ri == 0 {
			ri = 1.5
		}
		tint := vecOrDefault(md.Tint, tracer.White)
		return tracer.Dielectric{RefractionIndex: ri, Tint: tint, Smoothness: md.Smoothness}, nil
	case "light":
		emit, err := l.resolveTexture(md.Emission)
		if err != nil {
			return nil, err
		}
		return tracer.DiffuseLight{Emit: emit}, nil
	default:
		return nil, fmt.Errorf("unknown material type %q", md.Type)
	}
}

func buildObject(od objectDoc, mat tracer.Material) (tracer.Hittable, error) {
	switch od.Type {
	case "sphere":
		if od.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive")
		}
		return tracer.Sphere{
			Center: vecOrDefault(od.Position, tracer.Black),
			Radius: od.Radius,
			Mat:    mat,
		}, nil
	case "quad":
		return &tracer.Quad{
			Q:        vecOrDefault(od.QVec, tracer.Black),
			U:        vecOrDefault(od.UVec, tracer.Black),
			V:        vecOrDefault(od.VVec, tracer.Black),
			Mat:      mat,
			OneSided: od.OneSided,
		}, nil
	default:
		return nil, fmt.Errorf("unknown object type %q", od.Type)
	}
}

func toColor(v []float64) (tracer.Color, error) {
	if len(v) != 3 {
		return tracer.Black, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return tracer.V3(v[0], v[1], v[2]), nil
}

// toColorAny converts a generically-decoded YAML sequence (as produced
// when a field's static type is interface{}) into a color.
func toColorAny(v []interface{}) (tracer.Color, error) {
	if len(v) != 3 {
		return tracer.Black, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	out := make([]float64, 3)
	for i, item := range v {
		f, ok := item.(float64)
		if !ok {
			if n, ok := item.(int); ok {
				f = float64(n)
			} else {
				return tracer.Black, fmt.Errorf("component %d is not a number", i)
			}
		}
		out[i] = f
	}
	return tracer.V3(out[0], out[1], out[2]), nil
}

func vecOrDefault(v []float64, def tracer.Vec3) tracer.Vec3 {
	if len(v) != 3 {
		return def
	}
	return tracer.V3(v[0], v[1], v[2])
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultF(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
