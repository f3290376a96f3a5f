// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// loader.go presses parsed scene descriptions from the load package
// into scene graph entities and render options.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gazed/lux/load"
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/shade"
)

// LoadScene reads a yaml scene description file and presses it into
// a scene plus the render options its profile section asks for.
// Relative texture and mesh files resolve against the scene file's
// directory.
func LoadScene(name string) (*Scene, []Option, error) {
	data, err := load.File(name)
	if err != nil {
		return nil, nil, err
	}
	scn, ok := data.(*load.SceneData)
	if !ok {
		return nil, nil, fmt.Errorf("LoadScene: %s is not a scene description", name)
	}
	return buildScene(scn, filepath.Dir(name))
}

// buildScene converts a parsed description into scene entities.
func buildScene(scn *load.SceneData, dir string) (*Scene, []Option, error) {
	s := NewScene()

	cam := s.AddEnt().AddCamera(scn.Camera.FOV)
	placeEnt(cam, scn.Camera.At, nil, scn.Camera.Spin)

	if scn.Ambient != nil {
		env, err := buildAmbient(scn.Ambient, dir)
		if err != nil {
			return nil, nil, err
		}
		s.AddEnt().AddAmbient(env)
	}

	for _, l := range scn.Lights {
		kind := PointLight
		if l.Kind == "directional" {
			kind = DirectionalLight
		}
		def := NewLight(kind)
		if c := vec3(l.Color); !c.IsZero() {
			def.SetColor(c.X, c.Y, c.Z)
		}
		if l.Intensity != 0 {
			def.SetIntensity(l.Intensity)
		}
		placeEnt(s.AddEnt().AddLight(def), l.At, nil, l.Spin)
	}

	mats := map[string]*Material{}
	for name, m := range scn.Materials {
		mat, err := buildMaterial(m, dir)
		if err != nil {
			return nil, nil, fmt.Errorf("material %s: %w", name, err)
		}
		mats[name] = mat
	}

	for i, mdl := range scn.Models {
		mat := mats[mdl.Material]
		if mat == nil {
			mat = &Material{}
		}
		e := s.AddEnt()
		placeEnt(e, mdl.At, mdl.Scale, mdl.Spin)
		switch mdl.Shape {
		case "sphere":
			e.AddSphere(mdl.Radius, mat)
		case "quad":
			e.AddQuad(mdl.W, mdl.H, mat)
		case "mesh":
			if err := addMeshFile(e, filepath.Join(dir, mdl.File), mat); err != nil {
				return nil, nil, fmt.Errorf("model %d: %w", i, err)
			}
		}
	}
	return s, profileOptions(scn.Profile), nil
}

// placeEnt applies the optional at, scale and spin fields.
func placeEnt(e *Ent, at, scale, spin []float32) {
	if len(at) == 3 {
		e.SetAt(at[0], at[1], at[2])
	}
	if len(scale) == 3 {
		e.SetScale(scale[0], scale[1], scale[2])
	}
	if len(spin) == 4 {
		e.Spin(lin.V3{X: spin[0], Y: spin[1], Z: spin[2]}, spin[3])
	}
}

// buildAmbient presses one environment description.
func buildAmbient(a *load.AmbientData, dir string) (Environment, error) {
	switch a.Kind {
	case "constant":
		return &ConstantEnvironment{Color: vec3(a.Color)}, nil
	case "gradient":
		return &GradientSky{Ground: vec3(a.Ground), Sky: vec3(a.Sky)}, nil
	case "image":
		grid, err := loadGrid(filepath.Join(dir, a.File))
		if err != nil {
			return nil, err
		}
		return NewEnvironmentMap(grid), nil
	}
	return nil, fmt.Errorf("unsupported ambient kind %q", a.Kind)
}

// buildMaterial presses one material description.
func buildMaterial(m load.MatData, dir string) (*Material, error) {
	mat := &Material{
		Emission:     vec3(m.Emission),
		Roughness:    m.Roughness,
		Specular:     m.Specular,
		IOR:          m.IOR,
		Mirror:       m.Mirror,
		Transmissive: m.Transmissive,
	}
	switch {
	case m.Checker:
		mat.Albedo = NewChecker()
	case m.Texture != "":
		grid, err := loadGrid(filepath.Join(dir, m.Texture))
		if err != nil {
			return nil, err
		}
		mat.Albedo = grid
	case len(m.Albedo) == 3:
		mat.Albedo = shade.NewConstant(vec3(m.Albedo))
	}
	if m.NormalMap != "" {
		grid, err := loadGrid(filepath.Join(dir, m.NormalMap))
		if err != nil {
			return nil, err
		}
		mat.NormalMap = grid
	}
	return mat, nil
}

// addMeshFile imports a glb file's primitives under the entity.
// Primitives with their own material factors get derived materials.
func addMeshFile(e *Ent, name string, base *Material) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := load.Glb(f)
	if err != nil {
		return err
	}
	for i := range data.Primitives {
		p := &data.Primitives[i]
		mat := base
		if p.BaseColor.V3() != (lin.V3{X: 1, Y: 1, Z: 1}) || !p.Emissive.IsZero() {
			mat = &Material{
				Albedo:    shade.NewConstant(p.BaseColor.V3()),
				Emission:  p.Emissive,
				Roughness: p.Roughness,
			}
		}
		e.AddMesh(&Mesh{
			Verts:   p.Verts,
			Normals: p.Normals,
			UVs:     p.UVs,
			Indices: p.Indices,
		}, mat)
	}
	return nil
}

// loadGrid reads an image file into a texture grid.
func loadGrid(name string) (*Grid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := load.Img(f)
	if err != nil {
		return nil, err
	}
	grid := NewGrid(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			grid.Set(x, y, img.Pixels[y*img.Width+x])
		}
	}
	return grid, nil
}

// profileOptions converts profile hints to engine options.
func profileOptions(p load.ProfileData) []Option {
	opts := []Option{}
	if len(p.Samples) == 2 {
		opts = append(opts, Samples(p.Samples[0], p.Samples[1]))
	}
	if p.Bounces > 0 {
		opts = append(opts, BounceLimit(p.Bounces))
	}
	if p.Workers > 0 {
		opts = append(opts, Workers(p.Workers))
	}
	if p.TileSize > 0 {
		opts = append(opts, TileSize(p.TileSize))
	}
	if p.Noise > 0 {
		opts = append(opts, NoiseThreshold(p.Noise))
	}
	if p.Seed != 0 {
		opts = append(opts, Seed(p.Seed))
	}
	return opts
}

// vec3 converts an optional yaml triple.
func vec3(v []float32) lin.V3 {
	if len(v) != 3 {
		return lin.V3{}
	}
	return lin.V3{X: v[0], Y: v[1], Z: v[2]}
}
