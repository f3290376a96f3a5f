// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// scn.go reads yaml scene descriptions. The yaml is string based so
// that scenes are easy to write and diff by hand; the caller presses
// the description into scene graph entities.

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SceneData is a parsed scene description.
type SceneData struct {
	Camera    CameraData         `yaml:"camera"`
	Ambient   *AmbientData       `yaml:"ambient"`
	Lights    []LightData        `yaml:"lights"`
	Materials map[string]MatData `yaml:"materials"`
	Models    []ModelData        `yaml:"models"`
	Profile   ProfileData        `yaml:"profile"`
}

// CameraData positions the camera.
type CameraData struct {
	At   []float32 `yaml:"at"`   // x y z, default origin.
	Spin []float32 `yaml:"spin"` // axis x y z then degrees.
	FOV  float32   `yaml:"fov"`  // vertical degrees, default 60.
}

// AmbientData selects one environment kind.
type AmbientData struct {
	Kind   string    `yaml:"kind"`   // constant, gradient, or image.
	Color  []float32 `yaml:"color"`  // constant color.
	Ground []float32 `yaml:"ground"` // gradient bottom.
	Sky    []float32 `yaml:"sky"`    // gradient top.
	File   string    `yaml:"file"`   // image environment file.
}

// LightData is one delta light.
type LightData struct {
	Kind      string    `yaml:"kind"` // point or directional.
	At        []float32 `yaml:"at"`
	Spin      []float32 `yaml:"spin"`
	Color     []float32 `yaml:"color"`
	Intensity float32   `yaml:"intensity"`
}

// MatData is one named material.
type MatData struct {
	Albedo       []float32 `yaml:"albedo"`    // constant base color.
	Texture      string    `yaml:"texture"`   // or an image file.
	Emission     []float32 `yaml:"emission"`  // emitted radiance.
	Roughness    float32   `yaml:"roughness"`
	Specular     float32   `yaml:"specular"`
	IOR          float32   `yaml:"ior"`
	Mirror       bool      `yaml:"mirror"`
	Transmissive bool      `yaml:"transmissive"`
	NormalMap    string    `yaml:"normal_map"`
	Checker      bool      `yaml:"checker"` // procedural checker albedo.
}

// ModelData is one shape placed in the scene.
type ModelData struct {
	Shape    string    `yaml:"shape"` // sphere, quad, or mesh.
	At       []float32 `yaml:"at"`
	Scale    []float32 `yaml:"scale"`
	Spin     []float32 `yaml:"spin"`
	Radius   float32   `yaml:"radius"` // sphere.
	W        float32   `yaml:"w"`      // quad.
	H        float32   `yaml:"h"`      // quad.
	File     string    `yaml:"file"`   // mesh.
	Material string    `yaml:"material"`
}

// ProfileData carries render setting hints.
type ProfileData struct {
	Samples  []int   `yaml:"samples"` // base then adaptive.
	Bounces  int     `yaml:"bounces"`
	Workers  int     `yaml:"workers"`
	TileSize int     `yaml:"tile_size"`
	Noise    float32 `yaml:"noise"`
	Seed     uint32  `yaml:"seed"`
}

// Scn parses a yaml scene description.
func Scn(r io.Reader) (*SceneData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Scn: read %w", err)
	}
	scn := &SceneData{}
	if err = yaml.Unmarshal(raw, scn); err != nil {
		return nil, fmt.Errorf("Scn: yaml %w", err)
	}
	if scn.Camera.FOV == 0 {
		scn.Camera.FOV = 60
	}
	for name, m := range scn.Materials {
		if m.IOR == 0 {
			m.IOR = 1.5
			scn.Materials[name] = m
		}
	}
	for i := range scn.Models {
		mdl := &scn.Models[i]
		switch mdl.Shape {
		case "sphere":
			if mdl.Radius <= 0 {
				return nil, fmt.Errorf("Scn: model %d sphere needs a radius", i)
			}
		case "quad":
			if mdl.W <= 0 || mdl.H <= 0 {
				return nil, fmt.Errorf("Scn: model %d quad needs w and h", i)
			}
		case "mesh":
			if mdl.File == "" {
				return nil, fmt.Errorf("Scn: model %d mesh needs a file", i)
			}
		default:
			return nil, fmt.Errorf("Scn: model %d unsupported shape %q", i, mdl.Shape)
		}
	}
	for i, l := range scn.Lights {
		if l.Kind != "point" && l.Kind != "directional" {
			return nil, fmt.Errorf("Scn: light %d unsupported kind %q", i, l.Kind)
		}
	}
	return scn, nil
}
