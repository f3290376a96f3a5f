// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package load brings external data into the renderer and writes the
// rendered results back out. Data is returned in an intermediate
// format close to how it was stored on disk, to be pressed into
// scene assets by the caller:
//
//	 Data                      File            Likely Used For
//	------                    ------          ------------------
//	scene descriptions       : txtfile.yaml --> scene graph
//	triangle meshes          : binfile.glb  --> shapes with materials
//	images                   : binfile.png
//	                           binfile.jpg
//	                           binfile.tif  --> material textures
//	float images             : binfile.fpi  --> render buffer snapshots
//
// Package load is provided as part of the lux ray tracing engine.
package load

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// File reads any supported asset file by extension, returning the
// intermediate data type for that extension:
//
//	.yaml        *SceneData
//	.glb, .gltf  *MeshData
//	.png .jpg
//	.jpeg .tif
//	.tiff        *ImageData
//	.fpi         *FloatImageData
func File(name string) (data any, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("File: %w", err)
	}
	defer f.Close()
	return Reader(strings.ToLower(path.Ext(name)), f)
}

// Reader decodes asset data with an explicit extension, for callers
// whose data does not come from the file system.
func Reader(ext string, r io.Reader) (data any, err error) {
	switch ext {
	case ".yaml", ".yml":
		return Scn(r)
	case ".glb", ".gltf":
		return Glb(r)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return Img(r)
	case ".fpi":
		return Fpi(r)
	}
	return nil, fmt.Errorf("Reader: unsupported asset type %s", ext)
}
