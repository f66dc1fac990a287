package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGeometry reads the first mesh primitive of a .gltf or .glb file.
// Missing normals default to +Y; non-indexed primitives get sequential
// indices.
func LoadGeometry(path string) (*Geometry, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	for _, m := range doc.Meshes {
		if len(m.Primitives) == 0 {
			continue
		}
		g, err := readPrimitive(doc, m.Primitives[0])
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		g.Name = m.Name
		if g.Name == "" {
			g.Name = filepath.Base(path)
		}
		return g, nil
	}
	return nil, fmt.Errorf("%s: no mesh primitives", path)
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*Geometry, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		v := Vertex{Position: p, Normal: [3]float32{0, 1, 0}}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		if i < len(uvs) {
			v.UV = uvs[i]
		}
		vertices[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	g := newGeometry("", vertices, indices)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ResolvePath returns the first root-relative candidate that exists, or
// name unchanged when it is absolute or nothing matches.
func ResolvePath(roots []string, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	for _, root := range roots {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}
