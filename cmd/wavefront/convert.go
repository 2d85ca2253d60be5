package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/spf13/cobra"

	"github.com/taigrr/wavefront/pkg/obj"
)

func newConvertCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert <model.obj> [output.glb|output.gltf]",
		Short: "Convert an OBJ model to glTF",
		Long: `Convert an OBJ model to glTF 2.0.

glTF primitives carry a single triangle index, so the model is loaded
triangulated with a shared index regardless of the load option flags.
The output format follows the file extension: .glb is binary glTF,
anything else is written as JSON glTF.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				output = args[1]
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".glb"
			}
			return runConvert(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.glb or .gltf; default: input name with .glb)")
	return cmd
}

func runConvert(input, output string) error {
	loader := obj.NewLoader(obj.GPULoadOptions)
	loader.Logger = newLogger()
	res, err := loader.LoadFile(input)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if res.MaterialError != nil {
		fmt.Printf("Warning: materials not loaded: %v\n", res.MaterialError)
	}

	doc := gltf.NewDocument()
	for _, m := range res.Materials {
		doc.Materials = append(doc.Materials, toGLTFMaterial(m))
	}

	written := 0
	for i := range res.Models {
		model := &res.Models[i]
		mesh := &model.Mesh
		if mesh.VertexCount() == 0 {
			continue
		}

		prim := &gltf.Primitive{Attributes: map[string]int{}}
		prim.Attributes[gltf.POSITION] = modeler.WritePosition(doc, groupVec3(mesh.Positions))
		// Channels are written only when they cover every vertex; a
		// partially textured mesh would otherwise misalign.
		if len(mesh.Normals) == len(mesh.Positions) {
			prim.Attributes[gltf.NORMAL] = modeler.WriteNormal(doc, groupVec3(mesh.Normals))
		}
		if len(mesh.Texcoords)/2 == mesh.VertexCount() && len(mesh.Texcoords) > 0 {
			prim.Attributes[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, groupVec2(mesh.Texcoords))
		}
		if len(mesh.VertexColors) == len(mesh.Positions) && len(mesh.VertexColors) > 0 {
			prim.Attributes[gltf.COLOR_0] = modeler.WriteColor(doc, groupVec3(mesh.VertexColors))
		}
		if len(mesh.Indices) > 0 {
			prim.Indices = gltf.Index(modeler.WriteIndices(doc, mesh.Indices))
		}
		if mesh.MaterialID >= 0 && mesh.MaterialID < len(doc.Materials) {
			prim.Material = gltf.Index(mesh.MaterialID)
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       model.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: model.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
		written++
	}

	if strings.EqualFold(filepath.Ext(output), ".glb") {
		err = gltf.SaveBinary(doc, output)
	} else {
		err = gltf.Save(doc, output)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("Wrote %s (%d meshes, %d materials)\n", output, written, len(doc.Materials))
	return nil
}

// toGLTFMaterial maps MTL attributes onto glTF's PBR model: diffuse
// color becomes the base color, dissolve its alpha.
func toGLTFMaterial(m obj.Material) *gltf.Material {
	out := &gltf.Material{Name: m.Name}
	if m.Diffuse == nil {
		return out
	}
	alpha := float32(1)
	if m.Dissolve != nil {
		alpha = *m.Dissolve
	}
	out.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{float64(m.Diffuse[0]), float64(m.Diffuse[1]), float64(m.Diffuse[2]), float64(alpha)},
	}
	if alpha < 1 {
		out.AlphaMode = gltf.AlphaBlend
	}
	return out
}

func groupVec3(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		out[i] = [3]float32{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return out
}

func groupVec2(flat []float32) [][2]float32 {
	out := make([][2]float32, len(flat)/2)
	for i := range out {
		out[i] = [2]float32{flat[2*i], flat[2*i+1]}
	}
	return out
}
