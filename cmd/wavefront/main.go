// wavefront - Wavefront OBJ inspector and converter
//
// Load OBJ/MTL models, print their statistics, or convert them to glTF.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/wavefront/pkg/obj"
)

var (
	flagOpts   obj.LoadOptions
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "wavefront",
		Short: "Wavefront OBJ inspector and converter",
		Long: `wavefront - Wavefront OBJ inspector and converter

Load OBJ models with configurable processing (triangulation, index
merging, attribute reordering) and inspect or convert them.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flagOpts.SingleIndex, "single-index", false, "Assemble one shared index for all attributes")
	pf.BoolVar(&flagOpts.Triangulate, "triangulate", false, "Convert all faces to triangles")
	pf.BoolVar(&flagOpts.IgnorePoints, "ignore-points", false, "Drop single-vertex faces")
	pf.BoolVar(&flagOpts.IgnoreLines, "ignore-lines", false, "Drop two-vertex faces")
	pf.BoolVar(&flagOpts.MergeIdenticalPoints, "merge-identical-points", false, "Merge bit-identical attribute values")
	pf.BoolVar(&flagOpts.ReorderData, "reorder-data", false, "Reorder attributes so only the position index is needed")
	pf.StringVar(&configPath, "config", "", "YAML file with load options")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(newInfoCmd(), newConvertCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadOptions resolves the effective load options: the config file is
// the base, flags set on the command line override it.
func loadOptions(cmd *cobra.Command) (obj.LoadOptions, error) {
	opts := flagOpts
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return obj.LoadOptions{}, fmt.Errorf("read config: %w", err)
		}
		var fileOpts obj.LoadOptions
		if err := yaml.Unmarshal(data, &fileOpts); err != nil {
			return obj.LoadOptions{}, fmt.Errorf("parse config: %w", err)
		}
		opts = fileOpts
		fl := cmd.Flags()
		for name, dst := range map[string]*bool{
			"single-index":           &opts.SingleIndex,
			"triangulate":            &opts.Triangulate,
			"ignore-points":          &opts.IgnorePoints,
			"ignore-lines":           &opts.IgnoreLines,
			"merge-identical-points": &opts.MergeIdenticalPoints,
			"reorder-data":           &opts.ReorderData,
		} {
			if fl.Changed(name) {
				v, _ := fl.GetBool(name)
				*dst = v
			}
		}
	}
	return opts, opts.Validate()
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.obj>",
		Short: "Display model information",
		Long:  "Display detailed information about an OBJ file: models, vertex and face counts, bounding boxes, and materials.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			return runInfo(args[0], opts)
		},
	}
}

func runInfo(modelPath string, opts obj.LoadOptions) error {
	stat, err := os.Stat(modelPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	loader := obj.NewLoader(opts)
	loader.Logger = newLogger()
	res, err := loader.LoadFile(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	fmt.Printf("File:       %s\n", filepath.Base(modelPath))
	fmt.Printf("Size:       %.2f KB\n", float64(stat.Size())/1024)
	fmt.Printf("Models:     %d\n", len(res.Models))
	fmt.Printf("Materials:  %d\n", len(res.Materials))
	if res.MaterialError != nil {
		fmt.Printf("Material load error: %v\n", res.MaterialError)
	}

	for i := range res.Models {
		model := &res.Models[i]
		mesh := &model.Mesh
		fmt.Println()
		fmt.Printf("Model:      %s\n", model.Name)
		fmt.Printf("Vertices:   %d\n", mesh.VertexCount())
		if len(mesh.FaceArities) > 0 {
			fmt.Printf("Faces:      %d (mixed arity)\n", mesh.FaceCount())
		} else {
			fmt.Printf("Triangles:  %d\n", mesh.FaceCount())
		}
		if mesh.MaterialID >= 0 && mesh.MaterialID < len(res.Materials) {
			fmt.Printf("Material:   %s\n", res.Materials[mesh.MaterialID].Name)
		}
		if len(mesh.FaceArities) > 0 {
			printFaces(mesh)
		}
		if mesh.VertexCount() > 0 {
			bmin, bmax := mesh.Bounds()
			fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", bmin.X(), bmin.Y(), bmin.Z())
			fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", bmax.X(), bmax.Y(), bmax.Z())
			size := bmax.Sub(bmin)
			fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
		}
	}
	return nil
}

// printFaces walks the index buffer by face arity and dumps each face's
// vertex indices. Only meaningful for non-triangulated meshes, which
// are the only ones that keep arities.
func printFaces(mesh *obj.Mesh) {
	next := 0
	for i, arity := range mesh.FaceArities {
		end := next + int(arity)
		if end > len(mesh.Indices) {
			break
		}
		fmt.Printf("  face[%d]: %v\n", i, mesh.Indices[next:end])
		next = end
	}
}
