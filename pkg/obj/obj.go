// Package obj loads Wavefront OBJ models and their MTL material
// libraries into flat, GPU-friendly buffers.
//
// The loader supports two indexing layouts. With LoadOptions.SingleIndex
// every unique position/texcoord/normal combination becomes one vertex
// and meshes carry a single index buffer, ready for upload. Without it,
// each attribute channel keeps its own index buffer, which preserves the
// file's connectivity for offline processing.
package obj

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// maxLineSize bounds a single OBJ line. Faces with very many vertices
// can produce long lines, so this is generous.
const maxLineSize = 1 << 20

const defaultModelName = "unnamed_object"

// MaterialLoader resolves a `mtllib` reference to a parsed library.
// The loader passes the name exactly as it appears in the file.
type MaterialLoader func(name string) (*MTLLib, error)

// MaterialLoaderContext is a MaterialLoader that honors cancellation.
type MaterialLoaderContext func(ctx context.Context, name string) (*MTLLib, error)

// Loader loads OBJ files with a fixed set of options.
type Loader struct {
	Options LoadOptions
	Logger  *zap.Logger
}

// NewLoader returns a Loader with the given options and a no-op logger.
func NewLoader(opts LoadOptions) *Loader {
	return &Loader{Options: opts, Logger: zap.NewNop()}
}

// LoadFile loads an OBJ file with the given options. Material libraries
// are resolved relative to the file's directory.
func LoadFile(path string, opts LoadOptions) (*Result, error) {
	return NewLoader(opts).LoadFile(path)
}

// LoadFile loads an OBJ file, resolving `mtllib` references relative to
// the file's directory.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		l.logger().Error("open obj file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("open obj file: %w", err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	return l.load(context.Background(), f, func(_ context.Context, name string) (*MTLLib, error) {
		return LoadMTLFile(filepath.Join(dir, name))
	})
}

// Load loads an OBJ model from r. Material libraries are resolved
// through loadMTL; pass nil to skip material loading entirely.
func (l *Loader) Load(r io.Reader, loadMTL MaterialLoader) (*Result, error) {
	return l.LoadContext(context.Background(), r, wrapMaterialLoader(loadMTL))
}

// LoadContext is Load with cancellation. The context is checked between
// lines and passed through to the material loader.
func (l *Loader) LoadContext(ctx context.Context, r io.Reader, loadMTL MaterialLoaderContext) (*Result, error) {
	return l.load(ctx, r, loadMTL)
}

func wrapMaterialLoader(fn MaterialLoader) MaterialLoaderContext {
	if fn == nil {
		return nil
	}
	return func(_ context.Context, name string) (*MTLLib, error) {
		return fn(name)
	}
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return zap.NewNop()
}

// parser accumulates file state while scanning an OBJ stream. Vertex
// data is shared across all models in the file; faces are buffered per
// model and flushed into a Mesh on object, group, and material changes.
type parser struct {
	positions []float32
	colors    []float32
	texcoords []float32
	normals   []float32

	faces []face

	name  string
	matID int

	models    []Model
	materials []Material
	matIndex  map[string]int
	matErr    error

	opts    LoadOptions
	log     *zap.Logger
	resolve MaterialLoaderContext
}

func (l *Loader) load(ctx context.Context, r io.Reader, resolve MaterialLoaderContext) (*Result, error) {
	if err := l.Options.Validate(); err != nil {
		return nil, err
	}

	p := &parser{
		name:     defaultModelName,
		matID:    missingIndex,
		matIndex: make(map[string]int),
		opts:     l.Options,
		log:      l.logger(),
		resolve:  resolve,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.processLine(ctx, scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	// The last object is never followed by a keyword that flushes it.
	if err := p.flushModel(); err != nil {
		return nil, err
	}

	res := &Result{
		Models:        p.models,
		Materials:     p.materials,
		MaterialError: p.matErr,
	}
	if len(res.Materials) > 0 {
		res.MaterialError = nil
	}
	return res, nil
}

func (p *parser) processLine(ctx context.Context, line string) error {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch fields[0] {
	case "v":
		pos, ok := appendFloats(p.positions, fields[1:], 3)
		p.positions = pos
		if !ok {
			return ErrInvalidPosition
		}
		// Extra values after x y z are per-vertex colors.
		if len(fields) > 4 {
			p.colors, _ = appendFloats(p.colors, fields[4:], 3)
		}
	case "vt":
		tex, ok := appendFloats(p.texcoords, fields[1:], 2)
		p.texcoords = tex
		if !ok {
			return ErrInvalidTexcoord
		}
	case "vn":
		norm, ok := appendFloats(p.normals, fields[1:], 3)
		p.normals = norm
		if !ok {
			return ErrInvalidNormal
		}
	case "f", "l":
		f, ok := parseFace(fields[1:], len(p.positions)/3, len(p.texcoords)/2, len(p.normals)/3)
		if !ok {
			return ErrInvalidFace
		}
		p.faces = append(p.faces, f)
	case "o", "g":
		if len(p.faces) > 0 {
			if err := p.flushModel(); err != nil {
				return err
			}
		}
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			name = defaultModelName
		}
		p.name = name
	case "mtllib":
		if p.resolve == nil {
			return nil
		}
		// A bare `mtllib` routes the empty name through the resolver;
		// the failure lands in the material error slot like any other
		// unresolvable library, never aborting the geometry.
		_, name, _ := strings.Cut(trimmed, " ")
		name = strings.TrimSpace(name)
		lib, err := p.resolve(ctx, name)
		if err != nil {
			p.log.Warn("material library failed to load",
				zap.String("mtllib", name), zap.Error(err))
			p.matErr = err
			return nil
		}
		offset := len(p.materials)
		for i, m := range lib.Materials {
			p.matIndex[m.Name] = offset + i
		}
		p.materials = append(p.materials, lib.Materials...)
	case "usemtl":
		_, name, _ := strings.Cut(trimmed, " ")
		name = strings.TrimSpace(name)
		if name == "" {
			// A `usemtl` with no name is skipped; the current material
			// stays in effect.
			return nil
		}
		newID, found := p.matIndex[name]
		if !found {
			p.log.Warn("usemtl references unknown material", zap.String("material", name))
			newID = missingIndex
		}
		if newID != p.matID && len(p.faces) > 0 {
			// Faces seen so far belong to the previous material.
			if err := p.flushModel(); err != nil {
				return err
			}
		}
		p.matID = newID
	default:
		// Unsupported keywords (s, vp, curve data, ...) are skipped.
	}
	return nil
}

// flushModel exports the buffered faces as a mesh and appends a model
// carrying the current object name and material.
func (p *parser) flushModel() error {
	var (
		mesh Mesh
		err  error
	)
	if p.opts.SingleIndex {
		mesh, err = exportFaces(p.positions, p.colors, p.texcoords, p.normals, p.faces, p.matID, p.opts)
	} else {
		mesh, err = exportFacesMultiIndex(p.positions, p.colors, p.texcoords, p.normals, p.faces, p.matID, p.opts)
	}
	if err != nil {
		return err
	}
	p.models = append(p.models, Model{Mesh: mesh, Name: p.name})
	p.faces = p.faces[:0]
	return nil
}
