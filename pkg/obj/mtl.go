package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Material holds the standard MTL attributes of one material. Optional
// attributes are nil (or empty, for texture names) when the file does
// not set them; unrecognized keywords are collected in UnknownParams.
//
// Texture file names are kept as written; no path is prepended.
type Material struct {
	// Name as given by `newmtl`.
	Name string
	// Ambient color (Ka).
	Ambient *[3]float32
	// Diffuse color (Kd).
	Diffuse *[3]float32
	// Specular color (Ks).
	Specular *[3]float32
	// Shininess (Ns), also called glossiness.
	Shininess *float32
	// Dissolve (d) is the material's alpha term.
	Dissolve *float32
	// OpticalDensity (Ni), the index of refraction.
	OpticalDensity *float32
	// Texture map file names. Empty when unset.
	AmbientTexture   string // map_Ka
	DiffuseTexture   string // map_Kd
	SpecularTexture  string // map_Ks
	NormalTexture    string // map_Bump / bump
	ShininessTexture string // map_Ns
	DissolveTexture  string // map_d
	// IlluminationModel (illum).
	IlluminationModel *uint8
	// UnknownParams maps unrecognized keywords to their raw values.
	UnknownParams map[string]string
}

// MTLLib is a parsed material library: the materials in file order and
// a map from material name to index.
type MTLLib struct {
	Materials []Material
	Index     map[string]int
}

// LoadMTLFile loads the materials defined in an MTL file.
func LoadMTLFile(path string) (*MTLLib, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtl file: %w", err)
	}
	defer f.Close()
	return LoadMTL(f)
}

// LoadMTL parses materials from an MTL source.
func LoadMTL(r io.Reader) (*MTLLib, error) {
	lib := &MTLLib{Index: make(map[string]int)}
	cur := Material{UnknownParams: make(map[string]string)}

	flush := func() {
		if cur.Name == "" {
			return
		}
		lib.Index[cur.Name] = len(lib.Materials)
		lib.Materials = append(lib.Materials, cur)
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == "#" {
			continue
		}
		kw := fields[0]
		// Texture names and material names may contain spaces, so they
		// are taken from the raw line after the keyword rather than
		// from the split fields.
		rest := strings.TrimSpace(line[len(kw):])

		var err error
		switch kw {
		case "newmtl":
			flush()
			cur = Material{UnknownParams: make(map[string]string)}
			cur.Name = rest
			if cur.Name == "" {
				err = ErrInvalidObjectName
			}
		case "Ka":
			cur.Ambient, err = parseFloat3(fields[1:])
		case "Kd":
			cur.Diffuse, err = parseFloat3(fields[1:])
		case "Ks":
			cur.Specular, err = parseFloat3(fields[1:])
		case "Ns":
			cur.Shininess, err = parseFloat1(fields[1:])
		case "Ni":
			cur.OpticalDensity, err = parseFloat1(fields[1:])
		case "d":
			cur.Dissolve, err = parseFloat1(fields[1:])
		case "map_Ka":
			cur.AmbientTexture, err = textureName(rest)
		case "map_Kd":
			cur.DiffuseTexture, err = textureName(rest)
		case "map_Ks":
			cur.SpecularTexture, err = textureName(rest)
		case "map_Ns", "map_ns", "map_NS":
			cur.ShininessTexture, err = textureName(rest)
		case "map_Bump", "map_bump", "bump":
			cur.NormalTexture, err = textureName(rest)
		case "map_d":
			cur.DissolveTexture, err = textureName(rest)
		case "illum":
			if len(fields) < 2 {
				err = ErrInvalidMaterial
				break
			}
			v, perr := strconv.ParseUint(fields[1], 10, 8)
			if perr != nil {
				err = ErrInvalidMaterial
				break
			}
			model := uint8(v)
			cur.IlluminationModel = &model
		default:
			cur.UnknownParams[kw] = rest
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mtl: %w", err)
	}

	flush()
	return lib, nil
}

func parseFloat3(fields []string) (*[3]float32, error) {
	if len(fields) < 3 {
		return nil, ErrInvalidMaterial
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, ErrInvalidMaterial
		}
		out[i] = float32(v)
	}
	return &out, nil
}

func parseFloat1(fields []string) (*float32, error) {
	if len(fields) < 1 {
		return nil, ErrInvalidMaterial
	}
	v, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return nil, ErrInvalidMaterial
	}
	f := float32(v)
	return &f, nil
}

func textureName(rest string) (string, error) {
	if rest == "" {
		return "", ErrInvalidMaterial
	}
	return rest, nil
}
