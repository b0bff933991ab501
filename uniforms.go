package easel

import "golang.org/x/image/math/f64"

// Uniform indices. A program's uniform location is the index of the uniform
// in this table, or -1 when the program does not declare it.
const (
	uniformTransform = iota
	uniformPos
	uniformSize
	uniformTexPos
	uniformTexSize
	uniformColor
	uniformTexSampler
	uniformFilterSampler
	uniformContrast
	uniformFramePos
	uniformFrameSize
	uniformLightPos
	uniformLightParams

	uniformCount
)

var uniformNames = [uniformCount]string{
	uniformTransform:     "transform",
	uniformPos:           "pos",
	uniformSize:          "size",
	uniformTexPos:        "texPos",
	uniformTexSize:       "texSize",
	uniformColor:         "color",
	uniformTexSampler:    "texSampler",
	uniformFilterSampler: "filterSampler",
	uniformContrast:      "contrast",
	uniformFramePos:      "framePos",
	uniformFrameSize:     "frameSize",
	uniformLightPos:      "lightPos",
	uniformLightParams:   "lightParams",
}

// commonUniforms is the number of leading uniforms every program declares.
// The rest are declared per program through ShaderSource.Uniforms.
const commonUniforms = uniformContrast + 1

// UniformState holds the uniform values of one program. Values persist per
// program between UseProgram calls, as on a GL device.
type UniformState struct {
	Transform     f64.Mat3
	Pos, Size     [2]float32
	TexPos        [2]float32
	TexSize       [2]float32
	Color         [4]float32
	TexSampler    int32
	FilterSampler int32
	Contrast      float32
	FramePos      [2]float32
	FrameSize     [2]float32
	LightPos      [2]float32
	// LightParams holds radius, intensity and ambient.
	LightParams [3]float32
}

// uniformLocation resolves name against the uniforms declared by a program.
func uniformLocation(declared []string, name string) int32 {
	for i := 0; i < uniformCount; i++ {
		if uniformNames[i] != name {
			continue
		}
		if i < commonUniforms {
			return int32(i)
		}
		for _, d := range declared {
			if d == name {
				return int32(i)
			}
		}
		return -1
	}
	return -1
}

func (u *UniformState) set1i(loc int32, v int32) {
	switch loc {
	case uniformTexSampler:
		u.TexSampler = v
	case uniformFilterSampler:
		u.FilterSampler = v
	}
}

func (u *UniformState) set1f(loc int32, v float32) {
	if loc == uniformContrast {
		u.Contrast = v
	}
}

func (u *UniformState) set2f(loc int32, x, y float32) {
	switch loc {
	case uniformPos:
		u.Pos = [2]float32{x, y}
	case uniformSize:
		u.Size = [2]float32{x, y}
	case uniformTexPos:
		u.TexPos = [2]float32{x, y}
	case uniformTexSize:
		u.TexSize = [2]float32{x, y}
	case uniformFramePos:
		u.FramePos = [2]float32{x, y}
	case uniformFrameSize:
		u.FrameSize = [2]float32{x, y}
	case uniformLightPos:
		u.LightPos = [2]float32{x, y}
	}
}

func (u *UniformState) set3f(loc int32, x, y, z float32) {
	if loc == uniformLightParams {
		u.LightParams = [3]float32{x, y, z}
	}
}

func (u *UniformState) set4f(loc int32, x, y, z, w float32) {
	if loc == uniformColor {
		u.Color = [4]float32{x, y, z, w}
	}
}

func (u *UniformState) setMatrix3(loc int32, m f64.Mat3) {
	if loc == uniformTransform {
		u.Transform = m
	}
}
