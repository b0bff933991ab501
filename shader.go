package easel

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// ShaderKind selects one of the built-in shader programs. The set is closed:
// a Canvas compiles one program per kind at construction.
type ShaderKind uint8

const (
	// ShaderTextured samples the bound texture and multiplies by the color.
	ShaderTextured ShaderKind = iota
	// ShaderNoTexture fills with the flat color.
	ShaderNoTexture
	// ShaderTexturedLight is ShaderTextured lit by a single point light.
	ShaderTexturedLight
	// ShaderNoTextureLight is ShaderNoTexture lit by a single point light.
	ShaderNoTextureLight
	// ShaderTexturedFilter is ShaderTextured followed by a color-grading pass
	// that samples the filter texture on unit 1 in screen space.
	ShaderTexturedFilter

	shaderKindCount
)

var shaderKindNames = [shaderKindCount]string{
	ShaderTextured:       "textured",
	ShaderNoTexture:      "notexture",
	ShaderTexturedLight:  "textured-light",
	ShaderNoTextureLight: "notexture-light",
	ShaderTexturedFilter: "textured-filter",
}

func (k ShaderKind) String() string {
	if k < shaderKindCount {
		return shaderKindNames[k]
	}
	return fmt.Sprintf("ShaderKind(%d)", uint8(k))
}

// FragmentInput is what a software fragment function sees for one pixel.
type FragmentInput struct {
	// U and V are the texture coordinates after the vertex stage.
	U, V float64
	// X and Y are the window coordinates of the pixel centre (origin
	// bottom-left).
	X, Y float64
	// Uniforms are the values of the program being drawn with.
	Uniforms *UniformState
	// Sample reads the texture bound to unit with the texture's filter and
	// clamp-to-edge wrapping. The result is straight-alpha RGBA in [0, 1].
	Sample func(unit int32, u, v float64) [4]float64
}

// FragmentFunc computes the straight-alpha color of one fragment. Returning
// false discards the fragment.
type FragmentFunc func(in *FragmentInput) ([4]float64, bool)

// ShaderSource is the fragment stage of a program for every backend. The
// vertex stage is fixed and shared by all programs.
type ShaderSource struct {
	Name string
	// Kage is the Ebitengine Kage source of the fragment stage.
	Kage []byte
	// Software is the fragment stage run by SoftwareDevice.
	Software FragmentFunc
	// Uniforms lists the optional uniforms (framePos, frameSize, lightPos,
	// lightParams) the program declares.
	Uniforms []string
}

// ShaderProgram is one compiled program with its uniform-location table.
type ShaderProgram struct {
	kind    ShaderKind
	name    string
	dev     Device
	program uint32
	loc     [uniformCount]int32
}

// buildShader compiles src on dev and resolves its uniform locations.
func buildShader(dev Device, kind ShaderKind, src ShaderSource) (*ShaderProgram, error) {
	program, err := dev.CreateProgram(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", src.Name, err)
	}
	s := &ShaderProgram{kind: kind, name: src.Name, dev: dev, program: program}
	for i := range s.loc {
		s.loc[i] = dev.UniformLocation(program, uniformNames[i])
	}
	logger.Debug("shader built", "kind", kind, "name", src.Name, "program", program)
	return s, nil
}

// mustBuildShader is buildShader for the built-in programs. Failure to build
// one of them leaves nothing to render with, so it panics.
func mustBuildShader(dev Device, kind ShaderKind) *ShaderProgram {
	src, ok := builtinShaderSource(kind)
	if !ok {
		panic(fmt.Sprintf("easel: unknown shader kind %v", kind))
	}
	s, err := buildShader(dev, kind, src)
	if err != nil {
		panic("easel: failed to compile " + src.Name + " shader: " + err.Error())
	}
	return s
}

// Kind returns the kind the program was built for.
func (s *ShaderProgram) Kind() ShaderKind { return s.kind }

// Name returns the program name.
func (s *ShaderProgram) Name() string { return s.name }

// Use binds the program and resets its per-draw uniforms: samplers to units
// 0 and 1, contrast to 1, vertex and fragment transforms and the transform
// matrix to identity, color to opaque white and the light to none.
func (s *ShaderProgram) Use() {
	s.dev.UseProgram(s.program)

	s.dev.Uniform1i(s.loc[uniformTexSampler], TextureUnitColor)
	s.dev.Uniform1i(s.loc[uniformFilterSampler], TextureUnitFilter)
	s.dev.Uniform1f(s.loc[uniformContrast], 1)

	s.SetVertexTransform(0, 0, 1, 1)
	s.SetFragTransform(0, 0, 1, 1)
	s.SetTransformMatrix(identityMatrix)
	s.SetColor(1, 1, 1, 1)
	s.SetLight(0, 0, 0, 0, 1)
}

// SetVertexTransform places the unit quad at the rectangle (x, y, w, h).
func (s *ShaderProgram) SetVertexTransform(x, y, w, h float64) {
	s.dev.Uniform2f(s.loc[uniformPos], float32(x), float32(y))
	s.dev.Uniform2f(s.loc[uniformSize], float32(w), float32(h))
}

// SetFragTransform maps the unit UV square to the normalized source
// rectangle (x, y, w, h).
func (s *ShaderProgram) SetFragTransform(x, y, w, h float64) {
	s.dev.Uniform2f(s.loc[uniformTexPos], float32(x), float32(y))
	s.dev.Uniform2f(s.loc[uniformTexSize], float32(w), float32(h))
}

// SetColor sets the multiplicative tint.
func (s *ShaderProgram) SetColor(r, g, b, a float64) {
	s.dev.Uniform4f(s.loc[uniformColor], float32(r), float32(g), float32(b), float32(a))
}

// SetTransformMatrix uploads the matrix applied to quad positions.
func (s *ShaderProgram) SetTransformMatrix(m f64.Mat3) {
	s.dev.UniformMatrix3(s.loc[uniformTransform], m)
}

// SetFilter sets the screen-space frame the filter texture is stretched
// over and the contrast applied after filtering. Programs without a filter
// stage ignore everything but contrast.
func (s *ShaderProgram) SetFilter(frameX, frameY, frameW, frameH, contrast float64) {
	s.dev.Uniform2f(s.loc[uniformFramePos], float32(frameX), float32(frameY))
	s.dev.Uniform2f(s.loc[uniformFrameSize], float32(frameW), float32(frameH))
	s.dev.Uniform1f(s.loc[uniformContrast], float32(contrast))
}

// SetLight positions a point light in window coordinates. Lit programs
// scale fragment color by max(ambient, intensity*(1-d/radius)), where d is
// the distance from the light. Ambient 1 disables the light.
func (s *ShaderProgram) SetLight(x, y, radius, intensity, ambient float64) {
	s.dev.Uniform2f(s.loc[uniformLightPos], float32(x), float32(y))
	s.dev.Uniform3f(s.loc[uniformLightParams], float32(radius), float32(intensity), float32(ambient))
}
