package easel

import "math"

// Kage fragment sources. The vertex stage runs on the CPU (see vertex.go), so
// every program only implements Fragment. EbitenDevice injects these uniforms
// on top of the program's own:
//
//	Linear0, Linear1  1 when the texture on unit 0 / unit 1 is linear-filtered
//	TargetHeight      height of the bound framebuffer in pixels
//	FlipTarget        1 when the target stores rows top-down (the screen)
//
// Color outputs are premultiplied, as Ebitengine expects.

const kagePrelude = `//kage:unit pixels

package main

var Color vec4
var Contrast float
var FramePos vec2
var FrameSize vec2
var LightPos vec2
var LightParams vec3

var Linear0 float
var Linear1 float
var TargetHeight float
var FlipTarget float

func windowPos(dstPos vec4) vec2 {
	if FlipTarget > 0 {
		return vec2(dstPos.x, TargetHeight-dstPos.y)
	}
	return dstPos.xy
}

func sample0(p vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	if Linear0 == 0 {
		return imageSrc0UnsafeAt(origin + clamp(floor(p), vec2(0), size-1) + 0.5)
	}
	q := p - 0.5
	f := fract(q)
	b := floor(q)
	c00 := imageSrc0UnsafeAt(origin + clamp(b, vec2(0), size-1) + 0.5)
	c10 := imageSrc0UnsafeAt(origin + clamp(b+vec2(1, 0), vec2(0), size-1) + 0.5)
	c01 := imageSrc0UnsafeAt(origin + clamp(b+vec2(0, 1), vec2(0), size-1) + 0.5)
	c11 := imageSrc0UnsafeAt(origin + clamp(b+vec2(1, 1), vec2(0), size-1) + 0.5)
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func sample1(p vec2) vec4 {
	origin := imageSrc1Origin()
	size := imageSrc1Size()
	if Linear1 == 0 {
		return imageSrc1UnsafeAt(origin + clamp(floor(p), vec2(0), size-1) + 0.5)
	}
	q := p - 0.5
	f := fract(q)
	b := floor(q)
	c00 := imageSrc1UnsafeAt(origin + clamp(b, vec2(0), size-1) + 0.5)
	c10 := imageSrc1UnsafeAt(origin + clamp(b+vec2(1, 0), vec2(0), size-1) + 0.5)
	c01 := imageSrc1UnsafeAt(origin + clamp(b+vec2(0, 1), vec2(0), size-1) + 0.5)
	c11 := imageSrc1UnsafeAt(origin + clamp(b+vec2(1, 1), vec2(0), size-1) + 0.5)
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func straight(c vec4) vec4 {
	if c.a == 0 {
		return vec4(0)
	}
	return vec4(c.rgb/c.a, c.a)
}

func premultiply(c vec4) vec4 {
	return vec4(c.rgb*c.a, c.a)
}

func lightFactor(w vec2) float {
	r := LightParams.x
	if r <= 0 {
		return LightParams.z
	}
	d := length(w - LightPos)
	return max(LightParams.z, LightParams.y*(1-d/r))
}
`

const kageTextured = kagePrelude + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := straight(sample0(srcPos-imageSrc0Origin())) * Color
	if c.a <= 0.01 {
		return vec4(0)
	}
	return premultiply(c)
}
`

const kageNoTexture = kagePrelude + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return premultiply(Color)
}
`

const kageTexturedLight = kagePrelude + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := straight(sample0(srcPos-imageSrc0Origin())) * Color
	if c.a <= 0.01 {
		return vec4(0)
	}
	c.rgb = clamp(c.rgb*lightFactor(windowPos(dstPos)), 0, 1)
	return premultiply(c)
}
`

const kageNoTextureLight = kagePrelude + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := Color
	c.rgb = clamp(c.rgb*lightFactor(windowPos(dstPos)), 0, 1)
	return premultiply(c)
}
`

const kageTexturedFilter = kagePrelude + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := straight(sample0(srcPos-imageSrc0Origin())) * Color
	if c.a <= 0.01 {
		return vec4(0)
	}
	w := windowPos(dstPos)
	uv := (w - FramePos) / FrameSize
	uv.y = 1 - uv.y
	f := straight(sample1(uv * imageSrc1Size()))
	c.rgb = clamp((c.rgb*f.rgb-0.5)*Contrast+0.5, 0, 1)
	return premultiply(c)
}
`

// builtinShaderSource returns the source of a built-in program.
func builtinShaderSource(kind ShaderKind) (ShaderSource, bool) {
	switch kind {
	case ShaderTextured:
		return ShaderSource{Name: "textured", Kage: []byte(kageTextured), Software: fragTextured}, true
	case ShaderNoTexture:
		return ShaderSource{Name: "notexture", Kage: []byte(kageNoTexture), Software: fragNoTexture}, true
	case ShaderTexturedLight:
		return ShaderSource{
			Name:     "textured-light",
			Kage:     []byte(kageTexturedLight),
			Software: fragTexturedLight,
			Uniforms: []string{"lightPos", "lightParams"},
		}, true
	case ShaderNoTextureLight:
		return ShaderSource{
			Name:     "notexture-light",
			Kage:     []byte(kageNoTextureLight),
			Software: fragNoTextureLight,
			Uniforms: []string{"lightPos", "lightParams"},
		}, true
	case ShaderTexturedFilter:
		return ShaderSource{
			Name:     "textured-filter",
			Kage:     []byte(kageTexturedFilter),
			Software: fragTexturedFilter,
			Uniforms: []string{"framePos", "frameSize"},
		}, true
	}
	return ShaderSource{}, false
}

// Software fragment stages, mirroring the Kage sources above.

func tinted(in *FragmentInput) ([4]float64, bool) {
	u := in.Uniforms
	c := in.Sample(u.TexSampler, in.U, in.V)
	for i := range c {
		c[i] *= float64(u.Color[i])
	}
	return c, c[3] > 0.01
}

func fragTextured(in *FragmentInput) ([4]float64, bool) {
	return tinted(in)
}

func fragNoTexture(in *FragmentInput) ([4]float64, bool) {
	c := in.Uniforms.Color
	return [4]float64{float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])}, true
}

func lightFactor(u *UniformState, x, y float64) float64 {
	radius := float64(u.LightParams[0])
	ambient := float64(u.LightParams[2])
	if radius <= 0 {
		return ambient
	}
	d := math.Hypot(x-float64(u.LightPos[0]), y-float64(u.LightPos[1]))
	return math.Max(ambient, float64(u.LightParams[1])*(1-d/radius))
}

func applyLight(c [4]float64, k float64) [4]float64 {
	for i := 0; i < 3; i++ {
		c[i] = clampUnit(c[i] * k)
	}
	return c
}

func fragTexturedLight(in *FragmentInput) ([4]float64, bool) {
	c, ok := tinted(in)
	if !ok {
		return c, false
	}
	return applyLight(c, lightFactor(in.Uniforms, in.X, in.Y)), true
}

func fragNoTextureLight(in *FragmentInput) ([4]float64, bool) {
	c, _ := fragNoTexture(in)
	return applyLight(c, lightFactor(in.Uniforms, in.X, in.Y)), true
}

func fragTexturedFilter(in *FragmentInput) ([4]float64, bool) {
	c, ok := tinted(in)
	if !ok {
		return c, false
	}
	u := in.Uniforms
	fu := (in.X - float64(u.FramePos[0])) / float64(u.FrameSize[0])
	fv := 1 - (in.Y-float64(u.FramePos[1]))/float64(u.FrameSize[1])
	f := in.Sample(u.FilterSampler, fu, fv)
	k := float64(u.Contrast)
	for i := 0; i < 3; i++ {
		c[i] = clampUnit((c[i]*f[i]-0.5)*k + 0.5)
	}
	return c, true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
