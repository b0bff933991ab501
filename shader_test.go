package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBuiltinKageSourcesCompile(t *testing.T) {
	for k := ShaderKind(0); k < shaderKindCount; k++ {
		src, ok := builtinShaderSource(k)
		if !ok {
			t.Fatalf("no source for %v", k)
		}
		if src.Name != k.String() {
			t.Errorf("source name = %q, want %q", src.Name, k.String())
		}
		if src.Software == nil {
			t.Errorf("%v: no software stage", k)
		}
		if _, err := ebiten.NewShader(src.Kage); err != nil {
			t.Errorf("%v: compile: %v", k, err)
		}
	}
	if _, ok := builtinShaderSource(shaderKindCount); ok {
		t.Error("builtinShaderSource(out of range) should fail")
	}
}

func TestShaderKindString(t *testing.T) {
	if got := ShaderTexturedFilter.String(); got != "textured-filter" {
		t.Errorf("String = %q, want textured-filter", got)
	}
	if got := ShaderKind(42).String(); got != "ShaderKind(42)" {
		t.Errorf("String = %q, want ShaderKind(42)", got)
	}
}

func TestBuildShaderResolvesLocations(t *testing.T) {
	dev := NewSoftwareDevice(1, 1)
	s := mustBuildShader(dev, ShaderTexturedLight)
	if s.Kind() != ShaderTexturedLight || s.Name() != "textured-light" {
		t.Errorf("shader = %v %q", s.Kind(), s.Name())
	}
	for i := 0; i < commonUniforms; i++ {
		if s.loc[i] != int32(i) {
			t.Errorf("%s location = %d, want %d", uniformNames[i], s.loc[i], i)
		}
	}
	if s.loc[uniformFramePos] != -1 || s.loc[uniformFrameSize] != -1 {
		t.Error("lit shader should not declare the filter frame")
	}
	if s.loc[uniformLightPos] != uniformLightPos {
		t.Errorf("lightPos location = %d", s.loc[uniformLightPos])
	}
}

func TestFragmentTexturedDiscardsTransparent(t *testing.T) {
	u := UniformState{Color: [4]float32{1, 1, 1, 1}}
	in := &FragmentInput{
		Uniforms: &u,
		Sample:   func(int32, float64, float64) [4]float64 { return [4]float64{1, 1, 1, 0.005} },
	}
	if _, ok := fragTextured(in); ok {
		t.Error("nearly transparent texel should be discarded")
	}
}

func TestFragmentTintMultiplies(t *testing.T) {
	u := UniformState{Color: [4]float32{0.5, 1, 0, 1}}
	in := &FragmentInput{
		Uniforms: &u,
		Sample:   func(int32, float64, float64) [4]float64 { return [4]float64{1, 0.5, 1, 1} },
	}
	c, ok := fragTextured(in)
	if !ok {
		t.Fatal("fragment discarded")
	}
	want := [4]float64{0.5, 0.5, 0, 1}
	for i := range want {
		assertNear(t, "tint", c[i], want[i])
	}
}

func TestLightFactor(t *testing.T) {
	tests := []struct {
		name                       string
		radius, intensity, ambient float32
		x                          float64
		want                       float64
	}{
		{"no light", 0, 0, 1, 5, 1},
		{"at centre", 10, 1, 0, 0, 1},
		{"half radius", 10, 1, 0, 5, 0.5},
		{"outside radius", 10, 1, 0.2, 20, 0.2},
		{"ambient floor", 10, 1, 0.75, 5, 0.75},
	}
	for _, tt := range tests {
		u := &UniformState{LightParams: [3]float32{tt.radius, tt.intensity, tt.ambient}}
		assertNear(t, tt.name, lightFactor(u, tt.x, 0), tt.want)
	}
}

func TestFragmentFilterContrast(t *testing.T) {
	u := UniformState{
		Color:         [4]float32{1, 1, 1, 1},
		FilterSampler: TextureUnitFilter,
		FrameSize:     [2]float32{1, 1},
		Contrast:      2,
	}
	in := &FragmentInput{
		Uniforms: &u,
		Sample: func(unit int32, _, _ float64) [4]float64 {
			if unit == TextureUnitFilter {
				return [4]float64{1, 1, 1, 1}
			}
			return [4]float64{0.75, 0.5, 0.25, 1}
		},
	}
	c, _ := fragTexturedFilter(in)
	want := [3]float64{1, 0.5, 0}
	for i := range want {
		assertNear(t, "contrast", c[i], want[i])
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	pix := premultiply([]byte{255, 0, 0, 128, 10, 20, 30, 255, 9, 9, 9, 0})
	if got := [4]byte(pix[0:4]); got != [4]byte{128, 0, 0, 128} {
		t.Errorf("premultiplied = %v, want [128 0 0 128]", got)
	}
	if got := [4]byte(pix[4:8]); got != [4]byte{10, 20, 30, 255} {
		t.Errorf("opaque = %v, want unchanged", got)
	}
	if got := [4]byte(pix[8:12]); got != [4]byte{0, 0, 0, 0} {
		t.Errorf("transparent = %v, want zero", got)
	}
	unpremultiply(pix)
	if got := [4]byte(pix[0:4]); got != [4]byte{255, 0, 0, 128} {
		t.Errorf("unpremultiplied = %v, want [255 0 0 128]", got)
	}
}
