package material

import (
	"math"
	"testing"

	"whitted/light"
	"whitted/pattern"
	"whitted/rgb"
	"whitted/vmath/vec4"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpt = cmpopts.EquateApprox(0, 1e-4)

func TestDefault(t *testing.T) {
	m := Default()
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Bad Phong coefficients: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("Bad optical coefficients: %+v", m)
	}
	if m.Pattern.Kind != pattern.KindSolid || m.Pattern.A != rgb.White() {
		t.Errorf("Bad default pattern: %+v", m.Pattern)
	}
}

func TestLighting(t *testing.T) {
	s2 := math.Sqrt2 / 2
	position := vec4.Point(0, 0, 0)

	testCases := []struct {
		desc     string
		eye      vec4.T
		normal   vec4.T
		light    light.Point
		inShadow bool
		want     rgb.T
	}{
		{
			desc:   "eye between light and surface",
			eye:    vec4.Vector(0, 0, -1),
			normal: vec4.Vector(0, 0, -1),
			light:  light.NewPoint(vec4.Point(0, 0, -10), rgb.White()),
			want:   rgb.T{1.9, 1.9, 1.9},
		},
		{
			desc:   "eye offset 45 degrees",
			eye:    vec4.Vector(0, s2, -s2),
			normal: vec4.Vector(0, 0, -1),
			light:  light.NewPoint(vec4.Point(0, 0, -10), rgb.White()),
			want:   rgb.T{1.0, 1.0, 1.0},
		},
		{
			desc:   "light offset 45 degrees",
			eye:    vec4.Vector(0, 0, -1),
			normal: vec4.Vector(0, 0, -1),
			light:  light.NewPoint(vec4.Point(0, 10, -10), rgb.White()),
			want:   rgb.T{0.7364, 0.7364, 0.7364},
		},
		{
			desc:   "eye in the path of the reflection",
			eye:    vec4.Vector(0, -s2, -s2),
			normal: vec4.Vector(0, 0, -1),
			light:  light.NewPoint(vec4.Point(0, 10, -10), rgb.White()),
			want:   rgb.T{1.6364, 1.6364, 1.6364},
		},
		{
			desc:   "light behind the surface",
			eye:    vec4.Vector(0, 0, -1),
			normal: vec4.Vector(0, 0, -1),
			light:  light.NewPoint(vec4.Point(0, 0, 10), rgb.White()),
			want:   rgb.T{0.1, 0.1, 0.1},
		},
		{
			desc:     "surface in shadow",
			eye:      vec4.Vector(0, 0, -1),
			normal:   vec4.Vector(0, 0, -1),
			light:    light.NewPoint(vec4.Point(0, 0, -10), rgb.White()),
			inShadow: true,
			want:     rgb.T{0.1, 0.1, 0.1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			m := Default()
			got := m.Lighting(rgb.White(), tc.light, position, tc.eye, tc.normal, tc.inShadow)
			if diff := cmp.Diff(got, tc.want, approxOpt); diff != "" {
				t.Errorf("Bad lighting; diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestLightingWithStripe(t *testing.T) {
	m := Default()
	m.Pattern = pattern.Stripe(rgb.White(), rgb.Black())
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eye := vec4.Vector(0, 0, -1)
	normal := vec4.Vector(0, 0, -1)
	l := light.NewPoint(vec4.Point(0, 0, -10), rgb.White())

	for _, tc := range []struct {
		point vec4.T
		want  rgb.T
	}{
		{vec4.Point(0.9, 0, 0), rgb.White()},
		{vec4.Point(1.1, 0, 0), rgb.Black()},
	} {
		got := m.Lighting(m.Pattern.ColorAt(tc.point), l, tc.point, eye, normal, false)
		if diff := cmp.Diff(got, tc.want, approxOpt); diff != "" {
			t.Errorf("Bad lighting at %v; diff (-got +want)\n%s", tc.point, diff)
		}
	}
}
