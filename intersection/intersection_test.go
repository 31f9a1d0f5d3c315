package intersection

import (
	"errors"
	"math"
	"testing"

	"whitted/affinetransform"
	"whitted/ray"
	"whitted/shape"
	"whitted/vmath/approx"
	"whitted/vmath/matrix"
	"whitted/vmath/vec4"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpt = cmpopts.EquateApprox(0, 1e-5)

func TestHit(t *testing.T) {
	testCases := []struct {
		desc   string
		xs     List
		want   Intersection
		wantOK bool
	}{
		{
			desc:   "all positive",
			xs:     List{{T: 2}, {T: 1}},
			want:   Intersection{T: 1},
			wantOK: true,
		},
		{
			desc:   "some negative",
			xs:     List{{T: 1}, {T: -1}},
			want:   Intersection{T: 1},
			wantOK: true,
		},
		{
			desc:   "all negative",
			xs:     List{{T: -1}, {T: -2}},
			wantOK: false,
		},
		{
			desc:   "lowest non-negative",
			xs:     List{{T: 5}, {T: 7}, {T: -3}, {T: 2, Object: 1}},
			want:   Intersection{T: 2, Object: 1},
			wantOK: true,
		},
		{
			desc:   "zero counts",
			xs:     List{{T: 0}, {T: -1e-9}},
			want:   Intersection{T: 0},
			wantOK: true,
		},
		{
			desc:   "empty",
			xs:     nil,
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, ok := tc.xs.Hit()
			if ok != tc.wantOK {
				t.Fatalf("Hit() ok = %v, want %v", ok, tc.wantOK)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Bad hit; diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestSort(t *testing.T) {
	xs := List{{T: 5}, {T: 7, Object: 1}, {T: -3}, {T: 2, Object: 2}}
	xs.Sort()

	want := List{{T: -3}, {T: 2, Object: 2}, {T: 5}, {T: 7, Object: 1}}
	if diff := cmp.Diff(xs, want); diff != "" {
		t.Errorf("Bad order; diff (-got +want)\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := Intersection{T: 1, Object: 0}
	if !a.Equal(Intersection{T: 1 + approx.Epsilon/2, Object: 0}) {
		t.Errorf("Crossings within epsilon compare unequal")
	}
	if a.Equal(Intersection{T: 1, Object: 1}) {
		t.Errorf("Crossings of different objects compare equal")
	}
}

func TestPrepare(t *testing.T) {
	s2 := math.Sqrt2 / 2

	testCases := []struct {
		desc   string
		obj    *shape.Object
		r      ray.Ray
		t      float64
		want   Computed
		ignore []string
	}{
		{
			desc: "outside",
			obj:  shape.NewSphere(),
			r:    ray.New(vec4.Point(0, 0, -5), vec4.Vector(0, 0, 1)),
			t:    4,
			want: Computed{
				T:       4,
				Point:   vec4.Point(0, 0, -1),
				Eye:     vec4.Vector(0, 0, -1),
				Normal:  vec4.Vector(0, 0, -1),
				Reflect: vec4.Vector(0, 0, -1),
				N1:      1,
				N2:      1,
			},
			ignore: []string{"OverPoint", "UnderPoint"},
		},
		{
			desc: "inside",
			obj:  shape.NewSphere(),
			r:    ray.New(vec4.Point(0, 0, 0), vec4.Vector(0, 0, 1)),
			t:    1,
			want: Computed{
				T:       1,
				Point:   vec4.Point(0, 0, 1),
				Eye:     vec4.Vector(0, 0, -1),
				Normal:  vec4.Vector(0, 0, -1),
				Reflect: vec4.Vector(0, 0, -1),
				Inside:  true,
				N1:      1,
				N2:      1,
			},
			ignore: []string{"OverPoint", "UnderPoint"},
		},
		{
			desc: "reflection off a plane",
			obj:  shape.NewPlane(),
			r:    ray.New(vec4.Point(0, 1, -1), vec4.Vector(0, -s2, s2)),
			t:    math.Sqrt2,
			want: Computed{
				Reflect: vec4.Vector(0, s2, s2),
			},
			ignore: []string{"T", "Point", "Eye", "Normal", "OverPoint", "UnderPoint", "Inside", "N1", "N2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			hit := Intersection{T: tc.t}
			got, err := Prepare(hit, tc.r, List{hit}, []*shape.Object{tc.obj})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(got, tc.want, approxOpt, cmpopts.IgnoreFields(Computed{}, tc.ignore...)); diff != "" {
				t.Errorf("Bad computed hit; diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestPrepareOffsetsPoints(t *testing.T) {
	r := ray.New(vec4.Point(0, 0, -5), vec4.Vector(0, 0, 1))
	s := shape.GlassSphere()
	s.Transform = affinetransform.Translate(0, 0, 1)

	hit := Intersection{T: 5}
	c, err := Prepare(hit, r, List{hit}, []*shape.Object{s})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !(c.OverPoint[2] < -approx.Epsilon/2) {
		t.Errorf("OverPoint.z = %v, want < %v", c.OverPoint[2], -approx.Epsilon/2)
	}
	if !(c.Point[2] > c.OverPoint[2]) {
		t.Errorf("OverPoint %v is not above Point %v", c.OverPoint, c.Point)
	}
	if !(c.UnderPoint[2] > approx.Epsilon/2) {
		t.Errorf("UnderPoint.z = %v, want > %v", c.UnderPoint[2], approx.Epsilon/2)
	}
	if !(c.Point[2] < c.UnderPoint[2]) {
		t.Errorf("UnderPoint %v is not below Point %v", c.UnderPoint, c.Point)
	}
}

func TestRefractiveIndices(t *testing.T) {
	a := shape.GlassSphere()
	a.Transform = affinetransform.Scale(2, 2, 2)

	b := shape.GlassSphere()
	b.Transform = affinetransform.Translate(0, 0, -0.25)
	b.Material.RefractiveIndex = 2.0

	c := shape.GlassSphere()
	c.Transform = affinetransform.Translate(0, 0, 0.25)
	c.Material.RefractiveIndex = 2.5

	objects := []*shape.Object{a, b, c}
	r := ray.New(vec4.Point(0, 0, -4), vec4.Vector(0, 0, 1))
	xs := List{
		{T: 2, Object: 0},
		{T: 2.75, Object: 1},
		{T: 3.25, Object: 2},
		{T: 4.75, Object: 1},
		{T: 5.25, Object: 2},
		{T: 6, Object: 0},
	}

	want := [][2]float64{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, x := range xs {
		got, err := Prepare(x, r, xs, objects)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.N1 != want[i][0] || got.N2 != want[i][1] {
			t.Errorf("crossing %d: (n1, n2) = (%v, %v), want (%v, %v)", i, got.N1, got.N2, want[i][0], want[i][1])
		}
	}
}

func TestSchlick(t *testing.T) {
	s2 := math.Sqrt2 / 2

	testCases := []struct {
		desc string
		r    ray.Ray
		xs   List
		hit  int
		want float64
	}{
		{
			desc: "total internal reflection",
			r:    ray.New(vec4.Point(0, 0, s2), vec4.Vector(0, 1, 0)),
			xs:   List{{T: -s2}, {T: s2}},
			hit:  1,
			want: 1.0,
		},
		{
			desc: "perpendicular",
			r:    ray.New(vec4.Point(0, 0, 0), vec4.Vector(0, 1, 0)),
			xs:   List{{T: -1}, {T: 1}},
			hit:  1,
			want: 0.04,
		},
		{
			desc: "small angle into denser medium",
			r:    ray.New(vec4.Point(0, 0.99, -2), vec4.Vector(0, 0, 1)),
			xs:   List{{T: 1.8589}},
			hit:  0,
			want: 0.48873,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			objects := []*shape.Object{shape.GlassSphere()}
			c, err := Prepare(tc.xs[tc.hit], tc.r, tc.xs, objects)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := c.Schlick(); math.Abs(got-tc.want) > 1e-4 {
				t.Errorf("Schlick() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPrepareNotInvertible(t *testing.T) {
	s := shape.NewSphere()
	s.Transform = affinetransform.Scale(0, 1, 1)

	hit := Intersection{T: 4}
	r := ray.New(vec4.Point(0, 0, -5), vec4.Vector(0, 0, 1))
	if _, err := Prepare(hit, r, List{hit}, []*shape.Object{s}); !errors.Is(err, matrix.ErrNotInvertible) {
		t.Errorf("Prepare error = %v, want %v", err, matrix.ErrNotInvertible)
	}
}
