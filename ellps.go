/*
Copyright © 2023 the GoProj authors.
This file is part of GoProj.

GoProj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GoProj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GoProj.  If not, see <http://www.gnu.org/licenses/>.
*/

package goproj

import "math"

// Ellipsoid holds the size and derived shape constants of a biaxial
// reference surface. Invariants: a > 0 and 0 ≤ es < 1.
type Ellipsoid struct {
	A  float64 // semimajor axis (radius if Es == 0)
	B  float64 // semiminor axis
	Ra float64 // 1/a
	Rb float64 // 1/b

	E  float64 // first eccentricity
	Es float64 // first eccentricity squared

	OneEs  float64 // 1 - e²
	ROneEs float64 // 1/(1 - e²)
	Ep2    float64 // second eccentricity squared, e²/(1 - e²)

	F  float64 // flattening
	Rf float64 // inverse flattening
}

// IsSphere reports whether the ellipsoid degenerates to a sphere.
func (e *Ellipsoid) IsSphere() bool { return e.Es == 0 }

// IsEllipsoid reports whether the surface has nonzero eccentricity.
func (e *Ellipsoid) IsEllipsoid() bool { return e.Es != 0 }

// shapeKind selects which secondary parameter defines the ellipsoid shape,
// in order of precedence: rf, f, es, e, b.
type shapeKind int

const (
	shapeRf shapeKind = iota
	shapeF
	shapeEs
	shapeE
	shapeB
)

// sphere returns a spherical "ellipsoid" of the given radius.
func sphere(radius float64) (Ellipsoid, error) {
	if !(radius > 0) || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return Ellipsoid{}, paramErrorf("invalid sphere radius %g", radius)
	}
	return Ellipsoid{
		A: radius, B: radius,
		Ra: 1 / radius, Rb: 1 / radius,
		OneEs: 1, ROneEs: 1,
		Rf: math.Inf(1),
	}, nil
}

// newEllipsoid derives the full constant set from the semimajor axis and one
// shape parameter.
func newEllipsoid(a float64, kind shapeKind, v float64) (Ellipsoid, error) {
	if !(a > 0) {
		return Ellipsoid{}, paramErrorf("invalid major axis %g", a)
	}
	el := Ellipsoid{A: a}

	switch kind {
	case shapeRf:
		if !(v > 1) {
			return Ellipsoid{}, paramErrorf("invalid inverse flattening %g", v)
		}
		f := 1 / v
		el.F, el.Rf = f, v
		el.Es = 2*f - f*f
		el.E = math.Sqrt(el.Es)
		el.B = (1 - f) * a
	case shapeF:
		if v < 0 || v >= 1 {
			return Ellipsoid{}, paramErrorf("invalid flattening %g", v)
		}
		el.F = v
		el.Es = 2*v - v*v
		el.E = math.Sqrt(el.Es)
		el.B = (1 - v) * a
		if v > 0 {
			el.Rf = 1 / v
		}
	case shapeEs:
		if v < 0 || v >= 1 {
			return Ellipsoid{}, paramErrorf("eccentricity squared %g out of range", v)
		}
		el.Es = v
		el.E = math.Sqrt(v)
		el.F = 1 - math.Cos(math.Asin(el.E))
		el.B = (1 - el.F) * a
		if el.F > 0 {
			el.Rf = 1 / el.F
		}
	case shapeE:
		if v < 0 || v >= 1 {
			return Ellipsoid{}, paramErrorf("eccentricity %g out of range", v)
		}
		el.E = v
		el.Es = v * v
		el.F = 1 - math.Cos(math.Asin(v))
		el.B = (1 - el.F) * a
		if el.F > 0 {
			el.Rf = 1 / el.F
		}
	case shapeB:
		if v <= 0 || v > a {
			return Ellipsoid{}, paramErrorf("invalid minor axis %g", v)
		}
		el.B = v
		el.Es = (a*a - v*v) / (a * a)
		el.E = math.Sqrt(el.Es)
		el.F = (a - v) / a
		if el.F > 0 {
			el.Rf = 1 / el.F
		}
	}

	// Collapse near-spherical definitions to exact spheres so that
	// projections take their spherical branches.
	if math.Abs(a-el.B) < eps10 {
		el.B = a
		el.E, el.Es, el.F = 0, 0, 0
		el.Rf = math.Inf(1)
	}

	el.Ra = 1 / el.A
	el.Rb = 1 / el.B
	el.OneEs = 1 - el.Es
	el.ROneEs = 1 / el.OneEs
	el.Ep2 = el.Es / el.OneEs
	return el, nil
}

// ellipsoidFromParams resolves the ellipsoid for a parameter bag.
// Precedence: +R (sphere) → +ellps (named) → +a with a shape parameter →
// datum-supplied ellipsoid → WGS84 default. A named or datum-supplied base
// may still have its a and shape overridden by explicit parameters.
func ellipsoidFromParams(params *paramList, datumDefn *datumDefn) (Ellipsoid, error) {
	if r, ok, err := params.f64("R"); err != nil {
		return Ellipsoid{}, err
	} else if ok {
		return sphere(r)
	}

	var base *ellipsoidDefn
	if name, ok, err := params.str("ellps"); err != nil {
		return Ellipsoid{}, err
	} else if ok {
		base = findEllipsoid(name)
		if base == nil {
			return Ellipsoid{}, paramErrorf("unrecognized ellipsoid %q", name)
		}
	} else if datumDefn != nil {
		base = datumDefn.ellps
	}

	a, haveA, err := params.f64("a")
	if err != nil {
		return Ellipsoid{}, err
	}
	kind, v, haveShape, err := shapeFromParams(params)
	if err != nil {
		return Ellipsoid{}, err
	}

	switch {
	case base == nil && haveA && haveShape:
		return newEllipsoid(a, kind, v)
	case base == nil && haveA:
		// A bare +a defines a sphere of that radius.
		return sphere(a)
	case base == nil:
		base = &wgs84Ellps
	}

	if !haveA {
		a = base.a
	}
	if !haveShape {
		if base.rf != 0 {
			kind, v = shapeRf, base.rf
		} else {
			kind, v = shapeB, base.b
		}
	}
	return newEllipsoid(a, kind, v)
}

// shapeFromParams extracts the highest-precedence shape parameter present.
func shapeFromParams(params *paramList) (shapeKind, float64, bool, error) {
	for _, c := range []struct {
		name string
		kind shapeKind
	}{{"rf", shapeRf}, {"f", shapeF}, {"es", shapeEs}, {"e", shapeE}, {"b", shapeB}} {
		v, ok, err := params.f64(c.name)
		if err != nil {
			return 0, 0, false, err
		}
		if ok {
			return c.kind, v, true, nil
		}
	}
	return 0, 0, false, nil
}
