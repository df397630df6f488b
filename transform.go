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

// Transform converts the coordinates held by pts from the src CRS to the
// dst CRS in place. Per-point failures abort the batch and are reported as
// a *BatchError carrying the index of the failing point; points before it
// remain transformed, the failing point and all later points are untouched.
func Transform(src, dst *Proj, pts Transformer) error {
	// Identical systems transform to bit-exact identity.
	if src == dst || src.spec != "" && src.spec == dst.spec {
		return nil
	}

	steps := buildPipeline(src, dst)
	index := 0
	err := pts.TransformCoords(func(x, y, z float64) (float64, float64, float64, error) {
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, 0, 0, domainErrorf("NaN coordinate value")
		}
		var err error
		for _, step := range steps {
			if x, y, z, err = step(x, y, z); err != nil {
				return 0, 0, 0, err
			}
		}
		index++
		return x, y, z, nil
	})
	if err != nil {
		return &BatchError{Index: index, Processed: index, Err: err}
	}
	return nil
}

// TransformPoint converts a single point in place.
func TransformPoint(src, dst *Proj, pt *Point) error {
	if err := Transform(src, dst, pt); err != nil {
		var b *BatchError
		if asBatch(err, &b) {
			return b.Err
		}
		return err
	}
	return nil
}

func asBatch(err error, target **BatchError) bool {
	b, ok := err.(*BatchError)
	if ok {
		*target = b
	}
	return ok
}

// TransformPoints converts a slice of points in place.
func TransformPoints(src, dst *Proj, pts []Point) error {
	return Transform(src, dst, PointSlice(pts))
}

// TransformStrided converts interleaved coordinates in place; stride is the
// number of values per point (2 or more).
func TransformStrided(src, dst *Proj, values []float64, stride int) error {
	return Transform(src, dst, StridedCoords{Values: values, Stride: stride})
}

// buildPipeline composes the per-point transformation chain:
// source units/axes → source inverse projection → prime meridian → datum
// shift → prime meridian → target forward projection → target axes/units.
func buildPipeline(src, dst *Proj) []coordFunc {
	var steps []coordFunc

	add := func(f coordFunc) {
		if f != nil {
			steps = append(steps, f)
		}
	}

	// Source side: down to geodetic radians on the source datum.
	add(axisAdjust(src, true))
	add(geocentToGeodetic(src))
	add(inverseProjection(src))
	add(latlongToRadians(src))
	add(primeMeridianShift(src, true))

	// Datum shift (decided once per pipeline, not per point).
	if !datumShiftIdentity(&src.datum, &dst.datum) {
		sd, dd := &src.datum, &dst.datum
		add(func(x, y, z float64) (float64, float64, float64, error) {
			return datumShift(sd, dd, x, y, z)
		})
	}

	// Target side.
	add(primeMeridianShift(dst, false))
	add(forwardProjection(dst))
	add(latlongFromRadians(dst))
	add(geodeticToGeocent(dst))
	add(axisAdjust(dst, false))

	return steps
}

// geocentToGeodetic converts geocentric cartesian input (in CRS units) to
// geodetic radians, for a geocentric source.
func geocentToGeodetic(p *Proj) coordFunc {
	if !p.isGeocent {
		return nil
	}
	a, b, es := p.datum.a, p.datum.b, p.datum.es
	fac := p.toMeter
	return func(x, y, z float64) (float64, float64, float64, error) {
		return geocentricToGeodetic(x*fac, y*fac, z*fac, a, es, b)
	}
}

// geodeticToGeocent converts geodetic radians to geocentric cartesian
// output, for a geocentric target.
func geodeticToGeocent(p *Proj) coordFunc {
	if !p.isGeocent {
		return nil
	}
	a, es := p.datum.a, p.datum.es
	frMeter := 1 / p.toMeter
	return func(lam, phi, h float64) (float64, float64, float64, error) {
		x, y, z, err := geodeticToGeocentric(lam, phi, h, a, es)
		if err != nil {
			return 0, 0, 0, err
		}
		return x * frMeter, y * frMeter, z * frMeter, nil
	}
}

// inverseProjection maps projected source coordinates to geodetic radians:
// unit conversion, de-offsetting, de-scaling by the semimajor axis, inverse
// projection, re-adding the central meridian.
func inverseProjection(p *Proj) coordFunc {
	if p.isLatlong || p.isGeocent {
		return nil
	}
	lam0, x0, y0 := p.lam0, p.x0, p.y0
	ra, toMeter := p.ellps.Ra, p.toMeter
	core, over := p.core, p.over
	return func(x, y, z float64) (float64, float64, float64, error) {
		lam, phi, z, err := core.Inverse((x*toMeter-x0)*ra, (y*toMeter-y0)*ra, z)
		if err != nil {
			return 0, 0, 0, err
		}
		lam += lam0
		if !over {
			lam = adjlon(lam)
		}
		return lam, phi, z, nil
	}
}

// forwardProjection maps geodetic radians to projected target coordinates.
func forwardProjection(p *Proj) coordFunc {
	if p.isLatlong || p.isGeocent {
		return nil
	}
	lam0, x0, y0 := p.lam0, p.x0, p.y0
	a, frMeter := p.ellps.A, 1/p.toMeter
	core, over := p.core, p.over
	return func(lam, phi, z float64) (float64, float64, float64, error) {
		// Over-range check.
		t := math.Abs(phi) - halfPi
		if t > eps12 || math.Abs(lam) > 10 {
			return 0, 0, 0, domainErrorf("latitude or longitude out of range")
		}
		if math.Abs(t) <= eps12 {
			phi = math.Copysign(halfPi, phi)
		}
		lam -= lam0
		if !over {
			lam = adjlon(lam)
		}
		x, y, z, err := core.Forward(lam, phi, z)
		if err != nil {
			return 0, 0, 0, err
		}
		return frMeter * (a*x + x0), frMeter * (a*y + y0), z, nil
	}
}

// latlongToRadians converts geographic source input from its boundary
// angular unit to radians.
func latlongToRadians(p *Proj) coordFunc {
	if !p.isLatlong || p.toRadians == 1 {
		return nil
	}
	f := p.toRadians
	return func(x, y, z float64) (float64, float64, float64, error) {
		return x * f, y * f, z, nil
	}
}

// latlongFromRadians converts geographic target output from radians to its
// boundary angular unit.
func latlongFromRadians(p *Proj) coordFunc {
	if !p.isLatlong || p.toRadians == 1 {
		return nil
	}
	f := 1 / p.toRadians
	return func(x, y, z float64) (float64, float64, float64, error) {
		return x * f, y * f, z, nil
	}
}

// primeMeridianShift relocates longitudes between the CRS prime meridian
// and Greenwich. It applies to geographic and projected systems alike, so
// that two lat/long systems with different prime meridians are both
// adjusted.
func primeMeridianShift(p *Proj, inverse bool) coordFunc {
	pm := p.fromGreenwich
	if pm == 0 || p.isGeocent {
		return nil
	}
	if !inverse {
		pm = -pm
	}
	return func(x, y, z float64) (float64, float64, float64, error) {
		return x + pm, y, z, nil
	}
}

// axisAdjust converts between the CRS axis orientation and the interior
// east-north-up convention.
func axisAdjust(p *Proj, inverse bool) coordFunc {
	if p.normalizedAxis() {
		return nil
	}
	axis := p.axis
	if inverse {
		// Normalize: CRS order to enu.
		return func(x, y, z float64) (float64, float64, float64, error) {
			xOut, yOut, zOut := x, y, z
			for i, ax := range axis {
				v := z
				switch i {
				case 0:
					v = x
				case 1:
					v = y
				}
				switch ax {
				case 'e':
					xOut = v
				case 'w':
					xOut = -v
				case 'n':
					yOut = v
				case 's':
					yOut = -v
				case 'u':
					zOut = v
				case 'd':
					zOut = -v
				}
			}
			return xOut, yOut, zOut, nil
		}
	}
	// Denormalize: enu to CRS order.
	return func(x, y, z float64) (float64, float64, float64, error) {
		xOut, yOut, zOut := x, y, z
		for i, ax := range axis {
			var v float64
			switch ax {
			case 'e':
				v = x
			case 'w':
				v = -x
			case 'n':
				v = y
			case 's':
				v = -y
			case 'u':
				v = z
			case 'd':
				v = -z
			}
			switch i {
			case 0:
				xOut = v
			case 1:
				yOut = v
			default:
				zOut = v
			}
		}
		return xOut, yOut, zOut, nil
	}
}
