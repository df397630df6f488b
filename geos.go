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

// Geostationary Satellite View. +h gives the height of the view point above
// the ellipsoid (required); +sweep selects the sweep angle axis of the
// viewing instrument, "x" or "y" (default "y"). Points not visible from the
// satellite fail.
type geos struct {
	isEllps     bool
	radiusP     float64
	radiusP2    float64
	radiusPInv2 float64
	radiusG     float64
	radiusG1    float64
	c           float64
	flip        bool // sweep=x
}

func initGeos(p *Proj, params *paramList) (projCore, error) {
	h, ok, err := params.f64("h")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, paramErrorf("geos requires parameter h")
	}

	flip := false
	if sweep, ok, err := params.str("sweep"); err != nil {
		return nil, err
	} else if ok {
		switch sweep {
		case "x":
			flip = true
		case "y":
		default:
			return nil, paramErrorf("sweep must be x or y, got %q", sweep)
		}
	}

	radiusG1 := h / p.ellps.A
	if radiusG1 <= 0 || radiusG1 > 1e10 {
		return nil, paramErrorf("invalid value for h")
	}
	radiusG := 1 + radiusG1
	c := radiusG*radiusG - 1

	q := geos{
		radiusG:  radiusG,
		radiusG1: radiusG1,
		c:        c,
		flip:     flip,
	}
	if p.ellps.IsEllipsoid() {
		q.isEllps = true
		q.radiusP = math.Sqrt(p.ellps.OneEs)
		q.radiusP2 = p.ellps.OneEs
		q.radiusPInv2 = p.ellps.ROneEs
	} else {
		q.radiusP = 1
		q.radiusP2 = 1
		q.radiusPInv2 = 1
	}
	return q, nil
}

func (q geos) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	if q.isEllps {
		return q.eForward(lam, phi, z)
	}
	return q.sForward(lam, phi, z)
}

func (q geos) Inverse(x, y, z float64) (float64, float64, float64, error) {
	if q.isEllps {
		return q.eInverse(x, y, z)
	}
	return q.sInverse(x, y, z)
}

func (q geos) eForward(lam, phi, z float64) (float64, float64, float64, error) {
	// Geocentric latitude of the point.
	phie := math.Atan(q.radiusP2 * math.Tan(phi))

	// Components of the vector from the satellite to the surface point.
	cosPhi := math.Cos(phie)
	sinPhi := math.Sin(phie)
	r := q.radiusP / math.Hypot(q.radiusP*cosPhi, sinPhi)
	vx := r * math.Cos(lam) * cosPhi
	vy := r * math.Sin(lam) * cosPhi
	vz := r * sinPhi

	// Visibility check.
	if (q.radiusG-vx)*vx-vy*vy-vz*vz*q.radiusPInv2 < 0 {
		return 0, 0, 0, domainErrorf("point not visible from satellite")
	}

	// View angles from the satellite.
	tmp := q.radiusG - vx
	if q.flip {
		return q.radiusG1 * math.Atan(vy/math.Hypot(vz, tmp)),
			q.radiusG1 * math.Atan(vz/tmp),
			z, nil
	}
	return q.radiusG1 * math.Atan(vy/tmp),
		q.radiusG1 * math.Atan(vz/math.Hypot(vy, tmp)),
		z, nil
}

func (q geos) eInverse(x, y, z float64) (float64, float64, float64, error) {
	// Components of the vector from the satellite to the point.
	vx := -1.0
	var vy, vz float64
	if q.flip {
		vz = math.Tan(y / q.radiusG1)
		vy = math.Tan(x/q.radiusG1) * math.Hypot(1, vz)
	} else {
		vy = math.Tan(x / q.radiusG1)
		vz = math.Tan(y/q.radiusG1) * math.Hypot(1, vy)
	}

	// Terms of the quadratic and its determinant.
	aa := vz / q.radiusP
	aa = vy*vy + aa*aa + vx*vx
	b := 2 * q.radiusG * vx
	det := b*b - 4*aa*q.c
	if det < 0 {
		return 0, 0, 0, domainErrorf("point not visible from satellite")
	}

	k := (-b - math.Sqrt(det)) / (2 * aa)
	vx = q.radiusG + k*vx
	vy *= k
	vz *= k

	lam := math.Atan2(vy, vx)
	return lam, math.Atan(q.radiusPInv2 * math.Tan(math.Atan(vz*math.Cos(lam)/vx))), z, nil
}

func (q geos) sForward(lam, phi, z float64) (float64, float64, float64, error) {
	if lam < -halfPi || lam > halfPi {
		return 0, 0, 0, domainErrorf("longitude too far from central meridian")
	}

	cosphi := math.Cos(phi)
	vx := cosphi * math.Cos(lam)
	vy := cosphi * math.Sin(lam)
	vz := math.Sin(phi)

	// Visibility check.
	if (q.radiusG-vx)*vx-vy*vy-vz*vz < 0 {
		return 0, 0, 0, domainErrorf("point not visible from satellite")
	}
	tmp := q.radiusG - vx

	if q.flip {
		return q.radiusG1 * math.Atan(vy/math.Hypot(vz, tmp)),
			q.radiusG1 * math.Atan(vz/tmp),
			z, nil
	}
	return q.radiusG1 * math.Atan(vy/tmp),
		q.radiusG1 * math.Atan(vz/math.Hypot(vy, tmp)),
		z, nil
}

func (q geos) sInverse(x, y, z float64) (float64, float64, float64, error) {
	vx := -1.0
	var vy, vz float64
	if q.flip {
		vz = math.Tan(y / q.radiusG1)
		vy = math.Tan(x/q.radiusG1) * math.Sqrt(1+vz*vz)
	} else {
		vy = math.Tan(x / q.radiusG1)
		vz = math.Tan(y/q.radiusG1) * math.Sqrt(1+vy*vy)
	}

	a := vy*vy + vz*vz + vx*vx
	b := 2 * q.radiusG * vx
	det := b*b - 4*a*q.c
	if det < 0 {
		return 0, 0, 0, domainErrorf("point not visible from satellite")
	}

	k := (-b - math.Sqrt(det)) / (2 * a)
	vx = q.radiusG + k*vx
	vy *= k
	vz *= k

	lam := math.Atan2(vy, vx)
	return lam, math.Atan(vz * math.Cos(lam) / vx), z, nil
}
