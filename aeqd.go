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

import (
	"math"

	"github.com/tidwall/geodesic"
)

// Azimuthal Equidistant. The oblique and equatorial ellipsoidal aspects
// need the direct and inverse geodesic problem, which is delegated to the
// geodesic solver; polar aspects use the meridional distance series. The
// Guam elliptical variant is selected with +guam.

const aeqdTol = 1.0e-14

type aeqdMode int

const (
	aeqdNPole aeqdMode = iota
	aeqdSPole
	aeqdObliq
	aeqdEquit
)

func aeqdModeOf(phi0 float64) (aeqdMode, float64, float64) {
	switch {
	case math.Abs(math.Abs(phi0)-halfPi) < eps10:
		if phi0 < 0 {
			return aeqdSPole, -1, 0
		}
		return aeqdNPole, 1, 0
	case math.Abs(phi0) < eps10:
		return aeqdEquit, 0, 1
	default:
		sinph0, cosph0 := math.Sincos(phi0)
		return aeqdObliq, sinph0, cosph0
	}
}

func initAeqd(p *Proj, params *paramList) (projCore, error) {
	guam, err := params.boolOption("guam")
	if err != nil {
		return nil, err
	}
	if p.ellps.IsEllipsoid() && guam {
		return newAeqdGuam(p), nil
	}

	mode, sinph0, cosph0 := aeqdModeOf(p.phi0)
	switch {
	case mode == aeqdNPole || mode == aeqdSPole:
		if p.ellps.IsSphere() {
			return aeqdPolarSph{phi0: p.phi0, north: mode == aeqdNPole}, nil
		}
		en := meridionalDistCoefs(p.ellps.Es)
		mp := mlfn(halfPi, 1, 0, en)
		if mode == aeqdSPole {
			mp = mlfn(-halfPi, -1, 0, en)
		}
		return aeqdPolarEll{
			phi0: p.phi0, north: mode == aeqdNPole,
			es: p.ellps.Es, mp: mp, en: en,
		}, nil
	default:
		return aeqdObliqEq{
			sphere: p.ellps.IsSphere(),
			phi0:   p.phi0,
			sinph0: sinph0,
			cosph0: cosph0,
			equit:  mode == aeqdEquit,
			g:      geodesic.NewEllipsoid(1, p.ellps.F),
		}, nil
	}
}

// Polar spherical aspect.
type aeqdPolarSph struct {
	phi0  float64
	north bool
}

func (q aeqdPolarSph) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	coslam := math.Cos(lam)
	if q.north {
		phi = -phi
		coslam = -coslam
	}
	if math.Abs(phi-halfPi) < eps10 {
		return 0, 0, 0, domainErrorf("aeqd forward at the antipodal pole")
	}
	yy := halfPi + phi
	return yy * math.Sin(lam), yy * coslam, z, nil
}

func (q aeqdPolarSph) Inverse(x, y, z float64) (float64, float64, float64, error) {
	crh := math.Hypot(x, y)
	if crh < eps10 {
		return 0, q.phi0, z, nil
	}
	if crh > math.Pi {
		if crh-eps10 > math.Pi {
			return 0, 0, 0, domainErrorf("aeqd inverse outside domain")
		}
		crh = math.Pi
	}
	if q.north {
		return math.Atan2(x, -y), halfPi - crh, z, nil
	}
	return math.Atan2(x, y), crh - halfPi, z, nil
}

// Polar ellipsoidal aspect, via meridional distances.
type aeqdPolarEll struct {
	phi0  float64
	north bool
	es    float64
	mp    float64
	en    enfn
}

func (q aeqdPolarEll) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	coslam := math.Cos(lam)
	if q.north {
		coslam = -coslam
	}
	rho := math.Abs(q.mp - mlfn(phi, math.Sin(phi), math.Cos(phi), q.en))
	return rho * math.Sin(lam), rho * coslam, z, nil
}

func (q aeqdPolarEll) Inverse(x, y, z float64) (float64, float64, float64, error) {
	s12 := math.Hypot(x, y)
	if s12 < eps10 {
		return 0, q.phi0, z, nil
	}
	if q.north {
		phi, err := invMlfn(q.mp-s12, q.es, q.en)
		if err != nil {
			return 0, 0, 0, err
		}
		return math.Atan2(x, -y), phi, z, nil
	}
	phi, err := invMlfn(q.mp+s12, q.es, q.en)
	if err != nil {
		return 0, 0, 0, err
	}
	return math.Atan2(x, y), phi, z, nil
}

// Oblique and equatorial aspects. The ellipsoidal form solves the geodesic
// problem on an ellipsoid with unit semimajor axis, so distances come out
// pre-scaled for the unit-ellipsoid contract.
type aeqdObliqEq struct {
	sphere bool
	phi0   float64
	sinph0 float64
	cosph0 float64
	equit  bool
	g      *geodesic.Ellipsoid
}

func (q aeqdObliqEq) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	if q.sphere {
		return q.sForward(lam, phi, z)
	}
	return q.eForward(lam, phi, z)
}

func (q aeqdObliqEq) Inverse(x, y, z float64) (float64, float64, float64, error) {
	if q.sphere {
		return q.sInverse(x, y, z)
	}
	return q.eInverse(x, y, z)
}

func (q aeqdObliqEq) sForward(lam, phi, z float64) (float64, float64, float64, error) {
	cosphi := math.Cos(phi)
	coslam := math.Cos(lam)
	if q.equit {
		y := cosphi * coslam
		if math.Abs(math.Abs(y)-1) < aeqdTol {
			if y < 0 {
				return 0, 0, 0, domainErrorf("aeqd forward at the antipode")
			}
			return q.eForward(lam, phi, z)
		}
		y = math.Acos(y)
		y /= math.Sin(y)
		return y * cosphi * math.Sin(lam), y * math.Sin(phi), z, nil
	}

	sinphi := math.Sin(phi)
	cosphiCoslam := cosphi * coslam
	y := q.sinph0*sinphi + q.cosph0*cosphiCoslam
	if math.Abs(math.Abs(y)-1) < aeqdTol {
		if y < 0 {
			return 0, 0, 0, domainErrorf("aeqd forward at the antipode")
		}
		return q.eForward(lam, phi, z)
	}
	y = math.Acos(y)
	y /= math.Sin(y)
	return y * cosphi * math.Sin(lam),
		y * (q.cosph0*sinphi - q.sinph0*cosphiCoslam),
		z, nil
}

func (q aeqdObliqEq) sInverse(x, y, z float64) (float64, float64, float64, error) {
	crh := math.Hypot(x, y)
	if crh > math.Pi {
		if crh-eps10 > math.Pi {
			return 0, 0, 0, domainErrorf("aeqd inverse outside domain")
		}
		crh = math.Pi
	} else if crh < eps10 {
		return 0, q.phi0, z, nil
	}

	sinc, cosc := math.Sincos(crh)
	var phi, xx, yy float64
	var err error
	if q.equit {
		if phi, err = aasin(y * sinc / crh); err != nil {
			return 0, 0, 0, err
		}
		xx = x * sinc
		yy = cosc * crh
	} else {
		if phi, err = aasin(cosc*q.sinph0 + y*sinc*q.cosph0/crh); err != nil {
			return 0, 0, 0, err
		}
		yy = (cosc - q.sinph0*math.Sin(phi)) * crh
		xx = x * sinc * q.cosph0
	}
	lam := 0.0
	if yy != 0 {
		lam = math.Atan2(xx, yy)
	}
	return lam, phi, z, nil
}

func (q aeqdObliqEq) eForward(lam, phi, z float64) (float64, float64, float64, error) {
	if math.Abs(lam) < eps10 && math.Abs(phi-q.phi0) < eps10 {
		return 0, 0, z, nil
	}
	var s12, azi1 float64
	q.g.Inverse(q.phi0*radToDeg, 0, phi*radToDeg, lam*radToDeg, &s12, &azi1, nil)
	azi1 *= degToRad
	return s12 * math.Sin(azi1), s12 * math.Cos(azi1), z, nil
}

func (q aeqdObliqEq) eInverse(x, y, z float64) (float64, float64, float64, error) {
	s12 := math.Hypot(x, y)
	if s12 < eps10 {
		return 0, q.phi0, z, nil
	}
	var lat2, lon2 float64
	q.g.Direct(q.phi0*radToDeg, 0, math.Atan2(x, y)*radToDeg, s12, &lat2, &lon2, nil)
	return lon2 * degToRad, lat2 * degToRad, z, nil
}

// Guam elliptical variant (EPSG:3993). Valid over a small bounding box
// around Guam.
type aeqdGuam struct {
	phi0 float64
	e    float64
	es   float64
	m1   float64
	en   enfn
}

func newAeqdGuam(p *Proj) aeqdGuam {
	_, sinph0, cosph0 := aeqdModeOf(p.phi0)
	en := meridionalDistCoefs(p.ellps.Es)
	return aeqdGuam{
		phi0: p.phi0,
		e:    p.ellps.E,
		es:   p.ellps.Es,
		m1:   mlfn(p.phi0, sinph0, cosph0, en),
		en:   en,
	}
}

func (q aeqdGuam) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	t := 1 / math.Sqrt(1-q.es*sinphi*sinphi)
	return lam * cosphi * t,
		mlfn(phi, sinphi, cosphi, q.en) - q.m1 + 0.5*lam*lam*cosphi*sinphi*t,
		z, nil
}

func (q aeqdGuam) Inverse(x, y, z float64) (float64, float64, float64, error) {
	x2 := 0.5 * x * x
	phi := q.phi0
	t := 0.0
	for i := 0; i < 3; i++ {
		t = q.e * math.Sin(phi)
		t = math.Sqrt(1 - t*t)
		var err error
		phi, err = invMlfn(q.m1+y-x2*math.Tan(phi)*t, q.es, q.en)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return x * t / math.Cos(phi), phi, z, nil
}
