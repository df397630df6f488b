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

// Lambert Azimuthal Equal Area.

type laeaMode int

const (
	laeaNPole laeaMode = iota
	laeaSPole
	laeaEquit
	laeaObliq
)

func initLaea(p *Proj, _ *paramList) (projCore, error) {
	if p.ellps.IsEllipsoid() {
		return newLaeaEll(p), nil
	}
	return newLaeaSph(p), nil
}

// laeaEll is the ellipsoidal form, working in authalic latitude.
type laeaEll struct {
	mode  laeaMode
	phi0  float64
	e     float64
	oneEs float64
	qp    float64
	apa   [3]float64

	dd, rq       float64
	sinb1, cosb1 float64
	xmf, ymf     float64
}

func newLaeaEll(p *Proj) laeaEll {
	e, oneEs := p.ellps.E, p.ellps.OneEs
	q := laeaEll{
		phi0:  p.phi0,
		e:     e,
		oneEs: oneEs,
		qp:    qsfn(1, e, oneEs),
		apa:   authset(p.ellps.Es),
	}

	t := math.Abs(p.phi0)
	switch {
	case math.Abs(t-halfPi) < eps10:
		if p.phi0 < 0 {
			q.mode = laeaSPole
		} else {
			q.mode = laeaNPole
		}
	case t < eps10:
		q.mode = laeaEquit
		q.rq = math.Sqrt(0.5 * q.qp)
		q.dd = 1 / q.rq
		q.xmf = 1
		q.ymf = 0.5 * q.qp
	default:
		q.mode = laeaObliq
		sinphi, cosphi := math.Sincos(p.phi0)
		q.rq = math.Sqrt(0.5 * q.qp)
		q.sinb1 = qsfn(sinphi, e, oneEs) / q.qp
		q.cosb1 = math.Sqrt(1 - q.sinb1*q.sinb1)
		q.dd = cosphi / (math.Sqrt(1-p.ellps.Es*sinphi*sinphi) * q.rq * q.cosb1)
		q.xmf = q.rq * q.dd
		q.ymf = q.rq / q.dd
	}
	return q
}

func (q laeaEll) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	sinlam, coslam := math.Sincos(lam)
	qv := qsfn(math.Sin(phi), q.e, q.oneEs)

	var x, y float64
	switch q.mode {
	case laeaObliq:
		sinb := qv / q.qp
		cosb := math.Sqrt(1 - sinb*sinb)
		b := 1 + q.sinb1*sinb + q.cosb1*cosb*coslam
		if math.Abs(b) < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		b = math.Sqrt(2 / b)
		x = q.xmf * b * cosb * sinlam
		y = q.ymf * b * (q.cosb1*sinb - q.sinb1*cosb*coslam)
	case laeaEquit:
		sinb := qv / q.qp
		cosb := math.Sqrt(1 - sinb*sinb)
		b := 1 + cosb*coslam
		if math.Abs(b) < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		b = math.Sqrt(2 / b)
		x = q.xmf * b * cosb * sinlam
		y = q.ymf * b * sinb
	case laeaNPole:
		if math.Abs(halfPi+phi) < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		if qq := q.qp - qv; qq >= 0 {
			b := math.Sqrt(qq)
			x = b * sinlam
			y = -b * coslam
		}
	case laeaSPole:
		if math.Abs(halfPi-phi) < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		if qq := q.qp + qv; qq >= 0 {
			b := math.Sqrt(qq)
			x = b * sinlam
			y = b * coslam
		}
	}
	return x, y, z, nil
}

func (q laeaEll) Inverse(x, y, z float64) (float64, float64, float64, error) {
	var ab, xx, yy float64
	switch q.mode {
	case laeaEquit:
		x, y = x/q.dd, y*q.dd
		rho := math.Hypot(x, y)
		if rho < eps10 {
			return 0, q.phi0, z, nil
		}
		sce, cce := math.Sincos(2 * math.Asin(0.5*rho/q.rq))
		ab = y * sce / rho
		xx = x * sce
		yy = rho * cce
	case laeaObliq:
		x, y = x/q.dd, y*q.dd
		rho := math.Hypot(x, y)
		if rho < eps10 {
			return 0, q.phi0, z, nil
		}
		sce, cce := math.Sincos(2 * math.Asin(0.5*rho/q.rq))
		ab = cce*q.sinb1 + y*sce*q.cosb1/rho
		xx = x * sce
		yy = rho*q.cosb1*cce - y*q.sinb1*sce
	default:
		qv := x*x + y*y
		if qv == 0 {
			return 0, q.phi0, z, nil
		}
		ab = 1 - qv/q.qp
		xx = x
		yy = y
		if q.mode == laeaNPole {
			yy = -y
		} else {
			ab = -ab
		}
	}
	return math.Atan2(xx, yy), authlat(math.Asin(ab), q.apa), z, nil
}

// laeaSph is the spherical form.
type laeaSph struct {
	mode         laeaMode
	phi0         float64
	sinb1, cosb1 float64
}

func newLaeaSph(p *Proj) laeaSph {
	q := laeaSph{phi0: p.phi0}
	t := math.Abs(p.phi0)
	switch {
	case math.Abs(t-halfPi) < eps10:
		if p.phi0 < 0 {
			q.mode = laeaSPole
		} else {
			q.mode = laeaNPole
		}
	case t < eps10:
		q.mode = laeaEquit
	default:
		q.mode = laeaObliq
		q.sinb1, q.cosb1 = math.Sincos(p.phi0)
	}
	return q
}

func (q laeaSph) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	coslam := math.Cos(lam)

	switch q.mode {
	case laeaEquit:
		y := 1 + cosphi*coslam
		if y < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		y = math.Sqrt(2 / y)
		return y * cosphi * math.Sin(lam), y * sinphi, z, nil
	case laeaObliq:
		y := 1 + q.sinb1*sinphi + q.cosb1*cosphi*coslam
		if y < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		y = math.Sqrt(2 / y)
		return y * cosphi * math.Sin(lam),
			y * (q.cosb1*sinphi - q.sinb1*cosphi*coslam),
			z, nil
	default:
		if math.Abs(phi+q.phi0) < eps10 {
			return 0, 0, 0, domainErrorf("laea forward singular")
		}
		y := quartPi - phi*0.5
		if q.mode == laeaNPole {
			y = 2 * math.Sin(y)
			return y * math.Sin(lam), y * -coslam, z, nil
		}
		y = 2 * math.Cos(y)
		return y * math.Sin(lam), y * coslam, z, nil
	}
}

func (q laeaSph) Inverse(x, y, z float64) (float64, float64, float64, error) {
	rh := math.Hypot(x, y)
	phi := rh * 0.5
	if phi > 1 {
		return 0, 0, 0, domainErrorf("laea inverse outside domain")
	}
	phi = 2 * math.Asin(phi)

	var lam float64
	switch q.mode {
	case laeaEquit:
		sinz, cosz := math.Sincos(phi)
		if rh <= eps10 {
			phi = 0
		} else {
			phi = math.Asin(y * sinz / rh)
		}
		if yy := cosz * rh; yy != 0 {
			lam = math.Atan2(x*sinz, yy)
		}
	case laeaObliq:
		sinz, cosz := math.Sincos(phi)
		if rh <= eps10 {
			phi = q.phi0
		} else {
			phi = math.Asin(cosz*q.sinb1 + y*sinz*q.cosb1/rh)
		}
		if yy := (cosz - math.Sin(phi)*q.sinb1) * rh; yy != 0 {
			lam = math.Atan2(x*sinz*q.cosb1, yy)
		}
	case laeaNPole:
		phi = halfPi - phi
		lam = math.Atan2(x, -y)
	case laeaSPole:
		phi -= halfPi
		lam = math.Atan2(x, y)
	}
	return lam, phi, z, nil
}
