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

// Albers Equal Area conic, plus the Lambert Equal Area Conic variant.
type aea struct {
	e     float64
	oneEs float64
	ec    float64
	n     float64
	n2    float64
	c     float64
	dd    float64
	rho0  float64
}

const aeaPhi1NIter = 15

// aeaPhi1Inv determines the latitude angle φ1 from the authalic auxiliary.
func aeaPhi1Inv(qs, e, oneEs float64) (float64, error) {
	phi := math.Asin(0.5 * qs)
	if e < eps7 {
		return phi, nil
	}
	for i := aeaPhi1NIter; i > 0; i-- {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := e * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi *
			(qs/oneEs - sinphi/com + 0.5/e*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= eps10 {
			return phi, nil
		}
	}
	return 0, convergenceErrorf("albers latitude iteration did not converge")
}

func newAea(p *Proj, phi1, phi2v float64) (projCore, error) {
	if math.Abs(phi1+phi2v) < eps10 {
		return nil, paramErrorf("conic standard parallels are opposite")
	}

	el := &p.ellps
	sinphi := math.Sin(phi1)
	cosphi := math.Cos(phi1)
	n := sinphi
	secant := math.Abs(phi1-phi2v) >= eps10

	if el.IsEllipsoid() {
		m1 := msfn(sinphi, cosphi, el.Es)
		ml1 := qsfn(sinphi, el.E, el.OneEs)
		if math.IsInf(ml1, 0) {
			return nil, paramErrorf("albers setup failed")
		}
		if secant {
			sinphi2 := math.Sin(phi2v)
			m2 := msfn(sinphi2, math.Cos(phi2v), el.Es)
			ml2 := qsfn(sinphi2, el.E, el.OneEs)
			if math.IsInf(ml2, 0) || ml1 == ml2 {
				return nil, paramErrorf("albers setup failed")
			}
			n = (m1*m1 - m2*m2) / (ml2 - ml1)
		}
		ec := 1 - 0.5*el.OneEs*math.Log((1-el.E)/(1+el.E))/el.E
		c := m1*m1 + n*ml1
		dd := 1 / n
		rho0 := dd * math.Sqrt(c-n*qsfn(math.Sin(p.phi0), el.E, el.OneEs))
		return aea{
			e: el.E, oneEs: el.OneEs, ec: ec,
			n: n, n2: n + n, c: c, dd: dd, rho0: rho0,
		}, nil
	}

	if secant {
		n = 0.5 * (n + math.Sin(phi2v))
	}
	dd := 1 / n
	n2 := n + n
	c := cosphi*cosphi + n2*sinphi
	rho0 := dd * math.Sqrt(c-n2*math.Sin(p.phi0))
	return aea{e: 0, oneEs: 1, ec: 1, n: n, n2: n2, c: c, dd: dd, rho0: rho0}, nil
}

func initAea(p *Proj, params *paramList) (projCore, error) {
	phi1, err := params.angularDefault("lat_1", 0)
	if err != nil {
		return nil, err
	}
	phi2v, err := params.angularDefault("lat_2", 0)
	if err != nil {
		return nil, err
	}
	return newAea(p, phi1, phi2v)
}

func initLeac(p *Proj, params *paramList) (projCore, error) {
	phi1, err := params.angularDefault("lat_1", 0)
	if err != nil {
		return nil, err
	}
	south, err := params.boolOption("south")
	if err != nil {
		return nil, err
	}
	phi2v := halfPi
	if south {
		phi2v = -halfPi
	}
	return newAea(p, phi1, phi2v)
}

func (q aea) isEllipse() bool { return q.e != 0 }

func (q aea) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	rho := q.c
	if q.isEllipse() {
		rho -= q.n * qsfn(math.Sin(phi), q.e, q.oneEs)
	} else {
		rho -= q.n2 * math.Sin(phi)
	}
	if rho < 0 {
		return 0, 0, 0, domainErrorf("albers forward failed")
	}
	rho = q.dd * math.Sqrt(rho)
	sinl, cosl := math.Sincos(lam * q.n)
	return rho * sinl, q.rho0 - rho*cosl, z, nil
}

func (q aea) Inverse(x, y, z float64) (float64, float64, float64, error) {
	yy := q.rho0 - y
	rho := math.Hypot(x, yy)
	if rho == 0 {
		if q.n > 0 {
			return 0, halfPi, z, nil
		}
		return 0, -halfPi, z, nil
	}
	if q.n < 0 {
		rho = -rho
		x = -x
		yy = -yy
	}
	phi := rho / q.dd
	if q.isEllipse() {
		phi = (q.c - phi*phi) / q.n
		if math.Abs(q.ec-math.Abs(phi)) > eps7 {
			var err error
			if phi, err = aeaPhi1Inv(phi, q.e, q.oneEs); err != nil {
				return 0, 0, 0, err
			}
		} else if phi < 0 {
			phi = -halfPi
		} else {
			phi = halfPi
		}
	} else {
		phi = (q.c - phi*phi) / q.n2
		if math.Abs(phi) <= 1 {
			phi = math.Asin(phi)
		} else if phi < 0 {
			phi = -halfPi
		} else {
			phi = halfPi
		}
	}
	return math.Atan2(x, yy) / q.n, phi, z, nil
}
