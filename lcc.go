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

// Lambert Conformal Conic, one- or two-parallel form.
type lcc struct {
	n      float64
	rho0   float64
	c      float64
	ellips bool
	e      float64
	k0     float64
}

func initLCC(p *Proj, params *paramList) (projCore, error) {
	phi1, err := params.angularDefault("lat_1", 0)
	if err != nil {
		return nil, err
	}
	phi2v, havePhi2, err := params.angular("lat_2")
	if err != nil {
		return nil, err
	}
	if !havePhi2 {
		phi2v = phi1
		if !params.has("lat_0") {
			p.phi0 = phi1
		}
	}

	// Standard parallels may not be equal and on opposite sides of the
	// equator.
	if math.Abs(phi1+phi2v) < eps10 {
		return nil, paramErrorf("conic standard parallels are opposite")
	}

	phi0 := p.phi0
	sinphi := math.Sin(phi1)
	cosphi := math.Cos(phi1)
	secant := math.Abs(phi1-phi2v) >= eps10
	el := &p.ellps
	ellips := el.Es != 0

	var n, c, rho0 float64
	if ellips {
		m1 := msfn(sinphi, cosphi, el.Es)
		ml1 := tsfn(phi1, sinphi, el.E)
		if secant {
			sinphi2 := math.Sin(phi2v)
			n = math.Log(m1/msfn(sinphi2, math.Cos(phi2v), el.Es)) /
				math.Log(ml1/tsfn(phi2v, sinphi2, el.E))
		} else {
			n = sinphi
		}
		c = m1 * math.Pow(ml1, -n) / n
		if math.Abs(math.Abs(phi0)-halfPi) < eps10 {
			rho0 = 0
		} else {
			rho0 = c * math.Pow(tsfn(phi0, math.Sin(phi0), el.E), n)
		}
	} else {
		if secant {
			n = math.Log(cosphi/math.Cos(phi2v)) /
				math.Log(math.Tan(quartPi+0.5*phi2v)/math.Tan(quartPi+0.5*phi1))
		} else {
			n = sinphi
		}
		c = cosphi * math.Pow(math.Tan(quartPi+0.5*phi1), n) / n
		if math.Abs(math.Abs(phi0)-halfPi) < eps10 {
			rho0 = 0
		} else {
			rho0 = c * math.Pow(math.Tan(quartPi+0.5*phi0), -n)
		}
	}

	return lcc{n: n, rho0: rho0, c: c, ellips: ellips, e: el.E, k0: p.k0}, nil
}

func (q lcc) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	var rho float64
	if math.Abs(math.Abs(phi)-halfPi) < eps10 {
		if phi*q.n <= 0 {
			return 0, 0, 0, domainErrorf("latitude at the far pole")
		}
	} else if q.ellips {
		rho = q.c * math.Pow(tsfn(phi, math.Sin(phi), q.e), q.n)
	} else {
		rho = q.c * math.Pow(math.Tan(quartPi+0.5*phi), -q.n)
	}
	lam *= q.n
	return q.k0 * (rho * math.Sin(lam)),
		q.k0 * (q.rho0 - rho*math.Cos(lam)),
		z, nil
}

func (q lcc) Inverse(x, y, z float64) (float64, float64, float64, error) {
	x /= q.k0
	y /= q.k0
	y = q.rho0 - y

	rho := math.Hypot(x, y)
	if rho == 0 {
		if q.n > 0 {
			return 0, halfPi, z, nil
		}
		return 0, -halfPi, z, nil
	}
	// The sign of n restores the latitude hemisphere.
	if q.n < 0 {
		rho = -rho
		x = -x
		y = -y
	}
	var phi float64
	var err error
	if q.ellips {
		phi, err = phi2(math.Pow(rho/q.c, 1/q.n), q.e)
		if err != nil {
			return 0, 0, 0, err
		}
	} else {
		phi = 2*math.Atan(math.Pow(q.c/rho, 1/q.n)) - halfPi
	}
	return math.Atan2(x, y) / q.n, phi, z, nil
}
