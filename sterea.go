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

// Oblique Stereographic Alternative: the Gauss double projection — map the
// ellipsoid onto a conformal sphere, then apply the ordinary stereographic
// projection.
type sterea struct {
	k0    float64
	phic0 float64
	cosc0 float64
	sinc0 float64
	r2    float64
	en    gaussState
}

func initSterea(p *Proj, _ *paramList) (projCore, error) {
	en, phic0, r, err := gaussIni(p.ellps.E, p.phi0)
	if err != nil {
		return nil, err
	}
	sinc0, cosc0 := math.Sincos(phic0)
	return sterea{
		k0: p.k0, phic0: phic0,
		cosc0: cosc0, sinc0: sinc0,
		r2: 2 * r, en: en,
	}, nil
}

func (q sterea) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	lam, phi = gauss(lam, phi, &q.en)
	sinc, cosc := math.Sincos(phi)
	cosl := math.Cos(lam)
	k := q.k0 * q.r2 / (1 + q.sinc0*sinc + q.cosc0*cosc*cosl)
	return k * cosc * math.Sin(lam),
		k * (q.cosc0*sinc - q.sinc0*cosc*cosl),
		z, nil
}

func (q sterea) Inverse(x, y, z float64) (float64, float64, float64, error) {
	x /= q.k0
	y /= q.k0
	var lam, phi float64
	var err error
	if rho := math.Hypot(x, y); rho != 0 {
		c := 2 * math.Atan2(rho, q.r2)
		sinc, cosc := math.Sincos(c)
		lam, phi, err = invGauss(
			math.Atan2(x*sinc, rho*q.cosc0*cosc-y*q.sinc0*sinc),
			math.Asin(cosc*q.sinc0+y*sinc*q.cosc0/rho),
			&q.en)
	} else {
		lam, phi, err = invGauss(0, q.phic0, &q.en)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	return lam, phi, z, nil
}
