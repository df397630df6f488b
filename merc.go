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

// Mercator, with the Web Mercator variant fixed to the spherical formulas.
type merc struct {
	isEllps bool
	k0      float64
	e       float64
}

func initMerc(p *Proj, params *paramList) (projCore, error) {
	phits, havePhits, err := params.angular("lat_ts")
	if err != nil {
		return nil, err
	}
	if havePhits && math.Abs(phits) >= halfPi {
		return nil, paramErrorf("lat_ts must be smaller than 90°")
	}

	if p.ellps.IsEllipsoid() {
		if havePhits {
			p.k0 = msfn(math.Sin(phits), math.Cos(phits), p.ellps.Es)
		}
	} else if havePhits {
		p.k0 = math.Cos(phits)
	}

	return merc{isEllps: p.ellps.IsEllipsoid(), k0: p.k0, e: p.ellps.E}, nil
}

func initWebmerc(p *Proj, _ *paramList) (projCore, error) {
	p.k0 = 1
	return merc{isEllps: false, k0: 1, e: p.ellps.E}, nil
}

func (q merc) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	if math.Abs(math.Abs(phi)-halfPi) <= eps10 {
		return 0, 0, 0, domainErrorf("mercator is singular at the poles")
	}
	if q.isEllps {
		sphi := math.Sin(phi)
		cphi := math.Cos(phi)
		return q.k0 * lam,
			q.k0 * (asinh(sphi/cphi) - q.e*math.Atanh(q.e*sphi)),
			z, nil
	}
	return q.k0 * lam, q.k0 * asinh(math.Tan(phi)), z, nil
}

func (q merc) Inverse(x, y, z float64) (float64, float64, float64, error) {
	if q.isEllps {
		phi, err := phi2(math.Exp(-y/q.k0), q.e)
		if err != nil {
			return 0, 0, 0, err
		}
		return x / q.k0, phi, z, nil
	}
	return x / q.k0, math.Atan(math.Sinh(y / q.k0)), z, nil
}
