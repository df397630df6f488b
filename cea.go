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

// Equal Area Cylindrical (Lambert/Behrmann, by lat_ts).
type cea struct {
	isEllps bool
	k0      float64
	e       float64
	oneEs   float64
	qp      float64
	apa     [3]float64
}

func initCea(p *Proj, params *paramList) (projCore, error) {
	k0 := p.k0
	t := 0.0
	if phits, ok, err := params.angular("lat_ts"); err != nil {
		return nil, err
	} else if ok {
		k0 = math.Cos(phits)
		if k0 < 0 {
			return nil, paramErrorf("|lat_ts| must not exceed 90°")
		}
		t = phits
	}

	if p.ellps.IsEllipsoid() {
		sint := math.Sin(t)
		k0 /= math.Sqrt(1 - p.ellps.Es*sint*sint)
		return cea{
			isEllps: true,
			k0:      k0,
			e:       p.ellps.E,
			oneEs:   p.ellps.OneEs,
			qp:      qsfn(1, p.ellps.E, p.ellps.OneEs),
			apa:     authset(p.ellps.Es),
		}, nil
	}
	return cea{k0: k0}, nil
}

func (q cea) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	if q.isEllps {
		return q.k0 * lam, 0.5 * qsfn(math.Sin(phi), q.e, q.oneEs) / q.k0, z, nil
	}
	return q.k0 * lam, math.Sin(phi) / q.k0, z, nil
}

func (q cea) Inverse(x, y, z float64) (float64, float64, float64, error) {
	if q.isEllps {
		return x / q.k0, authlat(math.Asin(2*y*q.k0/q.qp), q.apa), z, nil
	}
	y *= q.k0
	t := math.Abs(y)
	if t-eps10 > 1 {
		return 0, 0, 0, domainErrorf("cea inverse outside domain")
	}
	var phi float64
	if t >= 1 {
		phi = math.Copysign(halfPi, y)
	} else {
		phi = math.Asin(y)
	}
	return x / q.k0, phi, z, nil
}
