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

// Mollweide pseudocylindrical and the Wagner IV and V derivatives.
// Spherical only; the ellipsoid is replaced by a sphere of the same
// semimajor axis.
type moll struct {
	cx, cy, cp float64
}

func newMoll(p *Proj, pp float64) (projCore, error) {
	var err error
	if p.ellps, err = sphere(p.ellps.A); err != nil {
		return nil, err
	}
	p2 := pp + pp
	sp := math.Sin(pp)
	cp := p2 + math.Sin(p2)
	r := math.Sqrt(twoPi * sp / cp)
	return moll{cx: 2 * r / math.Pi, cy: r / sp, cp: cp}, nil
}

func initMoll(p *Proj, _ *paramList) (projCore, error) {
	return newMoll(p, halfPi)
}

func initWag4(p *Proj, _ *paramList) (projCore, error) {
	return newMoll(p, math.Pi/3)
}

func initWag5(p *Proj, _ *paramList) (projCore, error) {
	var err error
	if p.ellps, err = sphere(p.ellps.A); err != nil {
		return nil, err
	}
	return moll{cx: 0.90977, cy: 1.65014, cp: 3.00896}, nil
}

const (
	mollNIter = 10
	mollTol   = 1e-7
)

func (q moll) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	k := q.cp * math.Sin(phi)
	i := mollNIter
	for ; i > 0; i-- {
		v := (phi + math.Sin(phi) - k) / (1 + math.Cos(phi))
		phi -= v
		if math.Abs(v) < mollTol {
			break
		}
	}
	if i == 0 {
		phi = math.Copysign(halfPi, phi)
	} else {
		phi *= 0.5
	}
	return q.cx * lam * math.Cos(phi), q.cy * math.Sin(phi), z, nil
}

func (q moll) Inverse(x, y, z float64) (float64, float64, float64, error) {
	phi, err := aasin(y / q.cy)
	if err != nil {
		return 0, 0, 0, err
	}
	lam := x / (q.cx * math.Cos(phi))
	if math.Abs(lam) >= math.Pi {
		return 0, 0, 0, domainErrorf("mollweide inverse outside domain")
	}
	phi += phi
	phi, err = aasin((phi + math.Sin(phi)) / q.cp)
	if err != nil {
		return 0, 0, 0, err
	}
	return lam, phi, z, nil
}
