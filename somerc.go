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

// Swiss Oblique Mercator (for CH1903).
type somerc struct {
	e      float64
	rOneEs float64
	k      float64
	c      float64
	hlfE   float64
	kR     float64
	cosp0  float64
	sinp0  float64
}

func initSomerc(p *Proj, _ *paramList) (projCore, error) {
	el := &p.ellps
	hlfE := 0.5 * el.E
	sinphi, cosphi := math.Sincos(p.phi0)

	cp := cosphi * cosphi
	c := math.Sqrt(1 + el.Es*cp*cp*el.ROneEs)
	sinp0 := sinphi / c
	phip0, err := aasin(sinp0)
	if err != nil {
		return nil, err
	}
	cosp0 := math.Cos(phip0)
	sp := sinphi * el.E
	k := math.Log(math.Tan(quartPi+0.5*phip0)) -
		c*(math.Log(math.Tan(quartPi+0.5*p.phi0))-hlfE*math.Log((1+sp)/(1-sp)))
	kR := p.k0 * math.Sqrt(el.OneEs) / (1 - sp*sp)
	return somerc{
		e: el.E, rOneEs: el.ROneEs,
		k: k, c: c, hlfE: hlfE, kR: kR,
		cosp0: cosp0, sinp0: sinp0,
	}, nil
}

func (q somerc) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	sp := q.e * math.Sin(phi)
	phip := 2*math.Atan(math.Exp(q.c*(math.Log(math.Tan(quartPi+0.5*phi))-
		q.hlfE*math.Log((1+sp)/(1-sp)))+q.k)) - halfPi

	lamp := q.c * lam
	cp := math.Cos(phip)
	phipp, err := aasin(q.cosp0*math.Sin(phip) - q.sinp0*cp*math.Cos(lamp))
	if err != nil {
		return 0, 0, 0, err
	}
	lampp, err := aasin(cp * math.Sin(lamp) / math.Cos(phipp))
	if err != nil {
		return 0, 0, 0, err
	}
	return q.kR * lampp,
		q.kR * math.Log(math.Tan(quartPi+0.5*phipp)),
		z, nil
}

const somercNIter = 6

func (q somerc) Inverse(x, y, z float64) (float64, float64, float64, error) {
	phipp := 2 * (math.Atan(math.Exp(y/q.kR)) - quartPi)
	lampp := x / q.kR
	cp := math.Cos(phipp)
	phip, err := aasin(q.cosp0*math.Sin(phipp) + q.sinp0*cp*math.Cos(lampp))
	if err != nil {
		return 0, 0, 0, err
	}
	lamp, err := aasin(cp * math.Sin(lampp) / math.Cos(phip))
	if err != nil {
		return 0, 0, 0, err
	}
	con := (q.k - math.Log(math.Tan(quartPi+0.5*phip))) / q.c

	for i := somercNIter; i > 0; i-- {
		esp := q.e * math.Sin(phip)
		delp := (con + math.Log(math.Tan(quartPi+0.5*phip)) -
			q.hlfE*math.Log((1+esp)/(1-esp))) *
			(1 - esp*esp) * math.Cos(phip) * q.rOneEs
		phip -= delp
		if math.Abs(delp) < eps10 {
			return lamp / q.c, phip, z, nil
		}
	}
	return 0, 0, 0, convergenceErrorf("swiss oblique mercator inverse did not converge")
}
