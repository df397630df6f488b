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

// Stereographic (azimuthal), spherical and ellipsoidal, with the Universal
// Polar Stereographic variant.

type stereMode int

const (
	stereSPole stereMode = iota
	stereNPole
	stereObliq
	stereEquit
)

type stere struct {
	mode  stereMode
	e     float64
	phi0  float64
	sinx1 float64
	cosx1 float64
	akm1  float64
}

func ssfn(phit, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(halfPi+phit)) *
		math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}

func initStere(p *Proj, params *paramList) (projCore, error) {
	phits, err := params.angularDefault("lat_ts", halfPi)
	if err != nil {
		return nil, err
	}
	return newStere(p, phits)
}

// Universal Polar Stereographic: polar aspect with k₀ = 0.994 and
// 2,000,000 m false offsets. Ellipsoidal only.
func initUPS(p *Proj, params *paramList) (projCore, error) {
	south, err := params.boolOption("south")
	if err != nil {
		return nil, err
	}
	p.phi0 = halfPi
	if south {
		p.phi0 = -halfPi
	}
	if p.ellps.IsSphere() {
		return nil, paramErrorf("ups requires an ellipsoid")
	}
	p.k0 = 0.994
	p.x0 = 2000000
	p.y0 = 2000000
	p.lam0 = 0
	return newStere(p, halfPi)
}

func newStere(p *Proj, phits float64) (projCore, error) {
	t := math.Abs(p.phi0)
	var mode stereMode
	switch {
	case math.Abs(t-halfPi) < eps10:
		if p.phi0 < 0 {
			mode = stereSPole
		} else {
			mode = stereNPole
		}
	case t > eps10:
		mode = stereObliq
	default:
		mode = stereEquit
	}
	phits = math.Abs(phits)

	var sinx1, cosx1, akm1 float64
	el := &p.ellps
	if el.IsEllipsoid() {
		ecc := el.E
		switch mode {
		case stereNPole, stereSPole:
			if math.Abs(phits-halfPi) < eps10 {
				akm1 = 2 * p.k0 /
					math.Sqrt(math.Pow(1+ecc, 1+ecc)*math.Pow(1-ecc, 1-ecc))
			} else {
				s := math.Sin(phits)
				t := s * ecc
				akm1 = math.Cos(phits) / tsfn(phits, s, ecc) / math.Sqrt(1-t*t)
			}
		default:
			t := math.Sin(p.phi0)
			x := 2*math.Atan(ssfn(p.phi0, t, ecc)) - halfPi
			sinx1, cosx1 = math.Sincos(x)
			t *= ecc
			akm1 = 2 * p.k0 * math.Cos(p.phi0) / math.Sqrt(1-t*t)
		}
	} else {
		switch mode {
		case stereEquit:
			akm1 = 2 * p.k0
		case stereObliq:
			sinx1, cosx1 = math.Sincos(p.phi0)
			akm1 = 2 * p.k0
		default:
			if math.Abs(phits-halfPi) >= eps10 {
				akm1 = math.Cos(phits) / math.Tan(quartPi-0.5*phits)
			} else {
				akm1 = 2 * p.k0
			}
		}
	}

	return stere{
		mode: mode, e: el.E, phi0: p.phi0,
		sinx1: sinx1, cosx1: cosx1, akm1: akm1,
	}, nil
}

func (q stere) isEllipsoid() bool { return q.e != 0 }

func (q stere) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	if q.isEllipsoid() {
		return q.eForward(lam, phi, z)
	}
	return q.sForward(lam, phi, z)
}

func (q stere) Inverse(x, y, z float64) (float64, float64, float64, error) {
	if q.isEllipsoid() {
		return q.eInverse(x, y, z)
	}
	return q.sInverse(x, y, z)
}

func (q stere) eForward(lam, phi, z float64) (float64, float64, float64, error) {
	sinlam, coslam := math.Sincos(lam)
	sinphi := math.Sin(phi)

	var x, y float64
	switch q.mode {
	case stereObliq:
		xt := 2*math.Atan(ssfn(phi, sinphi, q.e)) - halfPi
		sinx, cosx := math.Sincos(xt)
		denom := q.cosx1 * (1 + q.sinx1*sinx + q.cosx1*cosx*coslam)
		if denom == 0 {
			return 0, 0, 0, domainErrorf("stereographic forward singular")
		}
		a := q.akm1 / denom
		x = a * cosx
		y = a * (q.cosx1*sinx - q.sinx1*cosx*coslam)
	case stereEquit:
		xt := 2*math.Atan(ssfn(phi, sinphi, q.e)) - halfPi
		sinx, cosx := math.Sincos(xt)
		denom := 1 + cosx*coslam
		if denom == 0 {
			return 0, 0, 0, domainErrorf("stereographic forward singular")
		}
		a := q.akm1 / denom
		x = a * cosx
		y = a * sinx
	case stereSPole:
		if math.Abs(math.Abs(phi)-halfPi) >= 1e-15 {
			x = q.akm1 * tsfn(-phi, -sinphi, q.e)
			y = x * coslam
		}
	case stereNPole:
		if math.Abs(math.Abs(phi)-halfPi) >= 1e-15 {
			x = q.akm1 * tsfn(phi, sinphi, q.e)
			y = -x * coslam
		}
	}
	return x * sinlam, y, z, nil
}

const stereEInvNIter = 8

func (q stere) eInverse(x, y, z float64) (float64, float64, float64, error) {
	rho := math.Hypot(x, y)

	var halfpi, halfe, tp, phiL, xx, yy float64
	switch q.mode {
	case stereObliq, stereEquit:
		sinphi, cosphi := math.Sincos(2 * math.Atan2(rho*q.cosx1, q.akm1))
		if rho == 0 {
			phiL = math.Asin(cosphi * q.sinx1)
		} else {
			phiL = math.Asin(cosphi*q.sinx1 + y*sinphi*q.cosx1/rho)
		}
		tp = math.Tan(0.5 * (halfPi + phiL))
		halfpi = halfPi
		halfe = 0.5 * q.e
		xx = x * sinphi
		yy = rho*q.cosx1*cosphi - y*q.sinx1*sinphi
	default:
		tp = -rho / q.akm1
		phiL = halfPi - 2*math.Atan(tp)
		halfpi = -halfPi
		halfe = -0.5 * q.e
		xx = x
		yy = y
		if q.mode == stereNPole {
			yy = -y
		}
	}

	for i := 0; i < stereEInvNIter; i++ {
		sinphi := q.e * math.Sin(phiL)
		phi := 2*math.Atan(tp*math.Pow((1+sinphi)/(1-sinphi), halfe)) - halfpi
		if math.Abs(phiL-phi) < eps10 {
			if q.mode == stereSPole {
				phi = -phi
			}
			lam := 0.0
			if xx != 0 || yy != 0 {
				lam = math.Atan2(xx, yy)
			}
			return lam, phi, z, nil
		}
		phiL = phi
	}
	return 0, 0, 0, convergenceErrorf("stereographic inverse did not converge")
}

func (q stere) sForward(lam, phi, z float64) (float64, float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	sinlam, coslam := math.Sincos(lam)

	var x, y float64
	switch q.mode {
	case stereEquit, stereObliq:
		var fac float64
		if q.mode == stereEquit {
			y = 1 + cosphi*coslam
			fac = sinphi
		} else {
			y = 1 + q.sinx1*sinphi + q.cosx1*cosphi*coslam
			fac = q.cosx1*sinphi - q.sinx1*cosphi*coslam
		}
		if y <= eps10 {
			return 0, 0, 0, domainErrorf("stereographic forward singular")
		}
		y = q.akm1 / y
		x = y * cosphi * sinlam
		y *= fac
	default:
		if q.mode == stereNPole {
			phi = -phi
			coslam = -coslam
		}
		if math.Abs(phi-halfPi) < 1.0e-8 {
			return 0, 0, 0, domainErrorf("stereographic forward singular")
		}
		y = q.akm1 * math.Tan(quartPi+0.5*phi)
		x = y * sinlam
		y *= coslam
	}
	return x, y, z, nil
}

func (q stere) sInverse(x, y, z float64) (float64, float64, float64, error) {
	rh := math.Hypot(x, y)
	sinc, cosc := math.Sincos(2 * math.Atan(rh/q.akm1))

	var lam, phi float64
	switch q.mode {
	case stereEquit:
		if math.Abs(rh) > eps10 {
			phi = math.Asin(y * sinc / rh)
		}
		if cosc != 0 || x != 0 {
			lam = math.Atan2(x*sinc, cosc*rh)
		}
	case stereObliq:
		if math.Abs(rh) <= eps10 {
			phi = q.phi0
		} else {
			phi = math.Asin(cosc*q.sinx1 + y*sinc*q.cosx1/rh)
		}
		if c := cosc - q.sinx1*math.Sin(phi); c != 0 || x != 0 {
			lam = math.Atan2(x*sinc*q.cosx1, c*rh)
		}
	case stereNPole:
		if x != 0 || y != 0 {
			lam = math.Atan2(x, -y)
		}
		if math.Abs(rh) <= eps10 {
			phi = q.phi0
		} else {
			phi = math.Asin(cosc)
		}
	case stereSPole:
		if x != 0 || y != 0 {
			lam = math.Atan2(x, y)
		}
		if math.Abs(rh) <= eps10 {
			phi = q.phi0
		} else {
			phi = math.Asin(-cosc)
		}
	}
	return lam, phi, z, nil
}
