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

// Transverse Mercator.
//
// +proj=tmerc selects the Poder/Engsager algorithm (etmerc) on ellipsoids
// and the Evenden/Snyder algorithm on spheres; +approx forces the latter.
// This file holds the Evenden/Snyder forms.

func initTmerc(p *Proj, params *paramList) (projCore, error) {
	if math.Abs(p.phi0) > halfPi {
		return nil, paramErrorf("|lat_0| must not exceed 90°")
	}
	approx, err := params.boolOption("approx")
	if err != nil {
		return nil, err
	}
	if p.ellps.IsSphere() || approx {
		return newEstmerc(p), nil
	}
	switch algo, _, err := params.str("algo"); {
	case err != nil:
		return nil, err
	case algo == "evenden_snyder":
		return newEstmerc(p), nil
	case algo == "" || algo == "poder_engsager":
		return newEtmerc(p)
	default:
		return nil, paramErrorf("unknown tmerc algorithm %q", algo)
	}
}

// Series coefficients of the approximate transverse mercator.
const (
	tmercFC1 = 1.0
	tmercFC2 = 0.5
	tmercFC3 = 0.16666666666666666666
	tmercFC4 = 0.08333333333333333333
	tmercFC5 = 0.05
	tmercFC6 = 0.03333333333333333333
	tmercFC7 = 0.02380952380952380952
	tmercFC8 = 0.01785714285714285714
)

// estmercEll is the ellipsoidal Evenden/Snyder transverse mercator, with
// series up to e⁸.
type estmercEll struct {
	k0  float64
	es  float64
	esp float64
	ml0 float64
	en  enfn
}

// estmercSph is the spherical form.
type estmercSph struct {
	phi0 float64
	esp  float64
	ml0  float64
}

func newEstmerc(p *Proj) projCore {
	if p.ellps.IsEllipsoid() {
		es := p.ellps.Es
		en := meridionalDistCoefs(es)
		return estmercEll{
			k0:  p.k0,
			es:  es,
			esp: es / (1 - es),
			ml0: mlfn(p.phi0, math.Sin(p.phi0), math.Cos(p.phi0), en),
			en:  en,
		}
	}
	return estmercSph{phi0: p.phi0, esp: p.k0, ml0: 0.5 * p.k0}
}

func (q estmercEll) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	// Results are essentially garbage more than 90° from the central
	// meridian.
	if lam < -halfPi || lam > halfPi {
		return 0, 0, 0, domainErrorf("longitude too far from central meridian")
	}

	sinphi, cosphi := math.Sincos(phi)
	t := 0.0
	if math.Abs(cosphi) > eps10 {
		t = sinphi / cosphi
	}
	t *= t
	al := cosphi * lam
	als := al * al
	al /= math.Sqrt(1 - q.es*sinphi*sinphi)
	n := q.esp * cosphi * cosphi
	x := q.k0 * al * (tmercFC1 +
		tmercFC3*als*(1-t+n+
			tmercFC5*als*(5+t*(t-18)+n*(14-58*t)+
				tmercFC7*als*(61+t*(t*(179-t)-479)))))
	y := q.k0 * (mlfn(phi, sinphi, cosphi, q.en) - q.ml0 +
		sinphi*al*lam*tmercFC2*(1+
			tmercFC4*als*(5-t+n*(9+4*n)+
				tmercFC6*als*(61+t*(t-58)+n*(270-330*t)+
					tmercFC8*als*(1385+t*(t*(543-t)-3111))))))
	return x, y, z, nil
}

func (q estmercEll) Inverse(x, y, z float64) (float64, float64, float64, error) {
	phi, err := invMlfn(q.ml0+y/q.k0, q.es, q.en)
	if err != nil {
		return 0, 0, 0, err
	}
	if math.Abs(phi) >= halfPi {
		if y < 0 {
			return 0, -halfPi, z, nil
		}
		return 0, halfPi, z, nil
	}
	sinphi, cosphi := math.Sincos(phi)
	t := 0.0
	if math.Abs(cosphi) > eps10 {
		t = sinphi / cosphi
	}
	n := q.esp * cosphi * cosphi
	con := 1 - q.es*sinphi*sinphi
	d := x * math.Sqrt(con) / q.k0
	con *= t
	t *= t
	ds := d * d
	lam := d * (tmercFC1 -
		ds*tmercFC3*(1+2*t+n-
			ds*tmercFC5*(5+t*(28+24*t+8*n)+6*n-
				ds*tmercFC7*(61+t*(662+t*(1320+720*t)))))) / cosphi
	phiOut := phi - (con*ds/(1-q.es))*tmercFC2*(1-
		ds*tmercFC4*(5+t*(3-9*n)+n*(1-4*n)-
			ds*tmercFC6*(61+t*(90-252*n+45*t)+46*n-
				ds*tmercFC8*(1385+t*(3633+t*(4095+1575*t))))))
	return lam, phiOut, z, nil
}

func (q estmercSph) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	if lam < -halfPi || lam > halfPi {
		return 0, 0, 0, domainErrorf("longitude too far from central meridian")
	}

	cosphi := math.Cos(phi)
	b := cosphi * math.Sin(lam)
	if math.Abs(math.Abs(b)-1) <= eps10 {
		return 0, 0, 0, domainErrorf("transverse mercator forward failed")
	}

	x := q.ml0 * math.Log((1+b)/(1-b))
	y := cosphi * math.Cos(lam) / math.Sqrt(1-b*b)

	b = math.Abs(y)
	switch {
	case b >= 1:
		if b-1 > eps10 {
			return 0, 0, 0, domainErrorf("transverse mercator forward failed")
		}
		y = 0
	default:
		y = math.Acos(y)
	}
	if phi < 0 {
		y = -y
	}
	return x, q.esp * (y - q.phi0), z, nil
}

func (q estmercSph) Inverse(x, y, z float64) (float64, float64, float64, error) {
	h := math.Exp(x / q.esp)
	g := 0.5 * (h - 1/h)
	h = math.Cos(q.phi0 + y/q.esp)
	phi := math.Asin(math.Sqrt((1 - h*h) / (1 + g*g)))

	// Keep phi on the correct hemisphere when false northing is used.
	if y < 0 && -phi+q.phi0 < 0 {
		phi = -phi
	}
	lam := 0.0
	if g != 0 || h != 0 {
		lam = math.Atan2(g, h)
	}
	return lam, phi, z, nil
}
