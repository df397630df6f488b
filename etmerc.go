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

// Extended ("exact") Transverse Mercator after Knud Poder and Karsten
// Engsager: 6th-order Krüger series in the Gauss-Schreiber latitude,
// evaluated by Clenshaw summation. Ellipsoidal only; this is the base of
// the UTM projection.
//
// Reference: Engsager and Poder, ICC2007; Karney (2011).

const etmercOrder = 6

type etmercCoefs [etmercOrder]float64

// gatg evaluates the trigonometric series B + Σ cᵢ sin(2iB) by Clenshaw
// summation; the coefficient array is stored highest order first.
func gatg(c *etmercCoefs, b float64) float64 {
	cos2b := 2 * math.Cos(2*b)
	h, h1, h2 := 0.0, 0.0, 0.0
	for _, p := range c {
		h = -h2 + cos2b*h1 + p
		h2 = h1
		h1 = h
	}
	return b + h*math.Sin(2*b)
}

// clens is real Clenshaw summation of Σ cᵢ sin(i·argR).
func clens(c *etmercCoefs, argR float64) float64 {
	r := 2 * math.Cos(argR)
	hr, hr1, hr2 := 0.0, 0.0, 0.0
	for _, p := range c {
		hr = -hr2 + r*hr1 + p
		hr2 = hr1
		hr1 = hr
	}
	return math.Sin(argR) * hr
}

// clensCplx is complex Clenshaw summation for argument argR + i·argI.
func clensCplx(c *etmercCoefs, argR, argI float64) (float64, float64) {
	sinArgR, cosArgR := math.Sincos(argR)
	sinhArgI := math.Sinh(argI)
	coshArgI := math.Cosh(argI)

	r := 2 * cosArgR * coshArgI
	i := -2 * sinArgR * sinhArgI

	var hr, hr1, hr2, hi, hi1, hi2 float64
	for _, p := range c {
		hr2 = hr1
		hi2 = hi1
		hr1 = hr
		hi1 = hi
		hi = -hi2 + i*hr1 + r*hi1
		hr = -hr2 + r*hr1 - i*hi1 + p
	}

	r = sinArgR * coshArgI
	i = cosArgR * sinhArgI
	return r*hr - i*hi, r*hi + i*hr
}

// etmercDomain bounds the normalized ellipsoidal easting (easting divided by
// qn); on the equator the bound is reached roughly 81° from the central
// meridian.
const etmercDomain = 2.623395162778

type etmerc struct {
	qn  float64     // meridian quadrant, scaled to the projection
	zb  float64     // northing offset of the origin
	cgb etmercCoefs // Gauss -> geodetic latitude
	cbg etmercCoefs // geodetic -> Gauss latitude
	utg etmercCoefs // transverse mercator -> geographic
	gtu etmercCoefs // geographic -> transverse mercator
}

func initEtmerc(p *Proj, _ *paramList) (projCore, error) {
	return newEtmerc(p)
}

func newEtmerc(p *Proj) (projCore, error) {
	f := p.ellps.F
	if f == 0 {
		return nil, paramErrorf("etmerc requires an ellipsoid")
	}

	// Third flattening.
	n := f / (2 - f)
	n2 := n * n

	// Coefficients of the trig series relating geodetic and Gaussian
	// latitude, Krüger-Weiss p190-191 (61)-(62) and p186-187 (51)-(52),
	// 6th degree after Engsager and Poder, ICC2007.
	cgb := etmercCoefs{
		n * (2 + n*(-2./3. + n*(-2 + n*(116./45. + n*(26./45. + n*(-2854./675.)))))),
		n2 * (7./3. + n*(-8./5. + n*(-227./45. + n*(2704./315. + n*(2323./945.))))),
		n2 * n * (56./15. + n*(-136./35. + n*(-1262./105. + n*(73814./2835.)))),
		n2 * n2 * (4279./630. + n*(-332./35. + n*(-399572./14175.))),
		n2 * n2 * n * (4174./315. + n*(-144838./6237.)),
		n2 * n2 * n2 * (601676. / 22275.),
	}
	cbg := etmercCoefs{
		n * (-2 + n*(2./3. + n*(4./3. + n*(-82./45. + n*(32./45. + n*(4642./4725.)))))),
		n2 * (5./3. + n*(-16./15. + n*(-13./9. + n*(904./315. + n*(-1522./945.))))),
		n2 * n * (-26./15. + n*(34./21. + n*(8./5. + n*(-12686./2835.)))),
		n2 * n2 * (1237./630. + n*(-12./5. + n*(-24832./14175.))),
		n2 * n2 * n * (-734./315. + n*(109598./31185.)),
		n2 * n2 * n2 * (444337. / 155925.),
	}
	reverse(&cgb)
	reverse(&cbg)

	// Normalized meridian quadrant, Krüger-Weiss p.50 (96).
	qn := p.k0 / (1 + n) * (1 + n2*(1./4.+n2*(1./64.+n2/256.)))

	// utg: ellipsoidal N, E -> spherical N, E, KW p194 (65);
	// gtu: spherical N, E -> ellipsoidal N, E, KW p196 (69).
	utg := etmercCoefs{
		n * (-0.5 + n*(2./3. + n*(-37./96. + n*(1./360. + n*(81./512. + n*(-96199./604800.)))))),
		n2 * (-1./48. + n*(-1./15. + n*(437./1440. + n*(-46./105. + n*(1118711./3870720.))))),
		n2 * n * (-17./480. + n*(37./840. + n*(209./4480. + n*(-5569./90720.)))),
		n2 * n2 * (-4397./161280. + n*(11./504. + n*(830251./7257600.))),
		n2 * n2 * n * (-4583./161280. + n*(108847./3991680.)),
		n2 * n2 * n2 * (-20648693. / 638668800.),
	}
	gtu := etmercCoefs{
		n * (0.5 + n*(-2./3. + n*(5./16. + n*(41./180. + n*(-127./288. + n*(7891./37800.)))))),
		n2 * (13./48. + n*(-3./5. + n*(557./1440. + n*(281./630. + n*(-1983433./1935360.))))),
		n2 * n * (61./240. + n*(-103./140. + n*(15061./26880. + n*(167603./181440.)))),
		n2 * n2 * (49561./161280. + n*(-179./168. + n*(6601661./7257600.))),
		n2 * n2 * n * (34729./80640. + n*(-3418889./1995840.)),
		n2 * n2 * n2 * (212378941. / 319334400.),
	}
	reverse(&utg)
	reverse(&gtu)

	// Gaussian latitude of the origin, and the origin northing offset.
	z := gatg(&cbg, p.phi0)
	zb := -qn * (z + clens(&gtu, 2*z))

	return etmerc{qn: qn, zb: zb, cgb: cgb, cbg: cbg, utg: utg, gtu: gtu}, nil
}

// reverse flips a coefficient array in place; the Clenshaw evaluators
// consume coefficients highest order first.
func reverse(c *etmercCoefs) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

func (q etmerc) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	cn, ce := phi, lam

	// Geodetic latitude -> Gaussian latitude.
	cn = gatg(&q.cbg, cn)

	// Gaussian lat/lon -> complex spherical latitude.
	sinCn, cosCn := math.Sincos(cn)
	sinCe, cosCe := math.Sincos(ce)
	cn = math.Atan2(sinCn, cosCe*cosCn)
	ce = math.Atan2(sinCe*cosCn, math.Hypot(sinCn, cosCn*cosCe))

	// Complex spherical N, E -> ellipsoidal normalized N, E.
	ce = asinh(math.Tan(ce))
	dCn, dCe := clensCplx(&q.gtu, 2*cn, 2*ce)
	cn += dCn
	ce += dCe

	if math.Abs(ce) > etmercDomain {
		return 0, 0, 0, domainErrorf("longitude too far from central meridian")
	}
	return q.qn * ce, q.qn*cn + q.zb, z, nil
}

func (q etmerc) Inverse(x, y, z float64) (float64, float64, float64, error) {
	cn, ce := y, x

	cn = (cn - q.zb) / q.qn
	ce /= q.qn

	if math.Abs(ce) > etmercDomain {
		return 0, 0, 0, domainErrorf("easting outside projection domain")
	}

	// Normalized N, E -> complex spherical lat/lon.
	dCn, dCe := clensCplx(&q.utg, 2*cn, 2*ce)
	cn += dCn
	ce += dCe
	ce = math.Atan(math.Sinh(ce))

	// Complex spherical -> Gaussian lat/lon.
	sinCn, cosCn := math.Sincos(cn)
	sinCe, cosCe := math.Sincos(ce)
	ce = math.Atan2(sinCe, cosCe*cosCn)
	cn = math.Atan2(sinCn*cosCe, math.Hypot(sinCe, cosCe*cosCn))

	// Gaussian latitude -> geodetic latitude.
	return ce, gatg(&q.cgb, cn), z, nil
}

// Universal Transverse Mercator: etmerc with a zone-derived central
// meridian, k₀ = 0.9996 and the standard false offsets.
func initUTM(p *Proj, params *paramList) (projCore, error) {
	if p.lam0 < -1000 || p.lam0 > 1000 {
		return nil, paramErrorf("invalid UTM zone")
	}
	south, err := params.boolOption("south")
	if err != nil {
		return nil, err
	}
	p.x0 = 500000
	p.y0 = 0
	if south {
		p.y0 = 10000000
	}

	zone, haveZone, err := params.i32("zone")
	if err != nil {
		return nil, err
	}
	if haveZone {
		if zone < 1 || zone > 60 {
			return nil, paramErrorf("UTM zone %d out of range 1..60", zone)
		}
	} else {
		// Nearest central meridian to the given lon_0.
		zone = int(math.Floor((adjlon(p.lam0)+math.Pi)*30/math.Pi)) + 1
		if zone > 60 {
			zone = 60
		}
		if zone < 1 {
			return nil, paramErrorf("invalid UTM zone")
		}
	}

	p.lam0 = (float64(zone-1)+0.5)*math.Pi/30 - math.Pi
	p.k0 = 0.9996
	p.phi0 = 0
	return newEtmerc(p)
}
