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

const (
	halfPi  = math.Pi / 2
	quartPi = math.Pi / 4
	twoPi   = 2 * math.Pi

	eps7  = 1.0e-7
	eps10 = 1.0e-10
	eps12 = 1.0e-12

	secToRad = 4.84813681109536e-6
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// adjlon reduces a longitude to the range (-π, π], letting values slightly
// overshoot to avoid spurious sign switching at the date line.
func adjlon(lon float64) float64 {
	if math.Abs(lon) >= math.Pi+eps12 {
		lon += math.Pi
		lon -= twoPi * math.Floor(lon/twoPi)
		lon -= math.Pi
	}
	return lon
}

// asinh avoids the overflow of the naive log formulation for very large
// arguments by going through Hypot.
func asinh(x float64) float64 {
	v := math.Log(math.Abs(x) + math.Hypot(1, x))
	if x < 0 {
		return -v
	}
	return v
}

const oneTol = 1.00000000000001

// aasin is an arc sine that forgives arguments barely outside [-1, 1].
func aasin(v float64) (float64, error) {
	if av := math.Abs(v); av >= 1 {
		if av > oneTol {
			return 0, domainErrorf("asin argument %g too large", v)
		}
		return math.Copysign(halfPi, v), nil
	}
	return math.Asin(v), nil
}

// aacos is an arc cosine that forgives arguments barely outside [-1, 1].
func aacos(v float64) (float64, error) {
	if av := math.Abs(v); av >= 1 {
		if av > oneTol {
			return 0, domainErrorf("acos argument %g too large", v)
		}
		if v < 0 {
			return math.Pi, nil
		}
		return 0, nil
	}
	return math.Acos(v), nil
}

// msfn computes the meridional scale factor cos φ / sqrt(1 - e² sin²φ).
func msfn(sinphi, cosphi, es float64) float64 {
	return cosphi / math.Sqrt(1-es*sinphi*sinphi)
}

// tsfn computes exp(-ψ), ψ the isometric latitude.
func tsfn(phi, sinphi, e float64) float64 {
	return math.Tan(0.5*(halfPi-phi)) /
		math.Pow((1-sinphi*e)/(1+sinphi*e), 0.5*e)
}

const phi2NIter = 15

// phi2 inverts the isometric latitude relation ts = exp(-ψ(φ)) using the
// iterative scheme of Snyder (1987), Eqs. (7-9) - (7-11).
func phi2(ts, e float64) (float64, error) {
	eccnth := 0.5 * e
	phi := halfPi - 2*math.Atan(ts)
	for i := phi2NIter; i > 0; i-- {
		con := e * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= eps10 {
			return phi, nil
		}
	}
	return 0, convergenceErrorf("phi2 did not converge")
}

// qsfn computes the authalic latitude auxiliary q for sin φ.
func qsfn(sinphi, e, oneEs float64) float64 {
	if e < eps7 {
		return sinphi + sinphi
	}
	con := e * sinphi
	div1 := 1 - con*con
	div2 := 1 + con
	if div1 == 0 || div2 == 0 {
		return math.Inf(1)
	}
	return oneEs * (sinphi/div1 - (0.5/e)*math.Log((1-con)/div2))
}

// enfn holds the coefficients of the 8th-degree meridional distance series.
type enfn [5]float64

// meridionalDistCoefs derives the series coefficients for es. The series is
// accurate to < 1e-5 meters when used with typical major axis values; the
// inverse determines φ to about 1e-11 radians.
func meridionalDistCoefs(es float64) enfn {
	const (
		c00 = 1.
		c02 = 0.25
		c04 = 0.046875
		c06 = 0.01953125
		c08 = 0.01068115234375
		c22 = 0.75
		c44 = 0.46875
		c46 = 0.013020833333333334
		c48 = 0.007120768229166667
		c66 = 0.3645833333333333
		c68 = 0.005696614583333334
		c88 = 0.3076171875
	)
	t := es * es
	return enfn{
		c00 - es*(c02+es*(c04+es*(c06+es*c08))),
		es * (c22 - es*(c04+es*(c06+es*c08))),
		t * (c44 - es*(c46+es*c48)),
		t * es * (c66 - es*c68),
		t * t * c88,
	}
}

// mlfn evaluates the meridional distance for φ with sin φ and cos φ given.
func mlfn(phi, sphi, cphi float64, en enfn) float64 {
	cphi *= sphi
	sphi *= sphi
	return en[0]*phi - cphi*(en[1]+sphi*(en[2]+sphi*(en[3]+sphi*en[4])))
}

const (
	invMlfnMaxIter = 10
	invMlfnEps     = 1e-11
)

// invMlfn inverts mlfn by Newton iteration; rarely needs more than two
// steps.
func invMlfn(arg, es float64, en enfn) (float64, error) {
	k := 1 / (1 - es)
	phi := arg
	for i := invMlfnMaxIter; i > 0; i-- {
		s := math.Sin(phi)
		t := 1 - es*s*s
		t = (mlfn(phi, s, math.Cos(phi), en) - arg) * (t * math.Sqrt(t)) * k
		phi -= t
		if math.Abs(t) < invMlfnEps {
			return phi, nil
		}
	}
	return 0, convergenceErrorf("inverse meridional distance did not converge")
}

// authset derives the series coefficients relating authalic and geodetic
// latitude.
func authset(es float64) [3]float64 {
	const (
		p00 = 1. / 3.
		p01 = 31. / 180.
		p02 = 517. / 5040.
		p10 = 23. / 360.
		p11 = 251. / 3780.
		p20 = 761. / 45360.
	)
	t := es * es
	return [3]float64{
		es*p00 + t*p01 + t*es*p02,
		t*p10 + t*es*p11,
		t * es * p20,
	}
}

// authlat converts the authalic latitude β to geodetic latitude.
func authlat(beta float64, apa [3]float64) float64 {
	t := beta + beta
	return beta + apa[0]*math.Sin(t) + apa[1]*math.Sin(t+t) + apa[2]*math.Sin(t+t+t)
}

// gaussState holds the constants of the Gauss double projection mapping the
// ellipsoid onto a conformal sphere.
type gaussState struct {
	c, k, e, ratexp float64
}

func srat(esinp, ratexp float64) float64 {
	return math.Pow((1-esinp)/(1+esinp), ratexp)
}

// gaussIni sets up the conformal sphere for origin latitude phi0, returning
// the mapping constants, the conformal latitude of the origin and the radius
// of the sphere.
func gaussIni(e, phi0 float64) (gaussState, float64, float64, error) {
	es := e * e
	sphi := math.Sin(phi0)
	cphi := math.Cos(phi0)
	cphi *= cphi

	rc := math.Sqrt(1-es) / (1 - es*sphi*sphi)
	c := math.Sqrt(1 + es*cphi*cphi/(1-es))
	if c == 0 {
		return gaussState{}, 0, 0, paramErrorf("gauss sphere setup failed")
	}

	chi := math.Asin(sphi / c)
	ratexp := 0.5 * c * e
	k := math.Tan(0.5*chi+quartPi) /
		(math.Pow(math.Tan(0.5*phi0+quartPi), c) * srat(e*sphi, ratexp))
	return gaussState{c: c, k: k, e: e, ratexp: ratexp}, chi, rc, nil
}

// gauss maps geodetic (λ, φ) to the conformal sphere.
func gauss(lam, phi float64, en *gaussState) (float64, float64) {
	return en.c * lam,
		2*math.Atan(en.k*math.Pow(math.Tan(0.5*phi+quartPi), en.c)*srat(en.e*math.Sin(phi), en.ratexp)) - halfPi
}

const (
	invGaussTol     = 1.0e-14
	invGaussMaxIter = 20
)

// invGauss maps conformal sphere coordinates back to the ellipsoid.
func invGauss(lam, phi float64, en *gaussState) (float64, float64, error) {
	num := math.Pow(math.Tan(0.5*phi+quartPi)/en.k, 1/en.c)
	for i := invGaussMaxIter; i > 0; i-- {
		ephi := 2*math.Atan(num*srat(en.e*math.Sin(phi), -0.5*en.e)) - halfPi
		if math.Abs(ephi-phi) < invGaussTol {
			return lam / en.c, ephi, nil
		}
		phi = ephi
	}
	return 0, 0, convergenceErrorf("inverse gauss mapping did not converge")
}
