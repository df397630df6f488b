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

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTowgs84Parsing(t *testing.T) {
	p3, err := datumParamsFromTowgs84("674.374,15.056,405.346")
	if err != nil {
		t.Fatal(err)
	}
	if p3.kind != datum3Param || p3.dx != 674.374 || p3.dy != 15.056 || p3.dz != 405.346 {
		t.Errorf("unexpected 3-parameter shift %+v", p3)
	}

	p7, err := datumParamsFromTowgs84("414.1,41.3,603.1,-0.855,2.141,-7.023,0")
	if err != nil {
		t.Fatal(err)
	}
	if p7.kind != datum7Param {
		t.Fatalf("want 7-parameter kind but have %v", p7.kind)
	}
	// Rotations are converted from arc-seconds to radians, scale from ppm.
	if !scalar.EqualWithinAbs(p7.rx, -0.855*secToRad, 1e-20) ||
		!scalar.EqualWithinAbs(p7.ry, 2.141*secToRad, 1e-20) ||
		!scalar.EqualWithinAbs(p7.rz, -7.023*secToRad, 1e-20) {
		t.Errorf("unexpected rotations %+v", p7)
	}
	if p7.scale != 1 {
		t.Errorf("want scale 1 but have %v", p7.scale)
	}

	if _, err := datumParamsFromTowgs84("1,2"); err == nil {
		t.Error("want error for 2-term towgs84")
	}
	if _, err := datumParamsFromTowgs84("1,2,x"); err == nil {
		t.Error("want error for non-numeric towgs84")
	}
}

func TestNadgridsNull(t *testing.T) {
	dp, err := datumParamsFromNadgrids("@null")
	if err != nil {
		t.Fatal(err)
	}
	if dp.kind != datumNullGrid {
		t.Errorf("want null grid sentinel but have %v", dp.kind)
	}

	// Optional grids are skipped on the way to @null.
	if dp, err = datumParamsFromNadgrids("@missing,@null"); err != nil || dp.kind != datumNullGrid {
		t.Errorf("want null grid sentinel but have %v (%v)", dp.kind, err)
	}

	// A mandatory grid is not available in-core.
	if _, err := datumParamsFromNadgrids("conus"); err == nil {
		t.Error("want error for mandatory grid")
	}
}

// Geodetic→geocentric→geodetic must round-trip to 1e-12 rad and 1e-4 m.
func TestGeocentricRoundTrip(t *testing.T) {
	el := ellpsOf(t, "+proj=longlat +ellps=GRS80")
	cases := [][3]float64{
		{0, 0, 0},
		{2, 1, 0},
		{-77.1, 38.6, 124.3},
		{151.2, -33.8, -13.2},
		{10, 89.999, 1000},
		{-10, -89.999, 1000},
	}
	for _, c := range cases {
		lon := c[0] * degToRad
		lat := c[1] * degToRad
		x, y, z, err := geodeticToGeocentric(lon, lat, c[2], el.A, el.Es)
		if err != nil {
			t.Fatalf("geodeticToGeocentric(%v): %v", c, err)
		}
		lon2, lat2, h2, err := geocentricToGeodetic(x, y, z, el.A, el.Es, el.B)
		if err != nil {
			t.Fatalf("geocentricToGeodetic(%v): %v", c, err)
		}
		if !scalar.EqualWithinAbs(lon2, lon, 1e-12) ||
			!scalar.EqualWithinAbs(lat2, lat, 1e-12) ||
			!scalar.EqualWithinAbs(h2, c[2], 1e-4) {
			t.Errorf("round trip %v: have (%v, %v, %v)", c, lon2*radToDeg, lat2*radToDeg, h2)
		}
	}
}

func TestGeocentricOrigin(t *testing.T) {
	el := ellpsOf(t, "+proj=longlat +ellps=GRS80")
	lon, lat, h, err := geocentricToGeodetic(0, 0, 0, el.A, el.Es, el.B)
	if err != nil {
		t.Fatal(err)
	}
	if lon != 0 || lat != halfPi || h != -el.B {
		t.Errorf("center of mass: have (%v, %v, %v)", lon, lat, h)
	}
}

func TestGeodeticToGeocentricRange(t *testing.T) {
	el := ellpsOf(t, "+proj=longlat +ellps=GRS80")
	// Slight overshoot is clamped.
	if _, _, _, err := geodeticToGeocentric(0, halfPi*1.0005, 0, el.A, el.Es); err != nil {
		t.Errorf("slight overshoot: %v", err)
	}
	// Far overshoot is an error.
	if _, _, _, err := geodeticToGeocentric(0, math.Pi, 0, el.A, el.Es); err == nil {
		t.Error("want error for latitude far out of range")
	}
}

func TestDatumIdentity(t *testing.T) {
	wgs := mustProj(t, "+proj=longlat +datum=WGS84")
	grs := mustProj(t, "+proj=longlat +ellps=GRS80 +towgs84=0,0,0")
	nad83 := mustProj(t, "+proj=longlat +datum=NAD83")
	potsdam := mustProj(t, "+proj=longlat +datum=potsdam")
	nodatum := mustProj(t, "+proj=longlat +ellps=bessel")
	nullgrid := mustProj(t, "+proj=longlat +ellps=bessel +nadgrids=@null")

	cases := []struct {
		name     string
		a, b     *Proj
		identity bool
	}{
		// GRS80 and WGS84 are identical within the es tolerance.
		{"wgs84/nad83", wgs, nad83, true},
		// An explicit towgs84 differs structurally from the plain WGS84
		// sentinel, so the (numerically trivial) shift still runs.
		{"wgs84/grs80+towgs84", wgs, grs, false},
		{"wgs84/potsdam", wgs, potsdam, false},
		// Unknown datums prevent any shift.
		{"wgs84/nodatum", wgs, nodatum, true},
		// The @null sentinel is identity even across ellipsoids.
		{"wgs84/nullgrid", wgs, nullgrid, true},
		{"potsdam/nullgrid", potsdam, nullgrid, true},
	}
	for _, c := range cases {
		if have := datumShiftIdentity(&c.a.datum, &c.b.datum); have != c.identity {
			t.Errorf("%s: want identity=%v but have %v", c.name, c.identity, have)
		}
	}
}

func TestHelmertShift(t *testing.T) {
	// A pure translation moves the geocentric origin.
	src := mustProj(t, "+proj=longlat +ellps=WGS84 +towgs84=100,200,300")
	dst := mustProj(t, "+proj=longlat +datum=WGS84")

	lon, lat, h := 10*degToRad, 45*degToRad, 0.0
	x0, y0, z0, err := geodeticToGeocentric(lon, lat, h, src.ellps.A, src.ellps.Es)
	if err != nil {
		t.Fatal(err)
	}
	x, y, z, err := src.datum.toWGS84(lon, lat, h)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x-x0, 100, 1e-9) ||
		!scalar.EqualWithinAbs(y-y0, 200, 1e-9) ||
		!scalar.EqualWithinAbs(z-z0, 300, 1e-9) {
		t.Errorf("unexpected translation (%v, %v, %v)", x-x0, y-y0, z-z0)
	}

	// Shifting from the datum onto itself round-trips.
	lon2, lat2, h2, err := datumShift(&src.datum, &src.datum, lon, lat, h)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(lon2, lon, 1e-12) ||
		!scalar.EqualWithinAbs(lat2, lat, 1e-12) ||
		!scalar.EqualWithinAbs(h2, h, 1e-4) {
		t.Errorf("datum round trip: have (%v, %v, %v)", lon2, lat2, h2)
	}
	_ = dst
}
