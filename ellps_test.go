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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func ellpsOf(t *testing.T, spec string) Ellipsoid {
	t.Helper()
	return mustProj(t, spec).Ellps()
}

func TestEllipsoidResolution(t *testing.T) {
	// Named ellipsoid.
	el := ellpsOf(t, "+proj=longlat +ellps=GRS80")
	if !scalar.EqualWithinAbs(el.A, 6378137, 1e-9) {
		t.Errorf("want a=6378137 but have %v", el.A)
	}
	if !scalar.EqualWithinAbs(el.Es, 0.0066943800229, 1e-10) {
		t.Errorf("unexpected es %v", el.Es)
	}
	if el.IsSphere() {
		t.Error("GRS80 must not be a sphere")
	}

	// Default is WGS84.
	el = ellpsOf(t, "+proj=longlat")
	if !scalar.EqualWithinAbs(el.Es, 0.00669437999014, 1e-11) {
		t.Errorf("unexpected default es %v", el.Es)
	}

	// Datum supplies the ellipsoid.
	el = ellpsOf(t, "+proj=longlat +datum=potsdam")
	if !scalar.EqualWithinAbs(el.A, 6377397.155, 1e-6) {
		t.Errorf("want bessel a but have %v", el.A)
	}

	// a and b given explicitly.
	el = ellpsOf(t, "+proj=merc +a=6378137 +b=6378137")
	if !el.IsSphere() {
		t.Error("a == b must collapse to a sphere")
	}

	// Bare +a defines a sphere.
	el = ellpsOf(t, "+proj=laea +a=6400000")
	if !el.IsSphere() || el.A != 6400000 {
		t.Errorf("want sphere of 6400000 but have a=%v es=%v", el.A, el.Es)
	}

	// +R overrides everything.
	el = ellpsOf(t, "+proj=merc +R=1 +ellps=GRS80")
	if !el.IsSphere() || el.A != 1 {
		t.Errorf("want unit sphere but have a=%v es=%v", el.A, el.Es)
	}
}

func TestEllipsoidDerivedConstants(t *testing.T) {
	el := ellpsOf(t, "+proj=longlat +ellps=WGS84")
	if !scalar.EqualWithinAbs(el.B, 6356752.3142, 1e-4) {
		t.Errorf("unexpected b %v", el.B)
	}
	if !scalar.EqualWithinAbs(el.OneEs, 1-el.Es, 1e-15) ||
		!scalar.EqualWithinAbs(el.ROneEs*el.OneEs, 1, 1e-15) {
		t.Error("inconsistent one_es constants")
	}
	if !scalar.EqualWithinAbs(el.Ep2, el.Es/(1-el.Es), 1e-15) {
		t.Errorf("unexpected ep2 %v", el.Ep2)
	}
	if !scalar.EqualWithinAbs(el.Ra*el.A, 1, 1e-15) {
		t.Error("ra is not 1/a")
	}
}

func TestEllipsoidShapePrecedence(t *testing.T) {
	// rf wins over b.
	el := ellpsOf(t, "+proj=longlat +a=6378137 +rf=298.257223563 +b=1")
	if !scalar.EqualWithinAbs(el.B, 6356752.3142, 1e-4) {
		t.Errorf("rf must take precedence over b; have b=%v", el.B)
	}

	// es as a shape parameter.
	el = ellpsOf(t, "+proj=longlat +a=6377397.155 +es=0.006674372230614")
	if !scalar.EqualWithinAbs(el.Es, 0.006674372230614, 1e-15) {
		t.Errorf("unexpected es %v", el.Es)
	}
}

func TestEllipsoidRange(t *testing.T) {
	for _, bad := range []string{
		"+proj=longlat +a=6378137 +es=1.5",
		"+proj=longlat +a=6378137 +es=-0.1",
		"+proj=longlat +a=6378137 +e=2",
		"+proj=longlat +a=-1 +rf=298",
		"+proj=longlat +a=6378137 +rf=0.5",
		"+proj=longlat +a=6378137 +b=7000000",
	} {
		if _, err := NewProj(bad); err == nil {
			t.Errorf("NewProj(%q): want error", bad)
		}
	}
}
