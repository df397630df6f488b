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
	"errors"
	"testing"
)

func TestStereEllipsoidal(t *testing.T) {
	p := mustProj(t, "+proj=stere +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222644.85455011716, 110610.88347417387, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222644.85455011716, -110610.88347417528, 0}},
		{[3]float64{-2, 1, 0}, [3]float64{-222644.85455011716, 110610.88347417387, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestStereSpherical(t *testing.T) {
	p := mustProj(t, "+proj=stere +R=6400000")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{223407.81025950745, 111737.938996443, 0}},
		{[3]float64{2, -1, 0}, [3]float64{223407.81025950745, -111737.938996443, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestSterePolar(t *testing.T) {
	// North polar aspect with a standard parallel.
	p := mustProj(t, "+proj=stere +lat_0=90 +lat_ts=70 +ellps=WGS84")
	roundTrip(t, p, -45, 80)
	roundTrip(t, p, 120, 65)
}

func TestUPS(t *testing.T) {
	p := mustProj(t, "+proj=ups +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{2433455.5634384668, -10412543.301512826, 0}},
		{[3]float64{2, -1, 0}, [3]float64{2448749.1185681992, -10850493.419804076, 0}},
		{[3]float64{-2, 1, 0}, [3]float64{1566544.4365615332, -10412543.301512826, 0}},
		{[3]float64{-2, -1, 0}, [3]float64{1551250.8814318008, -10850493.419804076, 0}},
	}
	testProjForward(t, p, cases, 1e-6)
	testProjInverse(t, p, cases, 1e-9)

	if _, err := NewProj("+proj=ups +R=6370997"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("spherical ups: want %v but have %v", ErrInvalidParameter, err)
	}
}

func TestSterea(t *testing.T) {
	p := mustProj(t, "+proj=sterea +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222644.89410919772, 110611.09187173686, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222644.89410919772, -110611.09187173827, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestStereaRD(t *testing.T) {
	// Amersfoort / RD New style parameters.
	p := mustProj(t, "+proj=sterea +lat_0=52.15616055555555 +lon_0=5.38763888888889 "+
		"+k=0.9999079 +x_0=155000 +y_0=463000 +ellps=bessel")
	roundTrip(t, p, 5.38763888888889, 52.15616055555555)
	roundTrip(t, p, 4.9, 52.37)
}
