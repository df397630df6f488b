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

func TestTmercApproxEllipsoidal(t *testing.T) {
	p := mustProj(t, "+proj=tmerc +ellps=GRS80 +approx")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222650.79679577847, 110642.22941192707, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222650.79679577847, -110642.22941192707, 0}},
		{[3]float64{-2, 1, 0}, [3]float64{-222650.79679577847, 110642.22941192707, 0}},
		{[3]float64{-2, -1, 0}, [3]float64{-222650.79679577847, -110642.22941192707, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestTmercSpherical(t *testing.T) {
	// A spherical planet selects the Evenden/Snyder algorithm.
	p := mustProj(t, "+proj=tmerc +R=6400000")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{223413.46640632232, 111769.14504059685, 0}},
		{[3]float64{2, -1, 0}, [3]float64{223413.46640632232, -111769.14504059685, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestEtmerc(t *testing.T) {
	p := mustProj(t, "+proj=etmerc +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222650.79679758527, 110642.22941193319, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222650.79679758527, -110642.22941193319, 0}},
		{[3]float64{-2, 1, 0}, [3]float64{-222650.79679758527, 110642.22941193319, 0}},
		{[3]float64{-2, -1, 0}, [3]float64{-222650.79679758527, -110642.22941193319, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)

	// The default tmerc on an ellipsoid is etmerc.
	p2 := mustProj(t, "+proj=tmerc +ellps=GRS80")
	testProjForward(t, p2, cases, 1e-7)
}

func TestEtmercRequiresEllipsoid(t *testing.T) {
	if _, err := NewProj("+proj=etmerc +R=6400000"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want %v but have %v", ErrInvalidParameter, err)
	}
}

func TestEtmercDomain(t *testing.T) {
	p := mustProj(t, "+proj=etmerc +ellps=GRS80")
	// A point on the equator 85° from the central meridian lies beyond the
	// bound on the normalized easting.
	if _, _, _, err := p.core.Forward(85*degToRad, 0, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("want %v but have %v", ErrDomain, err)
	}
}

func TestUTM(t *testing.T) {
	p := mustProj(t, "+proj=utm +ellps=GRS80 +zone=30")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{1057002.4054912976, 110955.14117594929, 0}},
		{[3]float64{2, -1, 0}, [3]float64{1057002.4054912976, -110955.1411759492, 0}},
		{[3]float64{-2, 1, 0}, [3]float64{611263.8122789060, 110547.10569680421, 0}},
		{[3]float64{-2, -1, 0}, [3]float64{611263.8122789060, -110547.10569680421, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestTmercLatitudeRange(t *testing.T) {
	if _, err := NewProj("+proj=tmerc +lat_0=91 +ellps=GRS80"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want %v but have %v", ErrInvalidParameter, err)
	}
}
