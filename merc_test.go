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

func TestMercEllipsoidal(t *testing.T) {
	p := mustProj(t, "+proj=merc +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222638.98158654713, 110579.96521825077, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222638.98158654713, -110579.96521825077, 0}},
		{[3]float64{-2, 1, 0}, [3]float64{-222638.98158654713, 110579.96521825077, 0}},
		{[3]float64{-2, -1, 0}, [3]float64{-222638.98158654713, -110579.96521825077, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestMercSpherical(t *testing.T) {
	p := mustProj(t, "+proj=merc +R=6400000")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{223402.14425527418, 111706.74357494547, 0}},
		{[3]float64{2, -1, 0}, [3]float64{223402.14425527418, -111706.74357494547, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestWebmerc(t *testing.T) {
	// webmerc uses the spherical formulas on the ellipsoid's semimajor axis.
	p := mustProj(t, "+proj=webmerc +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222638.98158654713, 111325.14286638626, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222638.98158654713, -111325.14286638626, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestMercLatTsScale(t *testing.T) {
	// lat_ts rescales k0 on both branches.
	p := mustProj(t, "+proj=merc +ellps=GRS80 +lat_ts=30")
	roundTrip(t, p, 12, 55)

	p = mustProj(t, "+proj=merc +R=6400000 +lat_ts=30")
	roundTrip(t, p, 12, 55)

	if _, err := NewProj("+proj=merc +ellps=GRS80 +lat_ts=95"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want %v but have %v", ErrInvalidParameter, err)
	}
}

func TestMercPoleFails(t *testing.T) {
	p := mustProj(t, "+proj=merc +ellps=GRS80")
	if _, _, _, err := p.core.Forward(0, halfPi, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("want %v but have %v", ErrDomain, err)
	}
}
