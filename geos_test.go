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

func TestGeosEllipsoidal(t *testing.T) {
	p := mustProj(t, "+proj=geos +lon_0=0 +h=35785782.858 +x_0=0 +y_0=0 "+
		"+a=6378160 +b=6356775 +units=m")
	cases := []projCase{
		{[3]float64{18.763481601401576, 9.204293875870595, 0}, [3]float64{2000000, 1000000, 0}},
		{[3]float64{18.763481601401576, -9.204293875870595, 0}, [3]float64{2000000, -1000000, 0}},
		{[3]float64{-18.763481601401576, 9.204293875870595, 0}, [3]float64{-2000000, 1000000, 0}},
	}
	testProjForward(t, p, cases, 1e-6)
	testProjInverse(t, p, cases, 1e-6)
}

func TestGeosDefaultEllipsoid(t *testing.T) {
	p := mustProj(t, "+proj=geos +lon_0=0 +h=35785833.8833")
	cases := []projCase{
		{[3]float64{18.763554109081273, 9.204326881322723, 0}, [3]float64{2000000, 1000000, 0}},
		{[3]float64{-18.763554109081273, -9.204326881322723, 0}, [3]float64{-2000000, -1000000, 0}},
	}
	testProjForward(t, p, cases, 1e-6)
	testProjInverse(t, p, cases, 1e-6)
}

func TestGeosSweep(t *testing.T) {
	p := mustProj(t, "+proj=geos +h=35785831 +sweep=x +ellps=GRS80")
	roundTrip(t, p, 10, 20)

	if _, err := NewProj("+proj=geos +h=35785831 +sweep=q +ellps=GRS80"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want %v but have %v", ErrInvalidParameter, err)
	}
}

func TestGeosInvisible(t *testing.T) {
	p := mustProj(t, "+proj=geos +lon_0=0 +h=35785831 +ellps=GRS80")
	// The far side of the planet is not visible from the satellite.
	if _, _, _, err := p.core.Forward(150*degToRad, 0, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("want %v but have %v", ErrDomain, err)
	}
}
