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

import "testing"

func TestSomercEllipsoidal(t *testing.T) {
	p := mustProj(t, "+proj=somerc +ellps=GRS80")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{222638.98158654713, 110579.96521824898, 0}},
		{[3]float64{2, -1, 0}, [3]float64{222638.98158654713, -110579.96521825089, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestSomercSpherical(t *testing.T) {
	p := mustProj(t, "+proj=somerc +a=6400000")
	cases := []projCase{
		{[3]float64{2, 1, 0}, [3]float64{223402.14425527418, 111706.74357494408, 0}},
		{[3]float64{2, -1, 0}, [3]float64{223402.14425527418, -111706.74357494518, 0}},
	}
	testProjForward(t, p, cases, 1e-7)
	testProjInverse(t, p, cases, 1e-9)
}

func TestSomercCH1903(t *testing.T) {
	// EPSG:21781 (LV03).
	p := mustProj(t, "+proj=somerc +lat_0=46.95240555555556 +lon_0=7.439583333333333 "+
		"+k_0=1 +x_0=600000 +y_0=200000 +ellps=bessel")
	roundTrip(t, p, 7.439583333333333, 46.95240555555556)
	roundTrip(t, p, 8.54, 47.38)
}
