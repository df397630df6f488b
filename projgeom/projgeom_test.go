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

package projgeom

import (
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/spatialproj/goproj"
)

func TestReproject(t *testing.T) {
	src, err := goproj.NewProj("+proj=longlat +datum=WGS84")
	if err != nil {
		t.Fatal(err)
	}
	dst, err := goproj.NewProj("+proj=merc +a=6378137 +b=6378137 +nadgrids=@null")
	if err != nil {
		t.Fatal(err)
	}

	g, err := Reproject(geom.Point{X: 2, Y: 1}, src, dst)
	if err != nil {
		t.Fatal(err)
	}
	pt := g.(geom.Point)
	if math.Abs(pt.X-222638.98158654713) > 1e-6 || math.Abs(pt.Y-111325.14286638626) > 1e-6 {
		t.Errorf("unexpected point %v", pt)
	}

	poly := geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
	g, err = Reproject(poly, src, dst)
	if err != nil {
		t.Fatal(err)
	}
	ring := g.(geom.Polygon)[0]
	if len(ring) != 4 {
		t.Fatalf("want 4 vertices but have %d", len(ring))
	}
	if ring[0].X != 0 || ring[0].Y != 0 {
		t.Errorf("origin moved: %v", ring[0])
	}
	if math.Abs(ring[1].X-111319.49079327357) > 1e-6 {
		t.Errorf("unexpected vertex %v", ring[1])
	}

	ls := geom.LineString{{X: 0, Y: 0}, {X: 2, Y: 1}}
	if _, err = Reproject(ls, src, dst); err != nil {
		t.Fatal(err)
	}
}
