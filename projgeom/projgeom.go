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

// Package projgeom reprojects geometry objects from the
// github.com/ctessum/geom package between coordinate reference systems.
package projgeom

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/spatialproj/goproj"
)

// Reproject returns a copy of g with every vertex transformed from the src
// CRS to the dst CRS.
func Reproject(g geom.Geom, src, dst *goproj.Proj) (geom.Geom, error) {
	switch t := g.(type) {
	case geom.Point:
		return reprojectPoint(t, src, dst)
	case geom.MultiPoint:
		pts := make(geom.MultiPoint, len(t))
		for i, p := range t {
			pp, err := reprojectPoint(p, src, dst)
			if err != nil {
				return nil, err
			}
			pts[i] = pp
		}
		return pts, nil
	case geom.LineString:
		ls, err := reprojectPath(t, src, dst)
		return geom.LineString(ls), err
	case geom.MultiLineString:
		mls := make(geom.MultiLineString, len(t))
		for i, ls := range t {
			path, err := reprojectPath(ls, src, dst)
			if err != nil {
				return nil, err
			}
			mls[i] = geom.LineString(path)
		}
		return mls, nil
	case geom.Polygon:
		pg := make(geom.Polygon, len(t))
		for i, ring := range t {
			r, err := reprojectPath(ring, src, dst)
			if err != nil {
				return nil, err
			}
			pg[i] = r
		}
		return pg, nil
	case geom.MultiPolygon:
		mp := make(geom.MultiPolygon, len(t))
		for i, pg := range t {
			g2, err := Reproject(pg, src, dst)
			if err != nil {
				return nil, err
			}
			mp[i] = g2.(geom.Polygon)
		}
		return mp, nil
	case geom.GeometryCollection:
		gc := make(geom.GeometryCollection, len(t))
		for i, gg := range t {
			g2, err := Reproject(gg, src, dst)
			if err != nil {
				return nil, err
			}
			gc[i] = g2
		}
		return gc, nil
	}
	return nil, fmt.Errorf("projgeom: unsupported geometry type %T", g)
}

func reprojectPoint(p geom.Point, src, dst *goproj.Proj) (geom.Point, error) {
	pt := goproj.Point{X: p.X, Y: p.Y}
	if err := goproj.TransformPoint(src, dst, &pt); err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: pt.X, Y: pt.Y}, nil
}

func reprojectPath(path []geom.Point, src, dst *goproj.Proj) ([]geom.Point, error) {
	buf := make([]float64, 2*len(path))
	for i, p := range path {
		buf[2*i] = p.X
		buf[2*i+1] = p.Y
	}
	if err := goproj.TransformStrided(src, dst, buf, 2); err != nil {
		return nil, err
	}
	out := make([]geom.Point, len(path))
	for i := range out {
		out[i] = geom.Point{X: buf[2*i], Y: buf[2*i+1]}
	}
	return out, nil
}
