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
	"strconv"
	"strings"
)

// datumKind enumerates the shift methods a datum can carry.
type datumKind int

const (
	datumNone    datumKind = iota // unknown datum, prevents any shift
	datumWGS84                    // identity toward WGS84
	datum3Param                   // geocentric translation
	datum7Param                   // position-vector Helmert
	datumNullGrid                 // @null grid: shift is identity by fiat
)

// DatumParams describes how a datum relates to WGS84. Translations are in
// meters, rotations in radians, scale dimensionless (1 + ppm·1e-6).
// Comparison is structural and bit-exact.
type DatumParams struct {
	kind                   datumKind
	dx, dy, dz             float64
	rx, ry, rz             float64
	scale                  float64
}

// datumParamsFromTowgs84 parses a 3- or 7-term comma-separated towgs84
// string. The 7-term form carries rotations in arc-seconds and scale in
// parts per million.
func datumParamsFromTowgs84(s string) (DatumParams, error) {
	fields := strings.Split(s, ",")
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return DatumParams{}, paramErrorf("invalid towgs84 string %q", s)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 3:
		return DatumParams{kind: datum3Param, dx: vals[0], dy: vals[1], dz: vals[2]}, nil
	case 7:
		return DatumParams{
			kind: datum7Param,
			dx:   vals[0], dy: vals[1], dz: vals[2],
			rx: vals[3] * secToRad, ry: vals[4] * secToRad, rz: vals[5] * secToRad,
			scale: vals[6]/1e6 + 1,
		}, nil
	}
	return DatumParams{}, paramErrorf("towgs84 needs 3 or 7 terms, got %d", len(vals))
}

// datumParamsFromNadgrids accepts a grid list. Only the @null sentinel is
// available in-core: the list must reach @null before any mandatory grid,
// optional grids (@-prefixed) are skipped.
func datumParamsFromNadgrids(s string) (DatumParams, error) {
	for _, g := range strings.Split(s, ",") {
		g = strings.TrimSpace(g)
		if g == "@null" || g == "null" {
			return DatumParams{kind: datumNullGrid}, nil
		}
		if strings.HasPrefix(g, "@") {
			continue // optional grid, not available
		}
		break // mandatory grid, not available
	}
	return DatumParams{}, unsupportedErrorf("NAD grid %q not available", s)
}

// datumParamsFromDefn converts a named datum definition.
func datumParamsFromDefn(defn *datumDefn) (DatumParams, error) {
	if defn.nadgrids != "" {
		return datumParamsFromNadgrids(defn.nadgrids)
	}
	switch len(defn.towgs84) {
	case 0:
		return DatumParams{kind: datumWGS84}, nil
	case 3:
		t := defn.towgs84
		return DatumParams{kind: datum3Param, dx: t[0], dy: t[1], dz: t[2]}, nil
	default:
		t := defn.towgs84
		return DatumParams{
			kind: datum7Param,
			dx:   t[0], dy: t[1], dz: t[2],
			rx: t[3] * secToRad, ry: t[4] * secToRad, rz: t[5] * secToRad,
			scale: t[6]/1e6 + 1,
		}, nil
	}
}

// datumParamsFromParams resolves shift parameters from the bag with
// precedence nadgrids → towgs84 → named datum → none.
func datumParamsFromParams(params *paramList, defn *datumDefn) (DatumParams, error) {
	if s, ok, err := params.str("nadgrids"); err != nil {
		return DatumParams{}, err
	} else if ok {
		return datumParamsFromNadgrids(s)
	}
	if s, ok, err := params.str("towgs84"); err != nil {
		return DatumParams{}, err
	} else if ok {
		return datumParamsFromTowgs84(s)
	}
	if defn != nil {
		return datumParamsFromDefn(defn)
	}
	return DatumParams{kind: datumNone}, nil
}

// Datum couples shift parameters with the ellipsoid they are measured on.
type Datum struct {
	params DatumParams
	a, b   float64
	es     float64
}

func newDatum(el *Ellipsoid, params DatumParams) Datum {
	return Datum{params: params, a: el.A, b: el.B, es: el.Es}
}

// NoDatum reports whether the datum is of unknown type; as of PROJ 4.6.0
// behavior, transformations involving such a datum skip the shift entirely.
func (d *Datum) NoDatum() bool { return d.params.kind == datumNone }

func (d *Datum) nullGrid() bool { return d.params.kind == datumNullGrid }

// The tolerance on es ensures that GRS80 and WGS84 compare identical.
const datumEsTol = 0.000000000050

// identicalTo reports whether two datums produce the same shift.
func (d *Datum) identicalTo(o *Datum) bool {
	return (d.nullGrid() && o.nullGrid() || d.params == o.params) &&
		d.a == o.a && math.Abs(d.es-o.es) < datumEsTol
}

// toWGS84 converts geodetic coordinates on this datum to WGS84 geocentric
// coordinates.
func (d *Datum) toWGS84(lon, lat, h float64) (float64, float64, float64, error) {
	x, y, z, err := geodeticToGeocentric(lon, lat, h, d.a, d.es)
	if err != nil {
		return 0, 0, 0, err
	}
	p := &d.params
	switch p.kind {
	case datum3Param:
		return x + p.dx, y + p.dy, z + p.dz, nil
	case datum7Param:
		return p.dx + p.scale*(x-p.rz*y+p.ry*z),
			p.dy + p.scale*(p.rz*x+y-p.rx*z),
			p.dz + p.scale*(-p.ry*x+p.rx*y+z),
			nil
	default:
		return x, y, z, nil
	}
}

// fromWGS84 converts WGS84 geocentric coordinates to geodetic coordinates on
// this datum.
func (d *Datum) fromWGS84(x, y, z float64) (float64, float64, float64, error) {
	p := &d.params
	switch p.kind {
	case datum3Param:
		x, y, z = x-p.dx, y-p.dy, z-p.dz
	case datum7Param:
		x, y, z = (x-p.dx)/p.scale, (y-p.dy)/p.scale, (z-p.dz)/p.scale
		x, y, z = x+p.rz*y-p.ry*z,
			-p.rz*x+y+p.rx*z,
			p.ry*x-p.rx*y+z
	}
	return geocentricToGeodetic(x, y, z, d.a, d.es, d.b)
}

// datumShift composes the full shift from src to dst via WGS84. Callers must
// have ruled out the identity cases first (see datumShiftIdentity).
func datumShift(src, dst *Datum, lon, lat, h float64) (float64, float64, float64, error) {
	x, y, z, err := src.toWGS84(lon, lat, h)
	if err != nil {
		return 0, 0, 0, err
	}
	return dst.fromWGS84(x, y, z)
}

// datumShiftIdentity reports whether the shift between the two datums is a
// no-op: either datum unknown, either carrying the @null grid sentinel
// (identity even when the ellipsoids differ), or both structurally equal.
func datumShiftIdentity(src, dst *Datum) bool {
	return src.NoDatum() || dst.NoDatum() ||
		src.nullGrid() || dst.nullGrid() ||
		src.identicalTo(dst)
}
