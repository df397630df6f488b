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
	"strings"
)

// projCore is the per-projection contract. Forward maps relative longitude
// and latitude in radians to coordinates on the unit ellipsoid (scaling by a
// and false offsets are applied by the caller); Inverse is the converse.
// Both must return a recoverable error for points outside their domain.
type projCore interface {
	Forward(lam, phi, z float64) (float64, float64, float64, error)
	Inverse(x, y, z float64) (float64, float64, float64, error)
}

type initFunc func(p *Proj, params *paramList) (projCore, error)

// The proj-string → projection dispatch is a small finite set known at
// compile time; no mutable registry is involved.
var projInits = map[string]initFunc{
	"longlat": initLatlong,
	"latlong": initLatlong,
	"latlon":  initLatlong,
	"lonlat":  initLatlong,
	"lcc":     initLCC,
	"tmerc":   initTmerc,
	"etmerc":  initEtmerc,
	"utm":     initUTM,
	"aea":     initAea,
	"leac":    initLeac,
	"stere":   initStere,
	"ups":     initUPS,
	"sterea":  initSterea,
	"merc":    initMerc,
	"webmerc": initWebmerc,
	"geocent": initGeocent,
	"cart":    initGeocent,
	"somerc":  initSomerc,
	"laea":    initLaea,
	"moll":    initMoll,
	"wag4":    initWag4,
	"wag5":    initWag5,
	"geos":    initGeos,
	"eqc":     initEqc,
	"mill":    initMill,
	"cea":     initCea,
	"krovak":  initKrovak,
	"aeqd":    initAeqd,
}

// normalizedAxis is the interior axis orientation: east, north, up.
var normalizedAxis = [3]byte{'e', 'n', 'u'}

// projData holds the base parameters shared by all projections.
type projData struct {
	ellps Ellipsoid

	lam0 float64 // central longitude (radians)
	phi0 float64 // central latitude (radians)
	x0   float64 // false easting (meters)
	y0   float64 // false northing (meters)
	k0   float64 // scale factor

	fromGreenwich float64 // prime meridian offset (radians)
	toMeter       float64 // linear unit, meters per unit
	toRadians     float64 // angular unit of a lat/long CRS
	axis          [3]byte
	over          bool // do not wrap longitudes into (-π, π]

	isLatlong bool
	isGeocent bool
}

// Proj is a fully resolved coordinate reference system. It is immutable
// after construction and freely copyable; concurrent readers need no
// synchronization.
type Proj struct {
	projData
	name  string
	spec  string
	datum Datum
	core  projCore
}

// NewProj builds a Proj from a proj-string, or from a code previously
// registered with Register (e.g. "EPSG:3857").
func NewProj(spec string) (*Proj, error) {
	s := strings.TrimSpace(spec)
	if s != "" && !strings.ContainsAny(s, "+= \t") {
		resolved, ok := Resolve(s)
		if !ok {
			return nil, paramErrorf("unknown CRS code %q", s)
		}
		s = resolved
	}
	params, err := parseProjString(s)
	if err != nil {
		return nil, err
	}
	p, err := newProjFromParams(params)
	if err != nil {
		return nil, err
	}
	p.spec = s
	return p, nil
}

func newProjFromParams(params *paramList) (*Proj, error) {
	name, ok, err := params.str("proj")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, paramErrorf("missing projection name")
	}

	if params.has("geoc") {
		// Propagation of geocentric latitude through the datum shift is
		// underspecified; refuse rather than guess.
		return nil, paramErrorf("geocentric latitude input (+geoc) is not supported")
	}

	init, ok := projInits[strings.ToLower(name)]
	if !ok {
		return nil, unsupportedErrorf("projection %q not available", name)
	}

	var datumDefn *datumDefn
	if dname, ok, err := params.str("datum"); err != nil {
		return nil, err
	} else if ok {
		datumDefn = findDatum(dname)
		if datumDefn == nil {
			return nil, paramErrorf("unrecognized datum %q", dname)
		}
	}

	datumParams, err := datumParamsFromParams(params, datumDefn)
	if err != nil {
		return nil, err
	}
	ellps, err := ellipsoidFromParams(params, datumDefn)
	if err != nil {
		return nil, err
	}
	pm, err := primeMeridianFromParams(params)
	if err != nil {
		return nil, err
	}
	axis, err := axisFromParams(params)
	if err != nil {
		return nil, err
	}
	toMeter, err := unitsFromParams(params)
	if err != nil {
		return nil, err
	}
	toRadians, err := angularUnitFromParams(params)
	if err != nil {
		return nil, err
	}

	p := &Proj{
		name: strings.ToLower(name),
		projData: projData{
			ellps:         ellps,
			fromGreenwich: pm,
			toMeter:       toMeter,
			toRadians:     toRadians,
			axis:          axis,
		},
		datum: newDatum(&ellps, datumParams),
	}

	if p.lam0, err = params.angularDefault("lon_0", 0); err != nil {
		return nil, err
	}
	if p.phi0, err = params.angularDefault("lat_0", 0); err != nil {
		return nil, err
	}
	if p.x0, err = params.f64Default("x_0", 0); err != nil {
		return nil, err
	}
	if p.y0, err = params.f64Default("y_0", 0); err != nil {
		return nil, err
	}
	k0, ok, err := params.f64("k_0")
	if err != nil {
		return nil, err
	}
	if !ok {
		if k0, ok, err = params.f64("k"); err != nil {
			return nil, err
		}
	}
	if !ok {
		k0 = 1
	}
	if !(k0 > 0) {
		return nil, paramErrorf("k0 must be positive, got %g", k0)
	}
	p.k0 = k0
	if p.over, err = params.boolOption("over"); err != nil {
		return nil, err
	}

	core, err := init(p, params)
	if err != nil {
		return nil, err
	}
	p.core = core
	return p, nil
}

// axisFromParams resolves +axis: exactly three characters naming an
// east/west, a north/south and an up/down direction in output order.
func axisFromParams(params *paramList) ([3]byte, error) {
	s, ok, err := params.str("axis")
	if err != nil {
		return normalizedAxis, err
	}
	if !ok {
		return normalizedAxis, nil
	}
	if len(s) != 3 {
		return normalizedAxis, paramErrorf("invalid axis %q", s)
	}
	var axis [3]byte
	ew := strings.IndexAny(s, "ew")
	ns := strings.IndexAny(s, "ns")
	ud := strings.IndexAny(s, "ud")
	if ew < 0 || ns < 0 || ud < 0 {
		return normalizedAxis, paramErrorf("invalid axis %q", s)
	}
	axis[ew] = s[ew]
	axis[ns] = s[ns]
	axis[ud] = s[ud]
	return axis, nil
}

func (p *Proj) normalizedAxis() bool { return p.axis == normalizedAxis }

// ProjName returns the projection name from +proj.
func (p *Proj) ProjName() string { return p.name }

// IsLatlong reports whether the CRS is geographic (its coordinates are
// longitude and latitude).
func (p *Proj) IsLatlong() bool { return p.isLatlong }

// IsGeocent reports whether the CRS is a 3D earth-centered cartesian frame.
func (p *Proj) IsGeocent() bool { return p.isGeocent }

// Ellps returns the resolved ellipsoid constants.
func (p *Proj) Ellps() Ellipsoid { return p.ellps }

// ToMeter returns the meters-per-unit factor of the linear unit.
func (p *Proj) ToMeter() float64 { return p.toMeter }

// PrimeMeridian returns the prime meridian offset from Greenwich in radians.
func (p *Proj) PrimeMeridian() float64 { return p.fromGreenwich }

// DatumParams returns the datum shift parameters.
func (p *Proj) DatumParams() DatumParams { return p.datum.params }

// String returns the proj-string the CRS was built from.
func (p *Proj) String() string { return p.spec }
