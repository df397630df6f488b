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

import "strings"

// datumDefn is a named datum: a set of shift parameters toward WGS84 plus
// the ellipsoid the datum is measured on. towgs84 holds 0 (identity), 3 or 7
// raw values (translations in meters, rotations in arc-seconds, scale in
// ppm); nadgrids names a grid list instead.
type datumDefn struct {
	id       string
	towgs84  []float64
	nadgrids string
	ellps    *ellipsoidDefn
}

var datums = []datumDefn{
	{id: "WGS84", ellps: findEllipsoid("WGS84")},
	{id: "GGRS87", towgs84: []float64{-199.87, 74.79, 246.62},
		ellps: findEllipsoid("GRS80")}, // Greek Geodetic Reference System 1987
	{id: "NAD83", ellps: findEllipsoid("GRS80")}, // North American Datum 1983
	{id: "NAD27", nadgrids: "@conus,@alaska,@ntv2_0.gsb,@ntv1_can.dat",
		ellps: findEllipsoid("clrk66")}, // North American Datum 1927
	{id: "potsdam", towgs84: []float64{598.1, 73.7, 418.2, 0.202, 0.045, -2.455, 6.7},
		ellps: findEllipsoid("bessel")}, // Potsdam Rauenberg 1950 DHDN
	{id: "carthage", towgs84: []float64{-263.0, 6.0, 431.0},
		ellps: findEllipsoid("clrk80ign")}, // Carthage 1934 Tunisia
	{id: "hermannskogel", towgs84: []float64{577.326, 90.129, 463.919, 5.137, 1.474, 5.297, 2.4232},
		ellps: findEllipsoid("bessel")},
	{id: "ire65", towgs84: []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15},
		ellps: findEllipsoid("mod_airy")}, // Ireland 1965
	{id: "nzgd49", towgs84: []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993},
		ellps: findEllipsoid("intl")}, // New Zealand Geodetic Datum 1949
	{id: "OSGB36", towgs84: []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894},
		ellps: findEllipsoid("airy")}, // Airy 1830
	{id: "ch1903", towgs84: []float64{674.374, 15.056, 405.346},
		ellps: findEllipsoid("bessel")}, // swiss
	{id: "osni52", towgs84: []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15},
		ellps: findEllipsoid("airy")}, // Irish National
	{id: "rassadiran", towgs84: []float64{-133.63, -157.5, -158.62},
		ellps: findEllipsoid("intl")},
	{id: "s_jtsk", towgs84: []float64{589, 76, 480},
		ellps: findEllipsoid("bessel")}, // S-JTSK (Ferro)
	{id: "beduaram", towgs84: []float64{-106, -87, 188},
		ellps: findEllipsoid("clrk80")},
	{id: "gunung_segara", towgs84: []float64{-403, 684, 41},
		ellps: findEllipsoid("bessel")}, // Gunung Segara Jakarta
	{id: "rnb72", towgs84: []float64{106.869, -52.2978, 103.724, -0.33657, 0.456955, -1.84218, 1},
		ellps: findEllipsoid("intl")}, // Reseau National Belge 1972
}

// findDatum returns the named datum definition, or nil.
func findDatum(name string) *datumDefn {
	for i := range datums {
		if strings.EqualFold(datums[i].id, name) {
			return &datums[i]
		}
	}
	return nil
}
