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

// ellipsoidDefn is a named ellipsoid: semimajor axis plus either an inverse
// flattening (rf != 0) or a semiminor axis.
type ellipsoidDefn struct {
	id string
	a  float64
	rf float64
	b  float64
}

var wgs84Ellps = ellipsoidDefn{id: "WGS84", a: 6378137, rf: 298.257223563}

var ellipsoids = []ellipsoidDefn{
	{id: "MERIT", a: 6378137, rf: 298.257},                 // MERIT 1983
	{id: "SGS85", a: 6378136, rf: 298.257},                 // Soviet Geodetic System 85
	{id: "GRS80", a: 6378137, rf: 298.257222101},           // GRS 1980 (IUGG, 1980)
	{id: "IAU76", a: 6378140, rf: 298.257},                 // IAU 1976
	{id: "airy", a: 6377563.396, rf: 299.3249646},          // Airy 1830
	{id: "APL4.9", a: 6378137, rf: 298.25},                 // Appl. Physics. 1965
	{id: "NWL9D", a: 6378145, rf: 298.25},                  // Naval Weapons Lab., 1965
	{id: "mod_airy", a: 6377340.189, b: 6356034.446},       // Modified Airy
	{id: "andrae", a: 6377104.43, rf: 300.0},               // Andrae 1876 (Den., Iclnd.)
	{id: "danish", a: 6377019.2563, rf: 300.0},             // Andrae 1876 (Denmark, Iceland)
	{id: "aust_SA", a: 6378160, rf: 298.25},                // Australian Natl & S. Amer. 1969
	{id: "GRS67", a: 6378160, rf: 298.2471674270},          // GRS 67 (IUGG 1967)
	{id: "GSK2011", a: 6378136.5, rf: 298.2564151},         // GSK-2011
	{id: "bessel", a: 6377397.155, rf: 299.1528128},        // Bessel 1841
	{id: "bess_nam", a: 6377483.865, rf: 299.1528128},      // Bessel 1841 (Namibia)
	{id: "clrk66", a: 6378206.4, b: 6356583.8},             // Clarke 1866
	{id: "clrk80", a: 6378249.145, rf: 293.4663},           // Clarke 1880 mod.
	{id: "clrk80ign", a: 6378249.2, rf: 293.4660212936269}, // Clarke 1880 (IGN)
	{id: "CPM", a: 6375738.7, rf: 334.29},                  // Comm. des Poids et Mesures 1799
	{id: "delmbr", a: 6376428, rf: 311.5},                  // Delambre 1810 (Belgium)
	{id: "engelis", a: 6378136.05, rf: 298.2566},           // Engelis 1985
	{id: "evrst30", a: 6377276.345, rf: 300.8017},          // Everest 1830
	{id: "evrst48", a: 6377304.063, rf: 300.8017},          // Everest 1948
	{id: "evrst56", a: 6377301.243, rf: 300.8017},          // Everest 1956
	{id: "evrst69", a: 6377295.664, rf: 300.8017},          // Everest 1969
	{id: "evrstSS", a: 6377298.556, rf: 300.8017},          // Everest (Sabah & Sarawak)
	{id: "fschr60", a: 6378166, rf: 298.3},                 // Fischer (Mercury Datum) 1960
	{id: "fschr60m", a: 6378155, rf: 298.3},                // Modified Fischer 1960
	{id: "fschr68", a: 6378150, rf: 298.3},                 // Fischer 1968
	{id: "helmert", a: 6378200, rf: 298.3},                 // Helmert 1906
	{id: "hough", a: 6378270, rf: 297},                     // Hough
	{id: "intl", a: 6378388, rf: 297},                      // International 1924 (Hayford 1909, 1910)
	{id: "krass", a: 6378245, rf: 298.3},                   // Krassovsky, 1942
	{id: "kaula", a: 6378163, rf: 298.24},                  // Kaula 1961
	{id: "lerch", a: 6378139, rf: 298.257},                 // Lerch 1979
	{id: "mprts", a: 6397300, rf: 191},                     // Maupertius 1738
	{id: "new_intl", a: 6378157.5, b: 6356772.2},           // New International 1967
	{id: "plessis", a: 6376523, b: 6355863},                // Plessis 1817 (France)
	{id: "PZ90", a: 6378136, rf: 298.25784},                // PZ-90
	{id: "SEasia", a: 6378155, b: 6356773.3205},            // Southeast Asia
	{id: "walbeck", a: 6376896, b: 6355834.8467},           // Walbeck
	{id: "WGS60", a: 6378165, rf: 298.3},                   // WGS 60
	{id: "WGS66", a: 6378145, rf: 298.25},                  // WGS 66
	{id: "WGS72", a: 6378135, rf: 298.26},                  // WGS 72
	wgs84Ellps,                                             // WGS 84
	{id: "sphere", a: 6370997, b: 6370997},                 // Normal Sphere (r=6370997)
}

// findEllipsoid returns the named ellipsoid definition, or nil.
func findEllipsoid(name string) *ellipsoidDefn {
	for i := range ellipsoids {
		if strings.EqualFold(ellipsoids[i].id, name) {
			return &ellipsoids[i]
		}
	}
	return nil
}
