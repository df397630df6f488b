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

// Named prime meridians, as longitude offsets from Greenwich in degrees.
var primeMeridians = []struct {
	id  string
	deg float64
}{
	{"greenwich", 0.0},
	{"lisbon", -9.131906111111},    // 9d07'54.862"W
	{"paris", 2.337229166667},      // 2d20'14.025"E
	{"bogota", -74.080916666667},   // 74d04'51.3"W
	{"madrid", -3.687938888889},    // 3d41'16.58"W
	{"rome", 12.452333333333},      // 12d27'8.4"E
	{"bern", 7.439583333333},       // 7d26'22.5"E
	{"jakarta", 106.807719444444},  // 106d48'27.79"E
	{"ferro", -17.666666666667},    // 17d40'W
	{"brussels", 4.367975},         // 4d22'4.71"E
	{"stockholm", 18.058277777778}, // 18d3'29.8"E
	{"athens", 23.7163375},         // 23d42'58.815"E
	{"oslo", 10.722916666667},      // 10d43'22.5"E
	{"copenhagen", 12.57788},       // 12d34'40.35"E
}

// primeMeridianFromParams resolves +pm into a radian offset from Greenwich.
// The value may be a name from the table or a free-form angular literal.
func primeMeridianFromParams(params *paramList) (float64, error) {
	s, ok, err := params.str("pm")
	if err != nil || !ok {
		return 0, err
	}
	for _, pm := range primeMeridians {
		if strings.EqualFold(pm.id, s) {
			return pm.deg * degToRad, nil
		}
	}
	v, err := parseAngle(s)
	if err != nil {
		return 0, paramErrorf("unrecognized prime meridian %q", s)
	}
	return v, nil
}
