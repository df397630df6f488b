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

// Linear units, as meters per unit.
var units = []struct {
	id      string
	toMeter float64
}{
	{"km", 1000},
	{"m", 1},
	{"dm", 0.1},
	{"cm", 0.01},
	{"mm", 0.001},
	{"kmi", 1852},                   // International Nautical Mile
	{"in", 0.0254},                  // International Inch
	{"ft", 0.3048},                  // International Foot
	{"yd", 0.9144},                  // International Yard
	{"mi", 1609.344},                // International Statute Mile
	{"fath", 1.8288},                // International Fathom
	{"ch", 20.1168},                 // International Chain
	{"link", 0.201168},              // International Link
	{"us-in", 100. / 3937},          // U.S. Surveyor's Inch
	{"us-ft", 1200. / 3937},         // U.S. Surveyor's Foot
	{"us-yd", 3600. / 3937},         // U.S. Surveyor's Yard
	{"us-ch", 79200. / 3937},        // U.S. Surveyor's Chain
	{"us-mi", 6336000. / 3937},      // U.S. Surveyor's Statute Mile
	{"ind-yd", 0.91439523},          // Indian Yard
	{"ind-ft", 0.30479841},          // Indian Foot
	{"ind-ch", 20.11669506},         // Indian Chain
}

// Angular units accepted for lat/long systems.
const (
	unitDegrees = "degrees"
	unitRadians = "radians"
)

// findUnitToMeter returns the meters-per-unit factor of a named linear unit.
func findUnitToMeter(name string) (float64, bool) {
	for _, u := range units {
		if strings.EqualFold(u.id, name) {
			return u.toMeter, true
		}
	}
	return 0, false
}

// unitsFromParams resolves the linear unit of the bag: +units by table
// lookup, overridden by an explicit +to_meter factor (either a plain number
// or a named unit).
func unitsFromParams(params *paramList) (float64, error) {
	toMeter := 1.0
	if name, ok, err := params.str("units"); err != nil {
		return 0, err
	} else if ok && !isAngularUnit(name) {
		v, found := findUnitToMeter(name)
		if !found {
			return 0, paramErrorf("unrecognized unit %q", name)
		}
		toMeter = v
	}
	if s, ok, err := params.str("to_meter"); err != nil {
		return 0, err
	} else if ok {
		if v, found := findUnitToMeter(s); found {
			return v, nil
		}
		v, _, err := params.f64("to_meter")
		if err != nil {
			return 0, err
		}
		toMeter = v
	}
	if !(toMeter > 0) {
		return 0, paramErrorf("to_meter must be positive")
	}
	return toMeter, nil
}

func isAngularUnit(name string) bool {
	return strings.EqualFold(name, unitDegrees) || strings.EqualFold(name, unitRadians)
}

// angularUnitFromParams resolves the boundary unit of a lat/long CRS:
// degrees unless +units=radians.
func angularUnitFromParams(params *paramList) (float64, error) {
	name, ok, err := params.str("units")
	if err != nil {
		return 0, err
	}
	if ok && strings.EqualFold(name, unitRadians) {
		return 1, nil
	}
	return degToRad, nil
}
