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

// Package goproj transforms geographic point coordinates between coordinate
// reference systems described by PROJ.4 parameter strings.
//
// A coordinate reference system is built from a proj-string with NewProj:
//
//	src, err := goproj.NewProj("+proj=longlat +datum=WGS84")
//	dst, err := goproj.NewProj("+proj=utm +zone=33 +ellps=GRS80")
//
// and points are transformed in place with Transform or one of its adaptors:
//
//	pts := []goproj.Point{{X: 15.0, Y: 60.0}}
//	err = goproj.TransformPoints(src, dst, pts)
//
// Longitude and latitude of lat/long systems are expressed in degrees at the
// API boundary; projected coordinates are expressed in the units of the CRS
// (meters unless +units or +to_meter says otherwise). Internally all angles
// are radians and all lengths meters.
//
// Proj values are immutable after construction and may be shared freely
// between goroutines.
package goproj
