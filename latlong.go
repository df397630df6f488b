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

// Stub projection for lat/long coordinates. The coordinates are not
// changed; its presence marks the CRS as geographic.
type latlong struct{}

func initLatlong(p *Proj, _ *paramList) (projCore, error) {
	p.isLatlong = true
	p.x0 = 0
	p.y0 = 0
	return latlong{}, nil
}

func (latlong) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	return lam, phi, z, nil
}

func (latlong) Inverse(x, y, z float64) (float64, float64, float64, error) {
	return x, y, z, nil
}
