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

import "math"

// Equidistant Cylindrical (Plate Carrée). Spherical only; the ellipsoid is
// replaced by a sphere of the same semimajor axis.
type eqc struct {
	rc   float64
	phi0 float64
}

func initEqc(p *Proj, params *paramList) (projCore, error) {
	latTs, err := params.angularDefault("lat_ts", 0)
	if err != nil {
		return nil, err
	}
	rc := math.Cos(latTs)
	if rc <= 0 {
		return nil, paramErrorf("|lat_ts| must be less than 90°")
	}
	if p.ellps, err = sphere(p.ellps.A); err != nil {
		return nil, err
	}
	return eqc{rc: rc, phi0: p.phi0}, nil
}

func (q eqc) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	return lam * q.rc, phi - q.phi0, z, nil
}

func (q eqc) Inverse(x, y, z float64) (float64, float64, float64, error) {
	return x / q.rc, y + q.phi0, z, nil
}
