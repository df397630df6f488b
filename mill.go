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

// Miller Cylindrical. Spherical only.
type mill struct{}

func initMill(p *Proj, _ *paramList) (projCore, error) {
	var err error
	if p.ellps, err = sphere(p.ellps.A); err != nil {
		return nil, err
	}
	return mill{}, nil
}

func (mill) Forward(lam, phi, z float64) (float64, float64, float64, error) {
	return lam, math.Log(math.Tan(quartPi+phi*0.4)) * 1.25, z, nil
}

func (mill) Inverse(x, y, z float64) (float64, float64, float64, error) {
	return x, 2.5 * (math.Atan(math.Exp(0.8*y)) - quartPi), z, nil
}
