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

package main

import (
	"os"

	"github.com/spatialproj/goproj/projutil"
)

func main() {
	if err := projutil.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
