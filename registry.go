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
	"sync"
)

// The alias registry maps CRS codes (e.g. "EPSG:3857") to proj-strings. It
// ships empty; callers that want code lookup populate it at startup. The
// engine itself never requires it.
var aliasRegistry = struct {
	sync.RWMutex
	m map[string]string
}{m: map[string]string{}}

// Register associates a CRS code with a proj-string so that NewProj(code)
// resolves it. Codes are case-insensitive.
func Register(code, projString string) {
	aliasRegistry.Lock()
	defer aliasRegistry.Unlock()
	aliasRegistry.m[strings.ToUpper(code)] = projString
}

// Resolve returns the proj-string registered for code.
func Resolve(code string) (string, bool) {
	aliasRegistry.RLock()
	defer aliasRegistry.RUnlock()
	s, ok := aliasRegistry.m[strings.ToUpper(code)]
	return s, ok
}
