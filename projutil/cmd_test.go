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

package projutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spatialproj/goproj"
)

func TestParseLine(t *testing.T) {
	pt, hasZ, err := parseLine("319180 6399862")
	if err != nil {
		t.Fatal(err)
	}
	if hasZ || pt.X != 319180 || pt.Y != 6399862 {
		t.Errorf("unexpected point %v (hasZ=%v)", pt, hasZ)
	}

	pt, hasZ, err = parseLine("1.5   -2.25\t100")
	if err != nil {
		t.Fatal(err)
	}
	if !hasZ || pt.Z != 100 {
		t.Errorf("unexpected point %v (hasZ=%v)", pt, hasZ)
	}

	for _, bad := range []string{"1", "1 2 3 4", "a b"} {
		if _, _, err := parseLine(bad); err == nil {
			t.Errorf("parseLine(%q): want error", bad)
		}
	}
}

func TestRunTransform(t *testing.T) {
	from, err := goproj.NewProj("+proj=longlat +datum=WGS84")
	if err != nil {
		t.Fatal(err)
	}
	to, err := goproj.NewProj("+proj=merc +a=6378137 +b=6378137 +nadgrids=@null")
	if err != nil {
		t.Fatal(err)
	}

	in := strings.NewReader("0 0\n\n2 1\n")
	var out bytes.Buffer
	if err := runTransform(from, to, in, &out, true, 3); err != nil {
		t.Fatal(err)
	}
	want := "0.000 0.000\n222638.982 111325.143\n"
	if out.String() != want {
		t.Errorf("want %q but have %q", want, out.String())
	}
}

func TestRunTransformStrict(t *testing.T) {
	from, err := goproj.NewProj("+proj=longlat +datum=WGS84")
	if err != nil {
		t.Fatal(err)
	}
	to, err := goproj.NewProj("+proj=merc +ellps=WGS84")
	if err != nil {
		t.Fatal(err)
	}

	// A malformed line aborts only in strict mode.
	in := strings.NewReader("bogus line here\n2 1\n")
	var out bytes.Buffer
	if err := runTransform(from, to, in, &out, true, 6); err == nil {
		t.Error("want error in strict mode")
	}

	in = strings.NewReader("bogus line here\n2 1\n")
	out.Reset()
	if err := runTransform(from, to, in, &out, false, 6); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "222638.981587") {
		t.Errorf("unexpected output %q", out.String())
	}
}
