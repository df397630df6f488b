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

import "testing"

func TestProjStringTokens(t *testing.T) {
	params, err := parseProjString("+proj=geocent +datum=WGS84 +no_defs")
	if err != nil {
		t.Fatal(err)
	}
	if len(params.params) != 3 {
		t.Fatalf("want 3 parameters but have %d", len(params.params))
	}
	if v, _, _ := params.str("proj"); v != "geocent" {
		t.Errorf("want geocent but have %q", v)
	}
	if v, _, _ := params.str("datum"); v != "WGS84" {
		t.Errorf("want WGS84 but have %q", v)
	}
	if p, ok := params.get("no_defs"); !ok || p.hasValue {
		t.Error("no_defs must be a bare flag")
	}
}

func TestProjStringQuotedValue(t *testing.T) {
	params, err := parseProjString(`+proj=longlat +title="WGS 84 long lat" +ellps=WGS84`)
	if err != nil {
		t.Fatal(err)
	}
	if v, _, _ := params.str("title"); v != "WGS 84 long lat" {
		t.Errorf("want quoted title but have %q", v)
	}

	if _, err := parseProjString(`+proj=longlat +title="unterminated`); err == nil {
		t.Error("want error for unterminated quote")
	}
}

func TestProjStringErrors(t *testing.T) {
	if _, err := parseProjString(""); err == nil {
		t.Error("want error for empty input")
	}
	if _, err := parseProjString("   "); err == nil {
		t.Error("want error for blank input")
	}
	if _, err := parseProjString("+proj="); err == nil {
		t.Error("want error for missing value")
	}
}

func TestProjStringSwallowsJunk(t *testing.T) {
	params, err := parseProjString("+proj=merc (junk) +ellps=WGS84")
	if err != nil {
		t.Fatal(err)
	}
	if len(params.params) != 2 {
		t.Errorf("want 2 parameters but have %d", len(params.params))
	}

	// The leading '+' is optional.
	params, err = parseProjString("proj=merc ellps=WGS84")
	if err != nil {
		t.Fatal(err)
	}
	if v, _, _ := params.str("ellps"); v != "WGS84" {
		t.Errorf("want WGS84 but have %q", v)
	}
}
