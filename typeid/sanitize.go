// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package typeid

import "regexp"

// pkgQualifier matches a package qualifier ending in ".", e.g. the "mypkg."
// in "mypkg.Foo". reflect.Type.String() renders the outer type with its short
// package name but a generic type argument from another package with its
// full import path (e.g. "mypkg.Foo[example.com/x/other.Bar]"), so the
// pattern also accepts the dots, slashes and dashes of an import path. A
// single global replace then strips every qualifier in one pass without
// needing to walk bracket nesting by hand.
var pkgQualifier = regexp.MustCompile(`[[:alpha:]_][[:word:]./-]*\.`)

// sanitize strips module-path qualifiers from a reflect-rendered type name
// while preserving generic parameter nesting, e.g.
// "a.Foo[b.Bar]" -> "Foo[Bar]". It is idempotent: sanitize(sanitize(n)) ==
// sanitize(n), since the result contains no more qualifiers to strip.
func sanitize(name string) string {
	return pkgQualifier.ReplaceAllString(name, "")
}
