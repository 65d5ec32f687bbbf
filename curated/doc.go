// This file is part of Scanterm.
//
// Scanterm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scanterm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scanterm.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is the error type used throughout the project. A curated
// error keeps the pattern string it was created with, meaning errors can be
// tested for with the Is() and Has() functions without resorting to string
// comparison of the formatted message.
//
// Pattern strings are defined by the package that creates the error. By
// convention the first verb of a pattern is the name of the package or the
// operation that failed:
//
//	curated.Errorf("framebuffer: %v", err)
//
// Wrapping a curated error in another curated error builds a chain that is
// searchable with Has().
package curated
