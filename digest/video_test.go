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

package digest_test

import (
	"testing"

	"github.com/softraster/scanterm/digest"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/test"
)

func TestVideoDigest(t *testing.T) {
	spec := specification.SpecVGA60

	a := digest.NewVideo(spec)
	b := digest.NewVideo(spec)

	// identical signal streams produce identical fingerprints
	for i := 0; i < 100; i++ {
		a.Write(uint8(i))
		b.Write(uint8(i))
	}
	test.ExpectSuccess(t, a.NewFrame(0))
	test.ExpectSuccess(t, b.NewFrame(0))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// a single differing value changes the fingerprint
	a.Write(0x01)
	b.Write(0x02)
	test.ExpectSuccess(t, a.NewFrame(1))
	test.ExpectSuccess(t, b.NewFrame(1))
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

// fingerprints are chained: the same frame content hashes differently when
// the preceding frames differ
func TestVideoDigestChain(t *testing.T) {
	spec := specification.SpecVGA60

	a := digest.NewVideo(spec)
	b := digest.NewVideo(spec)

	a.Write(0x01)
	b.Write(0x02)
	test.ExpectSuccess(t, a.NewFrame(0))
	test.ExpectSuccess(t, b.NewFrame(0))

	a.Write(0x55)
	b.Write(0x55)
	test.ExpectSuccess(t, a.NewFrame(1))
	test.ExpectSuccess(t, b.NewFrame(1))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// breaking the chain and replaying the same content equalises the
	// fingerprints
	a.ResetDigest()
	b.ResetDigest()
	a.Write(0x55)
	b.Write(0x55)
	test.ExpectSuccess(t, a.NewFrame(2))
	test.ExpectSuccess(t, b.NewFrame(2))
	test.ExpectEquality(t, a.Hash(), b.Hash())
}
