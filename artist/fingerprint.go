package artist

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the fields that influence graph construction, in input
// order. Two lists with the same fingerprint build the same graph under the
// same options.
func Fingerprint(artists []Artist) uint64 {
	d := xxhash.New()
	var buf [20]byte
	for _, a := range artists {
		_, _ = d.WriteString(a.ID)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(a.Name)
		_, _ = d.Write([]byte{0})
		_, _ = d.Write(strconv.AppendInt(buf[:0], int64(a.Rank), 10))
		_, _ = d.Write([]byte{0})
		for _, g := range a.Genres {
			_, _ = d.WriteString(g)
			_, _ = d.Write([]byte{1})
		}
		_, _ = d.Write([]byte{2})
	}
	return d.Sum64()
}
