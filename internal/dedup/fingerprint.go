package dedup

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

// Fingerprint computes a packet's duplicate-detection key: a hash of its
// stream identity and sample window, deliberately excluding payload
// bytes so exact retransmits are caught without comparing data.
func Fingerprint(p *proxyv1.Packet) uint64 {
	d := xxhash.New()

	id := p.GetStreamIdentifier()
	writeString(d, id.GetNetwork())
	writeString(d, id.GetStation())
	writeString(d, id.GetChannel())
	writeString(d, id.GetLocationCode())

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(p.GetStartTimeMicros()))
	d.Write(buf[:])

	binary.BigEndian.PutUint32(buf[:4], uint32(p.GetNumberOfSamples()))
	d.Write(buf[:4])

	binary.BigEndian.PutUint64(buf[:], math.Float64bits(p.GetSamplingRateHz()))
	d.Write(buf[:])

	return d.Sum64()
}

func writeString(d *xxhash.Digest, s string) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(s)))
	d.Write(length[:])
	d.Write([]byte(s))
}
