package reactor

import (
	"strings"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

// normalize uppercases and trims the stream identifier fields in place,
// defaulting an empty location code to "--". It always leaves packet
// with a non-nil StreamIdentifier.
func normalize(packet *proxyv1.Packet) {
	id := packet.GetStreamIdentifier()
	if id == nil {
		id = &proxyv1.StreamIdentifier{}
		packet.StreamIdentifier = id
	}
	id.Network = strings.ToUpper(strings.TrimSpace(id.Network))
	id.Station = strings.ToUpper(strings.TrimSpace(id.Station))
	id.Channel = strings.ToUpper(strings.TrimSpace(id.Channel))
	id.LocationCode = strings.ToUpper(strings.TrimSpace(id.LocationCode))
	if id.LocationCode == "" {
		id.LocationCode = "--"
	}
}

// validate reports whether packet, after normalize has run, satisfies
// the admission invariant.
func validate(packet *proxyv1.Packet) bool {
	id := packet.GetStreamIdentifier()
	return packet.GetNumberOfSamples() > 0 &&
		packet.GetSamplingRateHz() > 0 &&
		packet.GetDataType() != proxyv1.DataType_UNKNOWN &&
		id.GetNetwork() != "" &&
		id.GetStation() != "" &&
		id.GetChannel() != ""
}
