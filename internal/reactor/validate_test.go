package reactor

import (
	"testing"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

func TestNormalizeUppercasesTrimsAndDefaultsLocation(t *testing.T) {
	p := &proxyv1.Packet{
		StreamIdentifier: &proxyv1.StreamIdentifier{
			Network: "  uu ",
			Station: "cwu",
			Channel: "hhz",
			// LocationCode left empty
		},
	}
	normalize(p)

	id := p.GetStreamIdentifier()
	if id.GetNetwork() != "UU" || id.GetStation() != "CWU" || id.GetChannel() != "HHZ" {
		t.Fatalf("unexpected normalized identifier: %+v", id)
	}
	if id.GetLocationCode() != "--" {
		t.Fatalf("expected empty location code to default to \"--\", got %q", id.GetLocationCode())
	}
}

func TestNormalizeHandlesNilIdentifier(t *testing.T) {
	p := &proxyv1.Packet{}
	normalize(p)
	if p.GetStreamIdentifier() == nil {
		t.Fatalf("expected normalize to allocate a StreamIdentifier")
	}
	if p.GetStreamIdentifier().GetLocationCode() != "--" {
		t.Fatalf("expected default location code")
	}
}

func validPacket() *proxyv1.Packet {
	return &proxyv1.Packet{
		StreamIdentifier: &proxyv1.StreamIdentifier{Network: "UU", Station: "CWU", Channel: "HHZ", LocationCode: "01"},
		SamplingRateHz:   100,
		NumberOfSamples:  250,
		DataType:         proxyv1.DataType_INT32,
	}
}

func TestValidateAcceptsWellFormedPacket(t *testing.T) {
	if !validate(validPacket()) {
		t.Fatalf("expected well-formed packet to validate")
	}
}

func TestValidateRejectsZeroSamples(t *testing.T) {
	p := validPacket()
	p.NumberOfSamples = 0
	if validate(p) {
		t.Fatalf("expected zero samples to be rejected")
	}
}

func TestValidateRejectsNonPositiveSamplingRate(t *testing.T) {
	p := validPacket()
	p.SamplingRateHz = 0
	if validate(p) {
		t.Fatalf("expected non-positive sampling rate to be rejected")
	}
}

func TestValidateRejectsUnknownDataType(t *testing.T) {
	p := validPacket()
	p.DataType = proxyv1.DataType_UNKNOWN
	if validate(p) {
		t.Fatalf("expected UNKNOWN data type to be rejected")
	}
}

func TestValidateRejectsEmptyIdentifierFields(t *testing.T) {
	p := validPacket()
	p.StreamIdentifier.Station = ""
	if validate(p) {
		t.Fatalf("expected empty station to be rejected")
	}
}
