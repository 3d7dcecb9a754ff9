package reactor

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/metadata"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

// fakeServerStream is a minimal grpc.ServerStream for driving handlers
// without a real network connection.
type fakeServerStream struct {
	ctx context.Context
}

func (f *fakeServerStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeServerStream) SendHeader(metadata.MD) error  { return nil }
func (f *fakeServerStream) SetTrailer(metadata.MD)        {}
func (f *fakeServerStream) Context() context.Context      { return f.ctx }
func (f *fakeServerStream) SendMsg(m interface{}) error   { return nil }
func (f *fakeServerStream) RecvMsg(m interface{}) error   { return nil }

// fakePublishStream feeds a fixed sequence of packets to Publish and
// records the final response.
type fakePublishStream struct {
	fakeServerStream
	packets  []*proxyv1.Packet
	pos      int
	response *proxyv1.PublishResponse
}

func (f *fakePublishStream) Recv() (*proxyv1.Packet, error) {
	if f.pos >= len(f.packets) {
		return nil, io.EOF
	}
	p := f.packets[f.pos]
	f.pos++
	return p, nil
}

func (f *fakePublishStream) SendAndClose(resp *proxyv1.PublishResponse) error {
	f.response = resp
	return nil
}

// fakeSubscribeStream records every packet sent to a subscriber and
// cancels itself once a target count has been received.
type fakeSubscribeStream struct {
	fakeServerStream
	cancel  context.CancelFunc
	want    int
	got     []*proxyv1.Packet
	sendErr error
}

func (f *fakeSubscribeStream) Send(p *proxyv1.Packet) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.got = append(f.got, p)
	if len(f.got) >= f.want {
		f.cancel()
	}
	return nil
}

var errFakeSend = errors.New("fake send failure")
