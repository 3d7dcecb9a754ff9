package proxyv1

import (
	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/encoding"
)

// legacyCodec marshals with github.com/golang/protobuf/proto rather than
// google.golang.org/grpc's built-in codec (which calls
// google.golang.org/protobuf/proto directly and requires a ProtoReflect
// method). The messages in this package implement only the legacy
// Reset/String/ProtoMessage marker interface, the shape golang/protobuf's
// legacy bridge builds a reflect-based protoreflect.Message for from
// struct tags; registering under the name "proto" overrides grpc's
// default codec for this process.
type legacyCodec struct{}

func (legacyCodec) Marshal(v interface{}) ([]byte, error) {
	vv, ok := v.(proto.Message)
	if !ok {
		return nil, errNotProtoMessage(v)
	}
	return proto.Marshal(vv)
}

func (legacyCodec) Unmarshal(data []byte, v interface{}) error {
	vv, ok := v.(proto.Message)
	if !ok {
		return errNotProtoMessage(v)
	}
	return proto.Unmarshal(data, vv)
}

func (legacyCodec) Name() string { return "proto" }

func errNotProtoMessage(v interface{}) error {
	return &notProtoMessageError{v}
}

type notProtoMessageError struct{ v interface{} }

func (e *notProtoMessageError) Error() string {
	return "proxyv1: value does not implement proto.Message"
}

func init() {
	encoding.RegisterCodec(legacyCodec{})
}
