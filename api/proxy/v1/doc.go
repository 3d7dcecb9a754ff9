// Package proxyv1 defines the wire messages and gRPC service contracts for
// the publish/subscribe fan-out proxy: FrontendService (publisher ingest),
// BackendService (subscriber egress), and HealthService (liveness).
//
// Messages are hand-written in the legacy protoc-gen-go style: plain Go
// structs with `protobuf:"..."` struct tags and Reset/String/ProtoMessage
// methods, relying on google.golang.org/protobuf's reflection-based legacy
// message support rather than generated marshal code or a compiled
// FileDescriptorProto. proxy.proto documents the equivalent IDL.
package proxyv1
