// Package reactor implements the frontend (C4) and backend (C5)
// per-RPC state machines: FrontendService.Publish drives publisher
// admission, validation, normalization, and submission to the proxy
// ingress queue; BackendService.Subscribe drives subscriber admission
// and the write-queue poll loop that drains the registry onto the wire.
package reactor
