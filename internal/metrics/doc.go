// Package metrics provides a Prometheus-backed metrics handle for the
// proxy. A Handle is constructed once at startup and passed by pointer
// into the components that record something (the reactors and the proxy
// core) — there is no package-level global meter, matching
// the Design Notes' replacement of the original tool's global metrics
// singleton with a handle passed by construction.
package metrics
