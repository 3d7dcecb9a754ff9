// Package proxy implements the proxy core (C6): the shared bounded
// ingress queue, the pump goroutine that drains it into the
// subscription registry's fan-out, and the start/stop lifecycle that
// sequences both gRPC listeners around the pump.
package proxy
