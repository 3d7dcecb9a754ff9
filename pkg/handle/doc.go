// Package handle allocates opaque, monotonically increasing 64-bit
// identities for live RPCs (publishers and subscribers).
//
// The proxy keys its subscription registry by handle rather than by the
// subscriber's call-context pointer, so identity is decoupled from
// allocator behavior: two handles are never equal unless they were
// produced from the same Next() call, and handles never repeat within a
// process lifetime.
//
// Usage:
//
//	gen := handle.NewGenerator()
//	h := gen.Next() // Handle(1), Handle(2), ...
package handle
