// Package admission implements the reactor admission helpers (C7): the
// auth-token check, publisher/subscriber capacity gates, and the
// per-publisher consecutive-invalid-message counter.
package admission
