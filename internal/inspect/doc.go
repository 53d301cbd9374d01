// Package inspect serves a read-only HTTP view of a scope registry.
//
// Routes:
//
//	GET /healthz            liveness
//	GET /tags               registered tags; ?match=ch-button* filters with a glob
//	GET /tags/{tag}         owner scope and definition of one tag
//	GET /suffixes           every suffix used
//	GET /icons              icon names
//	GET /icons/{name}       icon SVG
//	GET /metrics            Prometheus metrics
package inspect
