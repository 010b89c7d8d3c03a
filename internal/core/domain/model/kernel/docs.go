// Package kernel contains the shared value objects of the dispatch domain:
// record identifiers (UUID) and geographic points (GeoPoint).
//
// Courier identifiers are deliberately NOT modeled here. Couriers authenticate
// outside this system and arrive as opaque caller-supplied strings; wrapping
// them in a typed identifier would promise a validation this core cannot give.
// Record ids, by contrast, are minted by this system and are always UUIDs.
package kernel
