// Package platform provides the filesystem primitives the scaffold relies on:
// atomic, create-only file writes with explicit permission bits. Permission
// bits are ignored on Windows.
package platform
