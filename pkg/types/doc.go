// Package types defines the core types and interfaces shared by robe's
// packages: the filesystem abstraction every engine runs against, the
// parsed <target>/<profile> reference, and the result structures the
// commands hand to the renderers.
package types
