// Package platform provides small cross-platform filesystem helpers:
// permission management and executability checks. Windows has no Unix
// permission bits, so chmod is a no-op there and executability is judged
// by file extension.
package platform
