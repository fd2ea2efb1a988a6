// Package guard provides test buffers that sit flush against a protected
// page, so any copy kernel that reads or writes past the end of a region
// faults immediately instead of silently corrupting neighboring memory.
//
// On non-unix platforms the allocation degrades to a plain heap buffer and
// the fault detection is lost; the functional assertions still run.
package guard
