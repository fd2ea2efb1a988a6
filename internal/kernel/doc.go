// Package kernel implements the word-at-a-time memory copy, move, and fill
// cores behind the public memkit API.
//
// # Design
//
// The kernels target scalar-register hardware where unaligned word access is
// slow or faults. A copy proceeds in up to three phases:
//
//   - byte copy until the destination pointer reaches a word boundary
//   - word copy: direct load/store when source and destination share an
//     alignment, or a shifted-word merge of two adjacent aligned source
//     words when they do not
//   - byte copy of the sub-word remainder
//
// On architectures that tolerate misaligned word access
// (EfficientUnalignedAccess), the alignment fixup and the shifted-word path
// are compiled out entirely and the word loop runs on raw, possibly
// misaligned addresses.
//
// The shifted-word merge assembles each output word with bit shifts and is
// valid only under little-endian byte order. On big-endian targets the
// mismatched-alignment case degrades to the byte remainder loop.
//
// # Safety
//
// All pointer arithmetic and byte/word reinterpretation is confined to
// cast.go. The kernels perform no bounds checks: callers own the validity of
// (pointer, length) pairs, and only Memmove tolerates overlapping regions.
package kernel
