// Package raster provides RGBA compositing kernels over raw pixel buffers.
//
// Buffers are 4 bytes per pixel (R, G, B, A), row-major, stride width*4,
// non-premultiplied. [NewBuffer] and [Pool] hand out buffers whose first
// byte is aligned to [Alignment]; every kernel also accepts plain byte
// slices plus explicit dimensions and never retains them past the call.
//
// Four kernel families are available:
//
//   - Fill: write one colour to every pixel
//   - Blend: Porter-Duff "over" of an overlay placed at a signed offset
//   - Blit: clipped rectangular copy without blending
//   - Resize: nearest-neighbour resampling ([FixedPoint] or [FloatingPoint])
//
// Each family has three interchangeable variants: [Portable] (scalar),
// [Wide] (8-pixel groups) and [Narrow] (4-pixel groups). For a given
// resize policy all three write byte-identical output. The package-level
// functions use [Best], the highest-priority variant the CPU supports.
// Setting ALGO_RGBA_NO_SIMD=1 or building with the purego tag pins the
// portable variant.
//
// Absent buffers return [ErrNilBuffer] and log a warning through the
// package logger (see [SetLogger]). Zero-area operations are no-ops.
package raster
