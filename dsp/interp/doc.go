// Package interp provides interpolation primitives used by the resampling
// effects.
//
//   - [Linear2]:      2-point linear interpolation
//   - [ResizeLinear]: whole-block linear resize, the 1-D case of a bilinear
//     image resize
package interp
