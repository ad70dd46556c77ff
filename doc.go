// Package scanline rasterizes lines and triangles into an in-memory
// framebuffer of packed 32-bit pixels, without anti-aliasing.
//
// Lines are drawn with Bresenham's algorithm ([LineIter]).  Triangles are
// filled scanline by scanline: the vertices are sorted by y, the triangle
// is split into a part with a flat bottom edge and a part with a flat top
// edge, and the two sloped edges of each part are walked in lock-step
// ([ScanTriangle]).
//
// Coordinates can be of any signed integer or floating point type, see
// [Coord].  The [Framebuffer] methods use int coordinates; geometry in other
// types can be converted with [ConvertPoint] and [ConvertTriangle].
package scanline
