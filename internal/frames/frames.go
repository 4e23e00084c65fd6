// Package frames implements rotation-matrix transforms between the
// equatorial, horizontal, ecliptic, and galactic coordinate frames.
//
// Transforms come in two shapes: a Mat3 builder for callers converting
// many points under the same parameters, and one-shot Vec3 methods for
// single conversions. Both use the column-vector convention
// result = M * v, and each forward/inverse builder pair are transposes
// of each other.
package frames

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

// Vec3 is a point on (or near) the unit celestial sphere.
type Vec3 struct {
	X, Y, Z float64
}

// Sphere returns the unit vector at spherical (lon, lat).
func Sphere(lon, lat unit.Angle) Vec3 {
	slon, clon := lon.Sincos()
	slat, clat := lat.Sincos()
	return Vec3{
		X: clat * clon,
		Y: clat * slon,
		Z: slat,
	}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lon returns the spherical longitude of the vector in [0, 2pi).
// At the poles (x = y = 0) it returns 0 by the atan2 convention.
func (v Vec3) Lon() unit.Angle {
	return unit.Angle(astromath.Mod(math.Atan2(v.Y, v.X), astromath.TwoPi))
}

// Lat returns the spherical latitude of the vector. The vector need not
// be unit length; the latitude is measured against its actual norm.
// A zero vector yields latitude 0.
func (v Vec3) Lat() unit.Angle {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return unit.Angle(math.Asin(v.Z / r))
}

// Mat3 is a 3x3 rotation matrix, row-major.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec applies the matrix to a vector: result = m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Transpose returns the transpose of the matrix. For the rotation
// matrices built in this package the transpose is the inverse.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}
