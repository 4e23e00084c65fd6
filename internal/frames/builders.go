package frames

import (
	"github.com/soniakeys/unit"
)

// Obliquity returns the obliquity of the ecliptic at the given Julian
// Day, using the fixed-epoch linear approximation. No nutation.
func Obliquity(jd float64) unit.Angle {
	deg := 23.4393 - 3.563e-7*(jd-2451543.5)
	return unit.AngleFromDeg(deg)
}

// EquToHorMat builds the equatorial-to-horizontal rotation for a local
// sidereal time (as an angle) and an observer latitude. Horizontal
// longitude is azimuth measured from north through east; horizontal
// latitude is altitude.
func EquToHorMat(st, lat unit.Angle) Mat3 {
	sst, cst := st.Sincos()
	slat, clat := lat.Sincos()
	return Mat3{
		{-slat * cst, -slat * sst, clat},
		{-sst, cst, 0},
		{clat * cst, clat * sst, slat},
	}
}

// HorToEquMat is the inverse of EquToHorMat: the transpose.
func HorToEquMat(st, lat unit.Angle) Mat3 {
	return EquToHorMat(st, lat).Transpose()
}

// EquToEclMat builds the equatorial-to-ecliptic rotation for the given
// Julian Day, a rotation about the x axis by the obliquity.
func EquToEclMat(jd float64) Mat3 {
	se, ce := Obliquity(jd).Sincos()
	return Mat3{
		{1, 0, 0},
		{0, ce, se},
		{0, -se, ce},
	}
}

// EclToEquMat is the inverse of EquToEclMat: the transpose.
func EclToEquMat(jd float64) Mat3 {
	return EquToEclMat(jd).Transpose()
}

// equGal is the fixed J2000 equatorial-to-galactic rotation. The values
// follow from the adopted galactic pole and zero point and are copied,
// not derived.
var equGal = Mat3{
	{-0.054876, -0.873437, -0.483835},
	{+0.494109, -0.444830, +0.746982},
	{-0.867666, -0.198076, +0.455984},
}

// EquToGalMat returns the equatorial-to-galactic rotation. It has no
// time or location dependence.
func EquToGalMat() Mat3 {
	return equGal
}

// GalToEquMat is the inverse of EquToGalMat: the transpose.
func GalToEquMat() Mat3 {
	return equGal.Transpose()
}

// The Vec3 methods below are the one-shot forms of the matrix builders,
// for callers transforming a single point.

// EquToHor converts an equatorial vector to horizontal coordinates.
func (v Vec3) EquToHor(st, lat unit.Angle) Vec3 {
	return EquToHorMat(st, lat).MulVec(v)
}

// HorToEqu converts a horizontal vector to equatorial coordinates.
func (v Vec3) HorToEqu(st, lat unit.Angle) Vec3 {
	return HorToEquMat(st, lat).MulVec(v)
}

// EquToEcl converts an equatorial vector to ecliptic coordinates.
func (v Vec3) EquToEcl(jd float64) Vec3 {
	return EquToEclMat(jd).MulVec(v)
}

// EclToEqu converts an ecliptic vector to equatorial coordinates.
func (v Vec3) EclToEqu(jd float64) Vec3 {
	return EclToEquMat(jd).MulVec(v)
}

// EquToGal converts an equatorial vector to galactic coordinates.
func (v Vec3) EquToGal() Vec3 {
	return EquToGalMat().MulVec(v)
}

// GalToEqu converts a galactic vector to equatorial coordinates.
func (v Vec3) GalToEqu() Vec3 {
	return GalToEquMat().MulVec(v)
}

// Altitude returns the altitude of an equatorial direction for the
// given local sidereal time and latitude, without building the full
// horizontal vector at the call site.
func Altitude(ra unit.RA, dec unit.Angle, st, lat unit.Angle) unit.Angle {
	v := Sphere(unit.Angle(ra), dec).EquToHor(st, lat)
	return v.Lat()
}
