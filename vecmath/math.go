// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath implements the float32 vector, quaternion, matrix and
// transform primitives used throughout the engine: Vec3, Quaternion,
// Matrix3, Box3, Ray and Transform3d.
package vecmath

import "math"

const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = math.Pi
	// Deg2Rad is the conversion factor from degrees to radians.
	Deg2Rad = Pi / 180
	// Rad2Deg is the conversion factor from radians to degrees.
	Rad2Deg = 180 / Pi
)

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return float32(math.Abs(float64(x))) }

// Sin returns the sine of x (radians).
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Acos returns the arccosine of x, in radians.
func Acos(x float32) float32 { return float32(math.Acos(float64(x))) }

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the correct quadrant.
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

// Pow returns x**y.
func Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 { return float32(math.Inf(sign)) }

// Clamp restricts x to the closed interval [min, max].
func Clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// AlmostEqual returns whether a and b differ by less than tolerance.
func AlmostEqual(a, b, tolerance float32) bool {
	return Abs(a-b) < tolerance
}
