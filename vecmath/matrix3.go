// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "errors"

// Matrix3 is a 3x3 matrix organized internally as a column-major array,
// used for inertia tensors and rotation matrices.
type Matrix3 [9]float32

// NewMatrix3 creates and returns a pointer to a new Matrix3 initialized
// as the identity matrix.
func NewMatrix3() *Matrix3 {

	var m Matrix3
	m.Identity()
	return &m
}

// NewDiagonalMatrix3 creates a diagonal matrix with the specified values
// on its main diagonal, as used for inertia tensors of symmetric shapes.
func NewDiagonalMatrix3(x, y, z float32) *Matrix3 {

	m := NewMatrix3()
	m.Set(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
	return m
}

// Set sets all elements of this matrix, row by row starting at row1.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) *Matrix3 {

	m[0], m[3], m[6] = n11, n12, n13
	m[1], m[4], m[7] = n21, n22, n23
	m[2], m[5], m[8] = n31, n32, n33
	return m
}

// Identity sets this matrix to the identity matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Identity() *Matrix3 {

	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
	return m
}

// Zero sets all elements of this matrix to zero.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Zero() *Matrix3 {

	*m = Matrix3{}
	return m
}

// Copy copies src into this matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Copy(src *Matrix3) *Matrix3 {

	*m = *src
	return m
}

// MultiplyScalar multiplies each element of this matrix by s.
// Returns the pointer to this updated matrix.
func (m *Matrix3) MultiplyScalar(s float32) *Matrix3 {

	for i := range m {
		m[i] *= s
	}
	return m
}

// MultiplyMatrices sets this matrix to the product a*b.
// Returns the pointer to this updated matrix.
func (m *Matrix3) MultiplyMatrices(a, b *Matrix3) *Matrix3 {

	var r Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += a[k*3+row] * b[col*3+k]
			}
			r[col*3+row] = sum
		}
	}
	*m = r
	return m
}

// Determinant returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {

	return m[0]*m[4]*m[8] -
		m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6]
}

// GetInverse sets this matrix to the inverse of src.
// If src cannot be inverted, this matrix is set to the identity and
// an error is returned.
func (m *Matrix3) GetInverse(src *Matrix3) error {

	n11, n21, n31 := src[0], src[1], src[2]
	n12, n22, n32 := src[3], src[4], src[5]
	n13, n23, n33 := src[6], src[7], src[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if det == 0 {
		m.Identity()
		return errors.New("vecmath: cannot invert singular Matrix3")
	}

	invDet := 1 / det
	m[0] = t11 * invDet
	m[1] = (n31*n23 - n33*n21) * invDet
	m[2] = (n32*n21 - n31*n22) * invDet
	m[3] = t12 * invDet
	m[4] = (n33*n11 - n31*n13) * invDet
	m[5] = (n31*n12 - n32*n11) * invDet
	m[6] = t13 * invDet
	m[7] = (n21*n13 - n23*n11) * invDet
	m[8] = (n22*n11 - n21*n12) * invDet
	return nil
}

// Transpose transposes this matrix in place.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Transpose() *Matrix3 {

	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Clone returns a pointer to a copy of this matrix.
func (m *Matrix3) Clone() *Matrix3 {

	c := *m
	return &c
}

// IsIsotropic returns whether this matrix is a uniform scaling of the
// identity (within tolerance), used by Body to skip the R*I*Rt recompute
// for shapes like Sphere whose inertia is already rotation-invariant.
func (m *Matrix3) IsIsotropic() bool {

	const tol = 1e-6
	return AlmostEqual(m[0], m[4], tol) && AlmostEqual(m[4], m[8], tol) &&
		Abs(m[1]) < tol && Abs(m[2]) < tol && Abs(m[3]) < tol &&
		Abs(m[5]) < tol && Abs(m[6]) < tol && Abs(m[7]) < tol
}
