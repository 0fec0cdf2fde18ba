// Package paraxial computes first-order imaging properties of thin-lens
// systems using ray transfer (ABCD) matrices. Everything lives in the 2D
// meridional plane: the optical axis is z, ray height is y, and slopes are
// small-angle tangents. The package is a pure computation engine; drawing
// and interaction belong to its callers.
package paraxial

type Real = float64
