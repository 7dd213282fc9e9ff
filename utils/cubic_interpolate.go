// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fractional position x, where x=0 lands on y1 and x=1 on y2.
// y0 and y3 shape the curve on either side of that interval.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := 0.5 * (y2 - y0)
	a3 := y1

	return ((a0*x+a1)*x+a2)*x + a3
}
