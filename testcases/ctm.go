package testcases

import (
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x_fill",
		Width:  64,
		Height: 64,
		Op:     Fill{tri(0, 0, 20, 0, 10, 20)},
		CTM:    matrix.Matrix{2, 0, 0, 2, 10, 10},
	},
	{
		Name:   "rotate_30_fill",
		Width:  64,
		Height: 64,
		Op:     Fill{tri(-15, -10, 15, -10, 0, 18)},
		CTM:    rotateAbout(30, 32, 32),
	},
	{
		Name:   "rotate_30_outline",
		Width:  64,
		Height: 64,
		Op:     Outline{tri(-15, -10, 15, -10, 0, 18)},
		CTM:    rotateAbout(30, 32, 32),
	},
	{
		Name:   "rotate_100_fill",
		Width:  64,
		Height: 64,
		Op:     Fill{tri(-25, -5, 20, -12, 3, 22)},
		CTM:    rotateAbout(100, 32, 32),
	},
	{
		Name:   "rotate_45_line",
		Width:  64,
		Height: 64,
		Op:     Line{pt(-20, 0), pt(20, 0)},
		CTM:    rotateAbout(45, 32, 32),
	},
	{
		Name:   "shear_fill",
		Width:  64,
		Height: 64,
		Op:     Fill{tri(0, 0, 30, 0, 0, 30)},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 10, 20},
	},
}

// rotateAbout returns a rotation by deg degrees, followed by a translation
// which moves the origin to (cx, cy).
func rotateAbout(deg, cx, cy float64) matrix.Matrix {
	m := matrix.RotateDeg(deg)
	m[4], m[5] = cx, cy
	return m
}
