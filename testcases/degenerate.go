package testcases

var degenerateCases = []TestCase{
	{Name: "point_line", Width: 8, Height: 8, Op: Line{pt(3, 3), pt(3, 3)}},
	{Name: "point_fill", Width: 8, Height: 8, Op: Fill{tri(3, 3, 3, 3, 3, 3)}},
	{Name: "zero_height_fill", Width: 16, Height: 8, Op: Fill{tri(1, 4, 14, 4, 7, 4)}},
	{Name: "zero_height_outline", Width: 16, Height: 8, Op: Outline{tri(1, 4, 14, 4, 7, 4)}},
	{Name: "vertical_fill", Width: 8, Height: 16, Op: Fill{tri(3, 1, 3, 14, 3, 7)}},
	{Name: "collinear_fill", Width: 16, Height: 16, Op: Fill{tri(1, 1, 14, 14, 7, 7)}},
	{Name: "coincident_fill", Width: 16, Height: 16, Op: Fill{tri(2, 2, 2, 2, 12, 13)}},
	{Name: "empty_rect", Width: 8, Height: 8, Op: Rect{pt(2, 2), pt(0, 5)}},
}
