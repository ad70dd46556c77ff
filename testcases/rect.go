package testcases

var rectCases = []TestCase{
	{Name: "small", Width: 10, Height: 10, Op: Rect{pt(2, 2), pt(3, 3)}},
	{Name: "full", Width: 16, Height: 12, Op: Rect{pt(0, 0), pt(16, 12)}},
	{Name: "row", Width: 16, Height: 12, Op: Rect{pt(3, 11), pt(13, 1)}},
	{Name: "column", Width: 16, Height: 12, Op: Rect{pt(15, 0), pt(1, 12)}},
}
