package testcases

var lineCases = []TestCase{
	{Name: "horizontal", Width: 32, Height: 8, Op: Line{pt(2, 4), pt(29, 4)}},
	{Name: "vertical", Width: 8, Height: 32, Op: Line{pt(4, 29), pt(4, 2)}},
	{Name: "diagonal", Width: 32, Height: 32, Op: Line{pt(1, 1), pt(30, 30)}},
	{Name: "antidiagonal", Width: 32, Height: 32, Op: Line{pt(30, 1), pt(1, 30)}},
	{Name: "shallow", Width: 64, Height: 32, Op: Line{pt(3, 5), pt(60, 21)}},
	{Name: "shallow_reverse", Width: 64, Height: 32, Op: Line{pt(60, 21), pt(3, 5)}},
	{Name: "steep", Width: 32, Height: 64, Op: Line{pt(5, 3), pt(21, 60)}},
	{Name: "steep_up", Width: 32, Height: 64, Op: Line{pt(21, 3), pt(5, 60)}},
	{Name: "slope_half", Width: 8, Height: 4, Op: Line{pt(0, 0), pt(4, 2)}},
}
