package testcases

var triangleCases = []TestCase{
	{Name: "top_flat_fill", Width: 64, Height: 64, Op: Fill{tri(8, 10, 56, 10, 30, 54)}},
	{Name: "top_flat_outline", Width: 64, Height: 64, Op: Outline{tri(8, 10, 56, 10, 30, 54)}},
	{Name: "bottom_flat_fill", Width: 64, Height: 64, Op: Fill{tri(32, 6, 60, 50, 4, 50)}},
	{Name: "bottom_flat_outline", Width: 64, Height: 64, Op: Outline{tri(32, 6, 60, 50, 4, 50)}},
	{Name: "split_left_fill", Width: 64, Height: 64, Op: Fill{tri(10, 4, 58, 30, 20, 60)}},
	{Name: "split_right_fill", Width: 64, Height: 64, Op: Fill{tri(50, 4, 6, 26, 40, 60)}},
	{Name: "thin_fill", Width: 64, Height: 16, Op: Fill{tri(1, 2, 62, 9, 3, 4)}},
	{Name: "tall_fill", Width: 16, Height: 64, Op: Fill{tri(7, 1, 9, 62, 12, 30)}},
	{Name: "small_fill", Width: 6, Height: 6, Op: Fill{tri(0, 0, 4, 0, 2, 4)}},

	// the scene shown by cmd/scanview
	{Name: "demo_outline", Width: 800, Height: 600, Op: Outline{tri(50, 50, 100, 400, 500, 500)}},
	{Name: "demo_fill", Width: 800, Height: 600, Op: Fill{tri(50, 50, 100, 400, 500, 500)}},
}
