package maze

// Center translates path in place so that its smallest x and y are both 1,
// leaving a one-cell wall along the grid origin.
func Center(path Path) {
	if len(path) == 0 {
		return
	}
	minX, minY, _, _ := path.Bounds()
	d := Cell{X: 1 - minX, Y: 1 - minY}
	for i := range path {
		path[i] = path[i].Add(d)
	}
}
