package citygen

const (
	DefaultSmoothThreshold = 0.4
	DefaultSmoothRadius    = 1
	DefaultSmoothTimes     = 1
)

// SmoothTiles replaces each tile with the most common type in the square of
// the given radius around it (itself included), if that type makes up at
// least threshold of the in-bounds tiles. This runs `times` passes, each
// reading only the output of the previous pass.
//
// The input is never modified; times <= 0 returns a copy of it.
func SmoothTiles(tiles TileGrid, threshold float64, radius, times int) TileGrid {
	current := tiles.Clone()
	for pass := 0; pass < times; pass++ {
		current = smoothPass(current, threshold, radius)
	}
	return current
}

// smoothPass runs one smoothing pass into a new grid
func smoothPass(tiles TileGrid, threshold float64, radius int) TileGrid {
	out := make(TileGrid, len(tiles))

	counts := map[string]int{}
	order := []string{}

	for x := range tiles {
		out[x] = make([]string, len(tiles[x]))
		for y := range tiles[x] {
			for k := range counts {
				delete(counts, k)
			}
			order = order[:0]
			total := 0

			for dx := x - radius; dx <= x+radius; dx++ {
				for dy := y - radius; dy <= y+radius; dy++ {
					if !tiles.InBounds(dx, dy) {
						continue
					}
					t := tiles[dx][dy]
					if _, ok := counts[t]; !ok {
						order = append(order, t)
					}
					counts[t]++
					total++
				}
			}

			// ties go to whichever type was seen first
			best, bestCount := "", 0
			for _, t := range order {
				if counts[t] > bestCount {
					best, bestCount = t, counts[t]
				}
			}

			if total > 0 && float64(bestCount)/float64(total) >= threshold {
				out[x][y] = best
			} else {
				out[x][y] = tiles[x][y]
			}
		}
	}

	return out
}
