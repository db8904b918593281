package flycam

// sortingTriangle is used specifically for sorting triangles when rendering. Less data means more data fits in cache,
// which means sorting is faster.
type sortingTriangle struct {
	depth       float64
	vertexIndex int // Index of the triangle's first vertex in the renderer's projected vertex buffer
}

// sortingTriangleBucket sorts triangles approximately by depth, by dropping them into evenly sized depth bins.
// Triangles in the same bin keep their submission order.
type sortingTriangleBucket struct {
	bins     [][]sortingTriangle
	unsorted []sortingTriangle
}

func newSortingTriangleBucket(binCount int) *sortingTriangleBucket {
	return &sortingTriangleBucket{
		bins: make([][]sortingTriangle, binCount),
	}
}

func (s *sortingTriangleBucket) AddTriangle(vertexIndex int, depth float64) {
	s.unsorted = append(s.unsorted, sortingTriangle{depth: depth, vertexIndex: vertexIndex})
}

// Sort distributes the added triangles into the bins, with minRange and maxRange being the nearest and farthest depths.
func (s *sortingTriangleBucket) Sort(minRange, maxRange float64) {

	binCount := len(s.bins)
	rangeDiff := maxRange - minRange

	if rangeDiff == 0 {
		rangeDiff = 0.001
	}

	for _, tri := range s.unsorted {

		targetBin := 0

		if binCount > 1 {
			depth := (tri.depth - minRange) / rangeDiff * float64(binCount)
			targetBin = int(clamp(depth, 0, float64(binCount-1)))
		}

		s.bins[targetBin] = append(s.bins[targetBin], tri)

	}

	s.unsorted = s.unsorted[:0]

}

func (s *sortingTriangleBucket) Clear() {
	for i := range s.bins {
		s.bins[i] = s.bins[i][:0]
	}
	s.unsorted = s.unsorted[:0]
}

// ForEachBackToFront calls forEach for every sorted triangle, farthest bin first.
func (s *sortingTriangleBucket) ForEachBackToFront(forEach func(vertexIndex int)) {
	for binIndex := len(s.bins) - 1; binIndex >= 0; binIndex-- {
		for _, tri := range s.bins[binIndex] {
			forEach(tri.vertexIndex)
		}
	}
}

func (s *sortingTriangleBucket) IsEmpty() bool {
	for _, bin := range s.bins {
		if len(bin) > 0 {
			return false
		}
	}
	return len(s.unsorted) == 0
}
