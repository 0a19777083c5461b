package renderer

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int // Total number of pixels rendered
	HitCount    int // Rays that struck an object
	MissCount   int // Rays that left the scene (background pixels)
}

// merge accumulates statistics from another band into this one
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitCount += other.HitCount
	rs.MissCount += other.MissCount
}
