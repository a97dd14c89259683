package cluster

import (
	"math"
	"sort"
)

// Point is a laid-out node position.
type Point struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Bin is one occupied grid cell.
type Bin struct {
	Col int      `json:"col"`
	Row int      `json:"row"`
	IDs []string `json:"ids"`
	// CX, CY is the mean position of the cell's points.
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
}

// Placement is where to draw one cluster's labels.
type Placement struct {
	ClusterID string `json:"clusterId"`
	Bins      []Bin  `json:"bins"`
}

// Placements bins each cluster's members by position, in cluster order.
// Members without a position are skipped and clusters with no positioned
// member are omitted.
func Placements(clusters []Cluster, positions map[string]Point, cell float64) []Placement {
	var out []Placement
	for _, c := range clusters {
		pts := make([]Point, 0, len(c.MemberIDs))
		for _, id := range c.MemberIDs {
			if p, ok := positions[id]; ok {
				p.ID = id
				pts = append(pts, p)
			}
		}
		if bins := Bins(pts, cell); len(bins) > 0 {
			out = append(out, Placement{ClusterID: c.ID, Bins: bins})
		}
	}
	return out
}

// Bins groups points into square cells of side cell, anchored at the
// bounding box's minimum corner. Each axis is offset by its own minimum.
// Cells are returned row-major; empty cells are omitted. A non-positive cell
// size or no points yields nil.
func Bins(points []Point, cell float64) []Bin {
	if len(points) == 0 || cell <= 0 || math.IsNaN(cell) {
		return nil
	}
	minX, minY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}

	type cellKey struct{ col, row int }
	cells := make(map[cellKey]*Bin)
	for _, p := range points {
		k := cellKey{
			col: int(math.Floor((p.X - minX) / cell)),
			row: int(math.Floor((p.Y - minY) / cell)),
		}
		b, ok := cells[k]
		if !ok {
			b = &Bin{Col: k.col, Row: k.row}
			cells[k] = b
		}
		b.IDs = append(b.IDs, p.ID)
		b.CX += p.X
		b.CY += p.Y
	}

	out := make([]Bin, 0, len(cells))
	for _, b := range cells {
		n := float64(len(b.IDs))
		b.CX /= n
		b.CY /= n
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
