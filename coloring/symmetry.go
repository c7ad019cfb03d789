package coloring

import (
	"math"
	"sort"

	"github.com/katalvlaran/mandala/grid"
)

// radialBins is the number of coarse radius buckets used to form
// symmetry groups.
const radialBins = 20

// minAngularBins floors the angular resolution so low slice counts
// still split a wedge into usable groups.
const minAngularBins = 5

// group is an equivalence class of regions that receive one shared
// color. radius and angle are the member means used for the radial
// coloring order.
type group struct {
	members []int32
	radius  float64
	angle   float64
}

// Symmetric colors regions so rotational counterparts share a palette
// index. Each region's centroid is expressed in polar form relative to
// the puzzle center, the angle folded into one symmetry wedge, and the
// pair quantized into radialBins × max(minAngularBins, symmetrySlices)
// bins; all regions in a bin form one group. The border region (at
// grid corner (0,0)), every lead region (adjacent to more than half of
// all other regions), and the center region (centroid nearest the
// puzzle center) are carved out as singleton groups first. Groups are
// colored in (rounded radius, folded angle) order with a rotating
// cursor, preferring the cursor color, then the first unused color
// scanning from the cursor, then the cursor color regardless.
//
// st must be the stats of the same canonical grid (one centroid per
// region). Every returned index is in [0, numColors); properness is
// best effort only.
//
// Complexity: O(V log V + E).
func Symmetric(g *grid.Grid, adj grid.Adjacency, st *grid.Stats, numColors, symmetrySlices int) []int {
	n := len(adj)
	if n == 0 {
		return nil
	}
	if numColors < 1 {
		numColors = 1
	}
	if symmetrySlices < 1 {
		symmetrySlices = 1
	}

	cx := float64(g.Width) / 2
	cy := float64(g.Height) / 2
	wedge := 2 * math.Pi / float64(symmetrySlices)
	maxRadius := math.Min(cx, cy)
	if maxRadius <= 0 {
		maxRadius = 1
	}

	radius := make([]float64, n)
	folded := make([]float64, n)
	for i := 0; i < n; i++ {
		dx := st.Centroid[i].X - cx
		dy := st.Centroid[i].Y - cy
		radius[i] = math.Hypot(dx, dy)
		a := math.Mod(math.Atan2(dy, dx), wedge)
		if a < 0 {
			a += wedge
		}
		folded[i] = a
	}

	borderID := g.At(0, 0)
	leads := leadSet(adj)

	centerID := int32(-1)
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		id := int32(i)
		if id == borderID || leads[id] {
			continue
		}
		if radius[i] < best {
			best = radius[i]
			centerID = id
		}
	}

	// Singleton groups first, then one group per occupied polar bin.
	groups := make([]group, 0, n)
	groupOf := make([]int, n)
	singleton := func(id int32) {
		groupOf[id] = len(groups)
		groups = append(groups, group{
			members: []int32{id},
			radius:  radius[id],
			angle:   folded[id],
		})
	}
	singleton(borderID)
	for i := 0; i < n; i++ {
		if id := int32(i); leads[id] && id != borderID {
			singleton(id)
		}
	}
	if centerID >= 0 {
		singleton(centerID)
	}

	angularBins := symmetrySlices
	if angularBins < minAngularBins {
		angularBins = minAngularBins
	}
	binGroup := make(map[int]int)
	for i := 0; i < n; i++ {
		id := int32(i)
		if id == borderID || id == centerID || leads[id] {
			continue
		}
		rb := int(radius[i] / maxRadius * radialBins)
		if rb >= radialBins {
			rb = radialBins - 1
		}
		ab := int(folded[i] / wedge * float64(angularBins))
		if ab >= angularBins {
			ab = angularBins - 1
		}
		key := rb*angularBins + ab
		gi, ok := binGroup[key]
		if !ok {
			gi = len(groups)
			binGroup[key] = gi
			groups = append(groups, group{})
		}
		groups[gi].members = append(groups[gi].members, id)
		groupOf[id] = gi
	}
	for gi := range groups {
		if len(groups[gi].members) <= 1 {
			continue
		}
		var rSum, aSum float64
		for _, id := range groups[gi].members {
			rSum += radius[id]
			aSum += folded[id]
		}
		m := float64(len(groups[gi].members))
		groups[gi].radius = rSum / m
		groups[gi].angle = aSum / m
	}

	// Group-level adjacency: union of member adjacencies, self-pairs
	// dropped (members of one bin may touch each other).
	groupAdj := make([]map[int]struct{}, len(groups))
	for gi := range groupAdj {
		groupAdj[gi] = make(map[int]struct{})
	}
	for i := 0; i < n; i++ {
		gi := groupOf[i]
		for nb := range adj[i] {
			if gj := groupOf[nb]; gj != gi {
				groupAdj[gi][gj] = struct{}{}
				groupAdj[gj][gi] = struct{}{}
			}
		}
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ga, gb := groups[order[a]], groups[order[b]]
		ra, rb := math.Round(ga.radius), math.Round(gb.radius)
		if ra != rb {
			return ra < rb
		}
		return ga.angle < gb.angle
	})

	groupColor := make([]int, len(groups))
	for i := range groupColor {
		groupColor[i] = -1
	}
	cursor := 0
	used := make([]bool, numColors)
	for _, gi := range order {
		for c := range used {
			used[c] = false
		}
		for nb := range groupAdj[gi] {
			if c := groupColor[nb]; c >= 0 {
				used[c] = true
			}
		}

		c := cursor % numColors
		if used[c] {
			for k := 1; k < numColors; k++ {
				if cc := (cursor + k) % numColors; !used[cc] {
					c = cc
					break
				}
			}
			// All used: c stays at the cursor color.
		}
		groupColor[gi] = c
		cursor = c + 1
	}

	colors := make([]int, n)
	for i := 0; i < n; i++ {
		colors[i] = groupColor[groupOf[i]]
	}
	return colors
}

// NonPlayable lists the region IDs excluded from interactive filling:
// the border region (at grid corner (0,0)) plus every lead/framework
// region, ascending and deduplicated.
func NonPlayable(g *grid.Grid, adj grid.Adjacency) []int32 {
	if len(adj) == 0 {
		return nil
	}
	ids := map[int32]struct{}{g.At(0, 0): {}}
	for id := range leadSet(adj) {
		ids[id] = struct{}{}
	}
	out := make([]int32, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// leadSet returns the regions adjacent to more than half of all other
// regions, the signature of thin connector structures such as
// stained-glass leads.
func leadSet(adj grid.Adjacency) map[int32]bool {
	n := len(adj)
	leads := make(map[int32]bool)
	for i := 0; i < n; i++ {
		if 2*len(adj[i]) > n-1 {
			leads[int32(i)] = true
		}
	}
	return leads
}
