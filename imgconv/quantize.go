package imgconv

import (
	"image"
	"math"
	"sort"

	"github.com/katalvlaran/mandala/palette"
)

// quantize reduces img to at most numColors colors via median cut: the
// box with the widest channel range is repeatedly split at the value
// boundary nearest the pixel-count median of that channel, so pixels
// with equal channel values (and therefore identical colors) always
// stay in one box. It returns the palette (box mean colors, in box
// creation order) and the per-pixel palette index in row-major order.
// The palette is shorter than numColors only when the image holds
// fewer distinct colors.
func quantize(img *image.NRGBA, numColors int) ([]palette.Color, []int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	n := w * h

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	boxes := [][]int{all}

	for len(boxes) < numColors {
		bi, ch := widestBox(img, boxes)
		if bi < 0 {
			break
		}
		box := boxes[bi]
		sort.Slice(box, func(a, b int) bool {
			va, vb := img.Pix[box[a]*4+ch], img.Pix[box[b]*4+ch]
			if va != vb {
				return va < vb
			}
			return box[a] < box[b]
		})
		mid := splitPoint(img, box, ch)
		boxes[bi] = box[:mid]
		boxes = append(boxes, box[mid:])
	}

	pal := make([]palette.Color, len(boxes))
	indexed := make([]int, n)
	for bi, box := range boxes {
		var sr, sg, sb float64
		for _, i := range box {
			sr += float64(img.Pix[i*4])
			sg += float64(img.Pix[i*4+1])
			sb += float64(img.Pix[i*4+2])
			indexed[i] = bi
		}
		cnt := float64(len(box))
		pal[bi] = palette.Color{
			uint8(math.Round(sr / cnt)),
			uint8(math.Round(sg / cnt)),
			uint8(math.Round(sb / cnt)),
		}
	}
	return pal, indexed
}

// splitPoint returns the cut position for a channel-sorted box: the
// pixel-count median moved forward to the next change in channel
// value, falling back to the change before the median when the upper
// half is one long run. The box's channel range is known to be
// non-zero, so a cut with both halves non-empty always exists.
func splitPoint(img *image.NRGBA, box []int, ch int) int {
	val := func(i int) uint8 { return img.Pix[box[i]*4+ch] }

	mid := len(box) / 2
	for mid < len(box) && val(mid) == val(mid-1) {
		mid++
	}
	if mid < len(box) {
		return mid
	}
	mid = len(box) / 2
	for mid > 1 && val(mid-1) == val(mid-2) {
		mid--
	}
	return mid - 1
}

// widestBox returns the index of the box with the largest single
// channel range and that channel (0=R, 1=G, 2=B), or (-1, 0) when no
// box is splittable.
func widestBox(img *image.NRGBA, boxes [][]int) (int, int) {
	bestBox, bestCh, bestRange := -1, 0, 0
	for bi, box := range boxes {
		if len(box) < 2 {
			continue
		}
		for ch := 0; ch < 3; ch++ {
			lo, hi := 255, 0
			for _, i := range box {
				v := int(img.Pix[i*4+ch])
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			if hi-lo > bestRange {
				bestBox, bestCh, bestRange = bi, ch, hi-lo
			}
		}
	}
	return bestBox, bestCh
}
