package extract

import (
	"github.com/ternarybob/doceo/internal/models"
)

// ResolveRange maps an optional 1-indexed inclusive page range onto a
// half-open 0-indexed iteration range over a document with totalPages pages.
// A nil range selects the whole document. Out-of-bounds requests are clamped
// silently rather than rejected: a range entirely beyond the end of the
// document yields an empty iteration range. Requesting pages 66-100 of a
// 50-page document returns (50, 50); of a 200-page document, (65, 100).
func ResolveRange(totalPages int, r *models.PageRange) (startIdx, endIdx int) {
	if totalPages < 0 {
		totalPages = 0
	}
	if r == nil {
		return 0, totalPages
	}

	startIdx = clamp(r.Start-1, 0, totalPages)
	endIdx = clamp(r.End, 0, totalPages)
	if endIdx < startIdx {
		endIdx = startIdx
	}
	return startIdx, endIdx
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
