package httpadapter

import (
	"net/http"
)

// handleStats returns the dashboard header totals: all display-eligible ads,
// distinct advertisers and the split by format. Internal errors produce
// HTTP 500. On success it writes a JSON representation of the stats.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.writeError(w, r, "stats error", err)
		return
	}
	h.writeJSON(w, r, stats)
}
