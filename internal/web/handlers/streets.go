package handlers

import (
	"context"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/streetdivider/internal/divider"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/normalize"
)

// StreetLoader fetches the current list of special streets
type StreetLoader func(ctx context.Context) ([]string, error)

// StreetsHandler exposes the special street dictionary
type StreetsHandler struct {
	Divider *divider.Divider
	Cache   *lru.Cache[string, divider.Location]
	Load    StreetLoader
}

// LookupResponse describes how a name relates to the dictionary
type LookupResponse struct {
	Query    string   `json:"query"`
	Key      string   `json:"key"`
	Matching string   `json:"matching"`
	Prefixes []string `json:"prefixes"`
	Size     int      `json:"size"`
}

// ReloadResponse reports the dictionary size after a reload
type ReloadResponse struct {
	Size int `json:"size"`
}

// Lookup reports whether ?prefix= is a special street, starts one, or is
// itself started by one
func (h *StreetsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("prefix")
	dict := h.Divider.Dictionary()
	key := normalize.StreetKey(q)

	limit := parseIntParam(r.URL.Query().Get("limit"), 10)
	prefixes := dict.PrefixesOf(key)
	if limit >= 0 && len(prefixes) > limit {
		prefixes = prefixes[:limit]
	}
	if prefixes == nil {
		prefixes = []string{}
	}

	writeJSON(w, http.StatusOK, LookupResponse{
		Query:    q,
		Key:      key,
		Matching: dict.Search(key).String(),
		Prefixes: prefixes,
		Size:     dict.Size(),
	})
}

// Reload replaces the dictionary with a fresh list and drops cached results
func (h *StreetsHandler) Reload(w http.ResponseWriter, r *http.Request) {
	names, err := h.Load(r.Context())
	if err != nil {
		logger.Error("reloading special streets failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.Divider.Dictionary().Replace(divider.Keys(names))
	if h.Cache != nil {
		h.Cache.Purge()
	}
	logger.Info("special streets reloaded", "count", len(names))

	writeJSON(w, http.StatusOK, ReloadResponse{Size: h.Divider.Dictionary().Size()})
}

// Health answers liveness probes
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
