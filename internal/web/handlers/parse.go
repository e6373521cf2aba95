package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/streetdivider/internal/divider"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/ranges"
)

const maxBodyBytes = 1 << 20

// ParseHandler serves address splitting
type ParseHandler struct {
	Divider *divider.Divider
	Cache   *lru.Cache[string, divider.Location]
	Config  *Config
}

// BatchRequest is the body of POST /api/parse
type BatchRequest struct {
	Addresses []string `json:"addresses"`
}

// ParseResult is one entry of a batch reply
type ParseResult struct {
	Input    string            `json:"input"`
	Location *divider.Location `json:"location,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ExpandedLocation adds the individual house numbers of a range
type ExpandedLocation struct {
	divider.Location
	HouseNumbers []string `json:"house_numbers"`
}

// ParseOne splits the address given in ?q=. With ?expand=true a house number
// range is listed out as well.
func (h *ParseHandler) ParseOne(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "query parameter q required")
		return
	}

	loc, err := h.parse(q)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if r.URL.Query().Get("expand") == "true" {
		numbers, _ := ranges.Expand(loc.HouseNumber, loc.Affix)
		if numbers == nil {
			numbers = []string{}
		}
		writeJSON(w, http.StatusOK, ExpandedLocation{Location: loc, HouseNumbers: numbers})
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// ParseBatch splits every address of a JSON body, keeping the request order
func (h *ParseHandler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Addresses) == 0 {
		writeError(w, http.StatusBadRequest, "addresses must not be empty")
		return
	}
	if h.Config != nil && h.Config.MaxBatch > 0 && len(req.Addresses) > h.Config.MaxBatch {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("at most %d addresses per request", h.Config.MaxBatch))
		return
	}

	workers := 1
	if h.Config != nil {
		workers = h.Config.Workers
	}
	gen := h.Divider.Dictionary().Generation()
	results, err := h.Divider.ParseAll(r.Context(), req.Addresses, workers)
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			logger.Debug("batch cancelled by client", "count", len(req.Addresses))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]ParseResult, len(results))
	for i, res := range results {
		out[i] = ParseResult{Input: res.Input}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
			continue
		}
		loc := res.Location
		out[i].Location = &loc
		if h.Cache != nil {
			h.Cache.Add(CacheKey(gen, res.Input), loc)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// CacheKey tags an input with the dictionary generation it was parsed
// against, so results from before a reload are never served after it.
func CacheKey(gen uint64, input string) string {
	return strconv.FormatUint(gen, 10) + "\x00" + input
}

func (h *ParseHandler) parse(q string) (divider.Location, error) {
	key := CacheKey(h.Divider.Dictionary().Generation(), q)
	if h.Cache != nil {
		if loc, ok := h.Cache.Get(key); ok {
			return loc, nil
		}
	}
	loc, err := h.Divider.Parse(q)
	if err != nil {
		return divider.Location{}, err
	}
	if h.Cache != nil {
		h.Cache.Add(key, loc)
	}
	return loc, nil
}
