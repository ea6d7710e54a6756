package httpserver

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/apibench/internal/dataset"
)

// negotiateEncoding picks the best of offers for an Accept-Encoding header.
// Higher q wins; on a tie the earlier offer wins. q=0 excludes a coding and
// "*" covers codings not listed. Identity is returned when nothing fits.
func negotiateEncoding(header string, offers []dataset.Encoding) dataset.Encoding {
	if header == "" {
		return dataset.Identity
	}

	weights := make(map[string]float64)
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		weights[name] = parseQuality(params)
	}

	best := dataset.Identity
	bestQ := 0.0
	for _, offer := range offers {
		q, ok := weights[string(offer)]
		if !ok {
			q, ok = weights["*"]
		}
		if !ok || q <= bestQ {
			continue
		}
		best, bestQ = offer, q
	}
	return best
}

// parseQuality reads "q=0.8" out of an Accept-Encoding parameter list,
// defaulting to 1.
func parseQuality(params string) float64 {
	for _, p := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || strings.ToLower(strings.TrimSpace(key)) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || q < 0 {
			return 0
		}
		if q > 1 {
			return 1
		}
		return q
	}
	return 1
}
