package client

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestStat is one row of the request counter.
type RequestStat struct {
	Method string
	Code   string
	Count  float64
}

// RequestStats reads the request counter back from g, sorted by method then
// code.
func RequestStats(g prometheus.Gatherer) ([]RequestStat, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var stats []RequestStat
	for _, mf := range families {
		if mf.GetName() != "netflex_api_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := RequestStat{Count: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "method":
					s.Method = lp.GetValue()
				case "code":
					s.Code = lp.GetValue()
				}
			}
			stats = append(stats, s)
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Method != stats[j].Method {
			return stats[i].Method < stats[j].Method
		}
		return stats[i].Code < stats[j].Code
	})
	return stats, nil
}
