package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"log/slog"

	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/entity"
)

var searchQueryHeaders = []string{"Campaign", "Ad group", "Search term", "Clicks", "Impressions", "Cost"}

// normalizeTerm makes search-term comparison case-insensitive. This is the
// only place grouping keys are normalized; all other reports use keys
// verbatim.
func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// SearchQueries finds search terms that appeared in the recent window but
// nowhere in the history window, and writes them grouped by campaign. An
// empty recent window or an empty difference is a valid terminal state with
// no sink writes.
func (s *Service) SearchQueries(ctx context.Context, dr entity.DateRange) error {
	recentQ := ads.NewQuery("search_term_view", "search_term_view.search_term", "campaign.name", "ad_group.name").
		Select(metricFields...).
		During(dr)
	s.applyFilters(recentQ)

	recent, err := s.src.Search(ctx, recentQ.String())
	if err != nil {
		return fmt.Errorf("recent search terms query failed: %w", err)
	}
	if len(recent) == 0 {
		slog.Default().InfoContext(ctx, "no search terms in recent window, skipping")
		return nil
	}

	historyDays := s.c.HistoryDays
	if historyDays <= 0 {
		historyDays = defaultHistoryDays
	}
	historyQ := ads.NewQuery("search_term_view", "search_term_view.search_term").
		During(dr.Back(historyDays))

	history, err := s.src.Search(ctx, historyQ.String())
	if err != nil {
		return fmt.Errorf("historical search terms query failed: %w", err)
	}

	known := make(map[string]bool, len(history))
	for _, r := range history {
		known[normalizeTerm(r.Str("searchTermView.searchTerm"))] = true
	}

	var fresh []entity.RawRecord
	for _, r := range recent {
		if !known[normalizeTerm(r.Str("searchTermView.searchTerm"))] {
			fresh = append(fresh, r)
		}
	}
	if len(fresh) == 0 {
		slog.Default().InfoContext(ctx, "no new search queries found, skipping",
			slog.Int("recent_terms", len(recent)))
		return nil
	}

	rows := groupByCampaign(fresh)

	slog.Default().InfoContext(ctx, "new search queries found",
		slog.Int("count", len(fresh)))

	return s.sink.WriteReport(ctx, sheetName(s.c.Sheets.SearchQueries, "New search queries"), searchQueryHeaders, rows, nil)
}

// groupByCampaign buckets records by campaign name, orders campaigns by
// total clicks descending (name ascending on ties) and re-sorts each
// campaign's records by clicks descending.
func groupByCampaign(records []entity.RawRecord) [][]interface{} {
	type group struct {
		name   string
		clicks int64
		items  []entity.RawRecord
	}

	index := make(map[string]*group)
	var groups []*group
	for _, r := range records {
		name := r.Str("campaign.name")
		g, ok := index[name]
		if !ok {
			g = &group{name: name}
			index[name] = g
			groups = append(groups, g)
		}
		g.clicks += r.Int64("metrics.clicks")
		g.items = append(g.items, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].clicks != groups[j].clicks {
			return groups[i].clicks > groups[j].clicks
		}
		return groups[i].name < groups[j].name
	})

	var rows [][]interface{}
	for _, g := range groups {
		sort.SliceStable(g.items, func(i, j int) bool {
			return g.items[i].Int64("metrics.clicks") > g.items[j].Int64("metrics.clicks")
		})
		for _, r := range g.items {
			cost := aggregate.MicrosToUnits(r.Int64("metrics.costMicros"))
			rows = append(rows, []interface{}{
				g.name,
				r.Str("adGroup.name"),
				r.Str("searchTermView.searchTerm"),
				r.Int64("metrics.clicks"),
				r.Int64("metrics.impressions"),
				cost.InexactFloat64(),
			})
		}
	}
	return rows
}
