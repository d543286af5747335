package insighting

import (
	"time"

	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/pkg/utils"
)

func optional(v float64) *float64 {
	return utils.OptionalFloat(v)
}

func optionalCount(c domain.Count) *int64 {
	if !c.Valid {
		return nil
	}
	v := c.Int64
	return &v
}

func toFiltersResponse(filters *domain.InsightFilters) domain.FiltersResponse {
	response := domain.FiltersResponse{}
	if filters == nil {
		return response
	}

	if filters.StartDate != nil {
		response.StartDate = filters.StartDate.Format(time.DateOnly)
	}
	if filters.EndDate != nil {
		response.EndDate = filters.EndDate.Format(time.DateOnly)
	}
	response.MinEngagementRate = filters.MinEngagementRate

	return response
}

func toPostResponse(p *domain.Post) domain.PostResponse {
	return domain.PostResponse{
		Row:            p.Row,
		Date:           p.Date.Format(time.DateOnly),
		Impressions:    optionalCount(p.Impressions),
		Likes:          optionalCount(p.Likes),
		Comments:       optionalCount(p.Comments),
		Shares:         optionalCount(p.Shares),
		Saves:          optionalCount(p.Saves),
		ProfileVisits:  optionalCount(p.ProfileVisits),
		Follows:        optionalCount(p.Follows),
		EngagementRate: optional(p.EngagementRate),
		LikeRate:       optional(p.LikeRate),
		SaveRate:       optional(p.SaveRate),
		CommentRate:    optional(p.CommentRate),
		ShareRate:      optional(p.ShareRate),
		DayOfWeek:      p.DayOfWeek,
		Month:          p.Month,
	}
}

func toPostsResponse(posts []domain.Post) []domain.PostResponse {
	response := make([]domain.PostResponse, 0, len(posts))
	for i := range posts {
		response = append(response, toPostResponse(&posts[i]))
	}
	return response
}

func toSummaryStatsResponse(stats domain.SummaryStats) domain.SummaryStatsResponse {
	return domain.SummaryStatsResponse{
		Column: string(stats.Column),
		Count:  stats.Count,
		Sum:    utils.RoundWithTwoDecimalPlace(stats.Sum),
		Mean:   optional(stats.Mean),
		Min:    optional(stats.Min),
		Max:    optional(stats.Max),
		StdDev: optional(stats.StdDev),
	}
}

func toGroupValuesResponse(groups []domain.GroupValue) []domain.GroupValueResponse {
	response := make([]domain.GroupValueResponse, 0, len(groups))
	for _, g := range groups {
		response = append(response, domain.GroupValueResponse{
			Key:   g.Key,
			Value: optional(g.Value),
			Count: g.Count,
		})
	}
	return response
}

func toHistogramResponse(bins []domain.HistogramBin) []domain.HistogramBinResponse {
	response := make([]domain.HistogramBinResponse, 0, len(bins))
	for _, b := range bins {
		response = append(response, domain.HistogramBinResponse{
			Lower: utils.RoundWithTwoDecimalPlace(b.Lower),
			Upper: utils.RoundWithTwoDecimalPlace(b.Upper),
			Count: b.Count,
		})
	}
	return response
}

func toSeriesResponse(points []domain.SeriesPoint) []domain.SeriesPointResponse {
	response := make([]domain.SeriesPointResponse, 0, len(points))
	for _, p := range points {
		response = append(response, domain.SeriesPointResponse{
			Date:  p.Date.Format(time.DateOnly),
			Value: optional(p.Value),
		})
	}
	return response
}

func toScatterResponse(points []domain.ScatterPoint) []domain.ScatterPointResponse {
	response := make([]domain.ScatterPointResponse, 0, len(points))
	for _, p := range points {
		response = append(response, domain.ScatterPointResponse{Row: p.Row, X: p.X, Y: p.Y})
	}
	return response
}

func toSourceBreakdownResponse(breakdown domain.SourceBreakdown) domain.SourceBreakdownResponse {
	response := domain.SourceBreakdownResponse{
		TotalImpressions: breakdown.TotalImpressions,
		Sources:          make([]domain.SourceShareResponse, 0, len(breakdown.Sources)),
	}
	for _, s := range breakdown.Sources {
		response.Sources = append(response.Sources, domain.SourceShareResponse{
			Source: s.Source.Header(),
			Total:  s.Total,
			Share:  optional(s.Share),
		})
	}
	return response
}

func toCorrelationResponse(matrix domain.CorrelationMatrix, filters *domain.InsightFilters) domain.CorrelationResponse {
	response := domain.CorrelationResponse{
		Columns: make([]string, 0, len(matrix.Columns)),
		Values:  make([][]*float64, 0, len(matrix.Values)),
		Filters: toFiltersResponse(filters),
	}

	for _, c := range matrix.Columns {
		response.Columns = append(response.Columns, c.Header())
	}
	for _, row := range matrix.Values {
		values := make([]*float64, 0, len(row))
		for _, v := range row {
			values = append(values, optional(v))
		}
		response.Values = append(response.Values, values)
	}

	return response
}
