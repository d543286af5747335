package domain

// Estruturas de resposta do painel. Valores indefinidos viram null no JSON.

type DatasetInfoResponse struct {
	Source            string   `json:"source"`
	Rows              int      `json:"rows"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	MaxEngagementRate *float64 `json:"max_engagement_rate"`
	Columns           []string `json:"columns"`
}

type FiltersResponse struct {
	StartDate         string  `json:"start_date,omitempty"`
	EndDate           string  `json:"end_date,omitempty"`
	MinEngagementRate float64 `json:"min_engagement_rate"`
}

type KPIResponse struct {
	TotalPosts        int      `json:"total_posts"`
	TotalImpressions  float64  `json:"total_impressions"`
	AvgImpressions    *float64 `json:"avg_impressions"`
	TotalLikes        float64  `json:"total_likes"`
	AvgLikes          *float64 `json:"avg_likes"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate"`
}

type SummaryStatsResponse struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Sum    float64  `json:"sum"`
	Mean   *float64 `json:"mean"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	StdDev *float64 `json:"std_dev"`
}

type GroupValueResponse struct {
	Key   string   `json:"key"`
	Value *float64 `json:"value"`
	Count int      `json:"count"`
}

type HistogramBinResponse struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type SeriesPointResponse struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

type ScatterPointResponse struct {
	Row int     `json:"row"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

type SourceShareResponse struct {
	Source string   `json:"source"`
	Total  int64    `json:"total"`
	Share  *float64 `json:"share"`
}

type SourceBreakdownResponse struct {
	TotalImpressions int64                 `json:"total_impressions"`
	Sources          []SourceShareResponse `json:"sources"`
}

type PostResponse struct {
	Row            int      `json:"row"`
	Date           string   `json:"date"`
	Impressions    *int64   `json:"impressions"`
	Likes          *int64   `json:"likes"`
	Comments       *int64   `json:"comments"`
	Shares         *int64   `json:"shares"`
	Saves          *int64   `json:"saves"`
	ProfileVisits  *int64   `json:"profile_visits"`
	Follows        *int64   `json:"follows"`
	EngagementRate *float64 `json:"engagement_rate"`
	LikeRate       *float64 `json:"like_rate"`
	SaveRate       *float64 `json:"save_rate"`
	CommentRate    *float64 `json:"comment_rate"`
	ShareRate      *float64 `json:"share_rate"`
	DayOfWeek      string   `json:"day_of_week"`
	Month          string   `json:"month"`
}

type CorrelationResponse struct {
	Columns []string        `json:"columns"`
	Values  [][]*float64    `json:"values"`
	Filters FiltersResponse `json:"filters"`
}

type OutlierResponse struct {
	Column  string          `json:"column"`
	K       float64         `json:"k"`
	Mean    *float64        `json:"mean"`
	StdDev  *float64        `json:"std_dev"`
	Lower   *float64        `json:"lower"`
	Upper   *float64        `json:"upper"`
	High    []PostResponse  `json:"high"`
	Low     []PostResponse  `json:"low"`
	Filters FiltersResponse `json:"filters"`
}

type TopPostsResponse struct {
	Column     string          `json:"column"`
	Descending bool            `json:"descending"`
	Posts      []PostResponse  `json:"posts"`
	Filters    FiltersResponse `json:"filters"`
}

type StatsResponse struct {
	Stats   SummaryStatsResponse `json:"stats"`
	Filters FiltersResponse      `json:"filters"`
}

type DashboardResponse struct {
	Filters               FiltersResponse         `json:"filters"`
	ShowingPosts          int                     `json:"showing_posts"`
	TotalPosts            int                     `json:"total_posts"`
	KPIs                  KPIResponse             `json:"kpis"`
	ImpressionsOverTime   []SeriesPointResponse   `json:"impressions_over_time"`
	EngagementHistogram   []HistogramBinResponse  `json:"engagement_histogram"`
	TrafficSources        SourceBreakdownResponse `json:"traffic_sources"`
	ImpressionsByDay      []GroupValueResponse    `json:"impressions_by_day"`
	LikesVsImpressions    []ScatterPointResponse  `json:"likes_vs_impressions"`
	VisitsVsFollows       []ScatterPointResponse  `json:"profile_visits_vs_follows"`
	AverageEngagement     []GroupValueResponse    `json:"average_engagement"`
	TopPosts              []PostResponse          `json:"top_posts"`
	Correlation           CorrelationResponse     `json:"correlation"`
	UndefinedMetricsCount int                     `json:"undefined_metrics_count"`
}
