package models

// LeadMetrics is the point-in-time dashboard snapshot. The four counts are
// independent queries over different scopes; no ordering between them holds.
type LeadMetrics struct {
	TotalLeads        int64 `json:"totalLeads"`
	NewToday          int64 `json:"newToday"`
	ConvertedThisWeek int64 `json:"convertedThisWeek"`
	LostThisMonth     int64 `json:"lostThisMonth"`
}

// MetricsTrends holds the signed percentage change of each snapshot metric
// against its matched previous period.
type MetricsTrends struct {
	TotalLeadsTrend    int `json:"totalLeadsTrend"`
	NewTodayTrend      int `json:"newTodayTrend"`
	ConvertedWeekTrend int `json:"convertedWeekTrend"`
	LostMonthTrend     int `json:"lostMonthTrend"`
}

type MonthlyMetrics struct {
	TotalLeadsThisMonth int64 `json:"totalLeadsThisMonth"`
	NewLeadsThisMonth   int64 `json:"newLeadsThisMonth"`
	ConvertedThisMonth  int64 `json:"convertedThisMonth"`
	LostThisMonth       int64 `json:"lostThisMonth"`
}

type StatusCount struct {
	Status string `bson:"status" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

type SourceCount struct {
	Source string `bson:"source" json:"source"`
	Count  int64  `bson:"count" json:"count"`
}

// ConversionPoint is one calendar day of converted-lead counts.
type ConversionPoint struct {
	Date  string `bson:"date" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// AnalyticsSummary is the dashboard breakdown returned by the summary
// endpoint. Unlike the period-filtered endpoints, its breakdowns are always
// all-time counts.
type AnalyticsSummary struct {
	Metrics  *LeadMetrics  `json:"metrics"`
	ByStatus []StatusCount `json:"byStatus"`
	BySource []SourceCount `json:"bySource"`
}
