package services

import (
	"context"
	"fmt"
	"time"

	"leadcrm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService computes dashboard metrics, trends and chart groupings over
// the lead collection. Every composite computation fans its counts out
// concurrently and fails whole: there is no partial-success mode, so one
// failed sub-query aborts the entire call.
type AnalyticsService struct {
	*BaseService
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		BaseService: NewBaseService(),
	}
}

// countLeads runs one user-scoped count with the given extra filter.
func (as *AnalyticsService) countLeads(ctx context.Context, userID primitive.ObjectID, filter bson.M) (int64, error) {
	query := bson.M{"user_id": userID}
	for k, v := range filter {
		query[k] = v
	}
	return as.collections.Leads().CountDocuments(ctx, query)
}

// GetLeadMetrics returns the point-in-time dashboard snapshot. The four
// counts run concurrently and are not mutually consistent; good enough for a
// dashboard, not for audit.
func (as *AnalyticsService) GetLeadMetrics(userID primitive.ObjectID) (*models.LeadMetrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	now := time.Now()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	var metrics models.LeadMetrics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		metrics.TotalLeads, err = as.countLeads(gctx, userID, bson.M{})
		return err
	})
	g.Go(func() error {
		var err error
		metrics.NewToday, err = as.countLeads(gctx, userID, bson.M{
			"created_at": bson.M{"$gte": today, "$lt": tomorrow},
		})
		return err
	})
	g.Go(func() error {
		var err error
		metrics.ConvertedThisWeek, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusConverted,
			"updated_at": bson.M{"$gte": weekStart},
		})
		return err
	})
	g.Go(func() error {
		var err error
		metrics.LostThisMonth, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusLost,
			"updated_at": bson.M{"$gte": monthStart},
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute lead metrics: %v", err)
	}

	return &metrics, nil
}

// GetMetricsTrends computes current-vs-previous percentage deltas for each
// snapshot metric. Windows are matched and non-overlapping: today/yesterday,
// this week/last week (Sunday-aligned), this month/last month.
func (as *AnalyticsService) GetMetricsTrends(userID primitive.ObjectID) (*models.MetricsTrends, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	now := time.Now()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	thisWeek := startOfWeek(now)
	lastWeek := thisWeek.AddDate(0, 0, -7)

	thisMonth := startOfMonth(now)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var (
		totalCurrent, totalPrevious         int64
		newCurrent, newPrevious             int64
		convertedCurrent, convertedPrevious int64
		lostCurrent, lostPrevious           int64
	)

	g, gctx := errgroup.WithContext(ctx)

	// Total leads: created this month vs last month
	g.Go(func() error {
		var err error
		totalCurrent, err = as.countLeads(gctx, userID, bson.M{
			"created_at": bson.M{"$gte": thisMonth},
		})
		return err
	})
	g.Go(func() error {
		var err error
		totalPrevious, err = as.countLeads(gctx, userID, bson.M{
			"created_at": bson.M{"$gte": lastMonth, "$lt": thisMonth},
		})
		return err
	})

	// New leads: today vs yesterday
	g.Go(func() error {
		var err error
		newCurrent, err = as.countLeads(gctx, userID, bson.M{
			"created_at": bson.M{"$gte": today, "$lt": tomorrow},
		})
		return err
	})
	g.Go(func() error {
		var err error
		newPrevious, err = as.countLeads(gctx, userID, bson.M{
			"created_at": bson.M{"$gte": yesterday, "$lt": today},
		})
		return err
	})

	// Converted: this week vs last week
	g.Go(func() error {
		var err error
		convertedCurrent, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusConverted,
			"updated_at": bson.M{"$gte": thisWeek},
		})
		return err
	})
	g.Go(func() error {
		var err error
		convertedPrevious, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusConverted,
			"updated_at": bson.M{"$gte": lastWeek, "$lt": thisWeek},
		})
		return err
	})

	// Lost: this month vs last month
	g.Go(func() error {
		var err error
		lostCurrent, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusLost,
			"updated_at": bson.M{"$gte": thisMonth},
		})
		return err
	})
	g.Go(func() error {
		var err error
		lostPrevious, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusLost,
			"updated_at": bson.M{"$gte": lastMonth, "$lt": thisMonth},
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute metrics trends: %v", err)
	}

	return &models.MetricsTrends{
		TotalLeadsTrend:    trendBetween(totalCurrent, totalPrevious),
		NewTodayTrend:      trendBetween(newCurrent, newPrevious),
		ConvertedWeekTrend: trendBetween(convertedCurrent, convertedPrevious),
		LostMonthTrend:     trendBetween(lostCurrent, lostPrevious),
	}, nil
}

// GetMonthlyMetrics returns the month-scoped snapshot. TotalLeadsThisMonth is
// the all-time count despite its name; the monthly scope applies to the other
// three. Fixing the name would break the dashboard contract.
func (as *AnalyticsService) GetMonthlyMetrics(userID primitive.ObjectID) (*models.MonthlyMetrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	monthStart := startOfMonth(time.Now())

	var metrics models.MonthlyMetrics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		metrics.TotalLeadsThisMonth, err = as.countLeads(gctx, userID, bson.M{})
		return err
	})
	g.Go(func() error {
		var err error
		metrics.NewLeadsThisMonth, err = as.countLeads(gctx, userID, bson.M{
			"created_at": bson.M{"$gte": monthStart},
		})
		return err
	})
	g.Go(func() error {
		var err error
		metrics.ConvertedThisMonth, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusConverted,
			"updated_at": bson.M{"$gte": monthStart},
		})
		return err
	})
	g.Go(func() error {
		var err error
		metrics.LostThisMonth, err = as.countLeads(gctx, userID, bson.M{
			"status":     models.StatusLost,
			"updated_at": bson.M{"$gte": monthStart},
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute monthly metrics: %v", err)
	}

	return &metrics, nil
}

// GetLeadsByStatus groups the user's leads by status, optionally filtered to
// leads created within the given period.
func (as *AnalyticsService) GetLeadsByStatus(userID primitive.ObjectID, period string) ([]models.StatusCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	match := bson.M{"user_id": userID}
	if start, ok := periodStart(time.Now(), period); ok {
		match["created_at"] = bson.M{"$gte": start}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"status": "$_id", "count": 1, "_id": 0}},
	}

	results := []models.StatusCount{}
	if err := as.aggregateLeads(ctx, pipeline, &results); err != nil {
		return nil, fmt.Errorf("failed to group leads by status: %v", err)
	}
	return results, nil
}

// GetLeadsBySource groups the user's leads by source, optionally filtered to
// leads created within the given period.
func (as *AnalyticsService) GetLeadsBySource(userID primitive.ObjectID, period string) ([]models.SourceCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	match := bson.M{"user_id": userID}
	if start, ok := periodStart(time.Now(), period); ok {
		match["created_at"] = bson.M{"$gte": start}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$source", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"source": "$_id", "count": 1, "_id": 0}},
	}

	results := []models.SourceCount{}
	if err := as.aggregateLeads(ctx, pipeline, &results); err != nil {
		return nil, fmt.Errorf("failed to group leads by source: %v", err)
	}
	return results, nil
}

// GetStatusBreakdown is the all-time twin of GetLeadsByStatus used by the
// dashboard summary. It takes no period; the summary always shows all-time
// figures.
func (as *AnalyticsService) GetStatusBreakdown(userID primitive.ObjectID) ([]models.StatusCount, error) {
	return as.GetLeadsByStatus(userID, "")
}

// GetSourceBreakdown is the all-time twin of GetLeadsBySource.
func (as *AnalyticsService) GetSourceBreakdown(userID primitive.ObjectID) ([]models.SourceCount, error) {
	return as.GetLeadsBySource(userID, "")
}

// GetSummary composes the snapshot metrics with the all-time breakdowns for
// the dashboard, fanning the three computations out concurrently.
func (as *AnalyticsService) GetSummary(userID primitive.ObjectID) (*models.AnalyticsSummary, error) {
	var summary models.AnalyticsSummary
	g := new(errgroup.Group)

	g.Go(func() error {
		metrics, err := as.GetLeadMetrics(userID)
		if err == nil {
			summary.Metrics = metrics
		}
		return err
	})
	g.Go(func() error {
		byStatus, err := as.GetStatusBreakdown(userID)
		if err == nil {
			summary.ByStatus = byStatus
		}
		return err
	})
	g.Go(func() error {
		bySource, err := as.GetSourceBreakdown(userID)
		if err == nil {
			summary.BySource = bySource
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetConversionTrend returns per-day counts of leads converted within the
// last N days, sorted ascending by date.
func (as *AnalyticsService) GetConversionTrend(userID primitive.ObjectID, days int) ([]models.ConversionPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	startDate := time.Now().AddDate(0, 0, -days)

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"user_id":    userID,
				"status":     models.StatusConverted,
				"updated_at": bson.M{"$gte": startDate},
			},
		},
		{
			"$group": bson.M{
				"_id": bson.M{
					"$dateToString": bson.M{
						"format": "%Y-%m-%d",
						"date":   "$updated_at",
					},
				},
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"date":  "$_id",
				"count": 1,
				"_id":   0,
			},
		},
		{"$sort": bson.M{"date": 1}},
	}

	results := []models.ConversionPoint{}
	if err := as.aggregateLeads(ctx, pipeline, &results); err != nil {
		return nil, fmt.Errorf("failed to compute conversion trend: %v", err)
	}
	return results, nil
}

// aggregateLeads runs a pipeline over the leads collection and decodes all
// results into out.
func (as *AnalyticsService) aggregateLeads(ctx context.Context, pipeline []bson.M, out interface{}) error {
	cursor, err := as.collections.Leads().Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}
