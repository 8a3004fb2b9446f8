package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadcrm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadService struct {
	*BaseService
	activityService *ActivityService
}

// LeadFilters narrows the lead list query. Zero values mean "no filter".
type LeadFilters struct {
	Search    string
	Status    string
	Source    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

func NewLeadService() *LeadService {
	return &LeadService{
		BaseService:     NewBaseService(),
		activityService: NewActivityService(),
	}
}

// buildLeadQuery translates filters into the Mongo query document. Search is
// a case-insensitive substring match over name, email and phone.
func buildLeadQuery(userID primitive.ObjectID, filters *LeadFilters) bson.M {
	query := bson.M{"user_id": userID}
	if filters == nil {
		return query
	}

	if filters.Search != "" {
		regex := bson.M{"$regex": filters.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"name": regex},
			{"email": regex},
			{"phone": regex},
		}
	}

	if filters.Status != "" {
		query["status"] = filters.Status
	}

	if filters.Source != "" {
		query["source"] = filters.Source
	}

	if filters.StartDate != nil || filters.EndDate != nil {
		createdAt := bson.M{}
		if filters.StartDate != nil {
			createdAt["$gte"] = *filters.StartDate
		}
		if filters.EndDate != nil {
			createdAt["$lte"] = *filters.EndDate
		}
		query["created_at"] = createdAt
	}

	return query
}

// GetLeads returns one page of the user's leads, newest first, plus the total
// matching count. The page query and the count run concurrently.
func (ls *LeadService) GetLeads(userID primitive.ObjectID, filters *LeadFilters) (*models.LeadList, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	page := 1
	limit := 10
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.Limit > 0 {
			limit = filters.Limit
		}
	}
	skip := int64((page - 1) * limit)

	query := buildLeadQuery(userID, filters)

	result := &models.LeadList{Leads: []models.Lead{}}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(skip).
			SetLimit(int64(limit))

		cursor, err := ls.collections.Leads().Find(gctx, query, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)

		return cursor.All(gctx, &result.Leads)
	})
	g.Go(func() error {
		var err error
		result.Total, err = ls.collections.Leads().CountDocuments(gctx, query)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list leads: %v", err)
	}

	return result, nil
}

// GetLeadByID returns one lead under the caller's ownership scope, together
// with its notes, activities and reminders (fetched concurrently).
func (ls *LeadService) GetLeadByID(leadID, userID primitive.ObjectID) (*models.LeadDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var lead models.Lead
	err := ls.collections.Leads().FindOne(ctx, bson.M{"_id": leadID, "user_id": userID}).Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %v", err)
	}

	detail := &models.LeadDetail{
		Lead:       lead,
		Notes:      []models.Note{},
		Activities: []models.Activity{},
		Reminders:  []models.Reminder{},
	}

	sortNewest := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := ls.collections.Notes().Find(gctx, bson.M{"lead_id": leadID}, sortNewest)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &detail.Notes)
	})
	g.Go(func() error {
		cursor, err := ls.collections.Activities().Find(gctx, bson.M{"lead_id": leadID}, sortNewest)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &detail.Activities)
	})
	g.Go(func() error {
		cursor, err := ls.collections.Reminders().Find(gctx, bson.M{"lead_id": leadID}, sortNewest)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &detail.Reminders)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load lead details: %v", err)
	}

	return detail, nil
}

// CreateLead inserts a new lead, seeding its status history with a single
// entry, then records a created activity. The two writes are separate; a
// failure between them leaves the lead without its creation activity.
func (ls *LeadService) CreateLead(userID primitive.ObjectID, req *models.CreateLeadRequest) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := req.Status
	if status == "" {
		status = models.StatusNew
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	lead := &models.Lead{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Source:  req.Source,
		Status:  status,
		Tags:    tags,
		StatusHistory: []models.StatusChange{
			{Status: status, ChangedAt: now, ChangedBy: userID},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := ls.collections.Leads().InsertOne(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %v", err)
	}

	ls.activityService.Record(models.ActionCreated,
		fmt.Sprintf("Created new lead: %s", lead.Name),
		&lead.ID, userID,
		map[string]interface{}{"source": lead.Source, "status": lead.Status},
	)

	return lead, nil
}

// UpdateLead applies a partial update under the caller's ownership scope.
// A status change additionally appends a status history entry and records a
// status_changed activity; any other change records an updated activity.
// The three writes carry no atomicity guarantee.
func (ls *LeadService) UpdateLead(leadID, userID primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Lead
	err := ls.collections.Leads().FindOne(ctx, bson.M{"_id": leadID, "user_id": userID}).Decode(&existing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %v", err)
	}

	now := time.Now()
	set := bson.M{"updated_at": now}
	changed := map[string]interface{}{}

	if req.Name != nil {
		set["name"] = *req.Name
		changed["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
		changed["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
		changed["phone"] = *req.Phone
	}
	if req.Company != nil {
		set["company"] = *req.Company
		changed["company"] = *req.Company
	}
	if req.Source != nil {
		set["source"] = *req.Source
		changed["source"] = *req.Source
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
		changed["tags"] = *req.Tags
	}

	update := bson.M{"$set": set}
	statusChanged := req.Status != nil && *req.Status != existing.Status
	if statusChanged {
		set["status"] = *req.Status
		update["$push"] = bson.M{
			"status_history": models.StatusChange{
				Status:    *req.Status,
				ChangedAt: now,
				ChangedBy: userID,
			},
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Lead
	err = ls.collections.Leads().FindOneAndUpdate(ctx,
		bson.M{"_id": leadID, "user_id": userID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to update lead: %v", err)
	}

	if statusChanged {
		ls.activityService.Record(models.ActionStatusChanged,
			fmt.Sprintf("Changed status from %s to %s", existing.Status, *req.Status),
			&leadID, userID,
			map[string]interface{}{"oldStatus": existing.Status, "newStatus": *req.Status},
		)
	} else {
		ls.activityService.Record(models.ActionUpdated,
			fmt.Sprintf("Updated lead: %s", existing.Name),
			&leadID, userID, changed,
		)
	}

	return &updated, nil
}

// DeleteLead removes a lead and cascade-deletes its notes, activities and
// reminders. There is no soft delete and no orphan retention.
func (ls *LeadService) DeleteLead(leadID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := ls.collections.Leads().DeleteOne(ctx, bson.M{"_id": leadID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete lead: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrLeadNotFound
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := ls.collections.Notes().DeleteMany(gctx, bson.M{"lead_id": leadID})
		return err
	})
	g.Go(func() error {
		_, err := ls.collections.Activities().DeleteMany(gctx, bson.M{"lead_id": leadID})
		return err
	})
	g.Go(func() error {
		_, err := ls.collections.Reminders().DeleteMany(gctx, bson.M{"lead_id": leadID})
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to cascade delete lead records: %v", err)
	}

	return nil
}

// ExportLeads fetches every lead of the user (newest first) for CSV export.
func (ls *LeadService) ExportLeads(userID primitive.ObjectID) ([]models.Lead, error) {
	result, err := ls.GetLeads(userID, &LeadFilters{Page: 1, Limit: 10000})
	if err != nil {
		return nil, err
	}
	return result.Leads, nil
}
