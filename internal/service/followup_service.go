package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/observability"
	"github.com/vidyadeep/institute-api/internal/repository"
)

// ErrEnquiryNotFound indicates the referenced enquiry does not exist.
var ErrEnquiryNotFound = errors.New("enquiry not found")

// Tracker group ranks: overdue contacts surface first, scheduled future
// contacts next (soonest first), untouched or unscheduled enquiries last.
const (
	trackerRankOverdue     = 0
	trackerRankUpcoming    = 1
	trackerRankUnscheduled = 2
)

// FollowupService derives each enquiry's engagement state from its
// follow-up event log. Follow-ups are the one mutable event type in the
// system, so every view recomputes from a fresh fetch; nothing derived is
// cached anywhere.
type FollowupService interface {
	Create(ctx context.Context, req dto.FollowupCreateRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.FollowupUpdateRequest) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListByEnquiry(ctx context.Context, enquiryID uint) ([]dto.FollowupResponse, error)
	TrackerView(ctx context.Context) ([]dto.EnquirySummary, error)
	Overdue(ctx context.Context) ([]dto.OverdueEntry, error)
	Stats(ctx context.Context) (dto.FollowupStats, error)
}

type followupService struct {
	followups repository.FollowupRepository
	enquiries repository.EnquiryRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewFollowupService constructs the engagement lifecycle service.
func NewFollowupService(followups repository.FollowupRepository, enquiries repository.EnquiryRepository, validate *validator.Validate, logger zerolog.Logger) FollowupService {
	return &followupService{
		followups: followups,
		enquiries: enquiries,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "followup_service").Logger(),
		tracer:    otel.Tracer("github.com/vidyadeep/institute-api/internal/service/followup"),
		now:       time.Now,
	}
}

func (s *followupService) Create(ctx context.Context, req dto.FollowupCreateRequest) (uint, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, err
	}

	exists, err := s.enquiries.Exists(ctx, req.EnquiryID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrEnquiryNotFound
	}

	followupDate, err := parseDate(req.FollowupDate)
	if err != nil {
		return 0, err
	}

	var nextDate *time.Time
	if req.NextFollowupDate != "" {
		parsed, err := parseDate(req.NextFollowupDate)
		if err != nil {
			return 0, err
		}
		nextDate = &parsed
	}

	followup := models.Followup{
		EnquiryID:        req.EnquiryID,
		FollowupDate:     followupDate,
		Status:           req.Status,
		Notes:            s.sanitizer.Sanitize(req.Notes),
		NextFollowupDate: nextDate,
		HandledBy:        s.sanitizer.Sanitize(req.HandledBy),
	}

	if err := s.followups.Create(ctx, &followup); err != nil {
		return 0, err
	}

	s.logger.Info().
		Uint("enquiry_id", followup.EnquiryID).
		Str("status", followup.Status).
		Msg("follow-up recorded")

	return followup.ID, nil
}

// Update patches only the supplied fields. A missing id is reported as
// false rather than an error so bulk callers can continue past misses.
func (s *followupService) Update(ctx context.Context, id uint, req dto.FollowupUpdateRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, err
	}

	patch := repository.FollowupPatch{Status: req.Status}
	if req.FollowupDate != nil {
		parsed, err := parseDate(*req.FollowupDate)
		if err != nil {
			return false, err
		}
		patch.FollowupDate = &parsed
	}
	if req.NextFollowupDate != nil {
		parsed, err := parseDate(*req.NextFollowupDate)
		if err != nil {
			return false, err
		}
		patch.NextFollowupDate = &parsed
	}
	if req.Notes != nil {
		sanitized := s.sanitizer.Sanitize(*req.Notes)
		patch.Notes = &sanitized
	}
	if req.HandledBy != nil {
		sanitized := s.sanitizer.Sanitize(*req.HandledBy)
		patch.HandledBy = &sanitized
	}

	if patch.IsEmpty() {
		return false, nil
	}

	return s.followups.Update(ctx, id, patch)
}

// Delete removes a follow-up. Deletion changes which event is "latest",
// which is safe only because no derived view is ever cached.
func (s *followupService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.followups.Delete(ctx, id)
}

func (s *followupService) ListByEnquiry(ctx context.Context, enquiryID uint) ([]dto.FollowupResponse, error) {
	exists, err := s.enquiries.Exists(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEnquiryNotFound
	}

	followups, err := s.followups.ListByEnquiry(ctx, enquiryID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FollowupResponse, 0, len(followups))
	for _, followup := range followups {
		responses = append(responses, newFollowupResponse(followup))
	}
	return responses, nil
}

func (s *followupService) TrackerView(ctx context.Context) ([]dto.EnquirySummary, error) {
	ctx, span := s.tracer.Start(ctx, "followup.tracker_view")
	defer span.End()

	start := time.Now()
	defer func() {
		observability.FollowupDeriveLatency().WithLabelValues("tracker").Observe(time.Since(start).Seconds())
	}()

	enquiries, err := s.enquiries.List(ctx)
	if err != nil {
		return nil, err
	}

	followups, err := s.followups.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	latest := latestByEnquiry(followups)
	counts := make(map[uint]int)
	for _, followup := range followups {
		counts[followup.EnquiryID]++
	}

	today := dateOnly(s.now())
	type trackerRow struct {
		summary dto.EnquirySummary
		rank    int
		next    *time.Time
		created time.Time
	}

	rows := make([]trackerRow, 0, len(enquiries))
	for _, enquiry := range enquiries {
		summary := dto.EnquirySummary{
			EnquiryID:     enquiry.ID,
			StudentName:   enquiry.FullName(),
			MobileNumber:  enquiry.MobileNumber,
			CourseName:    enquiry.CourseName,
			EnquiryDate:   formatDate(enquiry.CreatedAt),
			CurrentStatus: models.FollowupStatusPending,
			FollowupCount: counts[enquiry.ID],
		}

		rank := trackerRankUnscheduled
		var next *time.Time
		if event, ok := latest[enquiry.ID]; ok {
			summary.CurrentStatus = event.Status
			summary.LastFollowupDate = formatDate(event.FollowupDate)
			summary.LatestNotes = event.Notes
			if event.NextFollowupDate != nil {
				nextDate := dateOnly(*event.NextFollowupDate)
				next = &nextDate
				summary.NextFollowupDate = formatDate(nextDate)
				if nextDate.Before(today) {
					rank = trackerRankOverdue
				} else {
					rank = trackerRankUpcoming
				}
			}
		}

		rows = append(rows, trackerRow{summary: summary, rank: rank, next: next, created: enquiry.CreatedAt})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].rank != rows[j].rank {
			return rows[i].rank < rows[j].rank
		}
		if rows[i].next != nil && rows[j].next != nil && !rows[i].next.Equal(*rows[j].next) {
			return rows[i].next.Before(*rows[j].next)
		}
		return rows[i].created.After(rows[j].created)
	})

	summaries := make([]dto.EnquirySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.summary)
	}

	span.SetAttributes(attribute.Int("enquiries", len(summaries)))

	return summaries, nil
}

func (s *followupService) Overdue(ctx context.Context) ([]dto.OverdueEntry, error) {
	start := time.Now()
	defer func() {
		observability.FollowupDeriveLatency().WithLabelValues("overdue").Observe(time.Since(start).Seconds())
	}()

	enquiries, err := s.enquiries.List(ctx)
	if err != nil {
		return nil, err
	}

	followups, err := s.followups.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	latest := latestByEnquiry(followups)
	today := dateOnly(s.now())

	entries := make([]dto.OverdueEntry, 0)
	for _, enquiry := range enquiries {
		event, ok := latest[enquiry.ID]
		if !ok || event.NextFollowupDate == nil {
			continue
		}
		nextDate := dateOnly(*event.NextFollowupDate)
		if !nextDate.Before(today) {
			continue
		}

		entries = append(entries, dto.OverdueEntry{
			EnquiryID:        enquiry.ID,
			StudentName:      enquiry.FullName(),
			MobileNumber:     enquiry.MobileNumber,
			CourseName:       enquiry.CourseName,
			NextFollowupDate: formatDate(nextDate),
			DaysOverdue:      wholeDaysBetween(nextDate, today),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysOverdue > entries[j].DaysOverdue
	})

	return entries, nil
}

func (s *followupService) Stats(ctx context.Context) (dto.FollowupStats, error) {
	start := time.Now()
	defer func() {
		observability.FollowupDeriveLatency().WithLabelValues("stats").Observe(time.Since(start).Seconds())
	}()

	followups, err := s.followups.ListAll(ctx)
	if err != nil {
		return dto.FollowupStats{}, err
	}

	distribution := map[string]int64{
		models.FollowupStatusPending:       0,
		models.FollowupStatusInterested:    0,
		models.FollowupStatusNotInterested: 0,
		models.FollowupStatusAdmitted:      0,
	}
	perEnquiry := make(map[uint]int)
	for _, followup := range followups {
		distribution[followup.Status]++
		perEnquiry[followup.EnquiryID]++
	}

	today := dateOnly(s.now())
	overdue := 0
	for _, event := range latestByEnquiry(followups) {
		if event.NextFollowupDate != nil && dateOnly(*event.NextFollowupDate).Before(today) {
			overdue++
		}
	}

	average := 0.0
	if len(perEnquiry) > 0 {
		average = math.Round(float64(len(followups))/float64(len(perEnquiry))*100) / 100
	}

	return dto.FollowupStats{
		TotalFollowups:             int64(len(followups)),
		StatusDistribution:         distribution,
		OverdueCount:               overdue,
		AverageFollowupsPerEnquiry: average,
	}, nil
}

func newFollowupResponse(followup models.Followup) dto.FollowupResponse {
	response := dto.FollowupResponse{
		ID:           followup.ID,
		EnquiryID:    followup.EnquiryID,
		FollowupDate: formatDate(followup.FollowupDate),
		Status:       followup.Status,
		Notes:        followup.Notes,
		HandledBy:    followup.HandledBy,
		CreatedAt:    followup.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    followup.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if followup.NextFollowupDate != nil {
		response.NextFollowupDate = formatDate(*followup.NextFollowupDate)
	}
	return response
}
