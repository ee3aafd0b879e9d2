package dto

import "github.com/vidyadeep/institute-api/internal/repository"

// InstituteOverview aggregates headline enrollment numbers. This is not
// part of the event-derived fee/follow-up core and may be served from a
// short-lived cache.
type InstituteOverview struct {
	TotalEnquiries    int64                    `json:"total_enquiries"`
	TotalAdmissions   int64                    `json:"total_admissions"`
	ConversionRate    float64                  `json:"conversion_rate"`
	EnquiryByCourse   []repository.CourseCount `json:"enquiry_by_course"`
	AdmissionByCourse []repository.CourseCount `json:"admission_by_course"`
	CacheHit          bool                     `json:"-"`
}
