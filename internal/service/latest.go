package service

import "github.com/vidyadeep/institute-api/internal/models"

// The "current" state of an enquiry is defined by a single follow-up: the
// one with the greatest follow-up date, same-date ties resolved toward the
// higher ID (models.Followup.Supersedes). Both the tracker and the overdue
// views derive from this one selection so they can never disagree, and it
// is recomputed from a fresh fetch on every read because follow-ups may be
// patched or deleted.

// latestFollowup selects the event that currently defines the enquiry
// state among events sharing one owner.
func latestFollowup(events []models.Followup) (models.Followup, bool) {
	if len(events) == 0 {
		return models.Followup{}, false
	}
	latest := events[0]
	for _, event := range events[1:] {
		if event.Supersedes(latest) {
			latest = event
		}
	}
	return latest, true
}

// latestByEnquiry groups events by enquiry and selects the defining event
// for each.
func latestByEnquiry(events []models.Followup) map[uint]models.Followup {
	latest := make(map[uint]models.Followup)
	for _, event := range events {
		current, ok := latest[event.EnquiryID]
		if !ok || event.Supersedes(current) {
			latest[event.EnquiryID] = event
		}
	}
	return latest
}
