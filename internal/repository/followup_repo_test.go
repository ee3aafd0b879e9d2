package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vidyadeep/institute-api/internal/models"
)

func createTestEnquiry(t *testing.T, repo EnquiryRepository) uint {
	t.Helper()
	enquiry := models.Enquiry{
		PersonDetails: testPerson("Asha", "Pawar"),
		CourseName:    "MS-CIT",
		Timing:        "10-12",
		HandledBy:     "Sunita",
	}
	require.NoError(t, repo.Create(context.Background(), &enquiry))
	return enquiry.ID
}

func TestFollowupUpdateAppliesOnlyPatchedFields(t *testing.T) {
	db := newTestDB(t)
	enquiries := NewEnquiryRepository(db)
	repo := NewFollowupRepository(db)
	ctx := context.Background()

	enquiryID := createTestEnquiry(t, enquiries)

	followup := models.Followup{
		EnquiryID:    enquiryID,
		FollowupDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.FollowupStatusPending,
		Notes:        "left voicemail",
		HandledBy:    "Sunita",
	}
	require.NoError(t, repo.Create(ctx, &followup))

	status := models.FollowupStatusInterested
	updated, err := repo.Update(ctx, followup.ID, FollowupPatch{Status: &status})
	require.NoError(t, err)
	require.True(t, updated)

	stored, err := repo.GetByID(ctx, followup.ID)
	require.NoError(t, err)
	require.Equal(t, models.FollowupStatusInterested, stored.Status)
	require.Equal(t, "left voicemail", stored.Notes)
	require.Equal(t, "Sunita", stored.HandledBy)
}

func TestFollowupUpdateEmptyPatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowupRepository(db)

	updated, err := repo.Update(context.Background(), 1, FollowupPatch{})
	require.NoError(t, err)
	require.False(t, updated)
}

func TestFollowupUpdateMissingID(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowupRepository(db)

	status := models.FollowupStatusAdmitted
	updated, err := repo.Update(context.Background(), 42, FollowupPatch{Status: &status})
	require.NoError(t, err)
	require.False(t, updated)
}

func TestFollowupDelete(t *testing.T) {
	db := newTestDB(t)
	enquiries := NewEnquiryRepository(db)
	repo := NewFollowupRepository(db)
	ctx := context.Background()

	enquiryID := createTestEnquiry(t, enquiries)
	followup := models.Followup{
		EnquiryID:    enquiryID,
		FollowupDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.FollowupStatusPending,
		HandledBy:    "Sunita",
	}
	require.NoError(t, repo.Create(ctx, &followup))

	deleted, err := repo.Delete(ctx, followup.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(ctx, followup.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	remaining, err := repo.ListByEnquiry(ctx, enquiryID)
	require.NoError(t, err)
	require.Empty(t, remaining)
}

func TestFollowupListByEnquiryScopesToOwner(t *testing.T) {
	db := newTestDB(t)
	enquiries := NewEnquiryRepository(db)
	repo := NewFollowupRepository(db)
	ctx := context.Background()

	first := createTestEnquiry(t, enquiries)
	second := createTestEnquiry(t, enquiries)

	require.NoError(t, repo.Create(ctx, &models.Followup{
		EnquiryID:    first,
		FollowupDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.FollowupStatusPending,
		HandledBy:    "Sunita",
	}))
	require.NoError(t, repo.Create(ctx, &models.Followup{
		EnquiryID:    second,
		FollowupDate: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		Status:       models.FollowupStatusInterested,
		HandledBy:    "Sunita",
	}))

	scoped, err := repo.ListByEnquiry(ctx, first)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, first, scoped[0].EnquiryID)
}
