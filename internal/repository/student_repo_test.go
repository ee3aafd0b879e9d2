package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidyadeep/institute-api/internal/models"
)

func testPerson(first, last string) models.PersonDetails {
	return models.PersonDetails{
		FirstName:                first,
		LastName:                 last,
		DateOfBirth:              "2000-01-01",
		Gender:                   "F",
		MaritalStatus:            "Single",
		MotherTongue:             "Marathi",
		AadharNumber:             "123412341234",
		CorrespondenceAddress:    "12 MG Road",
		City:                     "Pune",
		State:                    "Maharashtra",
		District:                 "Pune",
		MobileNumber:             "9000000001",
		Category:                 "Open",
		EducationalQualification: "HSC",
	}
}

func TestStudentCreateAssignsIDsFromOffset(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db, 1000)
	ctx := context.Background()

	first := models.Student{PersonDetails: testPerson("Asha", "Pawar"), CourseName: "MS-CIT", Timing: "10-12", CertificateName: "Asha Pawar"}
	require.NoError(t, repo.Create(ctx, &first))
	require.Equal(t, uint(1000), first.ID)

	second := models.Student{PersonDetails: testPerson("Ravi", "More"), CourseName: "DTP - CIT", Timing: "12-14", CertificateName: "Ravi More"}
	require.NoError(t, repo.Create(ctx, &second))
	require.Equal(t, uint(1001), second.ID)
}

func TestStudentCreateContinuesPastOffset(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db, 1000)
	ctx := context.Background()

	seeded := models.Student{PersonDetails: testPerson("Asha", "Pawar"), CourseName: "MS-CIT", Timing: "10-12", CertificateName: "Asha Pawar"}
	seeded.ID = 2050
	require.NoError(t, db.Create(&seeded).Error)

	next := models.Student{PersonDetails: testPerson("Ravi", "More"), CourseName: "MS-CIT", Timing: "10-12", CertificateName: "Ravi More"}
	require.NoError(t, repo.Create(ctx, &next))
	require.Equal(t, uint(2051), next.ID)
}

func TestStudentExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db, 1000)
	ctx := context.Background()

	student := models.Student{PersonDetails: testPerson("Asha", "Pawar"), CourseName: "MS-CIT", Timing: "10-12", CertificateName: "Asha Pawar"}
	require.NoError(t, repo.Create(ctx, &student))

	ok, err := repo.Exists(ctx, student.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Exists(ctx, 9999)
	require.NoError(t, err)
	require.False(t, ok)
}
