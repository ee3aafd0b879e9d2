package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vidyadeep/institute-api/internal/models"
)

func TestPaymentListByStudentNewestFirst(t *testing.T) {
	db := newTestDB(t)
	students := NewStudentRepository(db, 1000)
	repo := NewFeePaymentRepository(db)
	ctx := context.Background()

	student := models.Student{PersonDetails: testPerson("Asha", "Pawar"), CourseName: "MS-CIT", Timing: "10-12", CertificateName: "Asha Pawar"}
	require.NoError(t, students.Create(ctx, &student))

	older := models.FeePayment{
		StudentID:     student.ID,
		Amount:        decimal.NewFromInt(1000),
		PaymentDate:   time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		PaymentMethod: models.PaymentMethodCash,
	}
	newer := models.FeePayment{
		StudentID:     student.ID,
		Amount:        decimal.NewFromInt(500),
		PaymentDate:   time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC),
		PaymentMethod: models.PaymentMethodUPI,
	}
	require.NoError(t, repo.Create(ctx, &older))
	require.NoError(t, repo.Create(ctx, &newer))

	payments, err := repo.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	require.Equal(t, newer.ID, payments[0].ID)
	require.Equal(t, older.ID, payments[1].ID)
}

func TestPaymentListAllPreloadsStudent(t *testing.T) {
	db := newTestDB(t)
	students := NewStudentRepository(db, 1000)
	repo := NewFeePaymentRepository(db)
	ctx := context.Background()

	student := models.Student{PersonDetails: testPerson("Ravi", "More"), CourseName: "DTP - CIT", Timing: "12-14", CertificateName: "Ravi More"}
	require.NoError(t, students.Create(ctx, &student))

	payment := models.FeePayment{
		StudentID:     student.ID,
		Amount:        decimal.NewFromInt(2200),
		Discount:      decimal.NewFromInt(100),
		PaymentDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: models.PaymentMethodCheque,
		ChequeNumber:  "004512",
		BankName:      "Bank of Maharashtra",
	}
	require.NoError(t, repo.Create(ctx, &payment))

	payments, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, "Ravi More", payments[0].Student.FullName())
	require.True(t, payments[0].Amount.Equal(decimal.NewFromInt(2200)))
}

func TestPaymentDenominationsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	students := NewStudentRepository(db, 1000)
	repo := NewFeePaymentRepository(db)
	ctx := context.Background()

	student := models.Student{PersonDetails: testPerson("Asha", "Pawar"), CourseName: "MS-CIT", Timing: "10-12", CertificateName: "Asha Pawar"}
	require.NoError(t, students.Create(ctx, &student))

	payment := models.FeePayment{
		StudentID:     student.ID,
		Amount:        decimal.NewFromInt(1500),
		PaymentDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: models.PaymentMethodCash,
		Denominations: []models.Denomination{
			{Value: 500, Count: 3},
		},
	}
	require.NoError(t, repo.Create(ctx, &payment))

	payments, err := repo.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Len(t, payments[0].Denominations, 1)
	require.Equal(t, 500, payments[0].Denominations[0].Value)
	require.Equal(t, 3, payments[0].Denominations[0].Count)
}
