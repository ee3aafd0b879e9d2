package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// newTestDB opens a per-test in-memory database. A unique DSN keeps the
// shared cache from leaking rows between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Enquiry{},
		&models.Followup{},
		&models.Student{},
		&models.FeePayment{},
		&models.Attendance{},
		&models.InstituteSettings{},
	))

	return db
}
