package generation

import (
	"testing"

	"formforge/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.Submission{},
	).Error)

	return db
}

func createForm(t *testing.T, db *gorm.DB, ownerID int64, title string, vector []float64) models.Form {
	t.Helper()

	form := models.Form{
		OwnerID:     ownerID,
		Title:       title,
		SharingSlug: "slug-" + title,
		Fields: models.FieldList{
			{ID: "f1", Label: "Name", Type: models.FIELD_TYPE_TEXT},
		},
		EmbeddingVector: models.Vector(vector),
		MemorySummary:   title + ": Name (text)",
	}
	require.NoError(t, db.Create(&form).Error)
	return form
}
