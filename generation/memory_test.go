package generation

import (
	"testing"

	"formforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveRelevantMemoriesExcludesFormsWithoutVector(t *testing.T) {
	db := openTestDB(t)
	createForm(t, db, 1, "no-vector", nil)
	withVector := createForm(t, db, 1, "with-vector", []float64{1, 0})

	memories, err := RetrieveRelevantMemories(db, 1, []float64{1, 0}, 5)
	require.NoError(t, err)

	require.Len(t, memories, 1)
	assert.Equal(t, withVector.ID, memories[0].FormID)
	assert.InDelta(t, 1.0, memories[0].Score, 1e-9)
}

func TestRetrieveRelevantMemoriesOrdersByScoreAndRespectsTopK(t *testing.T) {
	db := openTestDB(t)
	far := createForm(t, db, 1, "far", []float64{0, 1})
	near := createForm(t, db, 1, "near", []float64{1, 0.1})
	exact := createForm(t, db, 1, "exact", []float64{1, 0})

	memories, err := RetrieveRelevantMemories(db, 1, []float64{1, 0}, 2)
	require.NoError(t, err)

	require.Len(t, memories, 2)
	assert.Equal(t, exact.ID, memories[0].FormID)
	assert.Equal(t, near.ID, memories[1].FormID)
	assert.True(t, memories[0].Score >= memories[1].Score)
	_ = far
}

func TestRetrieveRelevantMemoriesScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	createForm(t, db, 1, "mine", []float64{1, 0})
	createForm(t, db, 2, "theirs", []float64{1, 0})

	memories, err := RetrieveRelevantMemories(db, 1, []float64{1, 0}, 5)
	require.NoError(t, err)

	require.Len(t, memories, 1)
	assert.Equal(t, "mine", memories[0].Title)
}

func TestRetrieveRelevantMemoriesEmptyQueryVector(t *testing.T) {
	db := openTestDB(t)
	older := createForm(t, db, 1, "older", []float64{1, 0})
	newer := createForm(t, db, 1, "newer", []float64{0, 1})

	// Every score is zero, so ties break on newest form first.
	memories, err := RetrieveRelevantMemories(db, 1, nil, 5)
	require.NoError(t, err)

	require.Len(t, memories, 2)
	assert.Equal(t, newer.ID, memories[0].FormID)
	assert.Equal(t, older.ID, memories[1].FormID)
	assert.Equal(t, 0.0, memories[0].Score)
}

func TestRetrieveRelevantMemoriesDefaultTopK(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 8; i++ {
		createForm(t, db, 1, "form-"+string(rune('a'+i)), []float64{1, 0})
	}

	memories, err := RetrieveRelevantMemories(db, 1, []float64{1, 0}, 0)
	require.NoError(t, err)
	assert.Len(t, memories, DefaultTopK)
}

func TestFieldHighlightsCapsAtFive(t *testing.T) {
	fields := make([]models.FormField, 7)
	for i := range fields {
		fields[i] = models.FormField{Label: "L", Type: models.FIELD_TYPE_TEXT}
	}
	assert.Len(t, FieldHighlights(fields), 5)
	assert.Equal(t, "L (text)", FieldHighlights(fields)[0])
}
