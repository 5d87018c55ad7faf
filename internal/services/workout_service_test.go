package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlog/internal/models/db_models"
	"fitlog/pkg/utils"
)

func TestValidateWorkoutInput(t *testing.T) {
	dist := 5.0
	badDist := -1.0

	tests := []struct {
		name         string
		activityType string
		duration     int
		rating       int
		date         string
		distance     *float64
		distanceUnit string
		wantErr      error
	}{
		{"valid minimal", "run", 30, 2, "2026-03-01", nil, "", nil},
		{"valid with distance", "run", 30, 2, "2026-03-01", &dist, "km", nil},
		{"blank activity", "  ", 30, 2, "2026-03-01", nil, "", utils.ErrInvalidInput},
		{"zero duration", "run", 0, 2, "2026-03-01", nil, "", utils.ErrInvalidDuration},
		{"rating too low", "run", 30, 0, "2026-03-01", nil, "", utils.ErrInvalidRating},
		{"rating too high", "run", 30, 4, "2026-03-01", nil, "", utils.ErrInvalidRating},
		{"garbage date", "run", 30, 2, "March 1st", nil, "", utils.ErrInvalidDate},
		{"negative distance", "run", 30, 2, "2026-03-01", &badDist, "km", utils.ErrInvalidDistance},
		{"unknown unit", "run", 30, 2, "2026-03-01", &dist, "furlong", utils.ErrInvalidDistance},
		{"distance without unit", "run", 30, 2, "2026-03-01", &dist, "", utils.ErrInvalidDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ValidateWorkoutInput(tt.activityType, tt.duration, tt.rating, tt.date, tt.distance, tt.distanceUnit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), day)
		})
	}
}

func TestDecodeAnalysisMarkdown(t *testing.T) {
	workout := &db_models.Workout{
		AnalysisKind:     db_models.AnalysisKindMarkdown,
		AnalysisPayload:  "# Solid run",
		AnalysisEditedAt: 100,
	}

	analysis := DecodeAnalysis(workout)

	require.NotNil(t, analysis)
	assert.Equal(t, db_models.AnalysisKindMarkdown, analysis.Kind)
	assert.Equal(t, "# Solid run", analysis.Markdown)
	assert.Equal(t, int64(100), analysis.EditedAt)
}

func TestDecodeAnalysisStructured(t *testing.T) {
	workout := &db_models.Workout{
		AnalysisKind:    db_models.AnalysisKindStructured,
		AnalysisPayload: `[{"type":"main","distance":400,"stroke":"freestyle"}]`,
	}

	analysis := DecodeAnalysis(workout)

	require.NotNil(t, analysis)
	assert.Equal(t, db_models.AnalysisKindStructured, analysis.Kind)
	require.Len(t, analysis.Sets, 1)
	assert.Equal(t, "freestyle", analysis.Sets[0].Stroke)
}

func TestDecodeAnalysisCorruptStructuredFallsBack(t *testing.T) {
	workout := &db_models.Workout{
		AnalysisKind:    db_models.AnalysisKindStructured,
		AnalysisPayload: `not json at all`,
	}

	analysis := DecodeAnalysis(workout)

	require.NotNil(t, analysis)
	assert.Equal(t, db_models.AnalysisKindMarkdown, analysis.Kind)
	assert.Equal(t, "not json at all", analysis.Markdown)
}

func TestDecodeAnalysisAbsent(t *testing.T) {
	assert.Nil(t, DecodeAnalysis(&db_models.Workout{}))
}
