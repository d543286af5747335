package repository

import (
	"database/sql"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/internal/domain"
)

func enrichedPost(row int, engagement float64) domain.Post {
	return domain.Post{
		Row:            row,
		Date:           time.Date(2024, 1, 1+row, 0, 0, 0, 0, time.UTC),
		Impressions:    domain.NewCount(100),
		Likes:          domain.NewCount(10),
		Comments:       domain.Count{},
		Caption:        "legenda",
		EngagementRate: engagement,
		LikeRate:       10,
		SaveRate:       math.NaN(),
		CommentRate:    math.NaN(),
		ShareRate:      0,
		DayOfWeek:      "Monday",
		Month:          "January",
		Derived:        true,
	}
}

func TestUpsertQuery(t *testing.T) {
	posts := []domain.Post{enrichedPost(0, 20), enrichedPost(1, math.NaN())}

	query, args, err := upsertQuery("run123", posts)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO post_metrics (run_id,row_index,post_date,impressions"))
	assert.Contains(t, query, "ON CONFLICT (run_id, row_index) DO UPDATE SET")
	assert.Contains(t, query, "$46")
	assert.NotContains(t, query, "$47")
	require.Len(t, args, 2*len(postMetricsColumns))

	assert.Equal(t, "run123", args[0])
	assert.Equal(t, 0, args[1])
	assert.Equal(t, "2024-01-01", args[2])
	assert.Equal(t, domain.NewCount(100), args[3])
	assert.Equal(t, domain.Count{}, args[9]) // comments ausente
	assert.Equal(t, 20.0, args[16])
	assert.Nil(t, args[18]) // save_rate indefinida
	assert.Equal(t, 0.0, args[20])

	second := args[len(postMetricsColumns):]
	assert.Equal(t, 1, second[1])
	assert.Nil(t, second[16])
}

func TestSelectByRunQuery(t *testing.T) {
	query, args, err := selectByRunQuery("run123")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "SELECT row_index, post_date, impressions"))
	assert.Contains(t, query, "FROM post_metrics WHERE run_id = $1 ORDER BY row_index ASC")
	assert.Equal(t, []any{"run123"}, args)
}

func TestNullableRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want any
	}{
		{name: "Taxa definida", rate: 12.5, want: 12.5},
		{name: "Taxa zero", rate: 0, want: 0.0},
		{name: "Taxa indefinida", rate: math.NaN(), want: nil},
		{name: "Taxa infinita", rate: math.Inf(1), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nullableRate(tt.rate))
		})
	}
}

func TestPostMetricsRecord_toPost(t *testing.T) {
	record := postMetricsRecord{
		rowIndex: 7,
		date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
		caption:  sql.NullString{String: "legenda", Valid: true},
		day:      sql.NullString{String: "Tuesday", Valid: true},
		month:    sql.NullString{String: "March", Valid: true},
	}
	record.counts[0] = sql.NullInt64{Int64: 400, Valid: true}
	record.counts[8] = sql.NullInt64{Int64: 80, Valid: true}
	record.rates[0] = sql.NullFloat64{Float64: 25, Valid: true}

	post := record.toPost()

	assert.Equal(t, 7, post.Row)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), post.Date)
	assert.Equal(t, domain.NewCount(400), post.Impressions)
	assert.Equal(t, domain.NewCount(80), post.Likes)
	assert.False(t, post.Comments.Valid)
	assert.Equal(t, 25.0, post.EngagementRate)
	assert.True(t, math.IsNaN(post.LikeRate))
	assert.Equal(t, "legenda", post.Caption)
	assert.Equal(t, "", post.Hashtags)
	assert.Equal(t, "Tuesday", post.DayOfWeek)
	assert.True(t, post.Derived)
	assert.Len(t, record.targets(), len(postMetricsColumns)-1)
}
