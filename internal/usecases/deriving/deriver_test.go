package deriving

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/internal/domain"
)

func newPost(row int, date string, impressions, likes, comments, shares, saves int64) domain.Post {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.Post{
		Row:         row,
		Date:        d,
		Impressions: domain.NewCount(impressions),
		Likes:       domain.NewCount(likes),
		Comments:    domain.NewCount(comments),
		Shares:      domain.NewCount(shares),
		Saves:       domain.NewCount(saves),
	}
}

func TestDerive_TaxasDeDuasSegundasFeiras(t *testing.T) {
	ds := domain.Dataset{Posts: []domain.Post{
		newPost(0, "2024-01-01", 100, 10, 5, 2, 3),
		newPost(1, "2024-01-08", 200, 20, 0, 0, 0),
	}}

	derived, warnings := Derive(ds)

	require.Len(t, derived.Posts, 2)
	assert.Empty(t, warnings)
	assert.InDelta(t, 20.0, derived.Posts[0].EngagementRate, 1e-9)
	assert.InDelta(t, 10.0, derived.Posts[1].EngagementRate, 1e-9)
	assert.InDelta(t, 10.0, derived.Posts[0].LikeRate, 1e-9)
	assert.InDelta(t, 5.0, derived.Posts[0].CommentRate, 1e-9)
	assert.InDelta(t, 2.0, derived.Posts[0].ShareRate, 1e-9)
	assert.InDelta(t, 3.0, derived.Posts[0].SaveRate, 1e-9)
	assert.Equal(t, "Monday", derived.Posts[0].DayOfWeek)
	assert.Equal(t, "Monday", derived.Posts[1].DayOfWeek)
	assert.Equal(t, "January", derived.Posts[1].Month)
}

func TestDerive_EngajamentoIgualSomaDasTaxas(t *testing.T) {
	ds := domain.Dataset{Posts: []domain.Post{
		newPost(0, "2024-02-10", 3920, 162, 9, 5, 98),
		newPost(1, "2024-03-15", 5394, 224, 7, 14, 194),
		newPost(2, "2024-04-01", 17713, 443, 2, 61, 1095),
		newPost(3, "2024-04-02", 7, 1, 1, 1, 1),
	}}

	derived, _ := Derive(ds)

	for _, p := range derived.Posts {
		sum := p.LikeRate + p.CommentRate + p.ShareRate + p.SaveRate
		assert.InDelta(t, p.EngagementRate, sum, 1e-9, "linha %d", p.Row)
	}
}

func TestDerive_ImpressoesZeroFicamIndefinidas(t *testing.T) {
	missing := newPost(1, "2024-01-02", 0, 1, 1, 1, 1)
	missing.Impressions = domain.Count{}

	ds := domain.Dataset{Posts: []domain.Post{
		newPost(0, "2024-01-01", 0, 0, 0, 0, 0),
		missing,
	}}

	derived, warnings := Derive(ds)

	require.Len(t, warnings, 2)
	assert.Equal(t, domain.UndefinedMetricWarning, warnings[0].Kind)
	assert.Equal(t, 0, warnings[0].Row)
	assert.Equal(t, "impressões ausentes", warnings[1].Reason)

	for _, p := range derived.Posts {
		assert.True(t, math.IsNaN(p.EngagementRate))
		assert.True(t, math.IsNaN(p.LikeRate))
		assert.True(t, math.IsNaN(p.SaveRate))
		assert.True(t, math.IsNaN(p.CommentRate))
		assert.True(t, math.IsNaN(p.ShareRate))
		assert.NotEmpty(t, p.DayOfWeek)
	}
}

func TestDerive_ComponenteAusente(t *testing.T) {
	p := newPost(0, "2024-01-01", 100, 10, 5, 2, 3)
	p.Saves = domain.Count{}

	derived, warnings := Derive(domain.Dataset{Posts: []domain.Post{p}})

	require.Len(t, warnings, 1)
	assert.True(t, math.IsNaN(derived.Posts[0].EngagementRate))
	assert.True(t, math.IsNaN(derived.Posts[0].SaveRate))
	assert.InDelta(t, 10.0, derived.Posts[0].LikeRate, 1e-9)
}

func TestDerive_NaoAlteraOriginalEEhIdempotente(t *testing.T) {
	ds := domain.Dataset{Posts: []domain.Post{newPost(0, "2024-01-01", 100, 10, 5, 2, 3)}}

	first, _ := Derive(ds)
	second, _ := Derive(first)

	assert.False(t, ds.Posts[0].Derived)
	assert.Equal(t, 0.0, ds.Posts[0].EngagementRate)
	assert.Equal(t, first, second)
}
