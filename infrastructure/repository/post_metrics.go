package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/engagement-insights/infrastructure/database/postgres"
	"github.com/vfg2006/engagement-insights/internal/domain"
)

//go:generate mockgen -source=post_metrics.go -destination=mocks/mock_post_metrics.go -package=mocks

const (
	postMetricsTable = "post_metrics"

	// 1000 linhas de 23 parâmetros ficam abaixo do limite de 65535 do postgres
	upsertBatchSize = 1000
)

var postMetricsColumns = []string{
	"run_id", "row_index", "post_date",
	"impressions", "from_home", "from_hashtags", "from_explore", "from_other",
	"saves", "comments", "shares", "likes", "profile_visits", "follows",
	"caption", "hashtags",
	"engagement_rate", "like_rate", "save_rate", "comment_rate", "share_rate",
	"day_of_week", "month",
}

type PostMetricsRepository interface {
	SaveBatch(ctx context.Context, runID string, posts []domain.Post) error
	GetByRun(ctx context.Context, runID string) ([]domain.Post, error)
}

type postMetricsRepository struct {
	conn *postgres.Connection
}

func NewPostMetricsRepository(conn *postgres.Connection) PostMetricsRepository {
	return &postMetricsRepository{
		conn: conn,
	}
}

// SaveBatch grava os posts enriquecidos da execução. Reexecutar com o mesmo runID sobrescreve as linhas.
func (r *postMetricsRepository) SaveBatch(ctx context.Context, runID string, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(posts); start += upsertBatchSize {
			end := min(start+upsertBatchSize, len(posts))

			query, args, err := upsertQuery(runID, posts[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}
		return nil
	})
}

func (r *postMetricsRepository) GetByRun(ctx context.Context, runID string) ([]domain.Post, error) {
	query, args, err := selectByRunQuery(runID)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var record postMetricsRecord
		if err := rows.Scan(record.targets()...); err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		posts = append(posts, record.toPost())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

func upsertQuery(runID string, posts []domain.Post) (string, []any, error) {
	insert := squirrel.
		Insert(postMetricsTable).
		Columns(postMetricsColumns...)

	for i := range posts {
		p := &posts[i]
		insert = insert.Values(
			runID,
			p.Row,
			p.Date.Format(time.DateOnly),
			p.Impressions,
			p.FromHome,
			p.FromHashtags,
			p.FromExplore,
			p.FromOther,
			p.Saves,
			p.Comments,
			p.Shares,
			p.Likes,
			p.ProfileVisits,
			p.Follows,
			p.Caption,
			p.Hashtags,
			nullableRate(p.EngagementRate),
			nullableRate(p.LikeRate),
			nullableRate(p.SaveRate),
			nullableRate(p.CommentRate),
			nullableRate(p.ShareRate),
			p.DayOfWeek,
			p.Month,
		)
	}

	return insert.
		Suffix(`
			ON CONFLICT (run_id, row_index) DO UPDATE SET
				post_date = EXCLUDED.post_date,
				impressions = EXCLUDED.impressions,
				from_home = EXCLUDED.from_home,
				from_hashtags = EXCLUDED.from_hashtags,
				from_explore = EXCLUDED.from_explore,
				from_other = EXCLUDED.from_other,
				saves = EXCLUDED.saves,
				comments = EXCLUDED.comments,
				shares = EXCLUDED.shares,
				likes = EXCLUDED.likes,
				profile_visits = EXCLUDED.profile_visits,
				follows = EXCLUDED.follows,
				caption = EXCLUDED.caption,
				hashtags = EXCLUDED.hashtags,
				engagement_rate = EXCLUDED.engagement_rate,
				like_rate = EXCLUDED.like_rate,
				save_rate = EXCLUDED.save_rate,
				comment_rate = EXCLUDED.comment_rate,
				share_rate = EXCLUDED.share_rate,
				day_of_week = EXCLUDED.day_of_week,
				month = EXCLUDED.month,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func selectByRunQuery(runID string) (string, []any, error) {
	return squirrel.
		Select(postMetricsColumns[1:]...).
		From(postMetricsTable).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("row_index ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// nullableRate grava taxas indefinidas como NULL
func nullableRate(rate float64) any {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil
	}
	return rate
}

// postMetricsRecord espelha uma linha de post_metrics, sem run_id
type postMetricsRecord struct {
	rowIndex int
	date     time.Time
	counts   [11]sql.NullInt64
	caption  sql.NullString
	hashtags sql.NullString
	rates    [5]sql.NullFloat64
	day      sql.NullString
	month    sql.NullString
}

func (r *postMetricsRecord) targets() []any {
	targets := []any{&r.rowIndex, &r.date}
	for i := range r.counts {
		targets = append(targets, &r.counts[i])
	}
	targets = append(targets, &r.caption, &r.hashtags)
	for i := range r.rates {
		targets = append(targets, &r.rates[i])
	}
	return append(targets, &r.day, &r.month)
}

func (r *postMetricsRecord) toPost() domain.Post {
	count := func(n sql.NullInt64) domain.Count {
		return domain.Count{Int64: n.Int64, Valid: n.Valid}
	}
	rate := func(f sql.NullFloat64) float64 {
		if !f.Valid {
			return math.NaN()
		}
		return f.Float64
	}

	y, m, d := r.date.Date()

	return domain.Post{
		Row:            r.rowIndex,
		Date:           time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Impressions:    count(r.counts[0]),
		FromHome:       count(r.counts[1]),
		FromHashtags:   count(r.counts[2]),
		FromExplore:    count(r.counts[3]),
		FromOther:      count(r.counts[4]),
		Saves:          count(r.counts[5]),
		Comments:       count(r.counts[6]),
		Shares:         count(r.counts[7]),
		Likes:          count(r.counts[8]),
		ProfileVisits:  count(r.counts[9]),
		Follows:        count(r.counts[10]),
		Caption:        r.caption.String,
		Hashtags:       r.hashtags.String,
		EngagementRate: rate(r.rates[0]),
		LikeRate:       rate(r.rates[1]),
		SaveRate:       rate(r.rates[2]),
		CommentRate:    rate(r.rates[3]),
		ShareRate:      rate(r.rates[4]),
		DayOfWeek:      r.day.String,
		Month:          r.month.String,
		Derived:        true,
	}
}
