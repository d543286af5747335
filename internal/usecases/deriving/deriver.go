// Package deriving calcula as colunas derivadas de engajamento de cada post
package deriving

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/internal/domain"
)

// Derive retorna uma cópia do dataset com as taxas, o dia da semana e o mês preenchidos.
// O dataset de entrada não é alterado. Taxas sem impressões (zero ou ausentes) ficam NaN
// e geram um aviso, nunca zero.
func Derive(ds domain.Dataset) (domain.Dataset, []domain.Warning) {
	derived := ds.Clone()
	warnings := make([]domain.Warning, 0)

	for i := range derived.Posts {
		if warning, ok := DerivePost(&derived.Posts[i]); !ok {
			warnings = append(warnings, warning)
		}
	}

	if len(warnings) > 0 {
		logrus.WithFields(logrus.Fields{
			"source":            ds.Source,
			"undefined_metrics": len(warnings),
			"rows":              derived.Len(),
		}).Warn("Taxas indefinidas por falta de impressões")
	}

	return derived, warnings
}

// DerivePost preenche os campos derivados de um post.
// ok é falso quando as taxas ficaram indefinidas.
func DerivePost(p *domain.Post) (domain.Warning, bool) {
	p.DayOfWeek = p.Date.Weekday().String()
	p.Month = p.Date.Month().String()
	p.Derived = true

	impressions := p.Impressions.Float()
	if !p.Impressions.Valid || p.Impressions.Int64 == 0 {
		setUndefined(p)
		reason := "impressões iguais a zero"
		if !p.Impressions.Valid {
			reason = "impressões ausentes"
		}
		return domain.Warning{Kind: domain.UndefinedMetricWarning, Row: p.Row, Reason: reason}, false
	}

	p.LikeRate = rate(p.Likes.Float(), impressions)
	p.SaveRate = rate(p.Saves.Float(), impressions)
	p.CommentRate = rate(p.Comments.Float(), impressions)
	p.ShareRate = rate(p.Shares.Float(), impressions)

	// NaN em qualquer componente torna o engajamento indefinido
	engagements := p.Likes.Float() + p.Comments.Float() + p.Shares.Float() + p.Saves.Float()
	p.EngagementRate = rate(engagements, impressions)

	if math.IsNaN(p.EngagementRate) {
		return domain.Warning{Kind: domain.UndefinedMetricWarning, Row: p.Row, Reason: "contador de engajamento ausente"}, false
	}

	return domain.Warning{}, true
}

func rate(part, impressions float64) float64 {
	return 100 * part / impressions
}

func setUndefined(p *domain.Post) {
	p.EngagementRate = math.NaN()
	p.LikeRate = math.NaN()
	p.SaveRate = math.NaN()
	p.CommentRate = math.NaN()
	p.ShareRate = math.NaN()
}
