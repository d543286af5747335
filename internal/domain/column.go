package domain

import (
	"fmt"
	"math"
	"strings"
)

// Column identifica uma coluna numérica do dataset
type Column string

const (
	ColumnImpressions    Column = "impressions"
	ColumnLikes          Column = "likes"
	ColumnComments       Column = "comments"
	ColumnShares         Column = "shares"
	ColumnSaves          Column = "saves"
	ColumnProfileVisits  Column = "profile_visits"
	ColumnFollows        Column = "follows"
	ColumnFromHome       Column = "from_home"
	ColumnFromHashtags   Column = "from_hashtags"
	ColumnFromExplore    Column = "from_explore"
	ColumnFromOther      Column = "from_other"
	ColumnEngagementRate Column = "engagement_rate"
	ColumnLikeRate       Column = "like_rate"
	ColumnSaveRate       Column = "save_rate"
	ColumnCommentRate    Column = "comment_rate"
	ColumnShareRate      Column = "share_rate"
)

// Cabeçalhos exatos do arquivo de origem (sensíveis a maiúsculas e espaços)
const (
	HeaderDate          = "Date"
	HeaderImpressions   = "Impressions"
	HeaderLikes         = "Likes"
	HeaderComments      = "Comments"
	HeaderShares        = "Shares"
	HeaderSaves         = "Saves"
	HeaderProfileVisits = "Profile Visits"
	HeaderFollows       = "Follows"
	HeaderFromHome      = "From Home"
	HeaderFromHashtags  = "From Hashtags"
	HeaderFromExplore   = "From Explore"
	HeaderFromOther     = "From Other"
	HeaderCaption       = "Caption"
	HeaderHashtags      = "Hashtags"
)

// CountColumns são as colunas de contadores, na ordem do arquivo de origem
var CountColumns = []Column{
	ColumnImpressions,
	ColumnFromHome,
	ColumnFromHashtags,
	ColumnFromExplore,
	ColumnFromOther,
	ColumnSaves,
	ColumnComments,
	ColumnShares,
	ColumnLikes,
	ColumnProfileVisits,
	ColumnFollows,
}

// RateColumns são as colunas derivadas de taxa
var RateColumns = []Column{
	ColumnEngagementRate,
	ColumnLikeRate,
	ColumnSaveRate,
	ColumnCommentRate,
	ColumnShareRate,
}

// CorrelationColumns é o conjunto fixo usado na matriz de correlação
var CorrelationColumns = []Column{
	ColumnImpressions,
	ColumnLikes,
	ColumnComments,
	ColumnShares,
	ColumnSaves,
	ColumnProfileVisits,
	ColumnFollows,
}

// TrafficSources são as origens de tráfego nomeadas
var TrafficSources = []Column{
	ColumnFromHome,
	ColumnFromHashtags,
	ColumnFromExplore,
	ColumnFromOther,
}

// EngagementColumns são os contadores que compõem o engajamento
var EngagementColumns = []Column{
	ColumnLikes,
	ColumnComments,
	ColumnShares,
	ColumnSaves,
}

var headersByColumn = map[Column]string{
	ColumnImpressions:    HeaderImpressions,
	ColumnLikes:          HeaderLikes,
	ColumnComments:       HeaderComments,
	ColumnShares:         HeaderShares,
	ColumnSaves:          HeaderSaves,
	ColumnProfileVisits:  HeaderProfileVisits,
	ColumnFollows:        HeaderFollows,
	ColumnFromHome:       HeaderFromHome,
	ColumnFromHashtags:   HeaderFromHashtags,
	ColumnFromExplore:    HeaderFromExplore,
	ColumnFromOther:      HeaderFromOther,
	ColumnEngagementRate: "Engagement_Rate",
	ColumnLikeRate:       "Like_Rate",
	ColumnSaveRate:       "Save_Rate",
	ColumnCommentRate:    "Comment_Rate",
	ColumnShareRate:      "Share_Rate",
}

// ParseColumn converte o nome (snake_case ou cabeçalho) em Column
func ParseColumn(name string) (Column, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")

	column := Column(normalized)
	if _, ok := headersByColumn[column]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}

	return column, nil
}

// Header retorna o nome da coluna como aparece no arquivo
func (c Column) Header() string {
	if header, ok := headersByColumn[c]; ok {
		return header
	}
	return string(c)
}

// IsRate indica se a coluna é uma taxa derivada
func (c Column) IsRate() bool {
	for _, rate := range RateColumns {
		if c == rate {
			return true
		}
	}
	return false
}

// Count retorna o contador da coluna para o post. ok é falso para taxas.
func (c Column) Count(p *Post) (Count, bool) {
	switch c {
	case ColumnImpressions:
		return p.Impressions, true
	case ColumnLikes:
		return p.Likes, true
	case ColumnComments:
		return p.Comments, true
	case ColumnShares:
		return p.Shares, true
	case ColumnSaves:
		return p.Saves, true
	case ColumnProfileVisits:
		return p.ProfileVisits, true
	case ColumnFollows:
		return p.Follows, true
	case ColumnFromHome:
		return p.FromHome, true
	case ColumnFromHashtags:
		return p.FromHashtags, true
	case ColumnFromExplore:
		return p.FromExplore, true
	case ColumnFromOther:
		return p.FromOther, true
	}
	return Count{}, false
}

// Value retorna o valor da coluna para o post, NaN quando indefinido
func (c Column) Value(p *Post) float64 {
	if count, ok := c.Count(p); ok {
		return count.Float()
	}

	switch c {
	case ColumnEngagementRate:
		return p.EngagementRate
	case ColumnLikeRate:
		return p.LikeRate
	case ColumnSaveRate:
		return p.SaveRate
	case ColumnCommentRate:
		return p.CommentRate
	case ColumnShareRate:
		return p.ShareRate
	}

	return math.NaN()
}
