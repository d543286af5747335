// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"database/sql/driver"
	"math"
	"time"
)

// Count representa um contador não negativo lido da planilha de origem.
// Valid é falso quando a célula estava vazia.
type Count struct {
	Int64 int64
	Valid bool
}

// NewCount cria um contador válido
func NewCount(v int64) Count {
	return Count{Int64: v, Valid: true}
}

// Float retorna o valor como float64, ou NaN quando ausente
func (c Count) Float() float64 {
	if !c.Valid {
		return math.NaN()
	}
	return float64(c.Int64)
}

// Value implementa driver.Valuer para gravação no banco
func (c Count) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.Int64, nil
}

// Post representa uma linha do dataset de engajamento
type Post struct {
	Row  int
	Date time.Time

	Impressions   Count
	Likes         Count
	Comments      Count
	Shares        Count
	Saves         Count
	ProfileVisits Count
	Follows       Count

	FromHome     Count
	FromHashtags Count
	FromExplore  Count
	FromOther    Count

	Caption  string
	Hashtags string

	// Campos derivados, em porcentagem. NaN quando indefinidos.
	EngagementRate float64
	LikeRate       float64
	SaveRate       float64
	CommentRate    float64
	ShareRate      float64
	DayOfWeek      string
	Month          string
	Derived        bool
}

// Dataset é a sequência ordenada de posts, na ordem das linhas do arquivo
type Dataset struct {
	Source string
	Posts  []Post
}

// Len retorna o número de posts
func (d Dataset) Len() int {
	return len(d.Posts)
}

// IsEmpty indica se o dataset não tem linhas
func (d Dataset) IsEmpty() bool {
	return len(d.Posts) == 0
}

// Clone cria uma cópia independente do dataset
func (d Dataset) Clone() Dataset {
	posts := make([]Post, len(d.Posts))
	copy(posts, d.Posts)
	return Dataset{Source: d.Source, Posts: posts}
}

// DateRange retorna a menor e a maior data. ok é falso para dataset vazio.
// Não assume que as linhas estejam ordenadas.
func (d Dataset) DateRange() (start, end time.Time, ok bool) {
	if len(d.Posts) == 0 {
		return time.Time{}, time.Time{}, false
	}

	start, end = d.Posts[0].Date, d.Posts[0].Date
	for _, p := range d.Posts[1:] {
		if p.Date.Before(start) {
			start = p.Date
		}
		if p.Date.After(end) {
			end = p.Date
		}
	}

	return start, end, true
}

// TruncateToDate descarta a parte de horário, mantendo o dia em UTC
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
