package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-01-08")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 8, date.Day())

	_, err = ParseDate("08/01/2024")
	assert.Error(t, err)
}

func TestParseFlexibleDate(t *testing.T) {
	want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{"ISO data", "2024-01-08"},
		{"ISO com horário", "2024-01-08 13:45:00"},
		{"RFC3339", "2024-01-08T13:45:00Z"},
		{"ISO sem fuso", "2024-01-08T13:45:00"},
		{"barra ano primeiro", "2024/01/08"},
		{"mês/dia/ano", "01/08/2024"},
		{"mês/dia/ano sem zero", "1/8/2024"},
		{"dia-mês abreviado", "08-Jan-2024"},
		{"mês por extenso", "January 8, 2024"},
		{"com espaços", "  2024-01-08  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleDate(tt.value)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseFlexibleDate_Invalido(t *testing.T) {
	for _, value := range []string{"", "ontem", "2024-13-45", "32/01/2024"} {
		_, err := ParseFlexibleDate(value)
		assert.Error(t, err, value)
	}
}
