package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.346))
	assert.Equal(t, -1.5, RoundWithTwoDecimalPlace(-1.499999))
}

func TestOptionalFloat(t *testing.T) {
	assert.Nil(t, OptionalFloat(math.NaN()))
	assert.Nil(t, OptionalFloat(math.Inf(1)))

	value := OptionalFloat(20.004)
	if assert.NotNil(t, value) {
		assert.Equal(t, 20.0, *value)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "", FormatFloat(math.NaN()))
	assert.Equal(t, "20", FormatFloat(20))
	assert.Equal(t, "2.5", FormatFloat(2.5))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-9876543, "-9,876,543"},
		{-999, "-999"},
		{9223372036854775807, "9,223,372,036,854,775,807"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatThousands(tt.in))
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "n/d", FormatDecimal(math.NaN(), 2))
	assert.Equal(t, "5,703.58", FormatDecimal(5703.5849, 2))
	assert.Equal(t, "1,234,567", FormatDecimal(1234567, 0))
	assert.Equal(t, "-1,500.5", FormatDecimal(-1500.5, 1))
	assert.Equal(t, "0.00", FormatDecimal(-0.001, 2))
	assert.Equal(t, "12.3", FormatDecimal(12.34, 1))
}
