package utils

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// IsDefined indica se o valor não é NaN nem infinito
func IsDefined(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// OptionalFloat arredonda o valor e retorna nil quando ele é indefinido
func OptionalFloat(f float64) *float64 {
	if !IsDefined(f) {
		return nil
	}

	rounded := RoundWithTwoDecimalPlace(f)
	return &rounded
}

// FormatFloat formata o valor sem perda de precisão, ou vazio quando indefinido
func FormatFloat(f float64) string {
	if !IsDefined(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatThousands formata um inteiro com separador de milhar (1,234,567)
func FormatThousands(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatDecimal formata o valor com casas decimais fixas e separador de milhar.
// Valores indefinidos viram "n/d".
func FormatDecimal(f float64, places int) string {
	if !IsDefined(f) {
		return "n/d"
	}

	digits := strconv.FormatFloat(math.Abs(f), 'f', places, 64)
	intPart, fraction, hasFraction := strings.Cut(digits, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return strconv.FormatFloat(f, 'f', places, 64)
	}

	out := FormatThousands(n)
	if hasFraction {
		out += "." + fraction
	}
	if f < 0 && strings.Trim(digits, "0.") != "" {
		out = "-" + out
	}
	return out
}
