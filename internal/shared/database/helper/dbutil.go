package helper

import (
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

func StringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func NullToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// =======================
// DECIMAL (Postgres Numeric)
// =======================

// Float64ToDecimalExact goes through the string form so the NUMERIC column keeps
// the exact value the client sent.
func Float64ToDecimalExact(f float64) decimal.Decimal {
	return decimal.RequireFromString(
		strconv.FormatFloat(f, 'f', -1, 64),
	)
}

// NumericToFloat64 parses the string representation sqlc scans for NUMERIC.
func NumericToFloat64(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func DecimalToNumeric(d decimal.Decimal) string {
	return d.String()
}
