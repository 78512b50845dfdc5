package scoring

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"transaction-analytics-backend/internal/models"
)

// Fields that must appear in at least one record. A field missing from
// every record means the payload is structurally wrong, not just dirty,
// and fails the whole request.
var requiredFields = []string{
	"payment_uid",
	"department",
	"vendor_id",
	"amount",
	"transaction_date",
	"isMonthEnd",
	"month",
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// NormalizeTransactions coerces loosely-typed records into typed rows.
// Individual bad values fall back to zero values (or an invalid-date
// marker) so a dirty row never aborts the batch.
func NormalizeTransactions(records []map[string]any) ([]models.Transaction, error) {
	if len(records) == 0 {
		return []models.Transaction{}, nil
	}

	for _, field := range requiredFields {
		if !fieldPresent(records, field) {
			return nil, fmt.Errorf("required field '%s' missing from all transactions", field)
		}
	}

	txs := make([]models.Transaction, 0, len(records))
	for _, rec := range records {
		tx := models.Transaction{
			PaymentUID: coerceString(rec["payment_uid"]),
			Department: coerceString(rec["department"]),
			VendorID:   coerceString(rec["vendor_id"]),
			Amount:     coerceFloat(rec["amount"]),
			IsMonthEnd: coerceBool(rec["isMonthEnd"]),
			Month:      int(coerceFloat(rec["month"])),
		}
		tx.TransactionDate, tx.DateValid = parseDate(rec["transaction_date"])
		if mode, ok := rec["payment_mode"]; ok {
			if s := coerceString(mode); s != "" {
				tx.PaymentMode = s
				tx.PaymentModeValid = true
			}
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func fieldPresent(records []map[string]any, field string) bool {
	for _, rec := range records {
		if _, ok := rec[field]; ok {
			return true
		}
	}
	return false
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceBool accepts a closed set of truthy representations: bool true,
// any non-zero number, or the strings "true"/"1". Everything else is false.
func coerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		return s == "true" || s == "1"
	default:
		return false
	}
}

func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
