package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationStatus is the aggregate status of a debt or parceled income.
type ObligationStatus string

const (
	ObligationPendente ObligationStatus = "pendente"
	ObligationVencida  ObligationStatus = "vencida"
	ObligationQuitada  ObligationStatus = "quitada"
)

// InstallmentStatus is the status of a single installment.
type InstallmentStatus string

const (
	InstallmentPendente InstallmentStatus = "pendente"
	InstallmentPago     InstallmentStatus = "pago"
	InstallmentRecebida InstallmentStatus = "recebida"
	InstallmentVencida  InstallmentStatus = "vencida"
)

// DeriveObligationStatus computes the status of an obligation from its due
// date and installment counts.
//
// An obligation is quitada as soon as all installments are settled,
// regardless of the due date. Otherwise it is vencida when the due date
// lies strictly before today. The comparison is date-only so that an
// obligation due today is still pendente independent of the time of day.
func DeriveObligationStatus(dueDate time.Time, totalCount, settledCount int, today time.Time) ObligationStatus {
	if totalCount > 0 && settledCount >= totalCount {
		return ObligationQuitada
	}

	if dateOnly(dueDate).Before(dateOnly(today)) {
		return ObligationVencida
	}

	return ObligationPendente
}

// dateOnly truncates a timestamp to its date in UTC.
func dateOnly(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SplitAmount splits a total into n installment amounts.
//
// Every installment gets the total divided by n, truncated to cents. The
// rounding remainder is assigned to the last installment so that the
// amounts always sum up to the total exactly.
func SplitAmount(total decimal.Decimal, n int) []decimal.Decimal {
	if n < 1 {
		return nil
	}

	per := total.Div(decimal.NewFromInt(int64(n))).Truncate(2)

	amounts := make([]decimal.Decimal, n)
	for i := range amounts {
		amounts[i] = per
	}
	amounts[n-1] = total.Sub(per.Mul(decimal.NewFromInt(int64(n - 1))))

	return amounts
}
