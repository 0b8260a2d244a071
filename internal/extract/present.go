package extract

import (
	"fmt"
	"time"
)

// Indonesian long-form month names, indexed 1..12.
var monthNamesID = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDocDate renders a calendar date in Indonesian long form
// ("12 Januari 2024"), falling back to dd/mm/yyyy.
func FormatDocDate(t time.Time) string {
	u := t.UTC()
	m := int(u.Month())
	if m < 1 || m >= len(monthNamesID) {
		return u.Format("02/01/2006")
	}
	return fmt.Sprintf("%d %s %d", u.Day(), monthNamesID[m], u.Year())
}

// Present projects Fields into its display form. Only the date changes
// representation; the calendar form remains what a caller should persist.
func (e *Engine) Present(f Fields) DisplayFields {
	d := DisplayFields{
		InvoiceNo: f.InvoiceNo,
		LetterNo:  f.LetterNo,
		Sender:    f.Sender,
		Subject:   f.Subject,
		Address:   f.Address,
		Email:     f.Email,
		Phone:     f.Phone,
		Amount:    f.Amount,
		Type:      f.Type,
	}
	if f.DocDate != nil {
		d.DocDate = FormatDocDate(*f.DocDate)
	}
	return d
}
