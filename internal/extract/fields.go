package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/constants"
)

// Fields is the structured record one extraction call produces. Every
// field except Type is optional: the zero value means "no confident
// candidate found", never a placeholder.
type Fields struct {
	InvoiceNo string            `json:"invoiceNo,omitempty"`
	LetterNo  string            `json:"letterNo,omitempty"`
	DocDate   *time.Time        `json:"docDate,omitempty"`
	Sender    string            `json:"sender,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Address   string            `json:"address,omitempty"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Amount    *decimal.Decimal  `json:"amount,omitempty"`
	Type      constants.DocType `json:"type"`
}

// Reference is the combined reference number used downstream as the
// primary search key: the invoice number when one was found, else the
// letter number.
func (f Fields) Reference() string {
	if f.InvoiceNo != "" {
		return f.InvoiceNo
	}
	return f.LetterNo
}

// DisplayFields is the human-presentation projection of Fields: the
// calendar date is rendered as a locale-formatted string and everything
// else is carried over unchanged.
type DisplayFields struct {
	InvoiceNo string            `json:"invoiceNo,omitempty"`
	LetterNo  string            `json:"letterNo,omitempty"`
	DocDate   string            `json:"docDate,omitempty"`
	Sender    string            `json:"sender,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Address   string            `json:"address,omitempty"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Amount    *decimal.Decimal  `json:"amount,omitempty"`
	Type      constants.DocType `json:"type"`
}
