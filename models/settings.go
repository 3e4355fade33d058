package models

import "time"

// EnquirySettings is a singleton record: the WhatsApp number enquiries are
// sent to and the message template with {{items}} and {{total}}
// placeholders.
type EnquirySettings struct {
	WhatsAppNumber string    `json:"whatsapp_number"`
	PrefilledText  string    `json:"prefilled_text"`
	UpdatedAt      time.Time `json:"updated_at"`
}
