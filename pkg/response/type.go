package response

import (
	"encoding/json"
	"time"
)

// Resp is the WordPress REST error body.
type Resp struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

// ErrorData carries the HTTP status and, for term conflicts, the existing term.
type ErrorData struct {
	Status int `json:"status"`
	TermID int `json:"term_id,omitempty"`
}

// DateTime is a datetime that marshals as DateTimeFormat, the site-local
// format WordPress uses for "date" and "modified".
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}
