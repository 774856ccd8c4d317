package domain

import "time"

type SystemStatus string

const (
	StatusInit    SystemStatus = "INIT"
	StatusReady   SystemStatus = "READY"
	StatusSending SystemStatus = "SENDING"
	StatusSent    SystemStatus = "SENT"
	StatusError   SystemStatus = "ERROR"
)

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Order   Order        `json:"order"`
	Rules   RulesResult  `json:"rules"`
	Clock   ClockState   `json:"clock"`
	Catalog *Catalog     `json:"-"`
	Status  SystemStatus `json:"status"`
}

// Receipt records that the outbound link was opened. It is not a delivery confirmation.
type Receipt struct {
	ID           string    `json:"id"`
	Link         string    `json:"link"`
	Message      string    `json:"message"`
	DispatchTime *string   `json:"dispatchTime"`
	SentAt       time.Time `json:"sentAt"`
}
