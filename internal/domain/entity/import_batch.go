package entity

import (
	"time"
)

// Import Batch Process Status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// ImportRow is one raw tabular row as delivered by the upload layer.
// All fields are string-typed; parsing and validation happen at import.
type ImportRow struct {
	ControlNumber          string `bson:"controlNumber"`
	Surname                string `bson:"surname"`
	FirstName              string `bson:"firstName"`
	ContactType            string `bson:"contactType"`
	ContactDetail          string `bson:"contactDetail"`
	OfficeID               string `bson:"officeId"`
	Agent                  string `bson:"agent"`
	CreationDate           string `bson:"creationDate"`
	DeliverySystemCompany  string `bson:"deliverySystemCompany"`
	DeliverySystemLocation string `bson:"deliverySystemLocation"`
	FFNumber               string `bson:"ffNumber"`
	Meal                   string `bson:"meal"`
	SeatRowNumber          string `bson:"seatRowNumber"`
	SeatColumn             string `bson:"seatColumn"`
}

// ImportBatch is a staged upload awaiting import: raw rows plus the
// processing lifecycle bookkeeping.
type ImportBatch struct {
	ID               string         `bson:"_id,omitempty"`
	BatchID          string         `bson:"batchId"` // unique index
	Source           string         `bson:"source"`
	Rows             []ImportRow    `bson:"rows"`
	ReceivedAt       time.Time      `bson:"receivedAt"`
	ProcessStatus    string         `bson:"processStatus"`
	ProcessStartedAt time.Time      `bson:"processStartedAt"`
	ProcessedAt      time.Time      `bson:"processedAt"`
	ErrorDetail      string         `bson:"errorDetail"`
	Summary          *ImportSummary `bson:"summary,omitempty"`
	CreatedAt        time.Time      `bson:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt"`
}

// ImportSummary reports what one import invocation produced.
type ImportSummary struct {
	PNRCount       int `bson:"pnrCount"`
	PassengerCount int `bson:"passengerCount"`
	ContactCount   int `bson:"contactCount"`
	SkippedRows    int `bson:"skippedRows"`
}
