package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy is the owning user; every list query is scoped by it.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// DataQualityWarning flags a record the engines could only use after coercing or
// recomputing one of its fields. It is informational, never fatal.
type DataQualityWarning struct {
	RecordID string `json:"recordID"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}
