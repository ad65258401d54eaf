package models

// Report is a reporter -> reported user complaint. Status is mutated only
// by admin action. A user's count of pending reports feeds the derived
// Flagged projection; "Flagged" itself is never persisted.
type Report struct {
	ID             string `dynamodbav:"id" json:"id"`
	ReporterID     string `dynamodbav:"reporterId" json:"reporterId"`
	ReportedUserID string `dynamodbav:"reportedUserId" json:"reportedUserId"`
	Reason         string `dynamodbav:"reason" json:"reason"`
	Details        string `dynamodbav:"details,omitempty" json:"details,omitempty"`
	Status         string `dynamodbav:"status" json:"status"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// ReportsTable is the DynamoDB table name for reports
const ReportsTable = "Reports"
