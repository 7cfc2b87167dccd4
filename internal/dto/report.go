package dto

import "time"

// ReportParams selects the report window. Both ends default to the last 30 days.
type ReportParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}
