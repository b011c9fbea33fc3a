package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldCategory  = "category"
	FieldOperation = "operation"
	FieldStudentID = "student_id"
	FieldCount     = "count"
	FieldAmount    = "amount"
	FieldLimit     = "limit"
	FieldMonth     = "month"
	FieldQuery     = "query"
	FieldReason    = "reason"
)
