package logging

// Standardized field names for structured logging. These constants keep log
// output consistent across the application so it stays easy to filter.
const (
	FieldFile     = "file_path"
	FieldSheet    = "sheet"
	FieldSnapshot = "snapshot_id"
	FieldRow      = "row"
	FieldCount    = "count"
	FieldAccount  = "account"
	FieldTag      = "tag"
	FieldError    = "error"
)
