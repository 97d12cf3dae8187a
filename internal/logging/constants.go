package logging

// Standard field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldRunID      = "run_id"
	FieldRow        = "row"
	FieldColumn     = "column"
	FieldCategory   = "category"
	FieldCount      = "count"
	FieldDropped    = "dropped"
	FieldDelimiter  = "delimiter"
	FieldEncoding   = "encoding"
	FieldFormat     = "format"
	FieldDuration   = "duration_ms" // int64 milliseconds
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
