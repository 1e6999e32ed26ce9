package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldPath      = "path"
	FieldCommand   = "command"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldName      = "name"
	FieldAmount    = "amount"
	FieldStaticID  = "static_id"
	FieldEntryID   = "entry_id"
	FieldCount     = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpAddEntry     = "add_entry"
	OpAddStatic    = "add_static"
	OpDeleteStatic = "delete_static"
	OpShow         = "show"
	OpShowStatics  = "show_statics"
	OpStartup      = "startup"
)
