package log

// Common field names for structured logging. Tokens and credentials must
// never appear as field values.
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldStatusCode   = "status_code"
	FieldAttempt      = "attempt"
	FieldDelay        = "delay"
	FieldDay          = "day"
	FieldFrom         = "from"
	FieldTo           = "to"
	FieldChatID       = "chat_id"
	FieldLengthChars  = "length_chars"
	FieldParts        = "parts"
	FieldTransactions = "transactions"
	FieldExpenses     = "expenses"
	FieldAmountMinor  = "amount_minor"
	FieldDryRun       = "dry_run"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentConfig   = "config"
	ComponentMono     = "monobank"
	ComponentReport   = "report"
	ComponentTelegram = "telegram"
	ComponentService  = "daily_report"
)
