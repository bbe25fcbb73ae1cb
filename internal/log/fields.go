package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldQuery       = "query"
	FieldFingerprint = "fingerprint"
	FieldCompany     = "company"
	FieldRecords     = "records"
	FieldBackend     = "backend"
)

// Standard component names.
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentStore  = "store"
	ComponentImport = "import"
	ComponentAMQP   = "amqp"
	ComponentWorker = "worker"
	ComponentSheets = "sheets"
)
