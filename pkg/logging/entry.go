package logging

// Entry is a structured log record.
type Entry struct {
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int

	// RunID identifies the experiment trial the record belongs to, when one
	// is attached to the context.
	RunID string

	// Fields carries free-form structured data (generation numbers, scores,
	// entropy, timings).
	Fields map[string]interface{}
}
