package export

// Dataset is a flat tabular payload shared by the CSV and PDF renderers. Rows
// are keyed by header name so renderers stay order-stable.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}
