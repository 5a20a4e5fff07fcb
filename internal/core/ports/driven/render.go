package driven

// Delimiters configure the placeholder decoration a renderer applies
// around each key when matching placeholders in a template.
type Delimiters struct {
	Start string
	End   string
}

// TemplateRenderer replaces placeholders inside a zip-based document
// container. Keys in values are undecorated; the renderer applies the
// delimiter pair itself. Any placeholder or container mismatch is
// returned as an error, never pre-validated by callers.
type TemplateRenderer interface {
	// Render produces new container bytes with every occurrence of
	// each delimited key replaced by its value. The returned set holds
	// the keys whose placeholder appeared at least once.
	Render(template []byte, values map[string]string, delims Delimiters) ([]byte, map[string]bool, error)
}
