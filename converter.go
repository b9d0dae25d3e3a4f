package linkvault

// Converter renders content HTML as markdown text for summarizing.
type Converter interface {
	Convert(html string) (string, error)
}
