package generate

import "fmt"

// Form is the editable content brief. Topic is required; the other fields
// fall back to fixed labels when empty.
type Form struct {
	Topic       string
	Audience    string
	ContentType string
	Notes       string
}

// ContentInstruction builds the free-text instruction for the content agent.
func ContentInstruction(f Form) string {
	audience := f.Audience
	if audience == "" {
		audience = "General"
	}
	notes := f.Notes
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf("Topic: %s\nTarget Audience: %s\nContent Type: %s\nAdditional Notes: %s",
		f.Topic, audience, f.ContentType, notes)
}

// GraphicInstruction builds the free-text instruction for the graphic agent.
func GraphicInstruction(title, messaging, contentType string) string {
	return fmt.Sprintf("Create a professional marketing visual for: %s. Key messaging: %s. Content type: %s",
		title, messaging, contentType)
}

// firstNonEmpty returns the first non-empty value. It implements the
// recurring fallback chain live result -> selected campaign -> form input.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
