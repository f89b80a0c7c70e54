package extract

import "fmt"

// SectionNotFoundError means the anchor heading text is absent from the
// document, so extraction has no scope to work in.
type SectionNotFoundError struct {
	Title string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found in document", e.Title)
}

// MalformedStateNameError means a state's long name breaks the naming
// convention the normalizer depends on.
type MalformedStateNameError struct {
	LongName string
}

func (e *MalformedStateNameError) Error() string {
	return fmt.Sprintf("state name %q does not end in %q", e.LongName, "state")
}
