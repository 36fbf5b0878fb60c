// Package persona holds the portfolio owner's digital-twin identity:
// the resume facts and the behavioral instruction the completion
// provider is primed with. Everything here is fixed at construction,
// there is no mutation path at request time.
package persona

import "fmt"

// Persona is the assembled system instruction plus the raw resume it
// was built from. Construct once at startup and share by reference.
type Persona struct {
	resume       string
	systemPrompt string
}

func New() *Persona {
	return NewWithResume(resumeData)
}

// NewWithResume builds a persona around custom resume text. Used by
// tests and by deployments that template their own resume in.
func NewWithResume(resume string) *Persona {
	return &Persona{
		resume:       resume,
		systemPrompt: fmt.Sprintf(systemPromptTemplate, resume),
	}
}

func (p *Persona) Resume() string {
	return p.resume
}

func (p *Persona) SystemPrompt() string {
	return p.systemPrompt
}

// Compose wraps a visitor message into the full upstream prompt.
func (p *Persona) Compose(message string) string {
	return fmt.Sprintf("%s\n\nUser message: %s\n\nRespond as the AI Digital Twin:", p.systemPrompt, message)
}
