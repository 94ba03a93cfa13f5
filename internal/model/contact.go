package model

import "time"

type ContactSubmission struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	ProjectType string  `json:"projectType"`
	Budget      *string `json:"budget,omitempty"`
	Message     string  `json:"message"`
}

var ProjectTypes = []string{
	"residential",
	"commercial",
	"interior",
	"renovation",
	"consultation",
	"landscaping",
	"other",
}

// IsProjectType reports whether v is one of ProjectTypes. The match is case-sensitive.
func IsProjectType(v string) bool {
	for _, t := range ProjectTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Fields renders the submission back into the shape accepted by the validator.
func (s ContactSubmission) Fields() map[string]any {
	f := map[string]any{
		FieldName:        s.Name,
		FieldEmail:       s.Email,
		FieldPhone:       s.Phone,
		FieldProjectType: s.ProjectType,
		FieldMessage:     s.Message,
	}
	if s.Budget != nil {
		f[FieldBudget] = *s.Budget
	}
	return f
}

type ContactReceipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}
