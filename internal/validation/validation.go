package validation

import (
	"strings"

	"github.com/Heidric/contact-intake/internal/model"
	"github.com/go-playground/validator/v10"
)

// Error is returned when a candidate breaks one or more rules. Messages keep
// field declaration order, then rule order within a field.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// FormValidator evaluates a RuleSet against candidate records. It holds no
// mutable state and is safe for concurrent use.
type FormValidator struct {
	rules    RuleSet
	validate *validator.Validate
}

func New(rules RuleSet) *FormValidator {
	return &FormValidator{
		rules:    rules,
		validate: validator.New(),
	}
}

// Check runs every rule of every field against candidate and collects all
// failures. On success it returns the cleaned values of the declared fields
// that were present; undeclared keys are dropped. A nil candidate behaves as
// a record with every field absent.
func (v *FormValidator) Check(candidate map[string]any) (map[string]string, error) {
	var msgs []string
	cleaned := make(map[string]string, len(v.rules.fields))

	for _, f := range v.rules.fields {
		raw, ok := candidate[f.Name]
		if !ok || raw == nil {
			if f.Required {
				msgs = append(msgs, f.RequiredMessage)
			}
			continue
		}

		s, ok := raw.(string)
		if !ok {
			msgs = append(msgs, f.TypeMessage)
			continue
		}

		if f.Trim {
			s = strings.TrimSpace(s)
		}

		if strings.TrimSpace(s) == "" {
			if f.Required {
				msgs = append(msgs, f.RequiredMessage)
				continue
			}
			cleaned[f.Name] = s
			continue
		}

		failed := false
		for _, r := range f.Rules {
			if err := v.validate.Var(s, r.Tag); err != nil {
				msgs = append(msgs, r.Message)
				failed = true
			}
		}
		if failed {
			continue
		}

		if f.Lower {
			s = strings.ToLower(s)
		}
		cleaned[f.Name] = s
	}

	if len(msgs) > 0 {
		return nil, &Error{Messages: msgs}
	}
	return cleaned, nil
}

func (v *FormValidator) ValidateContact(candidate map[string]any) (*model.ContactSubmission, error) {
	c, err := v.Check(candidate)
	if err != nil {
		return nil, err
	}

	sub := &model.ContactSubmission{
		Name:        c[model.FieldName],
		Email:       c[model.FieldEmail],
		Phone:       c[model.FieldPhone],
		ProjectType: c[model.FieldProjectType],
		Message:     c[model.FieldMessage],
	}
	if b, ok := c[model.FieldBudget]; ok {
		sub.Budget = &b
	}

	return sub, nil
}
