package validation

import (
	"strings"

	"github.com/Heidric/contact-intake/internal/model"
)

// Rule is a single check on a field's cleaned string value. Tag is a
// go-playground/validator tag, e.g. "min=2" or "email".
type Rule struct {
	Tag     string
	Message string
}

type Field struct {
	Name     string
	Required bool
	Trim     bool
	// Lower folds the value to lower case once every rule has passed.
	Lower bool

	RequiredMessage string
	TypeMessage     string
	Rules           []Rule
}

// RuleSet is an ordered, immutable list of fields. The order of fields and of
// rules within a field is the order in which messages are reported.
type RuleSet struct {
	fields []Field
}

func NewRuleSet(fields ...Field) RuleSet {
	cp := make([]Field, len(fields))
	for i, f := range fields {
		f.Rules = append([]Rule(nil), f.Rules...)
		cp[i] = f
	}
	return RuleSet{fields: cp}
}

// Fields returns a copy of the declared fields.
func (rs RuleSet) Fields() []Field {
	return NewRuleSet(rs.fields...).fields
}

func ContactRules() RuleSet {
	return NewRuleSet(
		Field{
			Name:            model.FieldName,
			Required:        true,
			Trim:            true,
			RequiredMessage: "Name is required",
			TypeMessage:     "Name must be text",
			Rules: []Rule{
				{Tag: "min=2", Message: "Name must be at least 2 characters long"},
				{Tag: "max=100", Message: "Name cannot exceed 100 characters"},
			},
		},
		Field{
			Name:            model.FieldEmail,
			Required:        true,
			Trim:            true,
			Lower:           true,
			RequiredMessage: "Email is required",
			TypeMessage:     "Email must be text",
			Rules: []Rule{
				{Tag: "email", Message: "Please enter a valid email address"},
			},
		},
		Field{
			Name:            model.FieldPhone,
			Required:        true,
			Trim:            true,
			RequiredMessage: "Phone number is required",
			TypeMessage:     "Phone number must be text",
			Rules: []Rule{
				{Tag: "min=10", Message: "Please enter a valid phone number"},
			},
		},
		Field{
			Name:            model.FieldProjectType,
			Required:        true,
			RequiredMessage: "Project type is required",
			TypeMessage:     "Project type must be text",
			Rules: []Rule{
				{Tag: "oneof=" + strings.Join(model.ProjectTypes, " "), Message: "Please select a valid project type"},
			},
		},
		Field{
			Name:        model.FieldBudget,
			TypeMessage: "Budget must be text",
		},
		Field{
			Name:            model.FieldMessage,
			Required:        true,
			Trim:            true,
			RequiredMessage: "Message is required",
			TypeMessage:     "Message must be text",
			Rules: []Rule{
				{Tag: "min=10", Message: "Message must be at least 10 characters long"},
				{Tag: "max=2000", Message: "Message cannot exceed 2000 characters"},
			},
		},
	)
}
