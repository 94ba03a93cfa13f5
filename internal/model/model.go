package model

// Wire names of the contact form fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldProjectType = "projectType"
	FieldBudget      = "budget"
	FieldMessage     = "message"
)
