package contact

import "strings"

// Field describes one displayable attribute of a contact: a stable key, a
// human label and a typed accessor. Consumers iterate this table instead of
// reflecting over struct fields by name.
type Field struct {
	Key   string
	Label string
	Get   func(Contact) string
}

// Fields enumerates every displayable attribute in dashboard column order.
// Multi-valued attributes render as a comma-joined list.
var Fields = []Field{
	{Key: "fullName", Label: "Full Name", Get: func(c Contact) string { return c.FullName }},
	{Key: "mobileNumber", Label: "Mobile", Get: func(c Contact) string { return c.MobileNumber }},
	{Key: "whatsappNumber", Label: "WhatsApp", Get: func(c Contact) string { return c.WhatsappNumber }},
	{Key: "personalEmail", Label: "Personal Email", Get: func(c Contact) string { return c.PersonalEmail }},
	{Key: "linkedinUrl", Label: "LinkedIn", Get: func(c Contact) string { return c.LinkedinURL }},
	{Key: "organizationName", Label: "Organization", Get: func(c Contact) string { return c.OrganizationName }},
	{Key: "designation", Label: "Designation", Get: func(c Contact) string { return c.Designation }},
	{Key: "officeLandline", Label: "Office Landline", Get: func(c Contact) string { return c.OfficeLandline }},
	{Key: "officialEmail", Label: "Official Email", Get: func(c Contact) string { return c.OfficialEmail }},
	{Key: "institute", Label: "Institute", Get: func(c Contact) string { return c.Institute }},
	{Key: "sectors", Label: "Sectors", Get: func(c Contact) string { return strings.Join(c.Sectors, ", ") }},
	{Key: "industries", Label: "Industries", Get: func(c Contact) string { return strings.Join(c.Industries, ", ") }},
}

