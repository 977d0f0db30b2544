package wordpress

import (
	"strconv"

	"github.com/contactdesk/backend/internal/domain/contact"
)

// ContactNode is the external representation of a contact: node metadata
// plus the optional ACF field group.
type ContactNode struct {
	ID            string     `json:"id"`
	DatabaseID    int        `json:"databaseId"`
	Title         string     `json:"title"`
	ContactFields *FieldsNode `json:"contactFields"`
}

// FieldsNode is the ACF field group as returned by WPGraphQL. FullName is a
// pointer so an absent name (which falls back to the node title) can be told
// apart from an explicitly empty one (which does not).
type FieldsNode struct {
	FullName         *string  `json:"fullName"`
	MobileNumber     string   `json:"mobileNumber"`
	WhatsappNumber   string   `json:"whatsappNumber"`
	PersonalEmail    string   `json:"personalEmail"`
	LinkedinURL      string   `json:"linkedinUrl"`
	OrganizationName string   `json:"organizationName"`
	Designation      string   `json:"designation"`
	OfficeLandline   string   `json:"officeLandline"`
	OfficialEmail    string   `json:"officialEmail"`
	Institute        string   `json:"institute"`
	Sectors          []string `json:"sectors"`
	Industries       []string `json:"industries"`
}

// MapContact converts an external node into the canonical contact record.
// The id is the stringified numeric database id; missing fields default to
// empty strings or empty sets. Never errors: a wholly absent response object
// is the caller's problem, not the mapper's.
func MapContact(node ContactNode) contact.Contact {
	c := contact.Contact{ID: strconv.Itoa(node.DatabaseID)}
	if f := node.ContactFields; f != nil {
		if f.FullName != nil {
			c.FullName = *f.FullName
		} else {
			c.FullName = node.Title
		}
		c.MobileNumber = f.MobileNumber
		c.WhatsappNumber = f.WhatsappNumber
		c.PersonalEmail = f.PersonalEmail
		c.LinkedinURL = f.LinkedinURL
		c.OrganizationName = f.OrganizationName
		c.Designation = f.Designation
		c.OfficeLandline = f.OfficeLandline
		c.OfficialEmail = f.OfficialEmail
		c.Institute = f.Institute
		c.Sectors = f.Sectors
		c.Industries = f.Industries
	} else {
		c.FullName = node.Title
	}
	if c.Sectors == nil {
		c.Sectors = []string{}
	}
	if c.Industries == nil {
		c.Industries = []string{}
	}
	return c
}

// BuildInput converts a contact input into the mutation payload: the title
// mirrors the full name and the field group carries the input verbatim.
func BuildInput(in contact.Input) map[string]any {
	if in.Sectors == nil {
		in.Sectors = []string{}
	}
	if in.Industries == nil {
		in.Industries = []string{}
	}
	return map[string]any{
		"title":         in.FullName,
		"contactFields": in,
	}
}
