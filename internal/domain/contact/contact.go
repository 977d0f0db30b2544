// Package contact defines the canonical contact record shared by the
// application and interface layers. The external WordPress installation is
// the only authoritative store; these types are the in-process view of it.
package contact

// Input holds the writable attributes of a contact. The JSON keys double as
// the ACF field keys in the WPGraphQL schema, so the struct is sent verbatim
// as the mutation field group.
type Input struct {
	FullName         string   `json:"fullName" binding:"required"`
	MobileNumber     string   `json:"mobileNumber"`
	WhatsappNumber   string   `json:"whatsappNumber"`
	PersonalEmail    string   `json:"personalEmail" binding:"omitempty,email"`
	LinkedinURL      string   `json:"linkedinUrl"`
	OrganizationName string   `json:"organizationName"`
	Designation      string   `json:"designation"`
	OfficeLandline   string   `json:"officeLandline"`
	OfficialEmail    string   `json:"officialEmail" binding:"omitempty,email"`
	Institute        string   `json:"institute"`
	Sectors          []string `json:"sectors"`
	Industries       []string `json:"industries"`
}

// Contact is an Input with the identifier assigned by the external system
// (its numeric database id, stringified).
type Contact struct {
	ID string `json:"id"`
	Input
}

// Lookups holds the taxonomy term names available for the multi-valued
// attributes, in server-supplied order.
type Lookups struct {
	Sectors    []string `json:"sectors"`
	Industries []string `json:"industries"`
}
