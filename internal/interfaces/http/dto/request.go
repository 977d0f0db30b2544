package dto

import "github.com/contactdesk/backend/internal/domain/contact"

// LoginRequest carries the submitted credential pair.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ContactPayload carries a submitted contact record. Every attribute must be
// present in the body; all values except fullName may be empty strings. The
// pointer fields distinguish an absent key from an empty one, which plain
// strings cannot.
type ContactPayload struct {
	FullName         string   `json:"fullName" binding:"required"`
	MobileNumber     *string  `json:"mobileNumber" binding:"required"`
	WhatsappNumber   *string  `json:"whatsappNumber" binding:"required"`
	PersonalEmail    *string  `json:"personalEmail" binding:"required,email|eq="`
	LinkedinURL      *string  `json:"linkedinUrl" binding:"required"`
	OrganizationName *string  `json:"organizationName" binding:"required"`
	Designation      *string  `json:"designation" binding:"required"`
	OfficeLandline   *string  `json:"officeLandline" binding:"required"`
	OfficialEmail    *string  `json:"officialEmail" binding:"required,email|eq="`
	Institute        *string  `json:"institute" binding:"required"`
	Sectors          []string `json:"sectors"`
	Industries       []string `json:"industries"`
}

// Input converts a bound payload to the domain input shape.
func (p ContactPayload) Input() contact.Input {
	return contact.Input{
		FullName:         p.FullName,
		MobileNumber:     deref(p.MobileNumber),
		WhatsappNumber:   deref(p.WhatsappNumber),
		PersonalEmail:    deref(p.PersonalEmail),
		LinkedinURL:      deref(p.LinkedinURL),
		OrganizationName: deref(p.OrganizationName),
		Designation:      deref(p.Designation),
		OfficeLandline:   deref(p.OfficeLandline),
		OfficialEmail:    deref(p.OfficialEmail),
		Institute:        deref(p.Institute),
		Sectors:          p.Sectors,
		Industries:       p.Industries,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
