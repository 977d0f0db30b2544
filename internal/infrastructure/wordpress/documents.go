package wordpress

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// contactFieldsFragment selects the node metadata and the ACF field group.
// Field names must match the ACF keys exposed by the WPGraphQL schema.
const contactFieldsFragment = `
  id
  databaseId
  title
  contactFields {
    fullName
    mobileNumber
    whatsappNumber
    personalEmail
    linkedinUrl
    organizationName
    designation
    officeLandline
    officialEmail
    institute
    sectors
    industries
  }
`

// MutationNames holds the schema names derived from the configured post
// type. WPGraphQL capitalizes only the first character of the singular name
// for operation and input type names; the nested result field keeps the
// configured name untouched.
type MutationNames struct {
	Create      string
	Update      string
	Delete      string
	CreateInput string
	UpdateInput string
	DeleteInput string
	Result      string
}

// NamesFor derives the mutation names for the given post type.
func NamesFor(postType string) MutationNames {
	t := capitalizeFirst(postType)
	return MutationNames{
		Create:      "create" + t,
		Update:      "update" + t,
		Delete:      "delete" + t,
		CreateInput: "Create" + t + "Input",
		UpdateInput: "Update" + t + "Input",
		DeleteInput: "Delete" + t + "Input",
		Result:      postType,
	}
}

// capitalizeFirst upper-cases only the first rune, leaving the remainder of
// the string untouched even when it already contains mixed case.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ContactListQuery returns the document fetching up to 200 contact nodes.
// There is no pagination cursor: 200 is the fixed fetch limit.
func ContactListQuery() string {
	return fmt.Sprintf(`
query ContactList {
  contacts(first: 200) {
    nodes {%s    }
  }
}`, contactFieldsFragment)
}

// LookupsQuery returns the document fetching the sector and industry
// taxonomy terms, capped at 300 names each.
func LookupsQuery() string {
	return `
query ContactLookups {
  sectors: terms(where: {taxonomy: SECTOR, hideEmpty: false}, first: 300) {
    nodes { name }
  }
  industries: terms(where: {taxonomy: INDUSTRY, hideEmpty: false}, first: 300) {
    nodes { name }
  }
}`
}

// CreateMutation returns the create document for the given post type.
func CreateMutation(postType string) string {
	n := NamesFor(postType)
	return fmt.Sprintf(`
mutation CreateContact($input: %s!) {
  %s(input: $input) {
    %s {%s    }
  }
}`, n.CreateInput, n.Create, n.Result, contactFieldsFragment)
}

// UpdateMutation returns the update document for the given post type.
func UpdateMutation(postType string) string {
	n := NamesFor(postType)
	return fmt.Sprintf(`
mutation UpdateContact($input: %s!) {
  %s(input: $input) {
    %s {%s    }
  }
}`, n.UpdateInput, n.Update, n.Result, contactFieldsFragment)
}

// DeleteMutation returns the delete document for the given post type.
func DeleteMutation(postType string) string {
	n := NamesFor(postType)
	return fmt.Sprintf(`
mutation DeleteContact($input: %s!) {
  %s(input: $input) {
    deletedId
  }
}`, n.DeleteInput, n.Delete)
}
