package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesFor(t *testing.T) {
	tests := []struct {
		name     string
		postType string
		want     MutationNames
	}{
		{
			name:     "lowercase type",
			postType: "contact",
			want: MutationNames{
				Create:      "createContact",
				Update:      "updateContact",
				Delete:      "deleteContact",
				CreateInput: "CreateContactInput",
				UpdateInput: "UpdateContactInput",
				DeleteInput: "DeleteContactInput",
				Result:      "contact",
			},
		},
		{
			name:     "mixed case type only first rune is touched",
			postType: "bizContact",
			want: MutationNames{
				Create:      "createBizContact",
				Update:      "updateBizContact",
				Delete:      "deleteBizContact",
				CreateInput: "CreateBizContactInput",
				UpdateInput: "UpdateBizContactInput",
				DeleteInput: "DeleteBizContactInput",
				Result:      "bizContact",
			},
		},
		{
			name:     "already capitalized",
			postType: "Contact",
			want: MutationNames{
				Create:      "createContact",
				Update:      "updateContact",
				Delete:      "deleteContact",
				CreateInput: "CreateContactInput",
				UpdateInput: "UpdateContactInput",
				DeleteInput: "DeleteContactInput",
				Result:      "Contact",
			},
		},
		{
			name:     "empty type",
			postType: "",
			want: MutationNames{
				Create:      "create",
				Update:      "update",
				Delete:      "delete",
				CreateInput: "CreateInput",
				UpdateInput: "UpdateInput",
				DeleteInput: "DeleteInput",
				Result:      "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NamesFor(tt.postType))
		})
	}
}

func TestContactListQuery(t *testing.T) {
	query := ContactListQuery()

	assert.Contains(t, query, "contacts(first: 200)")
	assert.Contains(t, query, "databaseId")
	assert.Contains(t, query, "contactFields {")
	for _, field := range []string{
		"fullName", "mobileNumber", "whatsappNumber", "personalEmail",
		"linkedinUrl", "organizationName", "designation", "officeLandline",
		"officialEmail", "institute", "sectors", "industries",
	} {
		assert.Contains(t, query, field)
	}
}

func TestLookupsQuery(t *testing.T) {
	query := LookupsQuery()

	assert.Contains(t, query, "sectors: terms(where: {taxonomy: SECTOR, hideEmpty: false}, first: 300)")
	assert.Contains(t, query, "industries: terms(where: {taxonomy: INDUSTRY, hideEmpty: false}, first: 300)")
}

func TestMutationDocuments(t *testing.T) {
	create := CreateMutation("contact")
	assert.Contains(t, create, "mutation CreateContact($input: CreateContactInput!)")
	assert.Contains(t, create, "createContact(input: $input)")
	// The nested result field keeps the configured lowercase name.
	assert.Contains(t, create, "contact {")
	assert.NotContains(t, create, "Contact {")

	update := UpdateMutation("contact")
	assert.Contains(t, update, "mutation UpdateContact($input: UpdateContactInput!)")
	assert.Contains(t, update, "updateContact(input: $input)")

	del := DeleteMutation("contact")
	assert.Contains(t, del, "mutation DeleteContact($input: DeleteContactInput!)")
	assert.Contains(t, del, "deleteContact(input: $input)")
	assert.Contains(t, del, "deletedId")
	assert.NotContains(t, del, "contactFields")
}
