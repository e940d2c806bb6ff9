package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"User", "Users"},
		{"Category", "Categories"},
		{"Message", "Messages"},
		{"Address", "Addresses"},
		{"Company", "Companies"},
		{"Box", "Boxes"},
		{"Metadata", "Metadata"},
		{"Status", "Statuses"},
		{"Person", "People"},
		{"Criterion", "Criteria"},
		{"UserInfo", "UserInfo"},
		{"UserProfile", "UserProfiles"},
		{"UserID", "UserIDs"},
		{"APIKey", "APIKeys"},
		{"user_status", "user_statuses"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, plural(tt.input))
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"createdAt", "CreatedAt"},
		{"User", "User"},
		{"private", "Private"},
		{"id", "Id"},
		{"read_only", "ReadOnly"},
		{"read-only", "ReadOnly"},
		{"UserID", "UserID"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, titleCase(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"User", "user"},
		{"Users", "users"},
		{"UserProfile", "userProfile"},
		{"private", "private"},
		{"read_only", "readOnly"},
		{"HTTPLog", "httpLog"},
		{"APIKey", "apiKey"},
		{"UserIDs", "userIDs"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camel(tt.input))
		})
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"User", "user"},
		{"UserProfile", "user-profile"},
		{"UserID", "user-id"},
		{"APIKey", "api-key"},
		{"HTTPLog", "http-log"},
		{"PHBOrg", "phb-org"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, kebab(tt.input))
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"User", []string{"User"}},
		{"createdAt", []string{"created", "At"}},
		{"HTTPCode", []string{"HTTP", "Code"}},
		{"UserIDs", []string{"User", "IDs"}},
		{"APIKey", []string{"API", "Key"}},
		{"ID", []string{"ID"}},
		{"read_only", []string{"read", "only"}},
		{"full-admin", []string{"full", "admin"}},
		{"__a__b", []string{"a", "b"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, words(tt.input))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'email'", quote("email"))
	assert.Equal(t, `'it\'s'`, quote("it's"))
	assert.Equal(t, "''", quote(""))
}
