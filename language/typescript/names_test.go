package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thisuxhq/pockettypes"
)

func TestPascalCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"user_profiles", "UserProfiles"},
		{"2fa-codes", "2faCodes"},
		{"orders", "Orders"},
		{"Orders", "Orders"},
		{"blog posts", "BlogPosts"},
		{"_superusers", "Superusers"},
		{"camelCase", "CamelCase"},
		{"a-b_c d", "ABCD"},
		{"v2_items", "V2Items"},
		{"événements", "VNements"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PascalCase(tt.in))
		})
	}
}

func TestNameTable(t *testing.T) {
	t.Parallel()

	names := NewNameTable([]*pockettypes.Collection{
		{ID: "c1", Name: "user_profiles"},
		{ID: "c2", Name: "tags"},
		{ID: "c3", Name: ""},
	})

	got, ok := names.Lookup("c1")
	assert.True(t, ok)
	assert.Equal(t, "UserProfiles", got)

	got, ok = names.Lookup("c2")
	assert.True(t, ok)
	assert.Equal(t, "Tags", got)

	_, ok = names.Lookup("c3")
	assert.False(t, ok, "empty raw names are not resolvable")

	_, ok = names.Lookup("missing")
	assert.False(t, ok)

	_, ok = names.Lookup("")
	assert.False(t, ok)
}
