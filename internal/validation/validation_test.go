package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"first.last@mail.example.org", true},
		{"a@b", false},
		{"ab.co", false},
		{"", false},
		{"a b@c.de", false},
		{"a@@b.co", false},
		{"@b.co", false},
		{"a@b.", false},
		{"a\u00a0b@c.co", false},
		{"a\vb@c.co", false},
		{"a@b\u3000c.co", false},
		{"a@b.c\ufeff", false},
		{"a\u2028b@c.co", false},
		{"josé@exemple.fr", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateEmail(tt.in), "ValidateEmail(%q)", tt.in)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Abcde1", true},
		{"Abcdefghijk1", true},
		{"abcde1", false},
		{"ABCDE1", false},
		{"Abcdef", false},
		{"Abcd1", false},
		{"Abcdefghijkl1", false},
		{"Ab cd1", true},
		{"Abc\nd1", false},
		{"Abcdefghi1\U0001F600", true},
		{"Abcdefghij1\U0001F600", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidatePassword(tt.in), "ValidatePassword(%q)", tt.in)
	}
}

func TestRegister_Tags(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v, []string{"Finance"}, []string{"Manager"}))

	type form struct {
		Email      string `validate:"fpemail"`
		Password   string `validate:"fppassword"`
		Department string `validate:"department"`
		Role       string `validate:"jobrole"`
	}

	require.NoError(t, v.Struct(form{Email: "a@b.co", Password: "Abcde1", Department: "Finance", Role: "Manager"}))

	err := v.Struct(form{Email: "a@b", Password: "abc", Department: "Legal", Role: "CEO"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	tags := map[string]string{}
	for _, fe := range verrs {
		tags[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"Email":      "fpemail",
		"Password":   "fppassword",
		"Department": "department",
		"Role":       "jobrole",
	}, tags)
}
