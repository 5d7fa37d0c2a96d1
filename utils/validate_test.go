package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("anna@example.com"))
	assert.NoError(t, ValidateEmail("a.b-c@sub.example.pl"))

	for _, email := range []string{"", "plain", "@example.com", "a@b", "a b@example.com"} {
		assert.Error(t, ValidateEmail(email), "email %q", email)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret"))

	cases := map[string]string{
		"Sh0rt":        "too short",
		"alllower123":  "no uppercase",
		"NoDigitsHere": "no digit",
	}
	for password, reason := range cases {
		assert.Error(t, ValidatePassword(password), reason)
	}
}

func TestValidateBirthDate(t *testing.T) {
	birthDate, err := ValidateBirthDate("1992-03-14")
	require.NoError(t, err)
	assert.Equal(t, 1992, birthDate.Year())

	for _, raw := range []string{"14-03-1992", "1899-12-31", "2999-01-01", "not-a-date"} {
		_, err := ValidateBirthDate(raw)
		assert.Error(t, err, "birth date %q", raw)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "Sup3rSecret"))
	assert.False(t, VerifyPassword(hash, "sup3rsecret"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", 7, "client", 15)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.False(t, token.Exp.IsZero())

	refresh, err := NewRefreshToken("secret", 7, 30)
	require.NoError(t, err)
	assert.NotEqual(t, token.Token, refresh.Token)
}
