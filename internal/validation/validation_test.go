package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walletdemo/ncw-core/internal/validation"
)

func TestValidateLogin(t *testing.T) {
	t.Run("a complete form passes", func(t *testing.T) {
		errs := validation.ValidateLogin(validation.LoginForm{
			Email:    "user@example.com",
			Password: "hunter2",
		})
		assert.Empty(t, errs)
	})

	t.Run("the referral code is optional", func(t *testing.T) {
		errs := validation.ValidateLogin(validation.LoginForm{
			Email:        "user@example.com",
			Password:     "hunter2",
			ReferralCode: "",
		})
		assert.Empty(t, errs)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := validation.ValidateLogin(validation.LoginForm{})
		assert.Equal(t, []validation.FieldError{
			{Field: "email", Message: "Email is required"},
			{Field: "password", Message: "Password is required"},
		}, errs)
	})

	t.Run("malformed email", func(t *testing.T) {
		errs := validation.ValidateLogin(validation.LoginForm{
			Email:    "not-an-email",
			Password: "hunter2",
		})
		assert.Equal(t, []validation.FieldError{
			{Field: "email", Message: "Invalid email address"},
		}, errs)
	})
}
