package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medal-service/internal/models"
)

func TestValidateRegisterMedalRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterMedalRequest
		wantErr bool
	}{
		{"valid", models.RegisterMedalRequest{Latitude: 35.6812, Longitude: 139.7671, Accuracy: 10}, false},
		{"equator is valid", models.RegisterMedalRequest{Latitude: 0, Longitude: 0}, false},
		{"latitude too high", models.RegisterMedalRequest{Latitude: 90.5, Longitude: 0}, true},
		{"longitude too low", models.RegisterMedalRequest{Latitude: 0, Longitude: -180.5}, true},
		{"negative accuracy", models.RegisterMedalRequest{Latitude: 0, Longitude: 0, Accuracy: -3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSignUpPrecheck(t *testing.T) {
	valid := models.SignUpPrecheck{
		Email:           "user@example.com",
		Password:        "pass",
		PasswordConfirm: "pass",
		AgreedToTerms:   true,
	}
	assert.NoError(t, ValidateStruct(&valid))

	tests := []struct {
		name   string
		mutate func(*models.SignUpPrecheck)
		msg    string
	}{
		{"missing email", func(p *models.SignUpPrecheck) { p.Email = "" }, "Email"},
		{"malformed email", func(p *models.SignUpPrecheck) { p.Email = "not-an-email" }, "Email"},
		{"short password", func(p *models.SignUpPrecheck) { p.Password = "abc"; p.PasswordConfirm = "abc" }, "Password"},
		{"mismatched confirm", func(p *models.SignUpPrecheck) { p.PasswordConfirm = "other" }, "PasswordConfirm"},
		{"terms not agreed", func(p *models.SignUpPrecheck) { p.AgreedToTerms = false }, "AgreedToTerms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateStruct(&req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidatePreferences(t *testing.T) {
	assert.NoError(t, ValidateStruct(&models.Preferences{AppMode: "exploration"}))
	assert.NoError(t, ValidateStruct(&models.Preferences{AppMode: "registration", Viewport: &models.MapViewport{
		Latitude: 35.0, Longitude: 139.0, LatitudeDelta: 0.05, LongitudeDelta: 0.05,
	}}))
	assert.Error(t, ValidateStruct(&models.Preferences{AppMode: "unknown"}))
}
