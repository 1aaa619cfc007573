package validation_test

import (
	"errors"
	"testing"

	"github.com/kanoonai/kanoon-web/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	City    string `form:"rent.agreement_city" json:"agreement_city" validate:"required"`
	Tenant  string `json:"tenant_full_name" validate:"required"`
	Age     int    `form:"rent.tenant_age"`
	Comment string `validate:"required"`
}

func TestValidatorReportsFormKeys(t *testing.T) {
	v := validation.New()

	err := v.Validate(&sample{})
	require.Error(t, err)
	assert.Equal(t, []string{"rent.agreement_city", "tenant_full_name", "Comment"}, validation.Fields(err))

	assert.NoError(t, v.Validate(&sample{City: "Pune", Tenant: "P", Comment: "x"}))
}

func TestFieldsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, validation.Fields(errors.New("boom")))
	assert.Nil(t, validation.Fields(nil))
}
