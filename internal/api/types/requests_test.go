package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroster/engine/internal/models"
	appErr "github.com/devroster/engine/pkg/errors"
)

func TestDeveloperDTOMapping(t *testing.T) {
	id := 7
	dto := DeveloperDTO{
		ID:        &id,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@gmail.com",
		Specialty: "Java",
		Status:    models.StatusActive,
	}

	m := dto.ToModel()
	assert.Equal(t, models.Developer{
		ID:        7,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@gmail.com",
		Specialty: "Java",
		Status:    models.StatusActive,
	}, *m)
	assert.Equal(t, dto, FromModel(m))
}

func TestDeveloperDTOOmitsMissingID(t *testing.T) {
	dto := FromModel(&models.Developer{FirstName: "John", LastName: "Doe", Email: "john.doe@gmail.com"})
	assert.Nil(t, dto.ID)
	assert.Zero(t, dto.ToModel().ID)

	b, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"John","lastName":"Doe","email":"john.doe@gmail.com"}`, string(b))
}

func TestFromModelsNeverNil(t *testing.T) {
	out := FromModels(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestErrorBodies(t *testing.T) {
	err := appErr.New(appErr.CodeNotFound, "Developer not found")

	assert.Equal(t, ErrorResponse{Status: 404, Message: "Developer not found"}, NewErrorResponse(404, err))
	assert.Equal(t, &APIError{Code: "not_found", Message: "Developer not found"}, FromAppError(err))
	assert.Equal(t, &APIError{Code: "unknown", Message: "boom"}, FromAppError(errors.New("boom")))
	assert.Nil(t, FromAppError(nil))
}
