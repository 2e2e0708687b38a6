package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValidate(t *testing.T) {
	assert.NoError(t, (&Input{Description: "Hosting", Value: 120}).validate())
	assert.ErrorIs(t, (&Input{Value: 120}).validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Input{Description: "Hosting", Value: -1}).validate(), ErrInvalidInput)
}

func TestInputCategoryDefault(t *testing.T) {
	assert.Equal(t, "Geral", (&Input{}).category())
	assert.Equal(t, "Software", (&Input{Category: "Software"}).category())
}
