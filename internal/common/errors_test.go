package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticationRefinements(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidCredentials, ErrAuthentication)
	assert.ErrorIs(t, ErrUserExists, ErrAuthentication)
	assert.False(t, errors.Is(ErrInvalidCredentials, ErrUserExists))
	assert.False(t, errors.Is(ErrPersistence, ErrAuthentication))
	assert.False(t, errors.Is(ErrInputFormat, ErrAuthentication))
}
