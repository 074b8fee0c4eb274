package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactSubmit(t *testing.T) {
	setupTestDB(t)

	contactService := ContactService{}

	ref, err := contactService.Submit("Asha", "A@X.com", "Quote", "Need a site")
	assert.NoError(t, err)
	assert.NotEmpty(t, ref)

	ref2, err := contactService.Submit("Ben", "b@x.com", "", "Another one")
	assert.NoError(t, err)
	assert.NotEqual(t, ref, ref2)

	messages, err := contactService.AllMessages()
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "a@x.com", messages[len(messages)-1].Email)
}

func TestContactSubmitMissingFields(t *testing.T) {
	setupTestDB(t)

	contactService := ContactService{}

	_, err := contactService.Submit("", "a@x.com", "", "body")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = contactService.Submit("Asha", "", "", "body")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = contactService.Submit("Asha", "a@x.com", "", "   ")
	assert.ErrorIs(t, err, ErrMissingField)

	messages, err := contactService.AllMessages()
	assert.NoError(t, err)
	assert.Empty(t, messages)
}
