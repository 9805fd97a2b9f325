package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatRequest_Validate(t *testing.T) {
	assert.Error(t, (&ChatRequest{}).Validate())
	assert.NoError(t, (&ChatRequest{Message: "hi"}).Validate())
	assert.NoError(t, (&ChatRequest{Message: " "}).Validate())
}
