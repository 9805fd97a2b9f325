package main

import (
	"testing"

	"ironlady-chat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatCounts(t *testing.T) {
	lines := formatCounts(map[models.ReplySource]int64{
		models.SourceFAQ:      7,
		models.SourceFallback: 2,
		"legacy":              1,
	})

	assert.Equal(t, []string{
		"faq      7",
		"llm      0",
		"fallback 2",
		"legacy   1",
		"total    10",
	}, lines)
}
