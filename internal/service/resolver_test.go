package service

import (
	"strings"
	"testing"

	"ironlady-chat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(models.DefaultKnowledgeBase())
}

const programsAnswer = "We offer 4 flagship programs:\n" +
	"    \n" +
	"1. Executive Leadership Mastery - 12 weeks, Hybrid format\n" +
	"2. Strategic Leadership Foundation - 8 weeks, Online\n" +
	"3. Women in Leadership Accelerator - 16 weeks, Hybrid\n" +
	"4. Team Management Excellence - 6 weeks, Online\n" +
	"\n" +
	"Each program includes mentorship, certification, and lifetime access to materials. Which program interests you most?"

const durationsAnswer = `Our program durations vary:
- Executive Leadership Mastery: 12 weeks
- Women in Leadership Accelerator: 16 weeks
- Strategic Leadership Foundation: 8 weeks
- Team Management Excellence: 6 weeks

All programs are designed to fit around your work schedule with flexible timing options.`

func TestResolve_ProgramRule(t *testing.T) {
	r := newTestResolver()

	inputs := []string{
		"What programs do you offer?",
		"COURSE list please",
		"tell me about programming and the price and mentors",
		"is there an online course with a certificate?",
	}
	for _, in := range inputs {
		out := r.Resolve(in)
		assert.Equal(t, OutcomeFAQAnswer, out.Kind, in)
		assert.Equal(t, "programs", out.Rule, in)
		assert.Equal(t, programsAnswer, out.Text, in)
	}
}

func TestResolve_DurationRule(t *testing.T) {
	out := newTestResolver().Resolve("How long does it take?")

	require.Equal(t, OutcomeFAQAnswer, out.Kind)
	assert.Equal(t, "duration", out.Rule)
	assert.Equal(t, durationsAnswer, out.Text)
}

func TestResolve_RulePrecedence(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		input string
		rule  string
	}{
		{"program price", "programs"},
		{"How long does it take?", "duration"},
		{"what is the fee, and how much time?", "duration"},
		{"Who are the instructors?", "mentors"},
		{"mentor certificate", "mentors"},
		{"Do I get a CERTIFICATION?", "certification"},
		{"certificate fee", "certification"},
		{"Is it online?", "mode"},
		{"what format and price", "mode"},
		{"How much does it cost?", "pricing"},
		{"fees and support", "pricing"},
		{"I need help", "support"},
		{"support options", "support"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := r.Resolve(tt.input)
			require.Equal(t, OutcomeFAQAnswer, out.Kind)
			assert.Equal(t, tt.rule, out.Rule)
		})
	}
}

func TestResolve_PricingListsAllPricesCheapestFirst(t *testing.T) {
	out := newTestResolver().Resolve("How much does it cost?")
	require.Equal(t, OutcomeFAQAnswer, out.Kind)

	prices := []string{"$1,299", "$1,799", "$2,999", "$3,499"}
	last := -1
	for _, p := range prices {
		idx := strings.Index(out.Text, p)
		require.GreaterOrEqual(t, idx, 0, p)
		assert.Greater(t, idx, last, p)
		last = idx
	}
}

func TestResolve_TemplatesUseKnowledgeBase(t *testing.T) {
	r := newTestResolver()

	assert.Contains(t, r.Resolve("mentor").Text, "10,000+ graduates")
	assert.Contains(t, r.Resolve("help").Text, "Our 96% satisfaction rate reflects")
	assert.Contains(t, r.Resolve("certificate").Text, "Certified Executive Leader (CEL)")
}

func TestResolve_AlternateCatalog(t *testing.T) {
	kb := models.NewKnowledgeBase(
		[]models.ProgramRecord{
			{Name: "Alpha", Duration: "2 weeks", Mode: "Online", Price: "$500"},
			{Name: "Beta", Duration: "4 weeks", Mode: "Hybrid", Price: "$100"},
		},
		models.GeneralInfo{Company: "Test Academy", Students: "12 graduates"},
	)
	r := NewResolver(kb)

	out := r.Resolve("course")
	assert.True(t, strings.HasPrefix(out.Text, "We offer 2 flagship programs:"))
	assert.Contains(t, out.Text, "1. Alpha - 2 weeks, Online\n")

	durations := r.Resolve("duration").Text
	assert.Less(t, strings.Index(durations, "Alpha"), strings.Index(durations, "Beta"))

	pricing := r.Resolve("price").Text
	assert.Less(t, strings.Index(pricing, "Beta"), strings.Index(pricing, "Alpha"))

	assert.Contains(t, r.FallbackText("x"), "Alpha (2 weeks) and Beta (4 weeks)")
}

func TestResolve_EmptyInput(t *testing.T) {
	out := newTestResolver().Resolve("")
	assert.Equal(t, OutcomeEmpty, out.Kind)
	assert.Empty(t, out.Text)
}

func TestResolve_NoMatchDelegates(t *testing.T) {
	out := newTestResolver().Resolve("Who founded the academy?")
	assert.Equal(t, OutcomeDelegation, out.Kind)
	assert.Empty(t, out.Rule)
}

func TestFallbackText_EchoesInputVerbatim(t *testing.T) {
	r := newTestResolver()
	input := `Where is <b>your</b> "campus"?`

	text := r.FallbackText(input)
	assert.Contains(t, text, input)
	assert.Contains(t, text, "Executive Leadership Mastery (12 weeks), Strategic Leadership Foundation (8 weeks), Women in Leadership Accelerator (16 weeks), and Team Management Excellence (6 weeks)")
	assert.Contains(t, text, "program details, duration, certification, mentors, or pricing")
}

func TestSystemPrompt_EmbedsFacts(t *testing.T) {
	prompt := newTestResolver().SystemPrompt()

	assert.Contains(t, prompt, "Iron Lady Leadership Academy")
	for _, p := range models.DefaultKnowledgeBase().Programs {
		assert.Contains(t, prompt, p.Name)
		assert.Contains(t, prompt, p.Price)
	}
	assert.Contains(t, prompt, "10,000+ graduates")
	assert.Contains(t, prompt, "96% satisfaction rate")
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, rule := range newTestResolver().Rules() {
		names = append(names, rule.Name)
	}
	assert.Equal(t, []string{"programs", "duration", "mentors", "certification", "mode", "pricing", "support"}, names)
}
