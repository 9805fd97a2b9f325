package service

import (
	"fmt"
	"strings"

	"ironlady-chat/internal/models"
)

// OutcomeKind classifies what Resolve decided for one input.
type OutcomeKind int

const (
	// OutcomeEmpty means there was no text to match at all.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeFAQAnswer carries a rendered FAQ reply in Outcome.Text.
	OutcomeFAQAnswer
	// OutcomeDelegation means no rule matched and the question should go to
	// the completion provider.
	OutcomeDelegation
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFAQAnswer:
		return "faq_answer"
	case OutcomeDelegation:
		return "delegation"
	default:
		return "empty"
	}
}

type Outcome struct {
	Kind OutcomeKind
	Rule string
	Text string
}

// Rule is one FAQ topic: any keyword found in the lowercased input selects it.
type Rule struct {
	Name     string
	Keywords []string
	Render   func(kb *models.KnowledgeBase) string
}

func (r Rule) matches(lowerInput string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerInput, kw) {
			return true
		}
	}
	return false
}

// Resolver answers questions from the knowledge base with ordered keyword rules.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	kb    *models.KnowledgeBase
	rules []Rule
}

func NewResolver(kb *models.KnowledgeBase) *Resolver {
	return &Resolver{
		kb:    kb,
		rules: DefaultRules(),
	}
}

// Rules returns the rules in evaluation order.
func (r *Resolver) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Resolve picks the first rule whose keywords occur in input. Matching is plain
// substring containment, so "program" also matches "programming".
func (r *Resolver) Resolve(input string) Outcome {
	if input == "" {
		return Outcome{Kind: OutcomeEmpty}
	}

	lower := strings.ToLower(input)
	for _, rule := range r.rules {
		if rule.matches(lower) {
			return Outcome{
				Kind: OutcomeFAQAnswer,
				Rule: rule.Name,
				Text: rule.Render(r.kb),
			}
		}
	}

	return Outcome{Kind: OutcomeDelegation}
}

// DefaultRules returns the FAQ topics in precedence order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "programs", Keywords: []string{"program", "course"}, Render: renderPrograms},
		{Name: "duration", Keywords: []string{"duration", "long", "time"}, Render: renderDurations},
		{Name: "mentors", Keywords: []string{"mentor", "instructor"}, Render: renderMentors},
		{Name: "certification", Keywords: []string{"certification", "certificate"}, Render: renderCertifications},
		{Name: "mode", Keywords: []string{"mode", "online", "format"}, Render: renderModes},
		{Name: "pricing", Keywords: []string{"price", "cost", "fee"}, Render: renderPricing},
		{Name: "support", Keywords: []string{"support", "help"}, Render: renderSupport},
	}
}

func renderPrograms(kb *models.KnowledgeBase) string {
	var b strings.Builder
	// the indented blank line is part of the published answer
	fmt.Fprintf(&b, "We offer %d flagship programs:\n    \n", len(kb.Programs))
	for i, p := range kb.Programs {
		fmt.Fprintf(&b, "%d. %s - %s, %s\n", i+1, p.Name, p.Duration, p.FormatLabel())
	}
	b.WriteString("\nEach program includes mentorship, certification, and lifetime access to materials. Which program interests you most?")
	return b.String()
}

func renderDurations(kb *models.KnowledgeBase) string {
	var b strings.Builder
	b.WriteString("Our program durations vary:\n")
	for _, p := range kb.ProgramsByDurationListing() {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.Duration)
	}
	b.WriteString("\nAll programs are designed to fit around your work schedule with flexible timing options.")
	return b.String()
}

func renderMentors(kb *models.KnowledgeBase) string {
	return "Our mentors are industry leaders:\n" +
		"- Former Fortune 500 CEOs and executives\n" +
		"- Successful female entrepreneurs and leaders\n" +
		"- Senior corporate strategists and consultants\n" +
		"- HR directors and team building experts\n\n" +
		fmt.Sprintf("Each student gets personal mentorship and access to our exclusive network of %s.", kb.GeneralInfo.Students)
}

func renderCertifications(kb *models.KnowledgeBase) string {
	var b strings.Builder
	b.WriteString("Yes! We provide industry-recognized certifications:\n")
	for _, p := range kb.Programs {
		fmt.Fprintf(&b, "- %s\n", p.Certification)
	}
	b.WriteString("\nAll certifications include digital badges for LinkedIn and lifetime verification.")
	return b.String()
}

func renderModes(_ *models.KnowledgeBase) string {
	return "We offer flexible learning modes:\n" +
		"- Fully Online: Self-paced with live weekly sessions\n" +
		"- Hybrid: Online modules + weekend workshops\n" +
		"- Intensive Formats: Accelerated learning options\n\n" +
		"All programs include 24/7 platform access and recorded sessions for your convenience."
}

func renderPricing(kb *models.KnowledgeBase) string {
	var b strings.Builder
	b.WriteString("Our program pricing:\n")
	for _, p := range kb.ProgramsByPrice() {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.Price)
	}
	b.WriteString("\nWe offer payment plans and corporate discounts. All programs include lifetime access to materials and ongoing support.")
	return b.String()
}

func renderSupport(kb *models.KnowledgeBase) string {
	return "We provide comprehensive support:\n" +
		"- 24/7 student support team\n" +
		"- Personal mentorship sessions\n" +
		"- Peer learning groups\n" +
		"- Technical assistance\n" +
		"- Career guidance and networking\n\n" +
		fmt.Sprintf("Our %s reflects our commitment to student success!", kb.GeneralInfo.Satisfaction)
}

// SystemPrompt is the instruction sent with every delegated question.
func (r *Resolver) SystemPrompt() string {
	kb := r.kb
	info := kb.GeneralInfo

	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful assistant for %s. You help people learn about our leadership programs. Here's our program information:\n\n", info.Company)
	b.WriteString("Programs:\n")
	for i, p := range kb.Programs {
		fmt.Fprintf(&b, "%d. %s (%s, %s, %s) - %s\n", i+1, p.Name, p.Duration, p.Mode, p.Price, p.Description)
	}
	b.WriteString("\nAll programs include:\n")
	b.WriteString("- Industry expert mentors (Fortune 500 CEOs, successful entrepreneurs)\n")
	b.WriteString("- Professional certification\n")
	fmt.Fprintf(&b, "- %s\n", info.Support)
	fmt.Fprintf(&b, "- %s\n", info.Resources)
	fmt.Fprintf(&b, "- %s of %s\n", info.Networking, info.Students)
	fmt.Fprintf(&b, "- %s\n\n", info.Satisfaction)
	b.WriteString("Keep responses helpful, professional, and focused on our leadership programs. If asked about topics outside our programs, politely redirect to our offerings.")
	return b.String()
}

// FallbackText is the reply used when delegation is disabled or fails. It is
// the only template that quotes the user's input.
func (r *Resolver) FallbackText(input string) string {
	parts := make([]string, 0, len(r.kb.Programs))
	for _, p := range r.kb.Programs {
		parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, p.Duration))
	}

	return fmt.Sprintf("Thank you for your question about \"%s\". I'd be happy to help you learn about %s's leadership programs! "+
		"We offer comprehensive leadership training with expert mentors, industry certifications, and flexible learning formats.\n\n"+
		"Our flagship programs include %s.\n\n"+
		"Could you ask me something specific about program details, duration, certification, mentors, or pricing?",
		input, r.kb.GeneralInfo.Company, joinWithAnd(parts))
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
