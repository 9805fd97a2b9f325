package models

import (
	"sort"
	"strconv"
	"strings"
)

// ProgramRecord describes one leadership program offered by the academy.
type ProgramRecord struct {
	Name          string `json:"name"`
	Duration      string `json:"duration"`
	Mode          string `json:"mode"`
	Certification string `json:"certification"`
	Mentors       string `json:"mentors"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	Schedule      string `json:"schedule"`

	// Format is the short mode label used in the program overview. Empty means
	// Mode is shown as is.
	Format string `json:"-"`
}

// FormatLabel returns the short mode label for listings.
func (p ProgramRecord) FormatLabel() string {
	if p.Format != "" {
		return p.Format
	}
	return p.Mode
}

// PriceAmount returns the price as a whole number of dollars, or 0 when the
// price string holds no digits.
func (p ProgramRecord) PriceAmount() int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, p.Price)
	amount, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return amount
}

type GeneralInfo struct {
	Company      string `json:"company"`
	Founded      string `json:"founded"`
	Students     string `json:"students"`
	Satisfaction string `json:"satisfaction"`
	Support      string `json:"support"`
	Networking   string `json:"networking"`
	Resources    string `json:"resources"`
}

// KnowledgeBase is the read-only catalog every answer is derived from.
// Build it once at startup and pass it by value or pointer; nothing mutates it.
type KnowledgeBase struct {
	Programs    []ProgramRecord `json:"programs"`
	GeneralInfo GeneralInfo     `json:"generalInfo"`

	// DurationOrder lists program indexes in the order the duration answer
	// presents them. Nil means catalog order.
	DurationOrder []int `json:"-"`
}

// NewKnowledgeBase copies programs so the caller's slice can't alias the catalog.
func NewKnowledgeBase(programs []ProgramRecord, info GeneralInfo) *KnowledgeBase {
	return &KnowledgeBase{
		Programs:    append([]ProgramRecord(nil), programs...),
		GeneralInfo: info,
	}
}

// AllPrograms returns a copy of the catalog together with the general info.
func (kb *KnowledgeBase) AllPrograms() KnowledgeBase {
	return KnowledgeBase{
		Programs:      append([]ProgramRecord(nil), kb.Programs...),
		GeneralInfo:   kb.GeneralInfo,
		DurationOrder: append([]int(nil), kb.DurationOrder...),
	}
}

// ProgramsByPrice returns the programs ordered from cheapest to most expensive.
func (kb *KnowledgeBase) ProgramsByPrice() []ProgramRecord {
	programs := append([]ProgramRecord(nil), kb.Programs...)
	sort.SliceStable(programs, func(i, j int) bool {
		return programs[i].PriceAmount() < programs[j].PriceAmount()
	})
	return programs
}

// ProgramsByDurationListing returns the programs in DurationOrder. Out of range
// indexes are skipped, and any program the order leaves out follows in
// catalog order.
func (kb *KnowledgeBase) ProgramsByDurationListing() []ProgramRecord {
	programs := make([]ProgramRecord, 0, len(kb.Programs))
	seen := make([]bool, len(kb.Programs))
	for _, i := range kb.DurationOrder {
		if i < 0 || i >= len(kb.Programs) || seen[i] {
			continue
		}
		seen[i] = true
		programs = append(programs, kb.Programs[i])
	}
	for i, p := range kb.Programs {
		if !seen[i] {
			programs = append(programs, p)
		}
	}
	return programs
}

// DefaultKnowledgeBase returns the Iron Lady Leadership Academy catalog.
func DefaultKnowledgeBase() *KnowledgeBase {
	kb := NewKnowledgeBase(
		[]ProgramRecord{
			{
				Name:          "Executive Leadership Mastery",
				Duration:      "12 weeks",
				Mode:          "Hybrid (Online + Weekend Workshops)",
				Certification: "Certified Executive Leader (CEL)",
				Mentors:       "Former Fortune 500 CEOs and Industry Veterans",
				Description:   "Comprehensive leadership program focusing on strategic thinking, decision making, and team management.",
				Price:         "$2,999",
				Schedule:      "Flexible online modules + 3 weekend intensives",
				Format:        "Hybrid format",
			},
			{
				Name:          "Strategic Leadership Foundation",
				Duration:      "8 weeks",
				Mode:          "Fully Online",
				Certification: "Strategic Leadership Certificate",
				Mentors:       "Senior Corporate Leaders and Consultants",
				Description:   "Foundation course covering leadership fundamentals and strategic planning.",
				Price:         "$1,799",
				Schedule:      "Self-paced with weekly live sessions",
				Format:        "Online",
			},
			{
				Name:          "Women in Leadership Accelerator",
				Duration:      "16 weeks",
				Mode:          "Hybrid",
				Certification: "Advanced Women Leadership Certificate",
				Mentors:       "Successful Female Executives and Entrepreneurs",
				Description:   "Specialized program addressing unique challenges faced by women in leadership roles.",
				Price:         "$3,499",
				Schedule:      "Weekly cohort sessions + monthly workshops",
				Format:        "Hybrid",
			},
			{
				Name:          "Team Management Excellence",
				Duration:      "6 weeks",
				Mode:          "Online",
				Certification: "Team Management Professional",
				Mentors:       "HR Directors and Team Building Experts",
				Description:   "Intensive course on building high-performing teams and managing diverse groups.",
				Price:         "$1,299",
				Schedule:      "Intensive 6-week sprint format",
				Format:        "Online",
			},
		},
		GeneralInfo{
			Company:      "Iron Lady Leadership Academy",
			Founded:      "2015",
			Students:     "10,000+ graduates",
			Satisfaction: "96% satisfaction rate",
			Support:      "24/7 student support",
			Networking:   "Exclusive alumni network",
			Resources:    "Lifetime access to course materials",
		},
	)
	kb.DurationOrder = []int{0, 2, 1, 3}
	return kb
}
