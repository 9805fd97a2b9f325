package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKnowledgeBase_Shape(t *testing.T) {
	kb := DefaultKnowledgeBase()

	require.Len(t, kb.Programs, 4)
	assert.Equal(t, "Iron Lady Leadership Academy", kb.GeneralInfo.Company)

	raw, err := json.Marshal(kb)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "programs")
	assert.Contains(t, decoded, "generalInfo")

	var info map[string]string
	require.NoError(t, json.Unmarshal(decoded["generalInfo"], &info))
	assert.Len(t, info, 7)
	for _, key := range []string{"company", "founded", "students", "satisfaction", "support", "networking", "resources"} {
		assert.NotEmpty(t, info[key], key)
	}

	var programs []map[string]string
	require.NoError(t, json.Unmarshal(decoded["programs"], &programs))
	for _, p := range programs {
		assert.Len(t, p, 8)
	}
}

func TestPriceAmount(t *testing.T) {
	assert.Equal(t, 1299, ProgramRecord{Price: "$1,299"}.PriceAmount())
	assert.Equal(t, 3499, ProgramRecord{Price: "$3,499"}.PriceAmount())
	assert.Equal(t, 0, ProgramRecord{Price: "free"}.PriceAmount())
}

func TestProgramsByPrice(t *testing.T) {
	kb := DefaultKnowledgeBase()

	var names []string
	for _, p := range kb.ProgramsByPrice() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Team Management Excellence",
		"Strategic Leadership Foundation",
		"Executive Leadership Mastery",
		"Women in Leadership Accelerator",
	}, names)

	// catalog order is untouched
	assert.Equal(t, "Executive Leadership Mastery", kb.Programs[0].Name)
}

func TestAllPrograms_ReturnsCopy(t *testing.T) {
	kb := DefaultKnowledgeBase()

	snapshot := kb.AllPrograms()
	snapshot.Programs[0].Price = "$0"

	assert.Equal(t, "$2,999", kb.Programs[0].Price)
}

func TestNewKnowledgeBase_DoesNotAliasInput(t *testing.T) {
	programs := []ProgramRecord{{Name: "A", Price: "$10"}}
	kb := NewKnowledgeBase(programs, GeneralInfo{})

	programs[0].Name = "B"
	assert.Equal(t, "A", kb.Programs[0].Name)
}

func TestProgramsByDurationListing(t *testing.T) {
	kb := DefaultKnowledgeBase()

	var names []string
	for _, p := range kb.ProgramsByDurationListing() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Executive Leadership Mastery",
		"Women in Leadership Accelerator",
		"Strategic Leadership Foundation",
		"Team Management Excellence",
	}, names)
}

func TestProgramsByDurationListing_PartialOrder(t *testing.T) {
	kb := NewKnowledgeBase([]ProgramRecord{{Name: "A"}, {Name: "B"}, {Name: "C"}}, GeneralInfo{})
	kb.DurationOrder = []int{2, 7, 2, -1}

	var names []string
	for _, p := range kb.ProgramsByDurationListing() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Hybrid format", DefaultKnowledgeBase().Programs[0].FormatLabel())
	assert.Equal(t, "Fully Online", ProgramRecord{Mode: "Fully Online"}.FormatLabel())
}

func TestListingFieldsStayOffTheWire(t *testing.T) {
	raw, err := json.Marshal(DefaultKnowledgeBase())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "Hybrid format")
	assert.NotContains(t, string(raw), "DurationOrder")
}
