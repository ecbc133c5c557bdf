package parser

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/types"
)

func positionMap(entries map[string][]string) *PositionKeywordMap {
	m := &PositionKeywordMap{keywords: map[string][]string{}}
	for position, keywords := range entries {
		m.keywords[position] = keywords
		m.positions = append(m.positions, position)
	}
	sort.Strings(m.positions)
	return m
}

// TestSuggestHighScorePosition 验证技术岗位加核心技能的高分命中
func TestSuggestHighScorePosition(t *testing.T) {
	positions := positionMap(map[string][]string{
		"Backend Developer": {"python", "develop"},
		"HR Manager":        {"recruitment"},
	})
	suggester := NewPositionSuggester(positions)

	doc := docWithVerbs("developed", "implemented")
	got := suggester.Suggest(doc, []string{"Python", "SQL", "Git"})
	assert.Equal(t, "Backend Developer", got)
}

// TestSuggestFallbackToTechPosition 验证无岗位命中但有通用技术技能时回退到通用技术岗位
func TestSuggestFallbackToTechPosition(t *testing.T) {
	positions := positionMap(map[string][]string{
		"Content Writer": {"writing"},
	})
	suggester := NewPositionSuggester(positions)

	doc := &types.AnnotatedDocument{RawText: "resume body"}
	got := suggester.Suggest(doc, []string{"Python"})
	assert.Equal(t, "Software Engineer", got)
}

// TestSuggestPositionNotIdentified 验证无任何信号时的默认值
func TestSuggestPositionNotIdentified(t *testing.T) {
	suggester := NewPositionSuggester(positionMap(nil))
	doc := &types.AnnotatedDocument{RawText: "resume body"}
	got := suggester.Suggest(doc, []string{"Cooking", "Photography"})
	assert.Equal(t, "Position Not Identified", got)
}

// TestSuggestDeterministicTieBreak 验证同分岗位按字典序取先者
func TestSuggestDeterministicTieBreak(t *testing.T) {
	positions := positionMap(map[string][]string{
		"Zeta Analyst":  {"excel"},
		"Alpha Analyst": {"excel"},
	})
	suggester := NewPositionSuggester(positions)

	doc := &types.AnnotatedDocument{RawText: "resume body"}
	got := suggester.Suggest(doc, []string{"Excel"})
	for i := 0; i < 5; i++ {
		assert.Equal(t, got, suggester.Suggest(doc, []string{"Excel"}))
	}
	assert.Equal(t, "Alpha Analyst", got)
}
