package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/types"
)

func majorDoc(text string) *types.AnnotatedDocument {
	return &types.AnnotatedDocument{RawText: text}
}

// TestClassifyFromDegreePhrase 验证学位短语捕获并与专业表对齐
func TestClassifyFromDegreePhrase(t *testing.T) {
	majors := NewKeywordSet("COMPUTER SCIENCE", "ELECTRICAL ENGINEERING")
	classifier := NewMajorClassifier(majors)

	doc := majorDoc("Bachelor of Technology in Computer Science\nNIT Warangal\n")
	assert.Equal(t, "COMPUTER SCIENCE", classifier.Classify(doc))
}

// TestClassifyBachelorOfComputerScience 验证最常见完整学位写法直接定案
func TestClassifyBachelorOfComputerScience(t *testing.T) {
	classifier := NewMajorClassifier(NewKeywordSet())
	doc := majorDoc("Completed Bachelor of Computer Science with honors.")
	assert.Equal(t, "COMPUTER SCIENCE", classifier.Classify(doc))
}

// TestClassifyExactKeywordSubstring 验证专业表的精确子串匹配
func TestClassifyExactKeywordSubstring(t *testing.T) {
	majors := NewKeywordSet("MECHANICAL ENGINEERING")
	classifier := NewMajorClassifier(majors)

	doc := majorDoc("Major: Mechanical Engineering, 2019 batch")
	assert.Equal(t, "MECHANICAL ENGINEERING", classifier.Classify(doc))
}

// TestClassifyPartialWordMatch 验证专业名长词齐全时的部分匹配
func TestClassifyPartialWordMatch(t *testing.T) {
	majors := NewKeywordSet("INFORMATION TECHNOLOGY")
	classifier := NewMajorClassifier(majors)

	// 词序不同但 information 和 technology 都出现
	doc := majorDoc("Department of Technology and Information Systems")
	assert.Equal(t, "INFORMATION TECHNOLOGY", classifier.Classify(doc))
}

// TestClassifyFromDegreeAbbrev 验证学位缩写推断通用标签
func TestClassifyFromDegreeAbbrev(t *testing.T) {
	classifier := NewMajorClassifier(NewKeywordSet())

	assert.Equal(t, "ENGINEERING", classifier.Classify(majorDoc("B.Tech graduate, 2020")))
	assert.Equal(t, "BUSINESS ADMINISTRATION", classifier.Classify(majorDoc("MBA from IIM Bangalore")))
	assert.Equal(t, "COMMERCE", classifier.Classify(majorDoc("B.Com degree holder")))
}

// TestClassifyNothingFound 验证无学位信息时返回空串
func TestClassifyNothingFound(t *testing.T) {
	classifier := NewMajorClassifier(NewKeywordSet())
	assert.Equal(t, "", classifier.Classify(majorDoc("Five years of industry work.")))
}
