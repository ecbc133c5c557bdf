package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

// docWithEntities 构造带实体标注的测试文档
func docWithEntities(rawText string, entities ...types.Entity) *types.AnnotatedDocument {
	return &types.AnnotatedDocument{RawText: rawText, Entities: entities}
}

// entityAt 在原文中定位实体文本并生成实体，方便写测试数据
func entityAt(rawText, text string, label types.EntityLabel) types.Entity {
	start := strings.Index(rawText, text)
	return types.Entity{Text: text, Label: label, StartChar: start, EndChar: start + len(text)}
}

// TestResolveFromTopPersonEntity 验证文档顶部紧跟联系方式的人名实体被接受
func TestResolveFromTopPersonEntity(t *testing.T) {
	rawText := "Shivam Mishra\nEmail: shivam@example.com\nPhone: 987-654-3210\n"
	doc := docWithEntities(rawText, entityAt(rawText, "Shivam Mishra", types.LabelPerson))

	resolver := NewNameResolver(nil)
	name := resolver.Resolve(context.Background(), doc, "", "")

	require.False(t, name.IsZero())
	assert.Equal(t, "Shivam", name.First)
	assert.Equal(t, "Mishra", name.Last)
}

// TestResolveRejectsJobTitleEntity 验证岗位头衔不会被当成人名，转而走文件名兜底
func TestResolveRejectsJobTitleEntity(t *testing.T) {
	rawText := "Software Engineer\nExperienced professional\n"
	doc := docWithEntities(rawText, entityAt(rawText, "Software Engineer", types.LabelPerson))

	resolver := NewNameResolver(nil)
	name := resolver.Resolve(context.Background(), doc, "Prince_Kumar.pdf", "")

	assert.Equal(t, "Prince", name.First)
	assert.Equal(t, "Kumar", name.Last)
}

// TestResolveRejectsLocationOverlap 验证与位置实体重叠的人名误标被剔除
func TestResolveRejectsLocationOverlap(t *testing.T) {
	rawText := "New Delhi Resident\nSome body text here\n"
	doc := docWithEntities(rawText,
		entityAt(rawText, "New Delhi", types.LabelPerson),
		entityAt(rawText, "New Delhi", types.LabelGPE),
	)

	resolver := NewNameResolver(nil)
	name := resolver.Resolve(context.Background(), doc, "", "")
	assert.True(t, name.IsZero())
}

// TestNameFromFilenameCamelCase 验证驼峰文件名提取，前导数字和尾部下划线被剥离
func TestNameFromFilenameCamelCase(t *testing.T) {
	name, ok := nameFromFilename("111121112_ShivamKumarMishra_.pdf")
	require.True(t, ok)
	assert.Equal(t, "Shivam", name.First)
	assert.Equal(t, "Kumar Mishra", name.Last)
}

// TestNameFromFilenameUnderscore 验证下划线分隔的文件名提取
func TestNameFromFilenameUnderscore(t *testing.T) {
	name, ok := nameFromFilename("Prince_Kumar_Resume2023.pdf")
	require.True(t, ok)
	assert.Equal(t, "Prince", name.First)
	// 尾部的Resume2023在交叉校验中被拒绝，这里只验证切词本身
	assert.Contains(t, name.Last, "Kumar")
}

// TestNameFromFilenameTooFewParts 验证单个词的文件名不产出结果
func TestNameFromFilenameTooFewParts(t *testing.T) {
	_, ok := nameFromFilename("resume.pdf")
	assert.False(t, ok)
}

// TestNameFromEmailDotted 验证点分邮箱本地部分提取
func TestNameFromEmailDotted(t *testing.T) {
	name, ok := nameFromEmail("prince.kumar@example.com")
	require.True(t, ok)
	assert.Equal(t, "Prince", name.First)
	assert.Equal(t, "Kumar", name.Last)
}

// TestNameFromEmailSinglePart 验证无分隔的本地部分回落为单名
func TestNameFromEmailSinglePart(t *testing.T) {
	name, ok := nameFromEmail("shivam123@example.com")
	require.True(t, ok)
	assert.Equal(t, "Shivam", name.First)
	assert.Equal(t, "", name.Last)
}

// TestValidateNameDenylists 验证最终交叉校验对各类拒绝词表的拦截
func TestValidateNameDenylists(t *testing.T) {
	cases := []struct {
		name  Name
		valid bool
	}{
		{Name{First: "Shivam", Last: "Mishra"}, true},
		{Name{First: "Software", Last: "Engineer"}, false}, // 岗位头衔
		{Name{First: "React", Last: "Kumar"}, false},       // 技术词
		{Name{First: "First", Last: "Name"}, false},        // 栏目词
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, validateName(c.name), "校验结果不符: %s %s", c.name.First, c.name.Last)
	}
}

// TestFirstLinesStrategyWithoutAnnotator 验证无标注器时首行策略按弱信号接受形态合格的行
func TestFirstLinesStrategyWithoutAnnotator(t *testing.T) {
	doc := &types.AnnotatedDocument{RawText: "Ankit Sharma\nBangalore\n"}

	resolver := NewNameResolver(nil)
	name := resolver.Resolve(context.Background(), doc, "", "")

	assert.Equal(t, "Ankit", name.First)
	assert.Equal(t, "Sharma", name.Last)
}

// TestResolveDeterministic 验证同一输入多次解析结果一致
func TestResolveDeterministic(t *testing.T) {
	rawText := "Rahul Verma\nEmail: rahul@example.com\n"
	doc := docWithEntities(rawText, entityAt(rawText, "Rahul Verma", types.LabelPerson))
	resolver := NewNameResolver(nil)

	first := resolver.Resolve(context.Background(), doc, "x.pdf", "rahul@example.com")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, resolver.Resolve(context.Background(), doc, "x.pdf", "rahul@example.com"))
	}
}
