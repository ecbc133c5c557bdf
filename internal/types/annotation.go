package types

// EntityLabel 表示命名实体的标签类型
type EntityLabel string

const (
	// LabelPerson 人名实体
	LabelPerson EntityLabel = "PERSON"
	// LabelOrg 组织机构实体
	LabelOrg EntityLabel = "ORG"
	// LabelGPE 地缘政治实体（国家/城市等）
	LabelGPE EntityLabel = "GPE"
	// LabelLoc 地理位置实体
	LabelLoc EntityLabel = "LOC"
	// LabelFac 设施实体（建筑/机场等）
	LabelFac EntityLabel = "FAC"
	// LabelEmail 邮箱实体
	LabelEmail EntityLabel = "EMAIL"
	// LabelSkill 技能实体（由可选的二级模型产出）
	LabelSkill EntityLabel = "SKILL"
	// LabelOther 其他未分类实体
	LabelOther EntityLabel = "OTHER"
)

// IsLocation 判断标签是否为位置类实体（GPE/LOC/FAC）
func (l EntityLabel) IsLocation() bool {
	return l == LabelGPE || l == LabelLoc || l == LabelFac
}

// PosVerb 动词词性标签
const PosVerb = "VERB"

// Token 标注引擎产出的词元，只读
type Token struct {
	Text         string `json:"text"`           // 词元文本
	PartOfSpeech string `json:"pos"`            // 词性标签，如 VERB、NOUN
	CharOffset   int    `json:"char_offset"`    // 在原文中的字符偏移
}

// Entity 标注引擎产出的命名实体，只读
type Entity struct {
	Text      string      `json:"text"`       // 实体文本
	Label     EntityLabel `json:"label"`      // 实体标签
	StartChar int         `json:"start_char"` // 起始字符位置
	EndChar   int         `json:"end_char"`   // 结束字符位置
}

// AnnotatedDocument 一份简历的原始文本加语言学标注
// 由外部标注引擎产出，每份简历一个实例，核心逻辑不会修改它
type AnnotatedDocument struct {
	RawText  string   `json:"raw_text"`
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// EmptyDocument 返回一个退化的空文档
// 标注引擎不可用或超时时使用，后续提取逻辑会走各自的降级链路
func EmptyDocument(rawText string) *AnnotatedDocument {
	return &AnnotatedDocument{RawText: rawText}
}
