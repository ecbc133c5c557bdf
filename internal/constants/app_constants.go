package constants

// 应用级常量
const (
	// AppName 应用名称
	AppName = "resume-parser-go"
	// AppVersion 应用版本
	AppVersion = "1.0.0"

	// ParserVersion 提取引擎版本，随记录一起落库
	ParserVersion = "heuristic-v1"

	// DefaultPositionNotIdentified 无法识别岗位时的默认值
	DefaultPositionNotIdentified = "Position Not Identified"
	// DefaultTechPosition 技术类技能兜底岗位
	DefaultTechPosition = "Software Engineer"

	// ScorePerField 完整度评分中每个字段的分值
	ScorePerField = 25

	// TopOfDocumentChars 文档顶部区域的字符数，人名优先出现在这里
	TopOfDocumentChars = 200
	// ContactWindowChars 实体后查找联系方式指示词的窗口
	ContactWindowChars = 80
	// JobKeywordWindowChars 非顶部实体后查找岗位关键词的窗口
	JobKeywordWindowChars = 50
)
