package models

import (
	"time"

	"gorm.io/datatypes"
)

// ResumeSubmission 一次简历解析的持久化记录
// 列表字段(院校/技能/分类)存为JSON列，查询端按整条记录读取，不做列内检索
type ResumeSubmission struct {
	SubmissionID      string         `gorm:"column:submission_id;type:varchar(36);primaryKey" json:"submission_id"`
	SourceFilename    string         `gorm:"column:source_filename;type:varchar(255)" json:"source_filename"`
	RawTextMD5        string         `gorm:"column:raw_text_md5;type:char(32);index" json:"raw_text_md5"`
	FirstName         string         `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName          string         `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	Email             string         `gorm:"column:email;type:varchar(255);index" json:"email"`
	Phone             string         `gorm:"column:phone;type:varchar(32)" json:"phone"`
	DegreeMajor       string         `gorm:"column:degree_major;type:varchar(255)" json:"degree_major"`
	Institutions      datatypes.JSON `gorm:"column:institutions" json:"institutions"`
	Skills            datatypes.JSON `gorm:"column:skills" json:"skills"`
	SkillCategories   datatypes.JSON `gorm:"column:skill_categories" json:"skill_categories"`
	ExperienceLevel   string         `gorm:"column:experience_level;type:varchar(32)" json:"experience_level"`
	SuggestedPosition string         `gorm:"column:suggested_position;type:varchar(128)" json:"suggested_position"`
	CompletenessScore int            `gorm:"column:completeness_score" json:"completeness_score"`
	ParserVersion     string         `gorm:"column:parser_version;type:varchar(32)" json:"parser_version"`
	CreatedAt         time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (ResumeSubmission) TableName() string {
	return "resume_submission"
}
