package types

// ExperienceLevel 经验级别
type ExperienceLevel string

const (
	// LevelEntry 入门级
	LevelEntry ExperienceLevel = "Entry Level"
	// LevelMidJunior 中初级
	LevelMidJunior ExperienceLevel = "Mid-Junior"
	// LevelMidSenior 中高级
	LevelMidSenior ExperienceLevel = "Mid-Senior"
	// LevelSenior 高级
	LevelSenior ExperienceLevel = "Senior"
)

// SkillCategory 技能分类名称
type SkillCategory string

const (
	CategoryProgrammingLanguages SkillCategory = "Programming Languages"
	CategoryWebTechnologies      SkillCategory = "Web Technologies"
	CategoryDatabases            SkillCategory = "Databases"
	CategoryCloudDevOps          SkillCategory = "Cloud & DevOps"
	CategoryDataScienceML        SkillCategory = "Data Science & ML"
	CategoryFrameworksTools      SkillCategory = "Frameworks & Tools"
	CategorySoftSkills           SkillCategory = "Soft Skills"
	CategoryOther                SkillCategory = "Other"
)

// ResumeRecord 一次提取产出的完整结果
// 每次处理调用创建一份，交给调用方后不再修改
// 不变式：FirstName为空则LastName必为空；Skills大小写不敏感去重；
// CompletenessScore 仅由四个存在性标志决定，每项25分
type ResumeRecord struct {
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	DegreeMajor       string          `json:"degree_major"`
	Institutions      []string        `json:"institutions"`
	Skills            []string        `json:"skills"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	SuggestedPosition string          `json:"suggested_position"`
	CompletenessScore int             `json:"completeness_score"`
}

// HasName 是否提取到了完整姓名
func (r *ResumeRecord) HasName() bool {
	return r.FirstName != "" && r.LastName != ""
}
