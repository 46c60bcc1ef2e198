package models

import "time"

// SkillRole classifies a user's relationship to a skill.
type SkillRole string

const (
	SkillOffered SkillRole = "offered"
	SkillWanted  SkillRole = "wanted"
)

func (r SkillRole) Valid() bool {
	return r == SkillOffered || r == SkillWanted
}

type Skill struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex;not null"` // exact, case-sensitive
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Skill) TableName() string {
	return "skills"
}

// UserSkill is one (user, skill, role) entry of the skill ledger.
type UserSkill struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:ux_user_skill_role,priority:1"`
	SkillID   int64     `json:"skill_id" gorm:"not null;uniqueIndex:ux_user_skill_role,priority:2"`
	Role      SkillRole `json:"role" gorm:"size:10;not null;uniqueIndex:ux_user_skill_role,priority:3"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Skill Skill `json:"skill,omitempty" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE;"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}
