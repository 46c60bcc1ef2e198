package models

import "time"

type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCancelled SwapStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapPending, SwapAccepted, SwapRejected, SwapCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition is defined out of s.
func (s SwapStatus) Terminal() bool {
	return s == SwapAccepted || s == SwapRejected || s == SwapCancelled
}

type SwapRequest struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	RequesterID string     `json:"requester_id" gorm:"type:uuid;not null;index"`
	ReceiverID  string     `json:"receiver_id" gorm:"type:uuid;not null;index"`
	Message     string     `json:"message" gorm:"type:text;not null;default:''"`
	Status      SwapStatus `json:"status" gorm:"size:10;not null;default:'pending';index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations
	Requester     User               `json:"requester,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE;"`
	Receiver      User               `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE;"`
	OfferedSkills []SwapOfferedSkill `json:"offered_skills,omitempty" gorm:"foreignKey:SwapRequestID;constraint:OnDelete:CASCADE;"`
	WantedSkills  []SwapWantedSkill  `json:"wanted_skills,omitempty" gorm:"foreignKey:SwapRequestID;constraint:OnDelete:CASCADE;"`
}

func (SwapRequest) TableName() string {
	return "swap_requests"
}

// OfferedSkillNames returns offered skill names in insertion order.
func (s *SwapRequest) OfferedSkillNames() []string {
	names := make([]string, 0, len(s.OfferedSkills))
	for _, e := range s.OfferedSkills {
		names = append(names, e.Skill.Name)
	}
	return names
}

// WantedSkillNames returns wanted skill names in insertion order.
func (s *SwapRequest) WantedSkillNames() []string {
	names := make([]string, 0, len(s.WantedSkills))
	for _, e := range s.WantedSkills {
		names = append(names, e.Skill.Name)
	}
	return names
}

// SwapOfferedSkill and SwapWantedSkill carry no uniqueness constraint,
// duplicates within one request are kept.
type SwapOfferedSkill struct {
	ID            int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	SwapRequestID int64 `json:"swap_request_id" gorm:"not null;index"`
	SkillID       int64 `json:"skill_id" gorm:"not null;index"`

	Skill Skill `json:"skill" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE;"`
}

func (SwapOfferedSkill) TableName() string {
	return "swap_request_offered_skills"
}

type SwapWantedSkill struct {
	ID            int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	SwapRequestID int64 `json:"swap_request_id" gorm:"not null;index"`
	SkillID       int64 `json:"skill_id" gorm:"not null;index"`

	Skill Skill `json:"skill" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE;"`
}

func (SwapWantedSkill) TableName() string {
	return "swap_request_wanted_skills"
}
