package dto

import "skillswap/internal/microservices/http-api/models"

// UpdateSkillsRequest carries the four ledger lists. Blank names are allowed
// here and skipped by the ledger.
type UpdateSkillsRequest struct {
	AddOffered    []string `json:"add_offered" binding:"omitempty,max=50,dive,max=100"`
	RemoveOffered []string `json:"remove_offered" binding:"omitempty,max=50,dive,max=100"`
	AddWanted     []string `json:"add_wanted" binding:"omitempty,max=50,dive,max=100"`
	RemoveWanted  []string `json:"remove_wanted" binding:"omitempty,max=50,dive,max=100"`
}

type SkillResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromModelToSkillResponses(skills []models.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

// UserSkillsResponse is the caller's ledger after an update
type UserSkillsResponse struct {
	OfferedSkills []string `json:"offered_skills"`
	WantedSkills  []string `json:"wanted_skills"`
}

// SplitUserSkills groups ledger entries by role, keeping entry order.
func SplitUserSkills(entries []models.UserSkill) (offered, wanted []string) {
	offered, wanted = []string{}, []string{}
	for _, e := range entries {
		switch e.Role {
		case models.SkillOffered:
			offered = append(offered, e.Skill.Name)
		case models.SkillWanted:
			wanted = append(wanted, e.Skill.Name)
		}
	}
	return offered, wanted
}
