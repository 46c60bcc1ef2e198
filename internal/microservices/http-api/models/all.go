package models

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&User{},
		&RatingSummary{},
		&Skill{},
		&UserSkill{},
		&SwapRequest{},
		&SwapOfferedSkill{},
		&SwapWantedSkill{},
		&Feedback{},
		&PlatformMessage{},
	}
}
