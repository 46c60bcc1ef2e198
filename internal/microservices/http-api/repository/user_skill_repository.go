package repository

import (
	"context"
	"fmt"

	"skillswap/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSkillRepository interface {
	Add(ctx context.Context, userID string, skillID int64, role models.SkillRole) error
	Remove(ctx context.Context, userID string, skillID int64, role models.SkillRole) error
	ListByUser(ctx context.Context, userID string) ([]models.UserSkill, error)
}

type userSkillRepository struct {
	db *gorm.DB
}

func NewUserSkillRepository(db *gorm.DB) UserSkillRepository {
	return &userSkillRepository{db: db}
}

// Add is a no-op when the (user, skill, role) entry already exists
func (r *userSkillRepository) Add(ctx context.Context, userID string, skillID int64, role models.SkillRole) error {
	entry := &models.UserSkill{UserID: userID, SkillID: skillID, Role: role}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}, {Name: "role"}},
			DoNothing: true,
		}).
		Create(entry).Error
	if err != nil {
		return fmt.Errorf("add user skill: %w", err)
	}
	return nil
}

// Remove deletes the entry if present, absent entries are not an error
func (r *userSkillRepository) Remove(ctx context.Context, userID string, skillID int64, role models.SkillRole) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND role = ?", userID, skillID, role).
		Delete(&models.UserSkill{}).Error
	if err != nil {
		return fmt.Errorf("remove user skill: %w", err)
	}
	return nil
}

func (r *userSkillRepository) ListByUser(ctx context.Context, userID string) ([]models.UserSkill, error) {
	var entries []models.UserSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
