package repository

import (
	"context"
	"errors"
	"fmt"

	"skillswap/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository interface {
	FindByName(ctx context.Context, name string) (*models.Skill, error)
	FirstOrCreate(ctx context.Context, name string) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// FindByName matches the exact, case-sensitive name
func (r *skillRepository) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FirstOrCreate returns the skill with that name, inserting it first if
// needed. ON CONFLICT DO NOTHING keeps concurrent creators from failing on
// the unique index; the loser reads the winner's row back.
func (r *skillRepository) FirstOrCreate(ctx context.Context, name string) (*models.Skill, error) {
	existing, err := r.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find skill: %w", err)
	}

	skill := &models.Skill{Name: name}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(skill).Error
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	if skill.ID != 0 {
		return skill, nil
	}
	return r.FindByName(ctx, name)
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error
	return skills, err
}
