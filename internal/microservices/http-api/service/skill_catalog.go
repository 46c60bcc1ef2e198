package service

import (
	"context"
	"log/slog"
	"strings"

	"skillswap/internal/apperror"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
)

// SkillCatalog maps skill names to ids, creating entries on first use.
type SkillCatalog interface {
	ResolveOrCreate(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]models.Skill, error)
}

type skillCatalog struct {
	skillRepo repository.SkillRepository
	logger    *slog.Logger
}

func NewSkillCatalog(skillRepo repository.SkillRepository, logger *slog.Logger) SkillCatalog {
	return &skillCatalog{skillRepo: skillRepo, logger: logger}
}

// ResolveOrCreate trims name and returns the id of the skill with exactly
// that name. Blank names are refused.
func (c *skillCatalog) ResolveOrCreate(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperror.Validation("skill name must not be blank")
	}

	skill, err := c.skillRepo.FirstOrCreate(ctx, name)
	if err != nil {
		c.logger.Error("skill_resolve_failed", "name", name, "error", err)
		return 0, internal("could not resolve skill", err)
	}
	return skill.ID, nil
}

func (c *skillCatalog) List(ctx context.Context) ([]models.Skill, error) {
	skills, err := c.skillRepo.List(ctx)
	if err != nil {
		return nil, internal("could not list skills", err)
	}
	return skills, nil
}
