package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
)

// SkillBatch is one update-skills call. Lists are applied in field order.
type SkillBatch struct {
	AddOffered    []string
	RemoveOffered []string
	AddWanted     []string
	RemoveWanted  []string
}

// SkillLedger maintains each user's offered and wanted skill sets.
type SkillLedger interface {
	AddSkills(ctx context.Context, userID string, names []string, role models.SkillRole) error
	RemoveSkills(ctx context.Context, userID string, names []string, role models.SkillRole) error
	Update(ctx context.Context, userID string, batch SkillBatch) error
	List(ctx context.Context, userID string) ([]models.UserSkill, error)
}

type skillLedger struct {
	catalog       SkillCatalog
	skillRepo     repository.SkillRepository
	userSkillRepo repository.UserSkillRepository
	logger        *slog.Logger
}

func NewSkillLedger(
	catalog SkillCatalog,
	skillRepo repository.SkillRepository,
	userSkillRepo repository.UserSkillRepository,
	logger *slog.Logger,
) SkillLedger {
	return &skillLedger{
		catalog:       catalog,
		skillRepo:     skillRepo,
		userSkillRepo: userSkillRepo,
		logger:        logger,
	}
}

// cleanNames trims every name and drops the blank ones
func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// AddSkills adds each non-blank name under role. Re-adding is a no-op.
func (l *skillLedger) AddSkills(ctx context.Context, userID string, names []string, role models.SkillRole) error {
	for _, name := range cleanNames(names) {
		skillID, err := l.catalog.ResolveOrCreate(ctx, name)
		if err != nil {
			return err
		}
		if err := l.userSkillRepo.Add(ctx, userID, skillID, role); err != nil {
			l.logger.Error("user_skill_add_failed", "user_id", userID, "skill", name, "role", role, "error", err)
			return internal("could not add skill", err)
		}
	}
	return nil
}

// RemoveSkills removes each non-blank name under role. Unknown skills and
// absent entries are skipped.
func (l *skillLedger) RemoveSkills(ctx context.Context, userID string, names []string, role models.SkillRole) error {
	for _, name := range cleanNames(names) {
		skill, err := l.skillRepo.FindByName(ctx, name)
		if isNotFound(err) {
			continue
		}
		if err != nil {
			return internal("could not resolve skill", err)
		}
		if err := l.userSkillRepo.Remove(ctx, userID, skill.ID, role); err != nil {
			l.logger.Error("user_skill_remove_failed", "user_id", userID, "skill", name, "role", role, "error", err)
			return internal("could not remove skill", err)
		}
	}
	return nil
}

// Update applies add-offered, remove-offered, add-wanted, remove-wanted in
// that order. A failing list does not stop or undo the others; all failures
// are returned joined.
func (l *skillLedger) Update(ctx context.Context, userID string, batch SkillBatch) error {
	steps := []struct {
		names  []string
		role   models.SkillRole
		remove bool
	}{
		{batch.AddOffered, models.SkillOffered, false},
		{batch.RemoveOffered, models.SkillOffered, true},
		{batch.AddWanted, models.SkillWanted, false},
		{batch.RemoveWanted, models.SkillWanted, true},
	}

	var errs []error
	for _, step := range steps {
		var err error
		if step.remove {
			err = l.RemoveSkills(ctx, userID, step.names, step.role)
		} else {
			err = l.AddSkills(ctx, userID, step.names, step.role)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	l.logger.Info("user_skills_updated", "user_id", userID)
	return nil
}

func (l *skillLedger) List(ctx context.Context, userID string) ([]models.UserSkill, error) {
	entries, err := l.userSkillRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, internal("could not list skills", err)
	}
	return entries, nil
}
