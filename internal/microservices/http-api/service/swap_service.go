package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"skillswap/internal/apperror"
	"skillswap/internal/config"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/repository"
)

type CreateSwapInput struct {
	ReceiverID    string
	Message       string
	OfferedSkills []string
	WantedSkills  []string
}

// SwapGuards are the optional creation checks. Both are off by default.
type SwapGuards struct {
	RejectSelf           bool
	RejectBannedReceiver bool
}

func SwapGuardsFromConfig(cfg *config.Config) SwapGuards {
	return SwapGuards{
		RejectSelf:           cfg.SwapRejectSelf,
		RejectBannedReceiver: cfg.SwapRejectBannedReceiver,
	}
}

// SwapService owns the swap request lifecycle:
// pending -> accepted | rejected | cancelled, all terminal.
type SwapService interface {
	Create(ctx context.Context, requesterID string, in CreateSwapInput) (*models.SwapRequest, error)
	Transition(ctx context.Context, swapID int64, actorID string, to models.SwapStatus) (*models.SwapRequest, error)
	ListMine(ctx context.Context, userID string) ([]models.SwapRequest, error)
	Monitor(ctx context.Context, statusFilter string) ([]models.SwapRequest, error)
}

type swapService struct {
	swapRepo repository.SwapRepository
	userRepo repository.UserRepository
	catalog  SkillCatalog
	guards   SwapGuards
	logger   *slog.Logger
}

func NewSwapService(
	swapRepo repository.SwapRepository,
	userRepo repository.UserRepository,
	catalog SkillCatalog,
	guards SwapGuards,
	logger *slog.Logger,
) SwapService {
	return &swapService{
		swapRepo: swapRepo,
		userRepo: userRepo,
		catalog:  catalog,
		guards:   guards,
		logger:   logger,
	}
}

var errSwapNotFound = apperror.NotFound("swap request not found")

func (s *swapService) Create(ctx context.Context, requesterID string, in CreateSwapInput) (*models.SwapRequest, error) {
	// blank names are refused up front so nothing is written
	for _, list := range [][]string{in.OfferedSkills, in.WantedSkills} {
		for _, name := range list {
			if strings.TrimSpace(name) == "" {
				return nil, apperror.Validation("skill names must not be blank")
			}
		}
	}

	if s.guards.RejectSelf && in.ReceiverID == requesterID {
		return nil, apperror.Validation("cannot request a swap with yourself")
	}

	receiver, err := s.userRepo.FindByID(ctx, in.ReceiverID)
	if isNotFound(err) {
		return nil, apperror.NotFound("receiver not found")
	}
	if err != nil {
		return nil, internal("could not load receiver", err)
	}
	if s.guards.RejectBannedReceiver && (receiver.IsBanned || !receiver.IsActive) {
		return nil, apperror.NotFound("receiver not found")
	}

	offeredIDs, err := s.resolveAll(ctx, in.OfferedSkills)
	if err != nil {
		return nil, err
	}
	wantedIDs, err := s.resolveAll(ctx, in.WantedSkills)
	if err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		RequesterID: requesterID,
		ReceiverID:  receiver.ID,
		Message:     in.Message,
		Status:      models.SwapPending,
	}
	if err := s.swapRepo.Create(ctx, swap, offeredIDs, wantedIDs); err != nil {
		s.logger.Error("swap_create_failed", "requester_id", requesterID, "receiver_id", receiver.ID, "error", err)
		return nil, internal("could not create swap request", err)
	}

	s.logger.Info("swap_created",
		"swap_id", swap.ID,
		"requester_id", requesterID,
		"receiver_id", receiver.ID,
		"offered", len(offeredIDs),
		"wanted", len(wantedIDs),
	)

	created, err := s.swapRepo.FindByID(ctx, swap.ID)
	if err != nil {
		return nil, internal("could not load swap request", err)
	}
	return created, nil
}

// resolveAll keeps input order and duplicates
func (s *swapService) resolveAll(ctx context.Context, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := s.catalog.ResolveOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Transition moves a pending request to a terminal status. Only the
// receiver may do it, and the status write is compare-and-set so exactly one
// of several concurrent callers succeeds.
func (s *swapService) Transition(ctx context.Context, swapID int64, actorID string, to models.SwapStatus) (*models.SwapRequest, error) {
	if !to.Valid() || !to.Terminal() {
		return nil, apperror.Validation(fmt.Sprintf("invalid target status %q", to))
	}

	won, err := s.swapRepo.CompareAndSetStatus(ctx, swapID, actorID, models.SwapPending, to)
	if err != nil {
		s.logger.Error("swap_transition_failed", "swap_id", swapID, "error", err)
		return nil, internal("could not update swap request", err)
	}

	swap, err := s.swapRepo.FindByID(ctx, swapID)
	if isNotFound(err) {
		return nil, errSwapNotFound
	}
	if err != nil {
		return nil, internal("could not load swap request", err)
	}
	if swap.ReceiverID != actorID {
		return nil, errSwapNotFound
	}
	if !won {
		return nil, apperror.InvalidState(fmt.Sprintf("swap request is already %s", swap.Status))
	}

	s.logger.Info("swap_status_updated", "swap_id", swapID, "receiver_id", actorID, "status", to)
	return swap, nil
}

func (s *swapService) ListMine(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	swaps, err := s.swapRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, internal("could not list swap requests", err)
	}
	return swaps, nil
}

// Monitor lists every request newest first. An unknown filter is ignored.
func (s *swapService) Monitor(ctx context.Context, statusFilter string) ([]models.SwapRequest, error) {
	var status *models.SwapStatus
	if st := models.SwapStatus(statusFilter); st.Valid() {
		status = &st
	}

	swaps, err := s.swapRepo.ListAll(ctx, status)
	if err != nil {
		return nil, internal("could not list swap requests", err)
	}
	return swaps, nil
}
