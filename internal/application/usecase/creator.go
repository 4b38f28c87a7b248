package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"celebra/internal/domain/dto"
	"celebra/internal/domain/model"
	"celebra/internal/domain/repository/database"
)

// Creator handles the form-submission path for both content types.
type Creator struct {
	wishWriter database.WishWriter
	invWriter  database.InvitationWriter
	now        func() time.Time
}

func NewCreator(wishWriter database.WishWriter, invWriter database.InvitationWriter) *Creator {
	return &Creator{
		wishWriter: wishWriter,
		invWriter:  invWriter,
		now:        time.Now,
	}
}

// CreateWish stores a new wish. The record is immutable afterwards and
// expires WishTTL after the timestamp set here.
func (c *Creator) CreateWish(ctx context.Context, req dto.CreateWishRequest) (*model.Wish, error) {
	if strings.TrimSpace(req.To) == "" {
		return nil, errors.New("recipient name is required")
	}
	if len(req.JourneyImages) > 5 {
		return nil, errors.New("at most 5 journey images are allowed")
	}

	masterID := req.MasterID
	if masterID == "" {
		masterID = uuid.NewString()
	}

	wish := &model.Wish{
		ID:            uuid.NewString(),
		From:          req.From,
		To:            req.To,
		Message:       req.Message,
		ImageURL:      req.ImageURL,
		JourneyImages: req.JourneyImages,
		MasterID:      masterID,
		Song:          req.Song,
		Timestamp:     c.now().UnixMilli(),
	}

	if err := c.wishWriter.Write(ctx, wish); err != nil {
		return nil, fmt.Errorf("failed to create wish: %w", err)
	}

	return wish, nil
}

// CreateInvitation stores a new invitation and computes its expires_at as
// marriage_date plus the grace window.
func (c *Creator) CreateInvitation(ctx context.Context, req dto.CreateInvitationRequest) (*model.Invitation, error) {
	if strings.TrimSpace(req.MaleName) == "" || strings.TrimSpace(req.FemaleName) == "" {
		return nil, errors.New("both names are required")
	}

	marriageDate, err := parseMarriageDate(req.MarriageDate)
	if err != nil {
		return nil, err
	}

	now := c.now()
	invitation := &model.Invitation{
		ID:             fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		MaleName:       req.MaleName,
		FemaleName:     req.FemaleName,
		MarriageDate:   marriageDate,
		Place:          req.Place,
		AdditionalInfo: req.AdditionalInfo,
		Song:           req.Song,
		Images:         req.Images,
		ImageIDs:       req.ImageIDs,
		PrimaryColor:   req.PrimaryColor,
		CreatedAt:      now,
		ExpiresAt:      marriageDate.Add(model.InvitationGrace),
	}

	if err := c.invWriter.Write(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation, nil
}

func parseMarriageDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid marriage_date %q", raw)
}
