package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"celebra/internal/application/usecase/abstraction"
	"celebra/internal/domain/dto"
	"celebra/internal/domain/model"
	"celebra/internal/presentation"
)

type InvitationHandler struct {
	creator abstraction.Creator
	getter  abstraction.Getter
}

func NewInvitationHandler(creator abstraction.Creator, getter abstraction.Getter) *InvitationHandler {
	return &InvitationHandler{
		creator: creator,
		getter:  getter,
	}
}

// HandleCreate handles POST /invitations requests.
func (h *InvitationHandler) HandleCreate(c echo.Context) error {
	var req dto.CreateInvitationRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "invalid request body")

		return c.NoContent(http.StatusBadRequest)
	}

	invitation, err := h.creator.CreateInvitation(c.Request().Context(), req)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	return c.JSON(http.StatusCreated, invitation)
}

// HandleGet handles GET /invitations/:id requests. The getter runs the
// access-time expiry check first, so an invitation past its grace window
// comes back 404 here even when the periodic sweep has not run.
func (h *InvitationHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing invitation id")

		return c.NoContent(http.StatusBadRequest)
	}

	invitation, err := h.getter.GetInvitation(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, invitationView(invitation))
}

func invitationView(invitation *model.Invitation) dto.InvitationView {
	view := dto.InvitationView{
		ID:             invitation.ID,
		MaleName:       invitation.MaleName,
		FemaleName:     invitation.FemaleName,
		MarriageDate:   invitation.MarriageDate.Format(time.RFC3339),
		Place:          invitation.Place,
		AdditionalInfo: invitation.AdditionalInfo,
		MaleImage:      invitation.MaleImage(),
		FemaleImage:    invitation.FemaleImage(),
		LoveImages:     invitation.LoveImages(),
		PrimaryColor:   invitation.PrimaryColor,
	}
	if invitation.Song != nil {
		view.Song = invitation.Song
	}

	return view
}
