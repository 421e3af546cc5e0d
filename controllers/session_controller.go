package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/pricing"
	"resort-backend/services"
	"resort-backend/utils"
	"resort-backend/validations"
)

type SessionController struct {
	SessionSvc *services.SessionService
}

func NewSessionController(svc *services.SessionService) *SessionController {
	return &SessionController{SessionSvc: svc}
}

// parseManualPrice turns the operator's typed price into an override.
func parseManualPrice(raw string) (*float64, error) {
	v, err := pricing.ParseOverride(raw)
	if errors.Is(err, pricing.ErrInvalidAmount) {
		return nil, fmt.Errorf("%w: manual price %v", services.ErrValidation, err)
	}
	return v, err
}

func (ctrl *SessionController) Open(c *gin.Context) {
	sel, err := ctrl.SessionSvc.Open(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sel)
}

// GET /api/sessions/:id[?days=&manualPrice=] returns the selection with its quote.
func (ctrl *SessionController) Get(c *gin.Context) {
	var q validations.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	override, err := parseManualPrice(q.ManualPrice)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	sel, err := ctrl.SessionSvc.Selection(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	quote, err := ctrl.SessionSvc.ComputeTotal(ctx, c.Param("id"), q.Days, override)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"selection": sel, "quote": quote})
}

func (ctrl *SessionController) ToggleRoom(c *gin.Context) {
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	sel, err := ctrl.SessionSvc.ToggleRoom(c.Request.Context(), c.Param("id"), roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sel)
}

func (ctrl *SessionController) Cancel(c *gin.Context) {
	if err := ctrl.SessionSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/sessions/:id/checkin
func (ctrl *SessionController) CheckIn(c *gin.Context) {
	var req validations.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	override, err := parseManualPrice(req.ManualPrice)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	guest := services.GuestInfo{Name: req.GuestName, Address: req.GuestAddress, IDProof: req.IDProof}
	stay, err := ctrl.SessionSvc.ConfirmCheckIn(c.Request.Context(), c.Param("id"), guest, req.Days, override)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, stay)
}
