package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
	"resort-backend/validations"
)

type AccountController struct {
	AccountSvc *services.AccountService
	GSTRate    float64
}

func NewAccountController(svc *services.AccountService, gstRate float64) *AccountController {
	return &AccountController{AccountSvc: svc, GSTRate: gstRate}
}

func (ctrl *AccountController) GetEntries(c *gin.Context) {
	entries, err := ctrl.AccountSvc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}

// POST /api/accounts records a manual finance entry.
func (ctrl *AccountController) CreateEntry(c *gin.Context) {
	var req validations.AccountEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	entry := models.AccountEntry{
		StayID:        req.GuestID,
		GuestName:     req.GuestName,
		RoomID:        req.RoomID,
		BaseAmount:    req.BaseAmount,
		ExtraHours:    req.ExtraHours,
		ExtraCharge:   req.ExtraCharge,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
	}
	if err := ctrl.AccountSvc.Record(c.Request.Context(), &entry); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func (ctrl *AccountController) GetRevenue(c *gin.Context) {
	sum, err := ctrl.AccountSvc.Revenue(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sum)
}

func (ctrl *AccountController) GetGSTReport(c *gin.Context) {
	var q validations.GSTQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	rate := ctrl.GSTRate
	if q.Rate != nil {
		rate = *q.Rate
	}
	rep, err := ctrl.AccountSvc.GSTReport(c.Request.Context(), rate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rep)
}
