package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
	"resort-backend/validations"
)

type StayController struct {
	StaySvc     *services.StayService
	CheckoutSvc *services.CheckoutService
}

func NewStayController(stays *services.StayService, checkout *services.CheckoutService) *StayController {
	return &StayController{StaySvc: stays, CheckoutSvc: checkout}
}

func overridesFrom(req validations.BillRequest) services.Overrides {
	return services.Overrides{
		ExtraCharge: req.ExtraCharge,
		Total:       req.Total,
		IncludeGST:  req.IncludeGST,
		GSTIN:       req.GSTIN,
	}
}

// GET /api/stays[?status=active|history]
func (ctrl *StayController) GetStays(c *gin.Context) {
	var q validations.ListStaysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	var (
		stays []models.Stay
		err   error
	)
	if q.Status == "history" {
		stays, err = ctrl.StaySvc.ListHistory(c.Request.Context())
	} else {
		stays, err = ctrl.StaySvc.ListActive(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stays)
}

func (ctrl *StayController) GetStay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	stay, err := ctrl.StaySvc.GetStay(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stay)
}

// POST /api/stays/:id/bill previews the bill; nothing is written.
func (ctrl *StayController) PreviewBill(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req validations.BillRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	bill, err := ctrl.CheckoutSvc.ComputeBill(c.Request.Context(), id, overridesFrom(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// POST /api/stays/:id/checkout commits the bill. The body must carry "confirm": true.
func (ctrl *StayController) Checkout(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req validations.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := ctrl.CheckoutSvc.Checkout(c.Request.Context(), id, services.CheckoutRequest{
		Confirm:       req.Confirm,
		Overrides:     overridesFrom(req.BillRequest),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}
