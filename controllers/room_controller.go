package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
	"resort-backend/validations"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /api/rooms[?status=]
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var q validations.ListRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	rooms, err := ctrl.RoomSvc.ListRooms(c.Request.Context(), models.RoomStatus(q.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetHousekeeping(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListHousekeeping(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/rooms/:id/status
// ----------------------------------------------------

func (ctrl *RoomController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req validations.SetRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	room, err := ctrl.RoomSvc.SetStatus(c.Request.Context(), id, models.RoomStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms/:id/clean
func (ctrl *RoomController) MarkCleaned(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.MarkCleaned(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// Categories
// ----------------------------------------------------

func (ctrl *RoomController) GetCategories(c *gin.Context) {
	cats, err := ctrl.RoomSvc.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cats)
}

func (ctrl *RoomController) SaveCategory(c *gin.Context) {
	var req validations.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cat, err := ctrl.RoomSvc.SaveCategory(c.Request.Context(), models.RoomCategory{
		Name:        req.Name,
		BasePrice:   req.BasePrice,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cat)
}
