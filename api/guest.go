package api

import (
	"net/http"

	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/Antonov7512/drinkkiosk/internal/service/guest"
	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	service guest.GuestUseCase
	catalog catalogsvc.CatalogUseCase
}

func NewGuestHandler(service guest.GuestUseCase, cat catalogsvc.CatalogUseCase) *GuestHandler {
	return &GuestHandler{service: service, catalog: cat}
}

func (h *GuestHandler) Register(router *gin.RouterGroup) {
	router.POST("/sessions", h.createSession)
	router.GET("/sessions/:id", h.state)
	router.POST("/sessions/:id/event", h.selectEvent)
	router.POST("/sessions/:id/type", h.chooseType)
	router.POST("/sessions/:id/category", h.selectCategory)
	router.POST("/sessions/:id/drink", h.selectDrink)
	router.POST("/sessions/:id/mixer", h.selectMixer)
	router.POST("/sessions/:id/back", h.back)
	router.POST("/sessions/:id/confirm", h.confirm)
	router.POST("/sessions/:id/restart", h.restart)
}

// GetConfig serves the public catalog for kiosk rendering. Stored bookings
// stay off the guest wire.
func (h *GuestHandler) GetConfig(c *gin.Context) {
	cfg := h.catalog.Snapshot()
	cfg.Bookings = nil
	c.JSON(http.StatusOK, cfg)
}

func (h *GuestHandler) createSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.service.CreateSession())
}

func (h *GuestHandler) state(c *gin.Context) {
	view, err := h.service.State(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type selectEventRequest struct {
	EventID string `json:"eventId"`
}

func (h *GuestHandler) selectEvent(c *gin.Context) {
	var req selectEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.SelectEvent(c.Param("id"), req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type chooseTypeRequest struct {
	Alcoholic *bool `json:"alcoholic"`
}

func (h *GuestHandler) chooseType(c *gin.Context) {
	var req chooseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Alcoholic == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alcoholic flag is required"})
		return
	}
	sess, err := h.service.ChooseType(c.Param("id"), *req.Alcoholic)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type selectCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}

func (h *GuestHandler) selectCategory(c *gin.Context) {
	var req selectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.SelectCategory(c.Param("id"), req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type selectDrinkRequest struct {
	DrinkID string `json:"drinkId"`
}

func (h *GuestHandler) selectDrink(c *gin.Context) {
	var req selectDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.SelectDrink(c.Param("id"), req.DrinkID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type selectMixerRequest struct {
	MixerID string `json:"mixerId"`
}

func (h *GuestHandler) selectMixer(c *gin.Context) {
	var req selectMixerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.SelectMixer(c.Param("id"), req.MixerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *GuestHandler) back(c *gin.Context) {
	sess, err := h.service.Back(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type confirmRequest struct {
	GuestName string `json:"guestName"`
}

func (h *GuestHandler) confirm(c *gin.Context) {
	var req confirmRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	booking, err := h.service.Confirm(c.Request.Context(), c.Param("id"), req.GuestName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *GuestHandler) restart(c *gin.Context) {
	sess, err := h.service.Restart(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
