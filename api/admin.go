package api

import (
	"io"
	"net/http"

	"github.com/Antonov7512/drinkkiosk/internal/catalog"
	"github.com/Antonov7512/drinkkiosk/internal/images"
	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds drink image uploads.
const maxUploadBytes = 8 << 20

type AdminHandler struct {
	service catalogsvc.CatalogUseCase
	images  images.Store
}

func NewAdminHandler(service catalogsvc.CatalogUseCase, imageStore images.Store) *AdminHandler {
	return &AdminHandler{service: service, images: imageStore}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.POST("/config", h.replaceConfig)
	router.DELETE("/config", h.clearAll)

	router.POST("/categories", h.addCategory)
	router.DELETE("/categories/:id", h.deleteCategory)

	router.POST("/mixers", h.addMixer)
	router.DELETE("/mixers/:id", h.deleteMixer)
	router.POST("/mixers/:id/toggle", h.toggleMixer)

	router.POST("/drinks", h.addDrink)
	router.PUT("/drinks/:id", h.updateDrink)
	router.DELETE("/drinks/:id", h.deleteDrink)

	router.POST("/events", h.addEvent)
	router.PUT("/events/:id", h.updateEvent)
	router.DELETE("/events/:id", h.deleteEvent)
	router.GET("/events/:id/bookings", h.listBookings)
	router.DELETE("/bookings/:id", h.deleteBooking)

	router.POST("/upload", h.upload)
}

func (h *AdminHandler) replaceConfig(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	cfg, err := parseConfigDocument(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.ReplaceConfig(c.Request.Context(), cfg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) clearAll(c *gin.Context) {
	if err := h.service.ClearAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) addCategory(c *gin.Context) {
	var req catalog.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.service.AddCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *AdminHandler) deleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type createMixerRequest struct {
	Name string `json:"name"`
	// Omitted means true: a freshly added mixer is offered as a standalone
	// non-alcoholic option until the admin says otherwise.
	IsNonAlcoholicOption *bool `json:"isNonAlcoholicOption"`
}

func (h *AdminHandler) addMixer(c *gin.Context) {
	var req createMixerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := catalog.MixerInput{Name: req.Name, IsNonAlcoholicOption: true}
	if req.IsNonAlcoholicOption != nil {
		in.IsNonAlcoholicOption = *req.IsNonAlcoholicOption
	}
	m, err := h.service.AddMixer(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *AdminHandler) deleteMixer(c *gin.Context) {
	if err := h.service.DeleteMixer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) toggleMixer(c *gin.Context) {
	m, err := h.service.ToggleMixerNonAlcoholic(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *AdminHandler) addDrink(c *gin.Context) {
	var req catalog.DrinkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.service.AddDrink(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *AdminHandler) updateDrink(c *gin.Context) {
	var req catalog.DrinkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.service.UpdateDrink(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *AdminHandler) deleteDrink(c *gin.Context) {
	if err := h.service.DeleteDrink(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) addEvent(c *gin.Context) {
	var req catalog.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, err := h.service.AddEvent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *AdminHandler) updateEvent(c *gin.Context) {
	var req catalog.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, err := h.service.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *AdminHandler) deleteEvent(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) listBookings(c *gin.Context) {
	bookings, err := h.service.BookingsForEvent(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) deleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}

	url, err := h.images.Store(c.Request.Context(), data, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
