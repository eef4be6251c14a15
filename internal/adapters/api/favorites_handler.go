package api

import (
	"net/http"
	"net/url"
	"strings"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatheractivity.app/pkg/errors"
)

// FavoriteRequest is the body of POST /api/favorites and the dashboard save form
type FavoriteRequest struct {
	Location string `json:"location" form:"location" binding:"required"`
}

// FavoritesResponse lists saved locations in insertion order
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// listFavorites handles GET /api/favorites requests
func (s *HTTPServerAdapter) listFavorites(c *gin.Context) {
	list, err := s.favoritesUseCase.List(c.Request.Context())
	if err != nil {
		slog.Error("Favorites list error", "error", err, "request_id", requestID(c))
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Favorites: list})
}

// addFavorite handles POST /api/favorites requests
func (s *HTTPServerAdapter) addFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Favorite request rejected", "error", err, "request_id", requestID(c))
		s.handleError(c, bindingError(err))
		return
	}

	list, err := s.favoritesUseCase.Add(c.Request.Context(), req.Location)
	if err != nil {
		slog.Error("Favorite add error", "error", err, "location", req.Location, "request_id", requestID(c))
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Favorites: list})
}

// removeFavorite handles DELETE /api/favorites/:location requests
func (s *HTTPServerAdapter) removeFavorite(c *gin.Context) {
	location := c.Param("location")
	if strings.TrimSpace(location) == "" {
		s.handleError(c, errors.NewValidationError("location is required"))
		return
	}

	ctx := c.Request.Context()
	found, err := s.favoritesUseCase.Contains(ctx, location)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if !found {
		s.handleError(c, errors.NewNotFoundError("Location is not in favorites"))
		return
	}

	list, err := s.favoritesUseCase.Remove(ctx, location)
	if err != nil {
		slog.Error("Favorite remove error", "error", err, "location", location, "request_id", requestID(c))
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Favorites: list})
}

// saveFavoriteForm handles the dashboard "Save Current Location" form
func (s *HTTPServerAdapter) saveFavoriteForm(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	if _, err := s.favoritesUseCase.Add(c.Request.Context(), req.Location); err != nil {
		slog.Error("Favorite add error", "error", err, "location", req.Location, "request_id", requestID(c))
		s.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, dashboardURL(req.Location))
}

// removeFavoriteForm handles the dashboard remove buttons. The optional "return"
// field names the location the page was showing.
func (s *HTTPServerAdapter) removeFavoriteForm(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	if _, err := s.favoritesUseCase.Remove(c.Request.Context(), req.Location); err != nil {
		slog.Error("Favorite remove error", "error", err, "location", req.Location, "request_id", requestID(c))
		s.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, dashboardURL(c.PostForm("return")))
}

func dashboardURL(location string) string {
	if strings.TrimSpace(location) == "" {
		return "/"
	}
	return "/?location=" + url.QueryEscape(location)
}
