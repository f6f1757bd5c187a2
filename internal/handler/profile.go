package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/model"
	"github.com/oliFYP/RingReady/internal/repository"
)

// ProfileHandler serves the authenticated user's own profile.  A
// profile is owned exclusively by the identity it describes; there is
// no cross-user read or write surface here.
type ProfileHandler struct {
	Users *repository.UserRepo
}

func NewProfileHandler(users *repository.UserRepo) *ProfileHandler {
	if users == nil {
		panic("nil repository passed to NewProfileHandler")
	}
	return &ProfileHandler{Users: users}
}

type profileView struct {
	ID          uint64 `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	WeightClass string `json:"weight_class,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Wins        uint32 `json:"wins"`
	Losses      uint32 `json:"losses"`
	Draws       uint32 `json:"draws"`
}

type profileUpdateReq struct {
	Bio         string `json:"bio"`
	WeightClass string `json:"weight_class"`
	Experience  string `json:"experience"`
	Wins        *int64 `json:"wins"`
	Losses      *int64 `json:"losses"`
	Draws       *int64 `json:"draws"`
}

func toProfileView(u model.User) profileView {
	v := profileView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Bio:         u.Bio,
	}
	if u.Role == model.RoleBoxer {
		v.WeightClass = u.WeightClass
		v.Experience = u.Experience
		v.Wins, v.Losses, v.Draws = u.Wins, u.Losses, u.Draws
	}
	return v
}

// Get handles GET /v1/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": toProfileView(u)})
}

// Update handles PUT /v1/profile.  Email and role are immutable; the
// fight-record fields only apply to the boxer role and are zeroed for
// everyone else regardless of what the request carries.  Counters must
// be non-negative.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	wins, ok := counter(req.Wins)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "wins must be at least 0"})
	}
	losses, ok := counter(req.Losses)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "losses must be at least 0"})
	}
	draws, ok := counter(req.Draws)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "draws must be at least 0"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}

	bio := strings.TrimSpace(req.Bio)
	weightClass, experience := "", ""
	if u.Role == model.RoleBoxer {
		weightClass = strings.TrimSpace(req.WeightClass)
		experience = strings.TrimSpace(req.Experience)
	} else {
		wins, losses, draws = 0, 0, 0
	}

	if err := h.Users.UpdateProfile(ctx, userID, bio, weightClass, experience, wins, losses, draws); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update profile failed"})
	}

	updated, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": toProfileView(updated)})
}

// counter validates an optional non-negative counter field; a missing
// field counts as zero.
func counter(v *int64) (uint32, bool) {
	if v == nil {
		return 0, true
	}
	if *v < 0 {
		return 0, false
	}
	return uint32(*v), true
}
