package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/model"
)

// getUserID extracts the user_id placed into the context by the JWT
// middleware and converts it to uint64.  JWT numeric claims decode as
// float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// getRole extracts the role claim from the context.  An empty role is
// returned when no valid claim is present; callers treat that the same
// as a mismatched role.
func getRole(c echo.Context) model.Role {
	if s, ok := c.Get("role").(string); ok {
		if r, valid := model.ParseRole(s); valid {
			return r
		}
	}
	return ""
}
