package handler

import (
	"strconv"

	"localdeal/internal/delivery/api/middleware"
	domainerrors "localdeal/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses the UUID path parameter name.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(map[string]string{name: name + " must be a UUID"})
	}

	return id, nil
}

// currentUserID returns the authenticated user, or ErrInvalidToken when the context holds none.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

// queryInt parses an optional integer query parameter. Unparsable values yield def.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return v
}

// userAndPathID returns the authenticated user and the :id path parameter.
func userAndPathID(c echo.Context) (userID, id uuid.UUID, err error) {
	if userID, err = currentUserID(c); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if id, err = pathUUID(c, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, id, nil
}
