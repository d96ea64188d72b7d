package handlers

import (
	"errors"
	"net/http"

	"kitchensmart/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// pgForeignKeyViolation is the postgres foreign_key_violation SQLSTATE.
const pgForeignKeyViolation = "23503"

// serviceError maps service and storage errors onto HTTP responses: rejected
// input is a 400, a missing row (direct lookup or dangling reference) a 404, a
// foreign-key violation on delete a 409, anything else a 500.
func serviceError(err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return echo.NewHTTPError(http.StatusConflict, "record is still referenced by other records")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// parseID parses the :id path parameter as a UUID.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id format")
	}
	return id, nil
}

// clampPage applies the default page size and caps runaway limits.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
