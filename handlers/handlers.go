// Package handlers implements the HTTP layer: decoding, validation, the
// response envelope and error-to-status translation.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"api/errs"
	"api/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// envelope is the uniform JSON response shape.
type envelope map[string]any

func respondJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("encode response")
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, envelope{"success": true, "data": data})
}

func respondPage(w http.ResponseWriter, data any, count, page, totalPages int) {
	respondJSON(w, http.StatusOK, envelope{
		"success":    true,
		"data":       data,
		"count":      count,
		"page":       page,
		"totalPages": totalPages,
	})
}

// respondError maps an error kind to a status code and the uniform error
// envelope. Unclassified errors are logged and reported as 500 with a
// generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
	}
	respondJSON(w, statusFor(kind), envelope{"success": false, "message": errs.Message(err)})
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindInvalid, errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody parses a JSON body into v and runs its validation tags.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.Wrap(errs.KindValidation, "invalid JSON body", err)
	}
	if err := validate.Struct(v); err != nil {
		return errs.Wrap(errs.KindValidation, validationMessage(err), err)
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "field '" + strings.ToLower(fe.Field()) + "' failed on '" + fe.Tag() + "'"
	}
	return "validation failed"
}

// pathID extracts and validates a path identifier.
func pathID(vars map[string]string, name string) (models.ID, error) {
	return models.ParseID(vars[name])
}

// parsePagination reads page and limit query parameters with defaults of
// 1 and 10; limit is capped at 100.
func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 10
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", errs.New(errs.KindUnauthorized, "missing bearer token")
	}
	return token, nil
}
