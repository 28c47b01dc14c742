package rest

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// errorWithState - ответ на неудачное действие: сообщение и состояние экрана с баннером
type errorWithState struct {
	Error string `json:"error"`
	State any    `json:"state,omitempty"`
}

// statusFor: ошибки формы -> 400, клиентские ответы бэкенда проходят как есть,
// остальные ответы бэкенда -> 502.
func statusFor(err error) int {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.StatusCode >= 400 && reqErr.StatusCode < 500 {
			return reqErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondWithState отвечает состоянием экрана. При ошибке статус берется из statusFor,
// а состояние уходит вместе с сообщением.
func respondWithState(w http.ResponseWriter, r *http.Request, err error, state any) {
	if err == nil {
		RespondWithJSON(w, http.StatusOK, state)
		return
	}
	status := statusFor(err)
	contextkeys.LoggerFromContext(r.Context()).Warn("Console action failed", port.Fields{
		"status_code": status,
		"error":       err.Error(),
	})
	RespondWithJSON(w, status, errorWithState{
		Error: domain.ErrorMessage(err, http.StatusText(status)),
		State: state,
	})
}

// decodeBody разбирает JSON-тело. Пустое тело допустимо, если optional.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err == io.EOF {
			if optional {
				return true
			}
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return false
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}
