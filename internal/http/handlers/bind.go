package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidJSON  = "JSON inválido"
	MsgBodyTooLarge = "Corpo da requisição excede o limite permitido"
	bodyPath        = "body"
)

var errTrailingData = errors.New("trailing data after json value")

// BindJSON decodes the request body into out. An empty body leaves out
// untouched so every field reads as absent. The body must hold exactly one
// JSON value. It writes the error response and returns false when the body
// cannot be used.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := decodeSingleJSON(ctx.Request.Body, out)

	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorBody{Error: MsgBodyTooLarge})
		return false
	}

	slog.Default().DebugContext(ctx.Request.Context(), "bind_failed", "reason", bindErrorReason(err))
	RespondBadRequest(ctx, event.FieldError{Path: bodyPath, Message: MsgInvalidJSON})

	return false
}

func decodeSingleJSON(body io.Reader, out interface{}) error {
	if body == nil {
		return nil
	}

	dec := json.NewDecoder(body)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}

func bindErrorReason(err error) string {
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return "invalid_json_syntax"
	}

	var unmatchedTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmatchedTypeError) {
		return "invalid_json_type"
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return "truncated_json"
	}

	if errors.Is(err, errTrailingData) {
		return "trailing_data"
	}

	return err.Error()
}
