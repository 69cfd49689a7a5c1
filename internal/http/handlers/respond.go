package handlers

import (
	"net/http"

	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/gin-gonic/gin"
)

const (
	MsgCreated       = "Evento criado com sucesso"
	MsgValidation    = "Validation error"
	MsgInternalError = "Erro interno do servidor"
)

// Response is a status code plus the JSON body to write for it.
type Response struct {
	Status int
	Body   any
}

type MessageBody struct {
	Message string `json:"message"`
}

type ValidationErrorBody struct {
	Message string             `json:"message"`
	Errors  []event.FieldError `json:"errors"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

func createdResponse() Response {
	return Response{Status: http.StatusCreated, Body: MessageBody{Message: MsgCreated}}
}

func validationResponse(errs []event.FieldError) Response {
	return Response{
		Status: http.StatusBadRequest,
		Body:   ValidationErrorBody{Message: MsgValidation, Errors: errs},
	}
}

func internalResponse() Response {
	return Response{Status: http.StatusInternalServerError, Body: ErrorBody{Error: MsgInternalError}}
}

func Respond(ctx *gin.Context, resp Response) {
	ctx.JSON(resp.Status, resp.Body)
}

func RespondBadRequest(ctx *gin.Context, errs ...event.FieldError) {
	Respond(ctx, validationResponse(errs))
}

func RespondInternal(ctx *gin.Context) {
	Respond(ctx, internalResponse())
}
