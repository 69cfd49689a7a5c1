package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/geocoder89/eventos/internal/config"
	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/geocoder89/eventos/internal/http/handlers"
	"github.com/geocoder89/eventos/internal/observability"
	"github.com/geocoder89/eventos/internal/repo/memory"
)

type apiHandler struct {
	events *handlers.EventsHandler
	log    *slog.Logger
}

// Handle serves a create request from an API Gateway proxy event.
// The collection lives as long as the warm container.
func (a *apiHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod != http.MethodPost {
		return jsonResponse(http.StatusMethodNotAllowed, handlers.ErrorBody{Error: "Método não permitido"})
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return jsonResponse(http.StatusBadRequest, handlers.ValidationErrorBody{
				Message: handlers.MsgValidation,
				Errors:  []event.FieldError{{Path: "body", Message: handlers.MsgInvalidJSON}},
			})
		}
		body = decoded
	}

	var raw event.RawEventInput
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			a.log.DebugContext(ctx, "bind_failed", "err", err)
			return jsonResponse(http.StatusBadRequest, handlers.ValidationErrorBody{
				Message: handlers.MsgValidation,
				Errors:  []event.FieldError{{Path: "body", Message: handlers.MsgInvalidJSON}},
			})
		}
	}

	resp := a.events.Create(ctx, raw)

	return jsonResponse(resp.Status, resp.Body)
}

func jsonResponse(status int, body any) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       string(b),
	}, nil
}

func main() {
	cfg := config.Load()
	log := observability.NewLogger(cfg.Env)

	h := &apiHandler{
		events: handlers.NewEventsHandler(memory.NewEventsRepo(), handlers.WithLogger(log)),
		log:    log,
	}

	lambda.Start(h.Handle)
}
