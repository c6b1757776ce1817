package main

import (
	"context"
	"encoding/json"

	"league-tracker/internal/config"
	"league-tracker/internal/ddragon"
	"league-tracker/internal/logger"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
)

// handler is built once per container so the champion catalog survives warm
// invocations.
var (
	handler *server.Handler
	log     zerolog.Logger
)

func init() {
	log = logger.New()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log = log.Level(logger.ParseLevel(cfg.LogLevel))

	reports := service.NewReportService(riot.NewClient(), ddragon.NewCache(log), cfg, log)
	handler = server.NewHandler(reports, cfg, log)
}

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	name := req.QueryStringParameters["name"]
	tag := req.QueryStringParameters["tag"]

	status, body := handler.Resolve(ctx, name, tag)

	payload, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		return events.APIGatewayProxyResponse{StatusCode: 500}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET",
		},
		Body: string(payload),
	}, nil
}

func main() {
	lambda.Start(handleRequest)
}
