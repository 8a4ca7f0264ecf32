// Command lambda serves the relay as an AWS Lambda function behind API Gateway.
package main

import (
	"context"
	"log"

	"quiz-relay/internal/config"
	"quiz-relay/internal/logger"
	"quiz-relay/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"go.uber.org/zap"
)

var fiberLambda *fiberadapter.FiberLambda

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// The Redis client, if any, lives for the whole execution environment.
	app, _, err := server.Build(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to build application", zap.Error(err))
	}
	fiberLambda = fiberadapter.New(app)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return fiberLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
