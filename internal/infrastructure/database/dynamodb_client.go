package database

import (
	"context"

	"crm_pipeline/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	log "github.com/sirupsen/logrus"
)

// ConnectDynamoDB creates a DynamoDB client for the stage catalog table.
//
// Local-friendly settings:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("[pipeline][dynamodb] failed to create config")
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, endpointOverride(cfg.DynamoDBEndpoint)), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func endpointOverride(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
