//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	dbadapter "todoboard/internal/adapter/db"

	"github.com/stretchr/testify/suite"
)

type IntegrationSuiteBase struct {
	suite.Suite

	client     *mongo.Client
	DB         *mongo.Database
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	uri := envOrDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	database := envOrDefault("DB_TEST_NAME", envOrDefault("DB_NAME", "todoboard")+"_test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		s.T().Skipf("skipping integration suite: could not reach mongodb: %v", err)
	}

	s.client = client
	s.testDBName = database
	s.DB = client.Database(database)

	s.Require().NoError(dbadapter.EnsureUserIndexes(ctx, s.DB))
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drop test database to keep local environment clean after integration runs.
	if s.DB != nil && strings.HasSuffix(s.testDBName, "_test") {
		s.Require().NoError(s.DB.Drop(ctx))
	}

	s.Require().NoError(s.client.Disconnect(ctx))
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{"todos", "users"} {
		_, err := s.DB.Collection(name).DeleteMany(ctx, bson.M{})
		s.Require().NoError(err)
	}
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
