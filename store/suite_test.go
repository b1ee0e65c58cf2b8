package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborly/neighborly-api/schema"
)

const testMongoConnEnv = "NEIGHBORLY_TEST_MONGO_CONN"

// mongoTestSuite connects to the replica set named by NEIGHBORLY_TEST_MONGO_CONN.
// Transactions need a replica set, so suites skip when it is not configured.
type mongoTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func (s *mongoTestSuite) SetupSuite() {
	s.connURI = os.Getenv(testMongoConnEnv)

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)
}

// SetupTest starts every test from an empty, indexed database
func (s *mongoTestSuite) SetupTest() {
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *mongoTestSuite) TearDownSuite() {
	if s.mongoClient != nil {
		_ = s.testDatabase.Drop(context.Background())
		_ = s.mongoClient.Disconnect(context.Background())
	}
}

func (s *mongoTestSuite) insert(collection string, docs ...interface{}) {
	if _, err := s.testDatabase.Collection(collection).InsertMany(context.Background(), docs); err != nil {
		s.T().Fatal(err)
	}
}

func runMongoSuite(t *testing.T, s suite.TestingSuite) {
	if os.Getenv(testMongoConnEnv) == "" {
		t.Skipf("%s is not set", testMongoConnEnv)
	}
	suite.Run(t, s)
}
