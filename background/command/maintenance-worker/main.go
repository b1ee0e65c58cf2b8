package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/cadence/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/background/maintenance"
	"github.com/neighborly/neighborly-api/community"
	"github.com/neighborly/neighborly-api/external/cadence"
	"github.com/neighborly/neighborly-api/notification"
	"github.com/neighborly/neighborly-api/store"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	_ = godotenv.Load()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("neighborly")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("notification.retention", notification.DefaultRetention)
	viper.SetDefault("cadence.interval", maintenance.DefaultSweepInterval)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initSentry()

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	// sweeps neither count against the daily cap nor push
	dispatcher := notification.NewDispatcher(mongoStore, nil, nil, viper.GetDuration("notification.retention"))

	b := background.Background{
		Gate:       community.New(mongoStore, dispatcher),
		Dispatcher: dispatcher,
	}

	service := cadence.BuildCadenceServiceClient(viper.GetString("cadence.conn"))

	worker := maintenance.NewMaintenanceWorker(viper.GetString("cadence.domain"), b)
	worker.Register()

	started, err := cadence.NewClient(service, viper.GetString("cadence.domain")).EnsureWorkflow(context.Background(),
		client.StartWorkflowOptions{
			ID:                           maintenance.WorkflowID,
			TaskList:                     maintenance.TaskListName,
			ExecutionStartToCloseTimeout: 24 * time.Hour,
		},
		worker.MaintenanceWorkflow, viper.GetDuration("cadence.interval"))
	if err != nil {
		logger.Panic("start maintenance workflow with error", zap.Error(err))
	}
	logger.Info("Maintenance workflow ready", zap.Bool("started", started))

	worker.Start(service, logger)
}
