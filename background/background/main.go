package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/community"
	"github.com/neighborly/neighborly-api/external/fcm"
	"github.com/neighborly/neighborly-api/notification"
	"github.com/neighborly/neighborly-api/store"
	"github.com/neighborly/neighborly-api/utils"
)

var (
	mongoClient *mongo.Client
	redisClient *redis.Client
	manager     *background.BackgroundManager
)

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
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
	viper.SetDefault("notification.daily_limit", notification.DefaultDailyLimit)
	viper.SetDefault("background.concurrency", 5)
	viper.SetDefault("i18n.dir", "i18n")
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Worker is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			_ = mongoClient.Disconnect(ctx)
		}

		if redisClient != nil {
			_ = redisClient.Close()
		}

		sentry.Flush(2 * time.Second)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		log.Panic(err)
	}

	panicIfError(utils.InitI18NBundle(viper.GetString("i18n.dir"), notification.Messages...))

	var err error

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	fcmClient, err := fcm.New(initialCtx, viper.GetString("firebase.credentials"))
	if err != nil {
		log.Panicf("create fcm client with error: %s", err)
	}
	pushService := notification.NewPushService(mongoStore, fcmClient)

	redisOpts, err := redis.ParseURL(viper.GetString("redis.conn"))
	if err != nil {
		log.Panicf("parse redis url with error: %s", err)
	}
	redisClient = redis.NewClient(redisOpts)
	limiter := notification.NewRedisLimiter(redisClient, viper.GetInt("notification.daily_limit"))

	dispatcher := notification.NewDispatcher(mongoStore, limiter, pushService, viper.GetDuration("notification.retention"))

	var conf = &config.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "neighborly_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(background.Background{
		Gate:       community.New(mongoStore, dispatcher),
		Dispatcher: dispatcher,
	}, pushService, taskServer)
	panicIfError(manager.RegisterTasks())

	if err := manager.Run(viper.GetInt("background.concurrency")); err != nil {
		log.Panic(err)
	}
}
