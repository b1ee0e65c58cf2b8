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

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/neighborly/neighborly-api/api"
	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/external/fcm"
	"github.com/neighborly/neighborly-api/external/geoinfo"
	"github.com/neighborly/neighborly-api/external/identity"
	"github.com/neighborly/neighborly-api/notification"
	"github.com/neighborly/neighborly-api/store"
	"github.com/neighborly/neighborly-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
	redisClient *redis.Client
)

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

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("notification.daily_limit", 100)
	viper.SetDefault("notification.retention", notification.DefaultRetention)
	viper.SetDefault("identity.cert_url", identity.DefaultCertURL)
	viper.SetDefault("i18n.dir", "i18n")
}

// keySource verifies tokens against a local public key when one is configured,
// otherwise against the published signing certificates
func keySource() (identity.KeySource, error) {
	if file := viper.GetString("identity.public_key_file"); file != "" {
		return identity.LoadStaticKeySource(file)
	}

	client := resty.New().SetTimeout(10 * time.Second)
	return identity.NewCertSource(client, viper.GetString("identity.cert_url")), nil
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		if redisClient != nil {
			_ = redisClient.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Debug:            viper.GetBool("sentry.debug"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir"), notification.Messages...); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded notification texts")

	keys, err := keySource()
	if err != nil {
		log.Panic(err)
	}
	verifier := identity.NewVerifier(viper.GetString("identity.project_id"), keys)
	log.WithField("prefix", "init").Info("Initialized id token verifier")

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

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

	// Init redis
	redisOpts, err := redis.ParseURL(viper.GetString("redis.conn"))
	if err != nil {
		log.Panic(err)
	}
	redisClient = redis.NewClient(redisOpts)
	limiter := notification.NewRedisLimiter(redisClient, viper.GetInt("notification.daily_limit"))

	var geo geoinfo.GeoInfo
	if key := viper.GetString("map.key"); key != "" {
		geo, err = geoinfo.New(key)
		if err != nil {
			log.Panic(err)
		}
	}

	var taskServer *machinery.Server
	if viper.GetBool("notification.async_push") {
		taskServer, err = machinery.NewServer(&machineryconf.Config{
			Broker:        viper.GetString("redis.conn"),
			DefaultQueue:  "neighborly_background",
			ResultBackend: viper.GetString("redis.conn"),
		})
		if err != nil {
			log.Panic(err)
		}
	}

	var pusher notification.Pusher
	if taskServer != nil {
		pusher = background.NewPushEnqueuer(taskServer)
	} else {
		fcmClient, err := fcm.New(initialCtx, viper.GetString("firebase.credentials"))
		if err != nil {
			log.Panic(err)
		}
		pusher = notification.NewPushService(mongoStore, fcmClient)
	}

	// Init http server
	server = api.NewServer(
		mongoStore,
		store.NewModerationStore(ormDB),
		verifier,
		geo,
		limiter,
		pusher)
	if taskServer != nil {
		server.UseBackground(taskServer)
	}
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
