package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-tmaze/api"
	api_i "github.com/beka-birhanu/vinom-tmaze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-tmaze/api/maze"
	sessionapi "github.com/beka-birhanu/vinom-tmaze/api/session"
	"github.com/beka-birhanu/vinom-tmaze/config"
	logger "github.com/beka-birhanu/vinom-tmaze/infrastruture/log"
	"github.com/beka-birhanu/vinom-tmaze/infrastruture/mazecache"
	"github.com/beka-birhanu/vinom-tmaze/infrastruture/token"
	"github.com/beka-birhanu/vinom-tmaze/service"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const sweepInterval = time.Minute

// Global variables for dependencies
var (
	redisClient       *redis.Client
	mazeCache         i.MazeCache
	jwtTokenizer      i.Tokenizer
	sessionManager    *service.SessionManager
	mazeController    api_i.Controller
	sessionController api_i.Controller
	router            *api.Router
	appLogger         i.Logger
)

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, caching mazes in memory: %v", err))
		_ = redisClient.Close()
		redisClient = nil
		return
	}
	appLogger.Info("Connected to Redis")
}

func initMazeCache() {
	if redisClient == nil {
		mazeCache = mazecache.NewMemoryMazeCache(config.Envs.MazeCacheTTL)
		appLogger.Info("In-memory maze cache initialized")
		return
	}

	var err error
	mazeCache, err = mazecache.NewRedisMazeCache(redisClient, config.Envs.MazeCacheTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis maze cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Redis maze cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	sessionManager, err = service.NewSessionManager(&service.Config{
		Cache:      mazeCache,
		Tokenizer:  jwtTokenizer,
		Logger:     sessionLogger,
		SessionTTL: time.Duration(config.Envs.SessionTTL) * time.Minute,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initControllers() {
	var err error
	mazeController, err = mazeapi.NewMazeController(sessionManager, mazeapi.Defaults{
		Width:  config.Envs.MazeWidth,
		Height: config.Envs.MazeHeight,
		Seed:   config.Envs.RandomSeed,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	sessionController, err = sessionapi.NewSessionController(sessionManager, sessionapi.Defaults{
		Width:  config.Envs.MazeWidth,
		Height: config.Envs.MazeHeight,
		Seed:   config.Envs.RandomSeed,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController, sessionController},
		AuthorizationMiddleware: sessionapi.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

// sweepSessions drops idle sessions until ctx is done.
func sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sessionManager.Sweep(now)
		}
	}
}

func main() {
	config.Load()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	initRedis(ctx)
	cancel()
	if redisClient != nil {
		defer redisClient.Close()
	}

	initMazeCache()
	initJWTTokenizer()
	initSessionManager()
	initControllers()
	initRouter(jwtTokenizer)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepSessions(sweepCtx)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
