package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-world-gen/api"
	api_i "github.com/beka-birhanu/maze-world-gen/api/i"
	sceneapi "github.com/beka-birhanu/maze-world-gen/api/scene"
	"github.com/beka-birhanu/maze-world-gen/config"
	"github.com/beka-birhanu/maze-world-gen/infrastruture/repo"
	"github.com/beka-birhanu/maze-world-gen/service"
	"github.com/beka-birhanu/maze-world-gen/service/i"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs            config.Config
	mongoClient     *mongo.Client
	sceneRepo       i.SceneRepo
	sceneService    i.SceneManager
	sceneController api_i.Controller
	router          *api.Router
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}
	log.Info("Connected to MongoDB")
}

func initSceneRepo(client *mongo.Client) {
	sceneRepo = repo.NewSceneRepo(client, envs.DBName, "scenes")
	log.Info("Scene repository initialized")
}

func initSceneService() {
	serviceLogger := stdlog.New(os.Stdout, config.ColorCyan+"[SCENE] "+config.ColorReset, stdlog.LstdFlags)

	var err error
	sceneService, err = service.NewSceneService(&service.Config{
		Repo:   sceneRepo,
		Logger: serviceLogger,
	})
	if err != nil {
		log.Fatalf("Creating scene service: %v", err)
	}
	log.Info("Scene service initialized")
}

func initSceneController() {
	var err error
	sceneController, err = sceneapi.NewSceneController(sceneService)
	if err != nil {
		log.Fatalf("Creating scene controller: %v", err)
	}
	log.Info("Scene controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{sceneController},
	})
	log.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	envs = config.Load()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initSceneRepo(mongoClient)
	initSceneService()
	initSceneController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		log.Fatalf("Starting server: %v", err)
	}
}
