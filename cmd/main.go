package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dishpoll/internal/handlers"
	"dishpoll/internal/logger"
	"dishpoll/internal/repository"
	"dishpoll/internal/repository/db"
	"dishpoll/internal/server"
	"dishpoll/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/spf13/viper"
)

const templatesGlob = "templates/*.html"

func main() {
	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, sessionStore(log), log)

	router := apiHandler.InitRoutes()
	router.LoadHTMLGlob(templatesGlob)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, router); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "dishpoll.db")
		dbPath = "dishpoll.db"
	}
	return db.InitDB(dbPath)
}

// sessionStore builds the cookie-backed session store. Without a configured
// secret a random one is generated, which invalidates sessions on restart.
func sessionStore(log *logger.Logger) sessions.Store {
	secret := []byte(viper.GetString("session.secret"))
	if len(secret) == 0 {
		log.Infow("session.secret not set in config; generating a random key")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatalw("failed to generate session key", "err", err)
		}
	}
	return cookie.NewStore(secret)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
