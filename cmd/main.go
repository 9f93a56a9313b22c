package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Githubuser289/Calories-BE/config"
	"github.com/Githubuser289/Calories-BE/routes"
)

// @title           Calories-BE API
// @version         1.0
// @description     Daily calorie intake and consumed-products tracker.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := config.SeedProducts(db, "data/products.json"); err != nil {
		log.Fatalf("seed products: %v", err)
	}

	r := routes.SetupRouter(cfg, db, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
