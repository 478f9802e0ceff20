package main

import (
	"log"
	"net/http"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/clients/ai"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/clients/weather"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/config"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/handlers"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/jobs"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/web"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg); err != nil {
		log.Fatalf("db init: %v", err)
	}

	weatherCache := weather.NewCache()
	weatherClient := weather.NewClient()
	groq := ai.NewClient(cfg.GroqAPIKey)

	handlers.Init(cfg, weatherCache, weatherClient, groq)
	jobs.Start(cfg, weatherCache, weatherClient)

	r := web.Router()

	log.Printf("studio booking listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
