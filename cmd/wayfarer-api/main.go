// README: Entry point; loads config, wires the planning pipeline and stores, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/internal/ai"
	"wayfarer/internal/config"
	httptransport "wayfarer/internal/http"
	"wayfarer/internal/infra"
	"wayfarer/internal/maps"
	"wayfarer/internal/modules/chat"
	"wayfarer/internal/modules/session"
	"wayfarer/internal/modules/user"
	"wayfarer/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	llm, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer llm.Close()

	geoSvc, err := maps.NewGeoService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	distanceSvc, err := maps.NewDistanceService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	planner := service.NewTripPlanner(llm, geoSvc, placesSvc, distanceSvc)

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore)

	sessionStore := session.NewStore(redisClient, time.Duration(cfg.Session.TTLHours)*time.Hour)

	chatStore := chat.NewStore(dbPool)
	chatSvc := chat.NewService(chatStore, planner)

	handler := httptransport.NewRouter(httptransport.Deps{
		Accounts: userSvc,
		Sessions: sessionStore,
		Chat:     chatSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
