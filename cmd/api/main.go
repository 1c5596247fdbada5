package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AbonDev/realm-of-legends/internal/config"
	"github.com/AbonDev/realm-of-legends/internal/handler"
	"github.com/AbonDev/realm-of-legends/internal/handler/game"
	speechHandler "github.com/AbonDev/realm-of-legends/internal/handler/speech"
	characterModel "github.com/AbonDev/realm-of-legends/internal/model/character"
	speechModel "github.com/AbonDev/realm-of-legends/internal/model/speech"
	"github.com/AbonDev/realm-of-legends/internal/service/ai"
	"github.com/AbonDev/realm-of-legends/internal/service/dm"
	speechService "github.com/AbonDev/realm-of-legends/internal/service/speech"
	"github.com/AbonDev/realm-of-legends/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Transcript store; the directory is created lazily on first append.
	sessionStore := session.NewStore(cfg.Session.Dir)

	// Character records: Supabase when configured, in-memory otherwise.
	var characterStore characterModel.Store
	if cfg.Character.UseSupabase() {
		supaStore, err := characterModel.NewSupabaseStore(cfg.Character.SupabaseURL, cfg.Character.SupabaseKey)
		if err != nil {
			log.Fatalf("failed to connect to supabase: %v", err)
		}
		characterStore = supaStore
		log.Println("character store backed by Supabase")
	} else {
		characterStore = characterModel.NewMemoryStore()
		log.Println("Supabase credentials not configured, character store is in-memory")
	}

	// Narrator model
	var aiService *ai.Service
	if cfg.AI.Enabled() {
		aiService, err = ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize narrator service: %v", err)
			log.Println("continuing without AI narration - check the Ark model environment variables")
			aiService = nil
		} else {
			log.Println("narrator service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping AI narration")
	}

	var narrator dm.Narrator
	if aiService != nil {
		narrator = aiService
	}
	dmService := dm.NewService(narrator, sessionStore, time.Duration(cfg.AI.RequestTimeout)*time.Second)

	var streamHandler *game.StreamHandler
	if aiService != nil && aiService.StreamingEnabled() {
		streamHandler = game.NewStreamHandler(aiService, dmService)
	}

	// Text-narration bridge
	var tts speechHandler.Synthesizer
	if cfg.Speech.Enabled {
		tts = speechService.NewClient(&speechModel.SpeechConfig{
			APIKey:  cfg.Speech.APIKey,
			BaseURL: cfg.Speech.BaseURL,
			Model:   cfg.Speech.Model,
			Voice:   cfg.Speech.Voice,
			Speed:   cfg.Speech.Speed,
			Format:  cfg.Speech.Format,
			Timeout: cfg.Speech.Timeout,
		})
		log.Println("speech synthesis service initialized successfully")
	} else {
		log.Println("TTS credentials not configured, skipping speech synthesis")
	}

	router := handler.NewRouter(dmService, streamHandler, tts, characterStore)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Realm of Legends backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
