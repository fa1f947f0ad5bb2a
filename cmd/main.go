package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fieldtrack/controller"
	"fieldtrack/services/fetch"
	"fieldtrack/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "config/server.yaml", "path to server.yaml")
	envPath := flag.String("env", "", "optional .env file with the upstream credential")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.INFO, *logFile)
	defer logger.Close()

	utils.L().Info("═══════════════════════════════════════════════════")
	utils.L().Info("  Fieldtrack  ·  Checkpoint Tracking Dashboard")
	utils.L().Info("  GOMAXPROCS=%d  ·  PID=%d", runtime.GOMAXPROCS(0), os.Getpid())
	utils.L().Info("═══════════════════════════════════════════════════")

	// ── Environment & config ─────────────────────────────────────────
	if *envPath != "" {
		if err := godotenv.Load(*envPath); err != nil {
			utils.L().Warn("could not load %s: %v", *envPath, err)
		}
	}

	cfg, err := utils.LoadServerConfig(*configPath)
	if err != nil {
		utils.L().Fatal("load server config: %v", err)
	}
	if cfg.BearerToken() == "" {
		utils.L().Warn("no upstream credential found (env %s is empty)", cfg.Upstream.TokenEnv)
	}

	// ── Wiring ───────────────────────────────────────────────────────
	//
	//  upstream API ──► fetch.Client ──► engine (filter/resolve/track/count)
	//                                        │
	//                                  views (csv/xlsx/zip)
	//                                        │
	//                            controller.Dashboard (gin)

	client := fetch.NewClient(cfg.Upstream.BaseURL, cfg.BearerToken(), cfg.UpstreamTimeout(), nil)
	dashboard := controller.NewDashboard(client, nil, cfg.LocateTimeout(), nil)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	dashboard.Register(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutS) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutS) * time.Second,
	}

	// ── Serve until signalled ────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		utils.L().Info("dashboard listening on %s (upstream=%s)", srv.Addr, cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.L().Fatal("serve: %v", err)
		}
	}()

	sig := <-sigCh
	utils.L().Info("received signal: %v — shutting down…", sig)

	grace := time.Duration(cfg.HTTP.ShutdownGraceS) * time.Second
	if grace <= 0 {
		grace = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.L().Error("shutdown: %v", err)
	}

	fetched, failed := client.Stats()
	utils.L().Info("upstream fetches: ok=%d failed=%d", fetched, failed)
	fmt.Println("\n✓ Fieldtrack dashboard stopped.")
}
