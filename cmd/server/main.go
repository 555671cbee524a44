// @title           AmdaOps HTTP Service API
// @version         1.0
// @description     Site registry, officer roster and bilingual phrasebook for security operations

// @BasePath  /api
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"amdaops-http-service/internal/app/middleware"
	"amdaops-http-service/internal/app/routes"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/internal/infrastructure/storage"
	Logger "amdaops-http-service/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 加载.env文件，失败时继续使用已有环境变量
	envErr := godotenv.Load()

	cfg := config.GetConfig()

	if err := Logger.SetupLogger(cfg.LogDir, cfg.LogLevel); err != nil {
		fmt.Printf("failed to set up logger: %v\n", err)
		os.Exit(1)
	}
	defer Logger.Sync()
	log := Logger.L()

	if envErr != nil {
		Logger.Warning("could not load .env file: %v", envErr)
	} else {
		Logger.Info("loaded .env file")
	}

	if err := prepareDataDir(cfg); err != nil {
		log.Fatal("preparing data directory failed", zap.Error(err))
	}

	serviceContainer := container.NewServiceContainer(cfg)
	defer serviceContainer.Close()

	registry := serviceContainer.GetService("registry").(services.InterfaceRegistryService)
	if created, err := registry.EnsureRegistry(); err != nil {
		log.Fatal("creating site registry failed", zap.Error(err))
	} else if created {
		log.Info("created default site registry", zap.String("path", cfg.RegistryPath()))
	}

	if _, err := os.Stat(cfg.PhrasesPath()); err != nil {
		log.Warn("phrase bank not found, phrase pages will report an error until it is added",
			zap.String("path", cfg.PhrasesPath()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.WatchDataDir {
		watcher, err := storage.NewWatcher(cfg.DataDir, log.Named("watcher"))
		if err != nil {
			log.Warn("data directory watcher disabled", zap.Error(err))
		} else {
			watcher.OnChange(dataChangeHandler(cfg, serviceContainer, log))
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.ServerPort,
		Handler:      routes.SetupRouter(cfg, serviceContainer),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g.Go(func() error {
		log.Info("server listening", zap.String("addr", "http://"+srv.Addr), zap.String("data_dir", cfg.DataDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server stopped with error", zap.Error(err))
		Logger.Sync()
		os.Exit(1)
	}
	log.Info("server stopped")
}

// prepareDataDir 创建数据目录、照片目录，以及缺失的人员、排班和考勤文件
func prepareDataDir(cfg *config.Config) error {
	for _, dir := range []string{cfg.DataDir, cfg.PhotosDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	for _, path := range []string{cfg.OfficersPath(), cfg.SchedulesPath(), cfg.TimeLogsPath()} {
		created, err := storage.NewJSONFile(path).EnsureList()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if created {
			Logger.L().Info("created empty data file", zap.String("path", path))
		}
	}
	return nil
}

// dataChangeHandler 数据文件被外部修改时清理相关缓存
func dataChangeHandler(cfg *config.Config, c *container.ServiceContainer, log *zap.Logger) storage.ChangeHandler {
	return func(name string) {
		var prefixes []string
		facets := false
		switch name {
		case filepath.Base(cfg.RegistryPath()):
			prefixes = []string{"/api/sites", "/api/phrases", "/api/dashboard"}
			facets = true
		case filepath.Base(cfg.PhrasesPath()):
			prefixes = []string{"/api/phrases"}
			facets = true
		case filepath.Base(cfg.OfficersPath()), filepath.Base(cfg.SchedulesPath()):
			prefixes = []string{"/api/dashboard"}
		default:
			return
		}

		for _, p := range prefixes {
			middleware.PurgeCacheByPrefix(p)
		}
		if r := c.Redis(); facets && r != nil {
			if err := r.InvalidateFacets(); err != nil {
				log.Debug("facet cache invalidation skipped", zap.Error(err))
			}
		}
		log.Info("data file changed, caches purged", zap.String("file", name))
	}
}
