package main

import (
	"context"
	"log"
	"time"

	"tamaverse/internal/adapter/catalog/pokeapi"
	staticcatalog "tamaverse/internal/adapter/catalog/static"
	httpadapter "tamaverse/internal/adapter/http"
	metricsinmem "tamaverse/internal/adapter/metrics/inmemory"
	gormrepo "tamaverse/internal/adapter/repo/gorm"
	"tamaverse/internal/adapter/repo/memory"
	"tamaverse/internal/app/care"
	"tamaverse/internal/app/evolve"
	"tamaverse/internal/app/ports"
	"tamaverse/internal/app/replay"
	"tamaverse/internal/app/save"
	"tamaverse/internal/app/shop"
	"tamaverse/internal/app/status"
	"tamaverse/internal/app/tick"
	"tamaverse/internal/domain/pet"
	"tamaverse/internal/scheduler"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"
)

type config struct {
	Addr          string `env:"TAMAVERSE_ADDR" envDefault:":8080"`
	DBDSN         string `env:"TAMAVERSE_DB_DSN"`
	MigrationsDir string `env:"TAMAVERSE_MIGRATIONS_DIR" envDefault:"./migrations"`

	TickInterval time.Duration `env:"TAMAVERSE_TICK_INTERVAL" envDefault:"10s"`

	CatalogOffline bool          `env:"TAMAVERSE_CATALOG_OFFLINE"`
	PokeAPIBaseURL string        `env:"TAMAVERSE_POKEAPI_URL"`
	FoodCount      int           `env:"TAMAVERSE_CATALOG_FOOD_COUNT" envDefault:"6"`
	FoodsTTL       time.Duration `env:"TAMAVERSE_CATALOG_FOODS_TTL" envDefault:"24h"`
	SpeciesTTL     time.Duration `env:"TAMAVERSE_CATALOG_SPECIES_TTL" envDefault:"168h"`

	// Balance overrides; zero means keep the built-in default.
	RewardBase      int `env:"TAMAVERSE_REWARD_BASE"`
	RewardBonus     int `env:"TAMAVERSE_REWARD_BONUS"`
	NeglectPenalty  int `env:"TAMAVERSE_NEGLECT_PENALTY"`
	EvolutionStreak int `env:"TAMAVERSE_EVOLUTION_STREAK"`
}

type repoSet struct {
	Tx     ports.TxManager
	Pets   ports.PetSaveRepository
	Events ports.EventRepository
	Cache  ports.CatalogCacheStore
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	repos := mustBuildRepos(cfg)
	cart := memory.NewCartStore()
	provider := buildCatalogProvider(cfg, repos.Cache)
	kpiRecorder := metricsinmem.NewRecorder()
	tun := applyTuningOverrides(pet.DefaultTuning(), cfg)

	tickUC := tick.UseCase{
		TxManager: repos.Tx,
		PetRepo:   repos.Pets,
		EventRepo: repos.Events,
		Metrics:   kpiRecorder,
		Tuning:    tun,
		Now:       time.Now,
	}
	sched := &scheduler.Scheduler{
		Interval: cfg.TickInterval,
		Tick: func(ctx context.Context) error {
			_, err := tickUC.Execute(ctx)
			return err
		},
	}

	h := httpadapter.Handler{
		CreateUC: save.CreateUseCase{
			TxManager: repos.Tx, PetRepo: repos.Pets, EventRepo: repos.Events,
			Catalog: provider, Scheduler: sched, Tuning: tun, Now: time.Now,
		},
		DeleteUC: save.DeleteUseCase{
			TxManager: repos.Tx, PetRepo: repos.Pets, EventRepo: repos.Events,
			Cart: cart, Scheduler: sched, Now: time.Now,
		},
		CareUC: care.UseCase{
			TxManager: repos.Tx, PetRepo: repos.Pets, EventRepo: repos.Events,
			Catalog: provider, Tuning: tun, Now: time.Now,
		},
		TickUC: tickUC,
		EvolveUC: evolve.UseCase{
			TxManager: repos.Tx, PetRepo: repos.Pets, EventRepo: repos.Events,
			Catalog: provider, Tuning: tun, Now: time.Now,
		},
		ShopUC: shop.UseCase{
			TxManager: repos.Tx, PetRepo: repos.Pets, EventRepo: repos.Events,
			Catalog: provider, Cart: cart, Now: time.Now,
		},
		StatusUC: status.UseCase{
			PetRepo: repos.Pets, Catalog: provider, Cart: cart,
			Scheduler: sched, Tuning: tun,
		},
		ReplayUC:  replay.UseCase{Events: repos.Events},
		Scheduler: sched,
		KPI:       kpiRecorder,
	}

	// No save means nothing to simulate yet; creation resumes the loop.
	if _, err := repos.Pets.GetBySlot(context.Background(), pet.DefaultSlot); err != nil {
		sched.Pause()
	}
	sched.Start(context.Background())
	defer sched.Stop()

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("tamaverse server listening on %s (tick every %s)", cfg.Addr, cfg.TickInterval)
	s.Spin()
}

func mustBuildRepos(cfg config) repoSet {
	if cfg.DBDSN == "" {
		log.Println("TAMAVERSE_DB_DSN not set; using in-memory storage")
		store := memory.NewStore()
		return repoSet{
			Tx:     memory.NewTxManager(store),
			Pets:   memory.NewPetSaveRepo(store),
			Events: memory.NewEventRepo(store),
			Cache:  memory.NewCatalogCache(),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return repoSet{
		Tx:     gormrepo.NewTxManager(db),
		Pets:   gormrepo.NewPetSaveRepo(db),
		Events: gormrepo.NewEventRepo(db),
		Cache:  gormrepo.NewCatalogCacheRepo(db),
	}
}

func buildCatalogProvider(cfg config, cache ports.CatalogCacheStore) ports.CatalogProvider {
	if cfg.CatalogOffline {
		return staticcatalog.Provider{}
	}
	providerCfg := pokeapi.DefaultConfig()
	providerCfg.Client = pokeapi.NewClient(cfg.PokeAPIBaseURL, nil)
	providerCfg.Cache = cache
	providerCfg.FoodCount = cfg.FoodCount
	providerCfg.FoodsTTL = cfg.FoodsTTL
	providerCfg.SpeciesTTL = cfg.SpeciesTTL
	providerCfg.OnFallback = func(err error) {
		log.Printf("catalog: remote fetch failed, serving offline catalog: %v", err)
	}
	return pokeapi.NewProvider(providerCfg)
}

func applyTuningOverrides(tun pet.Tuning, cfg config) pet.Tuning {
	if cfg.RewardBase > 0 {
		tun.RewardBase = cfg.RewardBase
	}
	if cfg.RewardBonus > 0 {
		tun.RewardBonus = cfg.RewardBonus
	}
	if cfg.NeglectPenalty > 0 {
		tun.NeglectHealthPenalty = cfg.NeglectPenalty
	}
	if cfg.EvolutionStreak > 0 {
		tun.EvolutionStreakTarget = cfg.EvolutionStreak
	}
	return tun
}
