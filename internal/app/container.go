package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/zerobrew/zbstrap/internal/application/doctor"
	"github.com/zerobrew/zbstrap/internal/application/lifecycle"
	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/infrastructure/config"
	"github.com/zerobrew/zbstrap/internal/infrastructure/paths"
	"github.com/zerobrew/zbstrap/internal/infrastructure/privilege"
	"github.com/zerobrew/zbstrap/internal/infrastructure/product"
	"github.com/zerobrew/zbstrap/internal/infrastructure/receipt"
	"github.com/zerobrew/zbstrap/internal/infrastructure/runner"
	"github.com/zerobrew/zbstrap/internal/infrastructure/shell"
	"github.com/zerobrew/zbstrap/internal/infrastructure/toolchain"
	"github.com/zerobrew/zbstrap/internal/pkg/filesystem"
	"github.com/zerobrew/zbstrap/internal/pkg/logger"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.BootstrapConfig
	Platform      domain.PlatformContext
	EnvOverrides  domain.Overrides
	Lifecycle     *lifecycle.Service
	DoctorService *doctor.Service
	Resolver      ports.LocationResolver
	ProfileEditor ports.ProfileEditor
	Receipts      ports.ReceiptStore
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph. The platform context
// is read here, once, and stays immutable for the run.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)

	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	platform := paths.DetectPlatform()
	resolver := paths.NewResolver()
	editor := shell.NewEditor(log)
	escalator := privilege.NewEscalator(runner.NewInteractive(), log)
	run := runner.New()
	receipts := receipt.NewSQLiteStore(stateDir())

	svc := &lifecycle.Service{
		Resolver:  resolver,
		Escalator: escalator,
		Profile:   editor,
		Builder:   toolchain.NewBuilder(run, log),
		Product:   product.NewRuntime(run, log),
		Receipts:  receipts,
		Logger:    log,
	}

	doctorService := &doctor.Service{
		Resolver:  resolver,
		Escalator: escalator,
		Profile:   editor,
		Receipts:  receipts,
		Tools:     run,
	}

	return &Container{
		Config:        cfg,
		Platform:      platform,
		EnvOverrides:  paths.EnvOverrides(),
		Lifecycle:     svc,
		DoctorService: doctorService,
		Resolver:      resolver,
		ProfileEditor: editor,
		Receipts:      receipts,
		Logger:        log,
	}, nil
}

// Overrides layers environment overrides over config-file ones.
func (c *Container) Overrides() domain.Overrides {
	return c.EnvOverrides.Merge(c.Config.Locations)
}

// Close releases held resources.
func (c *Container) Close() {
	if c.Receipts != nil {
		_ = c.Receipts.Close()
	}
}

// stateDir locates the bootstrap state directory, honoring XDG.
func stateDir() string {
	if custom := os.Getenv("XDG_STATE_HOME"); custom != "" {
		return filepath.Join(custom, "zbstrap")
	}
	return filepath.Join(filesystem.UserHomeDir(), ".local", "state", "zbstrap")
}
