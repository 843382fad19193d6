package service

import (
	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
	"github.com/MKhiriev/go-clinic-sync/models"
)

var (
	_ LocalBackend  = (*store.LocalRecords)(nil)
	_ PendingLedger = (*store.Ledger)(nil)
)

type Services struct {
	AppInfoService AppInfoService
	Prober         Prober
	ModeSelector   ModeSelector
	DrainScheduler DrainScheduler
	SyncExecutor   SyncExecutor
	StatusReporter StatusReporter
	PendingService PendingService
	DataGateway    DataGateway
}

// NewServices wires the sync core. Every probe result is fed to the mode
// selector, so the mode follows reachability without further plumbing.
func NewServices(
	local LocalBackend,
	ledger PendingLedger,
	cloud adapter.CloudBackend,
	runtime models.RuntimeEnvironment,
	appInfo AppInfoService,
	cfg config.StructuredConfig,
) *Services {
	scheduler := NewDrainScheduler()
	modes := NewModeSelector(runtime, scheduler)
	prober := NewProber(cloud, local, runtime, cfg.Workers.ProbeTimeout)
	prober.Subscribe(modes.OnStatus)

	executor := NewSyncExecutor(local, ledger, cloud, cfg.Workers, cfg.Sync.TableOrder)

	return &Services{
		AppInfoService: appInfo,
		Prober:         prober,
		ModeSelector:   modes,
		DrainScheduler: scheduler,
		SyncExecutor:   executor,
		StatusReporter: NewStatusReporter(prober, modes, ledger, executor),
		PendingService: NewPendingService(ledger),
		DataGateway:    NewDataGateway(local, cloud, modes, runtime),
	}
}
