package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"autoconnect/config"
	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/infra/persistence/memory"
	"autoconnect/internal/infra/qrcode"
	mockService "autoconnect/internal/mocks/service"
	"autoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AddedVehicle.DefaultPageSize = 10
	cfg.AddedVehicle.MaxPageSize = 100
	cfg.AddedVehicle.ExportLimit = 1000
	cfg.AddedVehicle.MutationRetries = 3

	return cfg
}

// eventLog records published events.
type eventLog struct {
	mu     sync.Mutex
	events []*service.RequestEvent
}

func (l *eventLog) add(e *service.RequestEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) types() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Type)
	}

	return out
}

func (l *eventLog) last() *service.RequestEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.events) == 0 {
		return nil
	}

	return l.events[len(l.events)-1]
}

// addedVehicleFixtures wires the use cases over an in-memory store with a seeded
// directory. owner holds both vehicles by account. sharedVehicle is registered to
// the NIC of creator, so creator may add it while owner stays the account owner.
type addedVehicleFixtures struct {
	store     *memory.Store
	lifecycle usecase.AddedVehicleLifecycleUsecase
	query     usecase.AddedVehicleQueryUsecase
	stats     usecase.AddedVehicleStatisticsUsecase
	publisher *mockService.MockEventPublisher
	events    *eventLog

	owner         *entity.Actor
	creator       *entity.Actor
	stranger      *entity.Actor
	admin         *entity.Actor
	vehicle       *entity.VehicleSummary
	sharedVehicle *entity.VehicleSummary
}

func newUser(name, nic string, role entity.Role) *entity.UserSummary {
	return &entity.UserSummary{
		ID:    uuid.New(),
		Name:  name,
		Email: name + "@example.com",
		Phone: "+94771234567",
		NIC:   nic,
		Role:  role,
	}
}

func createAddedVehicleFixtures(t *testing.T) addedVehicleFixtures {
	t.Helper()

	store := memory.NewStore()

	owner := newUser("owner", "856789012V", entity.RoleUser)
	creator := newUser("creator", "199012345678", entity.RoleServiceCenter)
	stranger := newUser("stranger", "200011112222", entity.RoleUser)
	admin := newUser("admin", "197512345678", entity.RoleAdmin)
	for _, u := range []*entity.UserSummary{owner, creator, stranger, admin} {
		store.PutUser(u)
	}

	vehicle := &entity.VehicleSummary{
		ID:                 uuid.New(),
		RegistrationNumber: "CAB-1234",
		Make:               "Toyota",
		Model:              "Axio",
		OwnerID:            owner.ID,
		OwnerNIC:           owner.NIC,
	}
	sharedVehicle := &entity.VehicleSummary{
		ID:                 uuid.New(),
		RegistrationNumber: "KX-9876",
		Make:               "Honda",
		Model:              "Vezel",
		OwnerID:            owner.ID,
		OwnerNIC:           creator.NIC,
	}
	store.PutVehicle(vehicle)
	store.PutVehicle(sharedVehicle)

	events := &eventLog{}
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishRequestEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *service.RequestEvent) { events.add(e) }).
		Return(nil).
		Maybe()

	cfg := newTestConfig()
	logger := newDiscardLogger()

	lifecycle := NewLifecycleService(LifecycleServiceParams{
		Repo:      store.Requests(),
		TxManager: store,
		Directory: store.Directory(),
		Publisher: publisher,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Config:    cfg,
		Logger:    logger,
	})
	lifecycle.(*lifecycleService).now = func() time.Time { return testNow }

	stats := NewStatisticsService(StatisticsServiceParams{Repo: store.Requests(), Logger: logger})
	stats.(*statisticsService).now = func() time.Time { return testNow }

	query := NewQueryService(QueryServiceParams{
		Repo:      store.Requests(),
		Directory: store.Directory(),
		Config:    cfg,
		Logger:    logger,
	})

	return addedVehicleFixtures{
		store:         store,
		lifecycle:     lifecycle,
		query:         query,
		stats:         stats,
		publisher:     publisher,
		events:        events,
		owner:         entity.NewActor(owner),
		creator:       entity.NewActor(creator),
		stranger:      entity.NewActor(stranger),
		admin:         entity.NewActor(admin),
		vehicle:       vehicle,
		sharedVehicle: sharedVehicle,
	}
}

// createRequest creates a request through the lifecycle use case.
func (f addedVehicleFixtures) createRequest(t *testing.T, actor *entity.Actor, vehicleID uuid.UUID, purpose entity.Purpose) *entity.AddedVehicleRecord {
	t.Helper()

	input := &usecase.CreateAddedVehicleInput{VehicleID: vehicleID, Purpose: purpose}
	if purpose.RequiresAddress() {
		input.Location = &entity.Location{Address: "12 Galle Road", City: "Colombo"}
	}

	record, err := f.lifecycle.Create(context.Background(), actor, input, entity.RequestMetadata{Source: entity.SourceMobile})
	require.NoError(t, err)

	return record
}
