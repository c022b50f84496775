package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

var errInjected = errors.New("injected storage failure")

// fakeStore is an in-memory stand-in for the Postgres repositories. Its
// transaction manager snapshots the mutable state before running the
// callback and restores it when the callback fails, mirroring the rollback
// semantics the services rely on. Transactions are serialized on txMu, so
// concurrent settlements interleave the way serializable transactions
// would.
type fakeStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	teams   map[string]*models.Team
	members map[string]*models.Member
	events  map[string]*models.Event
	results []models.Result
	config  *models.PointsConfig
	admins  map[string]*models.Admin

	failIncrementFor string // team id whose increment fails
	failResultCreate error  // returned by result Create when set
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		teams:   make(map[string]*models.Team),
		members: make(map[string]*models.Member),
		events:  make(map[string]*models.Event),
		admins:  make(map[string]*models.Admin),
	}
}

// --- repositories.TxManager ---

func (f *fakeStore) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	teamsSnapshot := make(map[string]*models.Team, len(f.teams))
	for id, team := range f.teams {
		copied := *team
		teamsSnapshot[id] = &copied
	}
	resultsSnapshot := make([]models.Result, len(f.results))
	copy(resultsSnapshot, f.results)
	f.mu.Unlock()

	if err := fn(nil); err != nil {
		f.mu.Lock()
		f.teams = teamsSnapshot
		f.results = resultsSnapshot
		f.mu.Unlock()
		return err
	}
	return nil
}

// --- repositories.TeamRepository ---

func (f *fakeStore) Create(ctx context.Context, team *models.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *team
	f.teams[team.ID] = &copied
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	team, ok := f.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (f *fakeStore) List(ctx context.Context) ([]models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	teams := make([]models.Team, 0, len(f.teams))
	for _, team := range f.teams {
		teams = append(teams, *team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (f *fakeStore) IncrementTotalPoints(ctx context.Context, exec repositories.SQLExecutor, id string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncrementFor == id {
		return errInjected
	}
	team, ok := f.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.TotalPoints += delta
	return nil
}

func (f *fakeStore) UpdateLogoKey(ctx context.Context, id string, logoKey *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	team, ok := f.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = logoKey
	return nil
}

func (f *fakeStore) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.teams), nil
}

// teamRepo exposes the store as a TeamRepository.
func (f *fakeStore) teamRepo() repositories.TeamRepository { return f }

// --- repositories.EventRepository ---

type fakeEventRepo struct{ store *fakeStore }

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *event
	f.store.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	event, ok := f.store.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]models.Event, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	events := make([]models.Event, 0, len(f.store.events))
	for _, event := range f.store.events {
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].EventDate.Before(events[j].EventDate) })
	return events, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.events[event.ID]; !ok {
		return repositories.ErrEventNotFound
	}
	copied := *event
	f.store.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	// Mirrors the foreign key from results to events.
	for _, result := range f.store.results {
		if result.EventID == id {
			return repositories.ErrEventHasResults
		}
	}
	delete(f.store.events, id)
	return nil
}

func (f *fakeEventRepo) Count(ctx context.Context) (int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return len(f.store.events), nil
}

func (f *fakeStore) eventRepo() repositories.EventRepository { return &fakeEventRepo{store: f} }

// --- repositories.ResultRepository ---

type fakeResultRepo struct{ store *fakeStore }

func (f *fakeResultRepo) Create(ctx context.Context, exec repositories.SQLExecutor, result *models.Result) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.failResultCreate != nil {
		return f.store.failResultCreate
	}
	f.store.results = append(f.store.results, *result)
	return nil
}

func (f *fakeResultRepo) List(ctx context.Context) ([]models.Result, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	results := make([]models.Result, len(f.store.results))
	copy(results, f.store.results)
	return results, nil
}

func (f *fakeResultRepo) ListByWinnerTeamID(ctx context.Context, teamID string) ([]models.Result, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var results []models.Result
	for _, result := range f.store.results {
		if result.WinnerTeamID == teamID {
			results = append(results, result)
		}
	}
	return results, nil
}

func (f *fakeResultRepo) Count(ctx context.Context) (int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return len(f.store.results), nil
}

func (f *fakeStore) resultRepo() repositories.ResultRepository { return &fakeResultRepo{store: f} }

// --- repositories.PointsConfigRepository ---

type fakePointsConfigRepo struct{ store *fakeStore }

func (f *fakePointsConfigRepo) Get(ctx context.Context) (*models.PointsConfig, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.config == nil {
		return nil, repositories.ErrPointsConfigNotFound
	}
	copied := *f.store.config
	return &copied, nil
}

func (f *fakePointsConfigRepo) Upsert(ctx context.Context, config models.PointsConfig) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.config = &config
	return nil
}

func (f *fakeStore) pointsConfigRepo() repositories.PointsConfigRepository {
	return &fakePointsConfigRepo{store: f}
}

// --- repositories.MemberRepository ---

type fakeMemberRepo struct{ store *fakeStore }

func (f *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.teams[member.TeamID]; !ok {
		return repositories.ErrMemberTeamInvalid
	}
	copied := *member
	f.store.members[member.ID] = &copied
	return nil
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]models.Member, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	members := make([]models.Member, 0, len(f.store.members))
	for _, member := range f.store.members {
		members = append(members, *member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (f *fakeMemberRepo) ListByTeamID(ctx context.Context, teamID string) ([]models.Member, error) {
	members, _ := f.List(ctx)
	var filtered []models.Member
	for _, member := range members {
		if member.TeamID == teamID {
			filtered = append(filtered, member)
		}
	}
	return filtered, nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.members[id]; !ok {
		return repositories.ErrMemberNotFound
	}
	delete(f.store.members, id)
	return nil
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return len(f.store.members), nil
}

func (f *fakeStore) memberRepo() repositories.MemberRepository { return &fakeMemberRepo{store: f} }

// --- repositories.AdminRepository ---

type fakeAdminRepo struct{ store *fakeStore }

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.admins[admin.Username]; ok {
		return repositories.ErrAdminConflict
	}
	copied := *admin
	f.store.admins[admin.Username] = &copied
	return nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	admin, ok := f.store.admins[username]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return len(f.store.admins), nil
}

func (f *fakeStore) adminRepo() repositories.AdminRepository { return &fakeAdminRepo{store: f} }

// --- helpers ---

func (f *fakeStore) addTeam(id, name string, points int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teams[id] = &models.Team{ID: id, Name: name, Color: "#112233", TotalPoints: points}
}

func (f *fakeStore) addEvent(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[id] = &models.Event{ID: id, Name: name}
}

func (f *fakeStore) teamPoints(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teams[id].TotalPoints
}

func (f *fakeStore) resultCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

// recomputedPoints derives each team's total from the result log alone.
// Team totals are a cached projection of that log, so the two must agree
// after every settlement.
func (f *fakeStore) recomputedPoints() map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	totals := make(map[string]int, len(f.teams))
	for id := range f.teams {
		totals[id] = 0
	}
	for _, result := range f.results {
		totals[result.WinnerTeamID] += result.WinnerPoints
		if result.RunnerUpTeamID != nil {
			totals[*result.RunnerUpTeamID] += result.RunnerUpPoints
		}
	}
	return totals
}
