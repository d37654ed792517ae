package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HardMax71/ResuMariner-sub001/internal/catalog"
	"github.com/HardMax71/ResuMariner-sub001/internal/client"
	"github.com/HardMax71/ResuMariner-sub001/internal/query"
)

// memStore records every Save so tests can assert the persist-on-mutation
// contract without touching disk.
type memStore struct {
	states  map[string]State
	saves   int
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{states: make(map[string]State)}
}

func (m *memStore) Load(_ context.Context, id string) (State, bool, error) {
	if m.loadErr != nil {
		return State{}, false, m.loadErr
	}
	state, ok := m.states[id]
	return state, ok, nil
}

func (m *memStore) Save(_ context.Context, state State) error {
	m.saves++
	m.states[state.ID] = state
	return nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.states, id)
	return nil
}

func (m *memStore) Close() error { return nil }

type fakeBackend struct {
	resp       *client.SearchResponse
	err        error
	calls      int
	lastReq    query.Request
	catalog    catalog.FilterOptions
	catalogErr error
}

func (f *fakeBackend) Search(_ context.Context, req query.Request) (*client.SearchResponse, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeBackend) FilterOptions(context.Context) (catalog.FilterOptions, error) {
	if f.catalogErr != nil {
		return catalog.Empty(), f.catalogErr
	}
	return f.catalog, nil
}

func TestNewState_Defaults(t *testing.T) {
	state := NewState("abc")
	assert.Equal(t, "abc", state.ID)
	assert.Equal(t, query.ModeSemantic, state.Mode)
	assert.Equal(t, query.DefaultParams(), state.Params)

	anon := NewState("")
	assert.NotEmpty(t, anon.ID)
}

func TestSession_EveryMutationPersists(t *testing.T) {
	store := newMemStore()
	sess := New(NewState(DefaultID), store)
	ctx := context.Background()

	require.NoError(t, sess.SetMode(ctx, query.ModeHybrid))
	require.NoError(t, sess.SetQuery(ctx, "engineer"))
	require.NoError(t, sess.ToggleSkill(ctx, "Go"))
	require.NoError(t, sess.ToggleLocation(ctx, "Germany", nil))
	require.NoError(t, sess.SetVectorWeight(ctx, 0.6))

	assert.Equal(t, 5, store.saves)

	persisted := store.states[DefaultID]
	assert.Equal(t, query.ModeHybrid, persisted.Mode)
	assert.Equal(t, "engineer", persisted.Params.Query)
	assert.Equal(t, []string{"Go"}, persisted.Criteria.Skills)
	assert.False(t, persisted.UpdatedAt.IsZero())
}

func TestSession_ClearCriteriaResetsEveryFacet(t *testing.T) {
	store := newMemStore()
	sess := New(NewState(DefaultID), store)
	ctx := context.Background()

	require.NoError(t, sess.ToggleSkill(ctx, "Go"))
	require.NoError(t, sess.SetRole(ctx, "Backend Engineer"))
	require.NoError(t, sess.ToggleLanguage(ctx, "English", "B2"))
	require.Equal(t, 3, sess.ActiveFilterCount())

	require.NoError(t, sess.ClearCriteria(ctx))
	assert.Equal(t, 0, sess.ActiveFilterCount())
}

func TestSession_ToggleCandidate(t *testing.T) {
	store := newMemStore()
	sess := New(NewState(DefaultID), store)
	ctx := context.Background()

	require.NoError(t, sess.ToggleCandidate(ctx, "c2"))
	require.NoError(t, sess.ToggleCandidate(ctx, "c1"))
	assert.Equal(t, []string{"c1", "c2"}, sess.SelectedCandidates())

	// Toggling again removes.
	require.NoError(t, sess.ToggleCandidate(ctx, "c2"))
	assert.Equal(t, []string{"c1"}, sess.SelectedCandidates())

	require.NoError(t, sess.ToggleCandidate(ctx, "c1"))
	assert.Empty(t, sess.SelectedCandidates())
	assert.Nil(t, sess.Snapshot().SelectedCandidates)
}

func TestSession_SearchStoresLatestResponse(t *testing.T) {
	sess := New(NewState(DefaultID), newMemStore())
	ctx := context.Background()
	require.NoError(t, sess.SetQuery(ctx, "engineer"))

	backend := &fakeBackend{resp: &client.SearchResponse{Query: "engineer", SearchType: "semantic"}}
	resp, err := sess.Search(ctx, backend)
	require.NoError(t, err)
	assert.Same(t, resp, sess.LastResponse())
	assert.Equal(t, 1, backend.calls)

	_, ok := backend.lastReq.(query.SemanticRequest)
	assert.True(t, ok)
}

func TestSession_SearchValidationFailureSkipsBackend(t *testing.T) {
	sess := New(NewState(DefaultID), newMemStore())
	backend := &fakeBackend{resp: &client.SearchResponse{}}

	// Semantic mode with an empty query never reaches the backend.
	_, err := sess.Search(context.Background(), backend)

	var vErr *query.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, backend.calls)
	assert.Nil(t, sess.LastResponse())
}

func TestSession_SearchBackendFailureKeepsPreviousResponse(t *testing.T) {
	sess := New(NewState(DefaultID), newMemStore())
	ctx := context.Background()
	require.NoError(t, sess.SetQuery(ctx, "engineer"))

	good := &fakeBackend{resp: &client.SearchResponse{Query: "engineer"}}
	_, err := sess.Search(ctx, good)
	require.NoError(t, err)

	bad := &fakeBackend{err: errors.New("backend down")}
	_, err = sess.Search(ctx, bad)
	require.Error(t, err)
	assert.Equal(t, "engineer", sess.LastResponse().Query)
}

func TestBootstrap_HydratesExistingState(t *testing.T) {
	store := newMemStore()
	saved := NewState("persisted")
	saved.Params.Query = "kept"
	store.states["persisted"] = saved

	res, err := Bootstrap(context.Background(), store, &fakeBackend{}, "persisted")
	require.NoError(t, err)
	assert.Equal(t, "kept", res.Session.Params().Query)
	assert.NoError(t, res.CatalogErr)
}

func TestBootstrap_MissingSessionStartsFresh(t *testing.T) {
	res, err := Bootstrap(context.Background(), newMemStore(), &fakeBackend{}, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", res.Session.ID())
	assert.Equal(t, query.ModeSemantic, res.Session.Mode())
}

func TestBootstrap_CatalogFailureIsNotFatal(t *testing.T) {
	backend := &fakeBackend{catalogErr: errors.New("backend unreachable")}

	res, err := Bootstrap(context.Background(), newMemStore(), backend, DefaultID)
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	assert.Error(t, res.CatalogErr)
	assert.True(t, res.Catalog.IsEmpty())
}

func TestBootstrap_StoreFailureIsFatal(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk gone")

	_, err := Bootstrap(context.Background(), store, &fakeBackend{}, DefaultID)
	assert.Error(t, err)
}
