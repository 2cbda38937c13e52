package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/ctxutil"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func ctxAs(userID, userName string) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID:   userID,
		UserName: userName,
	})
}

// fakeProjectStore keeps documents as marshaled JSON with a version counter so
// the compare-and-set contract of the real store holds in tests too.
type fakeProjectStore struct {
	mu       sync.Mutex
	docs     map[string][]byte
	versions map[string]int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		docs:     map[string][]byte{},
		versions: map[string]int{},
	}
}

func (f *fakeProjectStore) decode(op, id string) (*project.Project, error) {
	raw, ok := f.docs[id]
	if !ok {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "project not found", nil)
	}
	var p project.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, aggregates.NewError(aggregates.CodeInternal, op, "corrupt document", err)
	}
	p.Version = f.versions[id]
	return &p, nil
}

func (f *fakeProjectStore) GetByID(ctx context.Context, id string) (*project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.decode("fakeProjectStore.GetByID", id)
}

func (f *fakeProjectStore) Create(ctx context.Context, p *project.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "fakeProjectStore.Create"
	if _, exists := f.docs[p.ID]; exists {
		return aggregates.NewError(aggregates.CodeConflict, op, "project already exists", nil)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return aggregates.NewError(aggregates.CodeInternal, op, "marshal", err)
	}
	f.docs[p.ID] = raw
	f.versions[p.ID] = 1
	p.Version = 1
	return nil
}

func (f *fakeProjectStore) Save(ctx context.Context, p *project.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "fakeProjectStore.Save"
	if _, exists := f.docs[p.ID]; !exists {
		return aggregates.NewError(aggregates.CodeNotFound, op, "project not found", nil)
	}
	if f.versions[p.ID] != p.Version {
		return aggregates.NewError(aggregates.CodeConflict, op, "project changed concurrently, reload and retry", nil)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return aggregates.NewError(aggregates.CodeInternal, op, "marshal", err)
	}
	f.docs[p.ID] = raw
	f.versions[p.ID]++
	p.Version++
	return nil
}

func (f *fakeProjectStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.docs[id]; !exists {
		return aggregates.NewError(aggregates.CodeNotFound, "fakeProjectStore.Delete", "project not found", nil)
	}
	delete(f.docs, id)
	delete(f.versions, id)
	return nil
}

func (f *fakeProjectStore) list(match func(*project.Project) bool) ([]*project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*project.Project{}
	for id := range f.docs {
		p, err := f.decode("fakeProjectStore.list", id)
		if err != nil {
			return nil, err
		}
		if match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) ListByMember(ctx context.Context, userID string) ([]*project.Project, error) {
	return f.list(func(p *project.Project) bool {
		return p.MemberByID(userID) != nil
	})
}

func (f *fakeProjectStore) ListByInviteeName(ctx context.Context, name string) ([]*project.Project, error) {
	return f.list(func(p *project.Project) bool {
		for _, inv := range p.Invitations {
			if inv.Name == name {
				return true
			}
		}
		return false
	})
}

func (f *fakeProjectStore) ListByInviter(ctx context.Context, userID string) ([]*project.Project, error) {
	return f.list(func(p *project.Project) bool {
		for _, inv := range p.Invitations {
			if inv.InvitedBy == userID {
				return true
			}
		}
		return false
	})
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*repos.User // keyed by public id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*repos.User{}}
}

func (f *fakeUserRepo) add(publicID, name string) *repos.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &repos.User{PublicID: publicID, Name: name, Provider: "local"}
	f.users[publicID] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *repos.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "fakeUserRepo.Create"
	for _, existing := range f.users {
		if existing.Name == u.Name {
			return aggregates.NewError(aggregates.CodeConflict, op, "name taken", nil)
		}
	}
	f.users[u.PublicID] = u
	return nil
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*repos.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, aggregates.NewError(aggregates.CodeNotFound, "fakeUserRepo.GetByName", "user not found", nil)
}

func (f *fakeUserRepo) GetByPublicID(ctx context.Context, publicID string) (*repos.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[publicID]; ok {
		return u, nil
	}
	return nil, aggregates.NewError(aggregates.CodeNotFound, "fakeUserRepo.GetByPublicID", "user not found", nil)
}

func (f *fakeUserRepo) Delete(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[publicID]; !ok {
		return aggregates.NewError(aggregates.CodeNotFound, "fakeUserRepo.Delete", "user not found", nil)
	}
	delete(f.users, publicID)
	return nil
}

// fakeTokenStore is an in-memory refresh token table with expiry.
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
	expiry map[string]time.Time
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		tokens: map[string]string{},
		expiry: map[string]time.Time{},
	}
}

func (f *fakeTokenStore) Put(ctx context.Context, refreshToken, userID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[refreshToken] = userID
	f.expiry[refreshToken] = time.Now().Add(ttl)
	return nil
}

func (f *fakeTokenStore) Resolve(ctx context.Context, refreshToken string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.tokens[refreshToken]
	if !ok || time.Now().After(f.expiry[refreshToken]) {
		return "", aggregates.NewError(aggregates.CodeForbidden, "fakeTokenStore.Resolve", "refresh token unknown or expired", nil)
	}
	return userID, nil
}

func (f *fakeTokenStore) Revoke(ctx context.Context, refreshToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, refreshToken)
	delete(f.expiry, refreshToken)
	return nil
}

func (f *fakeTokenStore) Close() error { return nil }
