package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/streamcast/user-service/internal/common"
	"github.com/streamcast/user-service/internal/dbx"
	"github.com/streamcast/user-service/internal/server/config"
	"github.com/streamcast/user-service/internal/server/models"
	"github.com/streamcast/user-service/internal/server/repositories/refreshtokens"
	"github.com/streamcast/user-service/internal/server/repositories/repomanager"
	usersrepo "github.com/streamcast/user-service/internal/server/repositories/users"
	"github.com/streamcast/user-service/internal/server/security"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		BcryptCost:                   bcrypt.MinCost,
		PasswordMinLength:            8,
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := security.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return h
}

func activeUser(t *testing.T, id int64, password string) *models.User {
	t.Helper()
	return &models.User{
		ID:           id,
		Email:        "a@x.com",
		UserName:     "alice",
		PasswordHash: mustHash(t, password),
		StreamKey:    "sk-1",
		IsActive:     true,
	}
}

// --- fakes ---

type fakeUsersRepo struct {
	byEmail    map[string]*models.User
	byID       map[int64]*models.User
	byUsername map[string]*models.User
	byKey      map[string]*models.User

	created      []*models.User
	createErr    error
	passwords    map[int64]string
	streamKeys   map[int64]string
	deleted      map[int64]bool
	activeStates map[int64]bool
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byEmail:      map[string]*models.User{},
		byID:         map[int64]*models.User{},
		byUsername:   map[string]*models.User{},
		byKey:        map[string]*models.User{},
		passwords:    map[int64]string{},
		streamKeys:   map[int64]string{},
		deleted:      map[int64]bool{},
		activeStates: map[int64]bool{},
	}
}

func (f *fakeUsersRepo) add(u *models.User) {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	f.byUsername[u.UserName] = u
	f.byKey[u.StreamKey] = u
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = int64(len(f.created) + 1)
	f.created = append(f.created, u)
	f.add(u)
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByStreamKey(ctx context.Context, key string) (*models.User, error) {
	if u, ok := f.byKey[key]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.created {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, id int64, upd *usersrepo.ProfileUpdate) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	f.passwords[id] = hash
	return nil
}

func (f *fakeUsersRepo) UpdateStreamKey(ctx context.Context, id int64, key string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	f.streamKeys[id] = key
	return nil
}

func (f *fakeUsersRepo) SetActive(ctx context.Context, id int64, active bool) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	f.activeStates[id] = active
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	f.deleted[id] = true
	return true, nil
}

type fakeRefreshRepo struct {
	rows map[string]*models.RefreshToken // token -> row

	deleteAllCalls []int64
	createCalls    int
	rotateCalls    int
	lastRotatedID  int64
	lastToken      string
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{rows: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	f.createCalls++
	f.lastToken = token
	f.rows[token] = &models.RefreshToken{ID: int64(f.createCalls), UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeRefreshRepo) DeleteAllForUser(ctx context.Context, userID int64) error {
	f.deleteAllCalls = append(f.deleteAllCalls, userID)
	for k, v := range f.rows {
		if v.UserID == userID {
			delete(f.rows, k)
		}
	}
	return nil
}

func (f *fakeRefreshRepo) FindByTokenAndUser(ctx context.Context, token string, userID int64) (*models.RefreshToken, error) {
	row, ok := f.rows[token]
	if !ok || row.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return row, nil
}

func (f *fakeRefreshRepo) Rotate(ctx context.Context, id int64, newToken string, newExpiresAt time.Time) error {
	f.rotateCalls++
	f.lastRotatedID = id
	f.lastToken = newToken
	for k, v := range f.rows {
		if v.ID == id {
			delete(f.rows, k)
			v.Token = newToken
			v.ExpiresAt = newExpiresAt
			f.rows[newToken] = v
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeRefreshRepo) DeleteByToken(ctx context.Context, token string) (bool, error) {
	if _, ok := f.rows[token]; !ok {
		return false, nil
	}
	delete(f.rows, token)
	return true, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }

func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository { return m.r }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

func newAuthService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *AuthService {
	t.Helper()
	return NewAuthService(db, rm, testConfig())
}

// --- tests ---

func TestLogin_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	pair, err := s.Login(context.Background(), "a@x.com", "longpass1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}
	if pair.ExpiresIn != 3600 {
		t.Fatalf("expected expires_in=3600, got %d", pair.ExpiresIn)
	}
	if len(rm.r.deleteAllCalls) != 1 || rm.r.deleteAllCalls[0] != 1 {
		t.Fatalf("expected prior tokens evicted for user 1, got %v", rm.r.deleteAllCalls)
	}
	if rm.r.createCalls != 1 || rm.r.lastToken != pair.RefreshToken {
		t.Fatal("expected the new refresh token to be stored")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLogin_SecondLoginReplacesRow(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	if _, err := s.Login(context.Background(), "a@x.com", "longpass1"); err != nil {
		t.Fatalf("first login error: %v", err)
	}
	if _, err := s.Login(context.Background(), "a@x.com", "longpass1"); err != nil {
		t.Fatalf("second login error: %v", err)
	}

	if got := len(rm.r.rows); got != 1 {
		t.Fatalf("expected exactly one live refresh row, got %d", got)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	_, err := s.Login(context.Background(), "ghost@x.com", "longpass1")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	_, err := s.Login(context.Background(), "a@x.com", "wrongpass")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	user := activeUser(t, 1, "longpass1")
	user.IsActive = false
	users := newFakeUsersRepo()
	users.add(user)
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	_, err := s.Login(context.Background(), "a@x.com", "longpass1")
	if !errors.Is(err, common.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}

	// wrong password on an inactive account must not leak the inactive state
	_, err = s.Login(context.Background(), "a@x.com", "wrongpass")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func seedRefreshRow(t *testing.T, s *AuthService, r *fakeRefreshRepo, userID int64, ttl time.Duration) string {
	t.Helper()
	token, err := security.NewToken(userID, "", security.TokenTypeRefresh, ttl, s.jwtSecret)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if err := r.Create(context.Background(), userID, token, time.Now().Add(ttl)); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	return token
}

func TestRefresh_Success_RotatesInPlace(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	oldToken := seedRefreshRow(t, s, rm.r, 1, time.Hour)
	oldRowID := rm.r.rows[oldToken].ID

	pair, err := s.Refresh(context.Background(), oldToken)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if pair.RefreshToken == oldToken {
		t.Fatal("rotation must produce a different refresh token string")
	}
	if rm.r.rotateCalls != 1 || rm.r.lastRotatedID != oldRowID {
		t.Fatalf("expected in-place rotation of row %d", oldRowID)
	}

	// the consumed token is now permanently invalid
	if _, err := s.Refresh(context.Background(), oldToken); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on token reuse, got %v", err)
	}
}

func TestRefresh_ImmediatelyAfterLogin(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	loginPair, err := s.Login(context.Background(), "a@x.com", "longpass1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// both tokens are minted within the same second with the same TTL; the
	// jti claim is what keeps rotation from being a no-op
	pair, err := s.Refresh(context.Background(), loginPair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if pair.RefreshToken == loginPair.RefreshToken {
		t.Fatal("rotation must produce a different refresh token string")
	}

	if _, err := s.Refresh(context.Background(), loginPair.RefreshToken); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on token reuse, got %v", err)
	}
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	token, err := security.NewToken(1, "a@x.com", security.TokenTypeAccess, time.Hour, s.jwtSecret)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	if _, err := s.Refresh(context.Background(), token); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	if _, err := s.Refresh(context.Background(), "garbage"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_ExpiredRowDeletedLazily(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	// the signed token is still within its ttl, but the stored row expired
	token := seedRefreshRow(t, s, rm.r, 1, time.Hour)
	rm.r.rows[token].ExpiresAt = time.Now().Add(-time.Minute)

	if _, err := s.Refresh(context.Background(), token); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rm.r.rows) != 0 {
		t.Fatal("expected the expired row to be deleted")
	}

	// a second identical call fails the same way, with the row already gone
	if _, err := s.Refresh(context.Background(), token); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_InactiveUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	user := activeUser(t, 1, "longpass1")
	users := newFakeUsersRepo()
	users.add(user)
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	token := seedRefreshRow(t, s, rm.r, 1, time.Hour)
	user.IsActive = false

	if _, err := s.Refresh(context.Background(), token); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	token := seedRefreshRow(t, s, rm.r, 1, time.Hour)

	existed, err := s.Logout(context.Background(), token)
	if err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if !existed {
		t.Fatal("expected existed=true on first logout")
	}

	existed, err = s.Logout(context.Background(), token)
	if err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if existed {
		t.Fatal("expected existed=false on repeated logout")
	}
}

func TestParseAccessToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo()}
	s := newAuthService(t, db, rm)

	access, err := security.NewToken(7, "a@x.com", security.TokenTypeAccess, time.Hour, s.jwtSecret)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	id, err := s.ParseAccessToken(access)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected subject 7, got %d", id)
	}

	refresh, err := security.NewToken(7, "", security.TokenTypeRefresh, time.Hour, s.jwtSecret)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := s.ParseAccessToken(refresh); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("refresh token must not pass as access token, got %v", err)
	}
}
