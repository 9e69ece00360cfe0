package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/internal/repository"
	"github.com/limbo/drinklog/internal/repository/mocks"
	"github.com/limbo/drinklog/internal/service"
	"github.com/limbo/drinklog/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Request      service.RegisterRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:    "registered",
			Request: service.RegisterRequest{Name: "drinker_1", Password: "password123"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindByName(gomock.Any(), "drinker_1").Return(&entity.User{ID: uid, Name: "drinker_1"}, nil)
			},
		},
		{
			Desc:         "name starting with digit",
			Request:      service.RegisterRequest{Name: "1drinker", Password: "password123"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "short password",
			Request:      service.RegisterRequest{Name: "drinker", Password: "short"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "existing user",
			Request: service.RegisterRequest{Name: "drinker_1", Password: "password123"},
			Error:   errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Register(ctx, &tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, user.ID)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	hash, err := service.Hash("password123")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "drinker", PasswordHash: hash}
	ctx := context.Background()

	repo.EXPECT().FindByName(gomock.Any(), "drinker").Return(user, nil)
	res, err := us.Login(ctx, "drinker", "password123")
	require.NoError(t, err)
	assert.Equal(t, user, res)

	repo.EXPECT().FindByName(gomock.Any(), "drinker").Return(user, nil)
	_, err = us.Login(ctx, "drinker", "wrong_password")
	assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)

	repo.EXPECT().FindByName(gomock.Any(), "nobody").Return(nil, errorvalues.ErrUserNotFound)
	_, err = us.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

	repo.EXPECT().FindByName(gomock.Any(), "drinker").Return(nil, errors.New("db error"))
	_, err = us.Login(ctx, "drinker", "password123")
	assert.EqualError(t, err, "repository searching error: db error")
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}
	dbCfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(repository.NewPool(dbCfg))
	us := service.NewUserService(repo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("drinklog"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
