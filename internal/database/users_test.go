package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureUser_CreatesAndReturns(t *testing.T) {
	name := "First User"
	user, err := testStore.EnsureUser(context.Background(), EnsureUserParams{
		ID:          "user_ensure_1",
		Email:       "first@example.com",
		DisplayName: &name,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "user_ensure_1", user.ID)
	require.Equal(t, "first@example.com", user.Email)
	require.Equal(t, int64(0), user.Points)
}

func TestEnsureUser_Idempotent(t *testing.T) {
	params := EnsureUserParams{ID: "user_ensure_2", Email: "second@example.com"}

	first, err := testStore.EnsureUser(context.Background(), params)
	require.NoError(t, err)

	// The second call must not error or create a duplicate, and must not
	// clobber the existing row.
	_, err = testStore.AddPoints(context.Background(), first.ID, 15)
	require.NoError(t, err)

	second, err := testStore.EnsureUser(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, int64(15), second.Points)

	var count int
	err = testStore.GetPool().QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE id = $1", params.ID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestEnsureUser_ConcurrentBootstrap(t *testing.T) {
	params := EnsureUserParams{ID: "user_ensure_race", Email: "race@example.com"}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := testStore.EnsureUser(context.Background(), params)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var count int
	err := testStore.GetPool().QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE id = $1", params.ID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "exactly one row regardless of request interleaving")
}

func TestGetUserByID_NotFound(t *testing.T) {
	user, err := testStore.GetUserByID(context.Background(), "user_who_never_was")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestAddPoints_Concurrent(t *testing.T) {
	_, err := testStore.EnsureUser(context.Background(), EnsureUserParams{ID: "user_points_race", Email: "p@example.com"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := testStore.AddPoints(context.Background(), "user_points_race", 25)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	user, err := testStore.GetUserByID(context.Background(), "user_points_race")
	require.NoError(t, err)
	require.Equal(t, int64(250), user.Points, "no increment may be lost")
}

func TestAddPoints_UnknownUser(t *testing.T) {
	_, err := testStore.AddPoints(context.Background(), "user_who_never_was", 10)
	require.ErrorIs(t, err, ErrUserNotFound)
}
