package beeminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL,
		Username:  "alice",
		AuthToken: "token123",
	})
}

func TestGetGoal_MapsTelemetry(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/goals/reading.json", r.URL.Path)
		assert.Equal(t, "token123", r.URL.Query().Get("auth_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"slug": "reading",
			"title": "Read more books",
			"curval": 10,
			"goalval": 50,
			"losedate": 1750000000,
			"safebuf": 3,
			"pledge": 5,
			"rate": 2,
			"runits": "w",
			"yaw": 1,
			"baremin": "+1",
			"limsum": "+1 in 3 days",
			"gunits": "pages"
		}`))
	})

	goal, err := client.GetGoal(context.Background(), "reading")
	require.NoError(t, err)
	require.NotNil(t, goal.CurrentValue)
	require.NotNil(t, goal.TargetValue)
	assert.Equal(t, 10.0, *goal.CurrentValue)
	assert.Equal(t, 50.0, *goal.TargetValue)
	assert.Equal(t, int64(1750000000), goal.DeadlineEpoch)
	assert.Equal(t, 3, goal.SafeDays)
	assert.Equal(t, 2.0, goal.Rate)
	assert.Equal(t, 1, goal.Direction)
	assert.Equal(t, "+1 in 3 days", goal.Summary)
	assert.Equal(t, "pages", goal.Units)
}

func TestGetGoal_NullFieldsStayNil(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"slug": "fresh", "curval": null, "goalval": null, "rate": null}`))
	})

	goal, err := client.GetGoal(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Nil(t, goal.CurrentValue)
	assert.Nil(t, goal.TargetValue)
	assert.Equal(t, 0.0, goal.Rate)
}

func TestGetGoal_NotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetGoal(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestCheckAuth_Unauthorized(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.ErrorIs(t, client.CheckAuth(context.Background()), ErrUnauthorized)
}

func TestGetGoals_List(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/goals.json", r.URL.Path)
		_, _ = w.Write([]byte(`[{"slug":"a","curval":1},{"slug":"b"}]`))
	})

	goals, err := client.GetGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "a", goals[0].Slug)
	assert.Nil(t, goals[1].CurrentValue)
}

func TestCreateDatapoint_PostsForm(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/alice/goals/gym/datapoints.json", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "token123", r.PostForm.Get("auth_token"))
		assert.Equal(t, "1.5", r.PostForm.Get("value"))
		assert.Equal(t, "morning run", r.PostForm.Get("comment"))
		assert.Equal(t, "req-42", r.PostForm.Get("requestid"))
		_, _ = w.Write([]byte(`{"id":"dp1","value":1.5,"comment":"morning run"}`))
	})

	dp, err := client.CreateDatapoint(context.Background(), "gym", NewDatapoint{
		Value:     1.5,
		Comment:   "morning run",
		RequestID: "req-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "dp1", dp.ID)
}
