package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/devshare/devshare-go/internal/domain/user"
	"github.com/devshare/devshare-go/pkg/response"
	"github.com/stretchr/testify/require"
)

type usersEnvelope struct {
	Users []user.PreviewDTO `json:"users"`
}

func TestUserFlow_RegisterAndLogin(t *testing.T) {
	resp := doRequest(t, "POST", "/register", "", map[string]string{
		"username": "dave",
		"password": "123456",
		"fullname": "Dave Moe",
	}, http.StatusCreated)

	var msg response.MessageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &msg))
	require.Equal(t, "User registered successfully", msg.Message)

	// Duplicate username conflicts.
	resp = doRequest(t, "POST", "/register", "", map[string]string{
		"username": "dave",
		"password": "another",
	}, http.StatusConflict)
	var errResp response.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, response.CodeConflict, errResp.Code)

	// Login returns the session payload.
	resp = doRequest(t, "POST", "/login", "", map[string]string{
		"username": "dave",
		"password": "123456",
	}, http.StatusOK)
	var session response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	require.Equal(t, "dave", session.Username)
	require.Equal(t, "Dave Moe", session.FullName)

	// Wrong password is rejected without detail.
	doRequest(t, "POST", "/login", "", map[string]string{
		"username": "dave",
		"password": "wrong",
	}, http.StatusUnauthorized)
}

func TestUserFlow_SearchAndProfile(t *testing.T) {
	resp := doRequest(t, "POST", "/user/search", "", map[string]string{"query": "ali"}, http.StatusOK)
	var found usersEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &found))

	hit := false
	for _, u := range found.Users {
		require.NotEmpty(t, u.Username)
		if u.Username == "alice" {
			hit = true
		}
	}
	require.True(t, hit, "expected alice in search results")

	resp = doRequest(t, "POST", "/user/profile", "", map[string]string{"username": "alice"}, http.StatusOK)
	var profile user.ProfileDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &profile))
	require.Equal(t, "alice", profile.Username)
	require.Equal(t, "Alice Doe", profile.FullName)
	require.False(t, profile.JoinedAt.IsZero())

	// A profile request for an unknown user is a distinct 404.
	resp = doRequest(t, "POST", "/user/profile", "", map[string]string{"username": "ghost"}, http.StatusNotFound)
	var errResp response.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, response.CodeNotFound, errResp.Code)
}

func TestUserFlow_UpdateProfileImg(t *testing.T) {
	token := loginUser(t, "bob", "123456")

	resp := doRequest(t, "POST", "/user/update-profile-img", token, map[string]string{
		"url": "https://img.example/bob.png",
	}, http.StatusOK)

	var out struct {
		ProfileImg string `json:"profile_img"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, "https://img.example/bob.png", out.ProfileImg)

	// The stored profile reflects the change.
	resp = doRequest(t, "POST", "/user/profile", "", map[string]string{"username": "bob"}, http.StatusOK)
	var profile user.ProfileDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &profile))
	require.Equal(t, "https://img.example/bob.png", profile.ProfileImg)

	// Anonymous updates are rejected.
	doRequest(t, "POST", "/user/update-profile-img", "", map[string]string{
		"url": "https://img.example/x.png",
	}, http.StatusUnauthorized)
}
