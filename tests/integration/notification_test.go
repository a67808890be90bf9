package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/devshare/devshare-go/db"
	"github.com/devshare/devshare-go/internal/domain/comment"
	"github.com/devshare/devshare-go/internal/domain/notification"
	"github.com/devshare/devshare-go/internal/domain/project"
	"github.com/devshare/devshare-go/internal/domain/user"
	"github.com/stretchr/testify/require"
)

type commentsEnvelope struct {
	Comments []comment.DTO `json:"comments"`
}

type repliesEnvelope struct {
	Replies []comment.DTO `json:"replies"`
}

func toggleLike(t *testing.T, token, slug string) notification.LikeResultDTO {
	resp := doRequest(t, "POST", "/notification/like", token, map[string]interface{}{
		"_id": slug,
	}, http.StatusOK)

	var out notification.LikeResultDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func likeStatus(t *testing.T, token, slug string) bool {
	resp := doRequest(t, "POST", "/notification/like-status", token, map[string]string{
		"_id": slug,
	}, http.StatusOK)

	var out notification.LikeStatusDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out.IsLiked
}

func TestNotificationFlow_LikeToggle(t *testing.T) {
	aliceToken := loginUser(t, "alice", "123456")
	bobToken := loginUser(t, "bob", "123456")

	slug := publishProject(t, aliceToken, "Like target", []string{"likes"})

	require.False(t, likeStatus(t, bobToken, slug))

	// First toggle likes the project.
	result := toggleLike(t, bobToken, slug)
	require.True(t, result.LikedByUser)
	require.True(t, likeStatus(t, bobToken, slug))

	resp := getProject(t, slug, http.StatusOK)
	var fetched detailEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	require.Equal(t, int64(1), fetched.Project.Activity.TotalLikes)

	// The like state is per-user.
	require.False(t, likeStatus(t, aliceToken, slug))

	// Second toggle removes the like, regardless of any client hint.
	result = toggleLike(t, bobToken, slug)
	require.False(t, result.LikedByUser)
	require.False(t, likeStatus(t, bobToken, slug))

	resp = getProject(t, slug, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	require.Equal(t, int64(0), fetched.Project.Activity.TotalLikes)

	// Unknown slugs 404.
	doRequest(t, "POST", "/notification/like", bobToken, map[string]interface{}{
		"_id": "no-such-project-000000000000",
	}, http.StatusNotFound)

	// Anonymous likes are rejected.
	doRequest(t, "POST", "/notification/like", "", map[string]interface{}{
		"_id": slug,
	}, http.StatusUnauthorized)
}

func TestNotificationFlow_LikeLedgerUniqueness(t *testing.T) {
	aliceToken := loginUser(t, "alice", "123456")
	bobToken := loginUser(t, "bob", "123456")

	slug := publishProject(t, aliceToken, "Ledger target", []string{"ledger"})
	require.True(t, toggleLike(t, bobToken, slug).LikedByUser)

	var p project.Project
	require.NoError(t, db.DB.Where("project_id = ?", slug).First(&p).Error)
	var bob user.User
	require.NoError(t, db.DB.Where("username = ?", "bob").First(&bob).Error)

	// The store itself rejects a second like row for the same pair.
	dup := notification.Notification{
		Type:       notification.TypeLike,
		UserID:     bob.UID,
		ProjectPID: p.PID,
		NotifiedID: p.AuthorID,
	}
	require.Error(t, db.DB.Create(&dup).Error, "duplicate like row must violate the partial unique index")

	// Repeated comment notifications for the same pair stay legal.
	first := notification.Notification{
		Type:       notification.TypeComment,
		UserID:     bob.UID,
		ProjectPID: p.PID,
		NotifiedID: p.AuthorID,
	}
	second := notification.Notification{
		Type:       notification.TypeComment,
		UserID:     bob.UID,
		ProjectPID: p.PID,
		NotifiedID: p.AuthorID,
	}
	require.NoError(t, db.DB.Create(&first).Error)
	require.NoError(t, db.DB.Create(&second).Error)

	// The counter still matches the ledger after the rejected insert.
	resp := getProject(t, slug, http.StatusOK)
	var fetched detailEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	require.Equal(t, int64(1), fetched.Project.Activity.TotalLikes)

	// And the toggle still flips cleanly.
	require.False(t, toggleLike(t, bobToken, slug).LikedByUser)
}

func TestNotificationFlow_CommentsAndReplies(t *testing.T) {
	aliceToken := loginUser(t, "alice", "123456")
	bobToken := loginUser(t, "bob", "123456")

	slug := publishProject(t, aliceToken, "Comment target", []string{"comments"})

	// Bob comments on Alice's project.
	resp := doRequest(t, "POST", "/notification/comment", bobToken, map[string]interface{}{
		"_id":     slug,
		"comment": "nice work",
	}, http.StatusOK)

	var stored comment.DTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stored))
	require.NotZero(t, stored.CID)
	require.Equal(t, "nice work", stored.Body)
	require.Equal(t, "bob", stored.CommentedBy.Username)

	// Alice replies to Bob.
	resp = doRequest(t, "POST", "/notification/comment", aliceToken, map[string]interface{}{
		"_id":         slug,
		"comment":     "thanks!",
		"replying_to": stored.CID,
	}, http.StatusOK)

	var reply comment.DTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reply))
	require.NotNil(t, reply.ParentID)
	require.Equal(t, stored.CID, *reply.ParentID)

	// The top-level listing holds only the root comment.
	resp = doRequest(t, "POST", "/notification/get-comments", "", map[string]interface{}{
		"_id":  slug,
		"skip": 0,
	}, http.StatusOK)
	var list commentsEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Comments, 1)
	require.Equal(t, stored.CID, list.Comments[0].CID)

	// Replies hang off their parent.
	resp = doRequest(t, "POST", "/notification/get-replies", "", map[string]interface{}{
		"_id":  stored.CID,
		"skip": 0,
	}, http.StatusOK)
	var replies repliesEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &replies))
	require.Len(t, replies.Replies, 1)
	require.Equal(t, "thanks!", replies.Replies[0].Body)
	require.Equal(t, "alice", replies.Replies[0].CommentedBy.Username)

	// Replying to a comment that is not on this project 404s.
	doRequest(t, "POST", "/notification/comment", bobToken, map[string]interface{}{
		"_id":         slug,
		"comment":     "dangling",
		"replying_to": 999999,
	}, http.StatusNotFound)

	// Comments on unknown projects 404 as well.
	doRequest(t, "POST", "/notification/comment", bobToken, map[string]interface{}{
		"_id":     "no-such-project-000000000000",
		"comment": "hello",
	}, http.StatusNotFound)
}
