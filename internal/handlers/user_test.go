package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-tracker/internal/dto"
	"github.com/yukikurage/task-tracker/internal/testutil"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	handlerSuite
}

func userURL(id uint64, action string) string {
	url := "/users/" + strconv.FormatUint(id, 10) + "/"
	if action != "" {
		url += action + "/"
	}
	return url
}

// TestListUsers tests listing users without credentials
func (suite *UserHandlerTestSuite) TestListUsers() {
	testutil.CreateUser(suite.T(), suite.db, "user1")
	testutil.CreateUser(suite.T(), suite.db, "user2")

	w := suite.do(http.MethodGet, "/users/", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "password")

	var page dto.Page[dto.UserDTO]
	suite.decode(w, &page)
	assert.Equal(suite.T(), int64(2), page.Count)
	suite.Require().Len(page.Results, 2)
	assert.Equal(suite.T(), "user1", page.Results[0].Username)
	assert.Equal(suite.T(), "Test user1", page.Results[0].Name)
	assert.Equal(suite.T(), "1234567890", page.Results[0].Mobile)
}

// TestGetUser tests retrieving a single user
func (suite *UserHandlerTestSuite) TestGetUser() {
	user := testutil.CreateUser(suite.T(), suite.db, "user1")

	w := suite.do(http.MethodGet, userURL(user.ID, ""), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.UserDTO
	suite.decode(w, &response)
	assert.Equal(suite.T(), user.ID, response.ID)
	assert.Equal(suite.T(), "user1@example.com", response.Email)

	assert.Equal(suite.T(), http.StatusNotFound, suite.do(http.MethodGet, userURL(999, ""), nil).Code)
}

// TestListUserTasks tests the per-user task listing
func (suite *UserHandlerTestSuite) TestListUserTasks() {
	user1 := testutil.CreateUser(suite.T(), suite.db, "user1")
	user2 := testutil.CreateUser(suite.T(), suite.db, "user2")
	task := testutil.CreateTask(suite.T(), suite.db, "Test Task")
	testutil.CreateTask(suite.T(), suite.db, "Other Task")

	w := suite.do(http.MethodPost, taskURL(task.ID, "assign_users"), map[string]interface{}{
		"user_ids": []uint64{user1.ID, user2.ID},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodGet, userURL(user1.ID, "tasks"), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page dto.Page[dto.TaskDetailDTO]
	suite.decode(w, &page)
	assert.Equal(suite.T(), int64(1), page.Count)
	suite.Require().Len(page.Results, 1)
	assert.Equal(suite.T(), task.ID, page.Results[0].ID)
	assert.Equal(suite.T(), []uint64{user1.ID, user2.ID}, detailUserIDs(page.Results[0]))

	w = suite.do(http.MethodPost, taskURL(task.ID, "unassign_users"), map[string]interface{}{
		"user_ids": []uint64{user1.ID},
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, userURL(user1.ID, "tasks"), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	page = dto.Page[dto.TaskDetailDTO]{}
	suite.decode(w, &page)
	assert.Zero(suite.T(), page.Count)
	assert.Empty(suite.T(), page.Results)
}

// TestListUserTasks_UnknownUser tests the 404 for an unknown user
func (suite *UserHandlerTestSuite) TestListUserTasks_UnknownUser() {
	w := suite.do(http.MethodGet, userURL(999, "tasks"), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
