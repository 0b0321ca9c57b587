package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/testutil"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.UserService
	ctx     context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	suite.service = services.NewUserService(repository.NewUserRepository(suite.db))
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	user, err := suite.service.Register(suite.ctx, services.RegisterUserInput{
		Username: "  user1 ",
		Name:     "User One",
		Email:    "user1@example.com",
		Mobile:   "1234567890",
		Password: "password123",
	})
	suite.Require().NoError(err)

	suite.NotZero(user.ID)
	suite.Equal("user1", user.Username)
	suite.NotEqual("password123", user.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func (suite *UserServiceTestSuite) TestRegister_Rejections() {
	_, err := suite.service.Register(suite.ctx, services.RegisterUserInput{Username: " ", Password: "password123"})
	suite.ErrorIs(err, services.ErrUsernameRequired)

	_, err = suite.service.Register(suite.ctx, services.RegisterUserInput{Username: "user1", Password: "short"})
	suite.ErrorIs(err, services.ErrPasswordTooShort)

	_, err = suite.service.Register(suite.ctx, services.RegisterUserInput{
		Username: "user1",
		Mobile:   "1234567890123456",
		Password: "password123",
	})
	var verr *services.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Contains(verr.Fields, "mobile")
}

func (suite *UserServiceTestSuite) TestRegister_EmailValidation() {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"missing", "  ", services.MsgFieldRequired},
		{"malformed", "not-an-email", services.MsgInvalidEmail},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Register(suite.ctx, services.RegisterUserInput{
				Username: "user1",
				Email:    tt.email,
				Password: "password123",
			})

			var verr *services.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Equal([]string{tt.want}, verr.Fields["email"])
		})
	}

	var count int64
	suite.Require().NoError(suite.db.Model(&models.User{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UserServiceTestSuite) TestRegister_EmailTaken() {
	testutil.CreateUser(suite.T(), suite.db, "user1")

	_, err := suite.service.Register(suite.ctx, services.RegisterUserInput{
		Username: "user2",
		Email:    "user1@example.com",
		Password: "password123",
	})

	var verr *services.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal([]string{services.MsgEmailTaken}, verr.Fields["email"])
}

func (suite *UserServiceTestSuite) TestRegister_UsernameTaken() {
	testutil.CreateUser(suite.T(), suite.db, "user1")

	_, err := suite.service.Register(suite.ctx, services.RegisterUserInput{
		Username: "user1",
		Email:    "other@example.com",
		Password: "password123",
	})
	suite.ErrorIs(err, services.ErrUsernameTaken)
}

func (suite *UserServiceTestSuite) TestListAndGetUsers() {
	user1 := testutil.CreateUser(suite.T(), suite.db, "user1")
	testutil.CreateUser(suite.T(), suite.db, "user2")

	users, total, err := suite.service.ListUsers(suite.ctx, 1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(users, 2)
	suite.Equal("user1", users[0].Username)

	user, err := suite.service.GetUser(suite.ctx, user1.ID)
	suite.Require().NoError(err)
	suite.Equal("user1@example.com", user.Email)

	_, err = suite.service.GetUser(suite.ctx, 999)
	suite.ErrorIs(err, services.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
