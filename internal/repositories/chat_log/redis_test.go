package chatlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/pkg/clock"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
	"github.com/KirkDiggler/godbound-api/internal/testutils"
)

const testSubjectID = "subject_1"

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  chatlog.Repository
	ctx   context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.clock = clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	repo, err := chatlog.NewRedisRepository(&chatlog.Config{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) appendMessage(id string, total int) {
	_, err := s.repo.Append(s.ctx, chatlog.AppendInput{Message: &chatlog.Message{
		ID:        id,
		SubjectID: testSubjectID,
		UserID:    "user_1",
		Speaker:   "Ashen Judge",
		Kind:      chatlog.KindAttributeCheck,
		Content:   "<div>roll</div>",
		Formula:   "1d20+0+0",
		Dice:      []int{total},
		Total:     total,
	}})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := chatlog.NewRedisRepository(&chatlog.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = chatlog.NewRedisRepository(nil)
	s.Assert().Error(err)
}

func (s *RedisRepositoryTestSuite) TestAppendAndList() {
	s.appendMessage("msg_1", 7)
	s.appendMessage("msg_2", 12)

	out, err := s.repo.List(s.ctx, chatlog.ListInput{SubjectID: testSubjectID})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Assert().Equal("msg_1", out.Messages[0].ID)
	s.Assert().Equal("msg_2", out.Messages[1].ID)
	s.Assert().Equal([]int{12}, out.Messages[1].Dice)
	s.Assert().True(s.clock.Now().Equal(out.Messages[0].CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestAppendRefreshesTTL() {
	s.appendMessage("msg_1", 7)
	s.Assert().Equal(time.Hour, s.mr.TTL("chat_log:"+testSubjectID))

	s.mr.FastForward(30 * time.Minute)
	s.appendMessage("msg_2", 8)
	s.Assert().Equal(time.Hour, s.mr.TTL("chat_log:"+testSubjectID))

	s.mr.FastForward(2 * time.Hour)
	out, err := s.repo.List(s.ctx, chatlog.ListInput{SubjectID: testSubjectID})
	s.Require().NoError(err)
	s.Assert().Empty(out.Messages)
}

func (s *RedisRepositoryTestSuite) TestListLimit() {
	s.appendMessage("msg_1", 1)
	s.appendMessage("msg_2", 2)
	s.appendMessage("msg_3", 3)

	out, err := s.repo.List(s.ctx, chatlog.ListInput{SubjectID: testSubjectID, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 2)
	s.Assert().Equal("msg_2", out.Messages[0].ID)
	s.Assert().Equal("msg_3", out.Messages[1].ID)

	_, err = s.repo.List(s.ctx, chatlog.ListInput{SubjectID: testSubjectID, Limit: -1})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestAppendValidation() {
	_, err := s.repo.Append(s.ctx, chatlog.AppendInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, chatlog.AppendInput{Message: &chatlog.Message{ID: "msg_1"}})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, chatlog.AppendInput{Message: &chatlog.Message{SubjectID: testSubjectID}})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.appendMessage("msg_1", 1)
	s.appendMessage("msg_2", 2)

	out, err := s.repo.Delete(s.ctx, chatlog.DeleteInput{SubjectID: testSubjectID})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.MessagesDeleted)
	s.Assert().False(s.mr.Exists("chat_log:" + testSubjectID))

	out, err = s.repo.Delete(s.ctx, chatlog.DeleteInput{SubjectID: testSubjectID})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.MessagesDeleted)
}
