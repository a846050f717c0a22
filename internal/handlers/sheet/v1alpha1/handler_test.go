package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet"
	sheetmock "github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet/mock"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSheet *sheetmock.MockService
	handler   *v1alpha1.Handler
	ctx       context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSheet = sheetmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: s.mockSheet,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestResolveAttributeCheck() {
	result := &check.Result{
		Kind:               check.KindAttributeCheck,
		Category:           godbound.AttributeStrength,
		Natural:            7,
		DifficultyModifier: 0,
		Total:              7,
		Target:             7,
		Succeeded:          true,
		DifficultyLabel:    check.LabelNormal,
	}
	message := &chatlog.Message{ID: "msg-1", SubjectID: "subject-1"}

	s.mockSheet.EXPECT().
		RollAttributeCheck(s.ctx, &sheet.RollAttributeCheckInput{
			UserID:     "user-1",
			SubjectID:  "subject-1",
			Attribute:  godbound.AttributeStrength,
			Difficulty: -2,
			Auxiliary:  1,
		}).
		Return(&sheet.RollCheckOutput{Result: result, Message: message}, nil)

	resp, err := s.handler.ResolveAttributeCheck(s.ctx, &v1alpha1.ResolveAttributeCheckRequest{
		UserID:             "user-1",
		SubjectID:          "subject-1",
		Attribute:          godbound.AttributeStrength,
		DifficultyModifier: -2,
		AuxiliaryModifier:  1,
	})
	s.Require().NoError(err)
	s.Same(result, resp.Result)
	s.Same(message, resp.Message)
}

func (s *HandlerTestSuite) TestResolveSavingThrow_UnknownCategory() {
	s.mockSheet.EXPECT().
		RollSavingThrow(s.ctx, gomock.Any()).
		Return(nil, errors.UnknownCategory("unknown save: luck"))

	_, err := s.handler.ResolveSavingThrow(s.ctx, &v1alpha1.ResolveSavingThrowRequest{
		UserID:    "user-1",
		SubjectID: "subject-1",
		Save:      "luck",
	})
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("unknown save: luck", st.Message())
}

func (s *HandlerTestSuite) TestDispatch_MapsRequest() {
	s.mockSheet.EXPECT().
		Dispatch(s.ctx, &sheet.Request{
			Intent:    sheet.IntentSpendEffort,
			UserID:    "user-1",
			SubjectID: "subject-1",
			Params:    map[string]string{"category": "scene", "change": "1"},
		}).
		Return(&sheet.Response{
			Intent: sheet.IntentSpendEffort,
			Effort: &godbound.Effort{Total: 2, Scene: 1},
		}, nil)

	resp, err := s.handler.Dispatch(s.ctx, &v1alpha1.DispatchRequest{
		Intent:    string(sheet.IntentSpendEffort),
		UserID:    "user-1",
		SubjectID: "subject-1",
		Params:    map[string]string{"category": "scene", "change": "1"},
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Result.Effort)
	s.Equal(1, resp.Result.Effort.Scene)
}

func (s *HandlerTestSuite) TestDispatch_InvalidModifier() {
	s.mockSheet.EXPECT().
		Dispatch(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidModifier("amount must be a whole number"))

	_, err := s.handler.Dispatch(s.ctx, &v1alpha1.DispatchRequest{
		Intent:    string(sheet.IntentApplyDamage),
		UserID:    "user-1",
		SubjectID: "subject-1",
		Params:    map[string]string{"amount": "1.5"},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestNilRequests() {
	_, err := s.handler.Dispatch(s.ctx, nil)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GetSubject(s.ctx, nil)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.ListMessages(s.ctx, &v1alpha1.ListMessagesRequest{SubjectID: "subject-1", Limit: -1})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestCreateSubject() {
	subject := &godbound.Subject{ID: "subject-1", OwnerID: "user-1", Name: "Ashen Duke"}

	s.mockSheet.EXPECT().
		CreateSubject(s.ctx, &sheet.CreateSubjectInput{
			UserID:     "user-1",
			Name:       "Ashen Duke",
			Type:       godbound.SubjectTypeCharacter,
			Attributes: map[string]int{godbound.AttributeStrength: 14},
			Effort:     2,
		}).
		Return(&sheet.CreateSubjectOutput{Subject: subject}, nil)

	resp, err := s.handler.CreateSubject(s.ctx, &v1alpha1.CreateSubjectRequest{
		UserID:     "user-1",
		Name:       "Ashen Duke",
		Type:       string(godbound.SubjectTypeCharacter),
		Attributes: map[string]int{godbound.AttributeStrength: 14},
		Effort:     2,
	})
	s.Require().NoError(err)
	s.Equal("subject-1", resp.Subject.ID)
}

func (s *HandlerTestSuite) TestClearMessages() {
	s.mockSheet.EXPECT().
		ClearMessages(s.ctx, &sheet.ClearMessagesInput{UserID: "user-1", SubjectID: "subject-1"}).
		Return(&sheet.ClearMessagesOutput{Deleted: 3}, nil)

	resp, err := s.handler.ClearMessages(s.ctx, &v1alpha1.ClearMessagesRequest{
		UserID:    "user-1",
		SubjectID: "subject-1",
	})
	s.Require().NoError(err)
	s.Equal(3, resp.Deleted)
}

// Round trip through a real server so the json codec and the hand-written
// descriptor are exercised together.
func (s *HandlerTestSuite) TestRoundTrip_OverBufconn() {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterSheetServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(lis)
	}()
	s.T().Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	client := v1alpha1.NewSheetServiceClient(conn)

	s.mockSheet.EXPECT().
		RollSavingThrow(gomock.Any(), &sheet.RollSavingThrowInput{
			UserID:     "user-1",
			SubjectID:  "subject-1",
			Save:       godbound.SaveHardiness,
			Difficulty: -4,
		}).
		Return(&sheet.RollCheckOutput{
			Result: &check.Result{
				Kind:               check.KindSavingThrow,
				Category:           godbound.SaveHardiness,
				Natural:            10,
				DifficultyModifier: -4,
				Total:              6,
				Target:             15,
				DifficultyLabel:    check.LabelHard,
			},
			Message: &chatlog.Message{ID: "msg-1"},
		}, nil)

	resp, err := client.ResolveSavingThrow(context.Background(), &v1alpha1.ResolveSavingThrowRequest{
		UserID:             "user-1",
		SubjectID:          "subject-1",
		Save:               godbound.SaveHardiness,
		DifficultyModifier: -4,
	})
	s.Require().NoError(err)
	s.Equal(6, resp.Result.Total)
	s.False(resp.Result.Succeeded)
	s.Equal(check.LabelHard, resp.Result.DifficultyLabel)
	s.Equal("msg-1", resp.Message.ID)

	s.mockSheet.EXPECT().
		GetSubject(gomock.Any(), &sheet.GetSubjectInput{SubjectID: "missing"}).
		Return(nil, errors.NotFound("subject not found"))

	_, err = client.GetSubject(context.Background(), &v1alpha1.GetSubjectRequest{SubjectID: "missing"})
	s.Equal(codes.NotFound, status.Code(err))
}
