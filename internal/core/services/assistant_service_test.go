package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/core/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
)

// MockModelClient is a mock type for the ModelClient interface
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Complete(ctx context.Context, messages []dto.ChatMessage) (*portssvc.ModelResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ModelResponse), args.Error(1)
}

// stubTool records its invocations and replies with a canned result.
type stubTool struct {
	name    string
	result  string
	err     error
	calls   int
	lastArg map[string]any
}

func (t *stubTool) Name() string { return t.name }

func (t *stubTool) Execute(_ context.Context, _ domain.TenantContext, args map[string]any) (string, error) {
	t.calls++
	t.lastArg = args
	if t.err != nil {
		return "", t.err
	}
	return t.result, nil
}

type AssistantServiceTestSuite struct {
	suite.Suite
	mockModel *MockModelClient
	tool      *stubTool
	service   portssvc.AssistantSvcFacade
	tc        domain.TenantContext
}

func (suite *AssistantServiceTestSuite) SetupTest() {
	suite.mockModel = new(MockModelClient)
	suite.tool = &stubTool{name: "get_folio", result: `{"folioID":"folio-1","balance":"0.00"}`}
	suite.service = services.NewAssistantService(
		suite.mockModel,
		[]portssvc.Tool{suite.tool},
		services.AssistantConfig{RetryBaseDelay: time.Millisecond},
	)
	suite.tc = domain.TenantContext{PropertyID: "prop-1", ActorID: "actor-1"}
}

func userMessage(content string) dto.ChatRequest {
	return dto.ChatRequest{Messages: []dto.ChatMessage{{Role: "user", Content: content}}}
}

func (suite *AssistantServiceTestSuite) TestChat_PlainAnswerWithoutTools() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{Content: "Folio F-1 is settled."}, nil).Once()

	resp, err := suite.service.Chat(ctx, suite.tc, userMessage("Is folio F-1 settled?"))

	suite.Require().NoError(err)
	suite.Equal("assistant", resp.Message.Role)
	suite.Equal("Folio F-1 is settled.", resp.Message.Content)
	suite.Equal(0, resp.ToolRounds)
	suite.Equal(0, suite.tool.calls)
	suite.mockModel.AssertExpectations(suite.T())
}

func (suite *AssistantServiceTestSuite) TestChat_ToolRoundThenAnswer() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{
			ToolCalls: []portssvc.ToolCall{{ID: "call-1", Name: "get_folio", Arguments: map[string]any{"folioID": "folio-1"}}},
		}, nil).Once()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{Content: "The balance is zero."}, nil).Once()

	resp, err := suite.service.Chat(ctx, suite.tc, userMessage("What does folio folio-1 owe?"))

	suite.Require().NoError(err)
	suite.Equal("The balance is zero.", resp.Message.Content)
	suite.Equal(1, resp.ToolRounds)
	suite.Equal(1, suite.tool.calls)
	suite.Equal("folio-1", suite.tool.lastArg["folioID"])
}

func (suite *AssistantServiceTestSuite) TestChat_ToolResultReinjectedIntoConversation() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{
			ToolCalls: []portssvc.ToolCall{{ID: "call-1", Name: "get_folio", Arguments: map[string]any{"folioID": "folio-1"}}},
		}, nil).Once()

	var secondTurn []dto.ChatMessage
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Run(func(args mock.Arguments) { secondTurn = args.Get(1).([]dto.ChatMessage) }).
		Return(&portssvc.ModelResponse{Content: "Done."}, nil).Once()

	_, err := suite.service.Chat(ctx, suite.tc, userMessage("Look up folio-1"))

	suite.Require().NoError(err)
	suite.Require().Len(secondTurn, 2)
	suite.Equal("tool", secondTurn[1].Role)
	suite.Equal(suite.tool.result, secondTurn[1].Content)
}

func (suite *AssistantServiceTestSuite) TestChat_LoopCapSurfacesError() {
	ctx := context.Background()
	// The model never stops asking for tools.
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{
			ToolCalls: []portssvc.ToolCall{{ID: "call-n", Name: "get_folio", Arguments: map[string]any{"folioID": "folio-1"}}},
		}, nil).Times(5)

	_, err := suite.service.Chat(ctx, suite.tc, userMessage("Keep digging"))

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrToolLoopLimit)
	suite.Equal(5, suite.tool.calls)
}

func (suite *AssistantServiceTestSuite) TestChat_UnknownToolBecomesErrorResult() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{
			ToolCalls: []portssvc.ToolCall{{ID: "call-1", Name: "delete_everything", Arguments: nil}},
		}, nil).Once()

	var secondTurn []dto.ChatMessage
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Run(func(args mock.Arguments) { secondTurn = args.Get(1).([]dto.ChatMessage) }).
		Return(&portssvc.ModelResponse{Content: "I cannot do that."}, nil).Once()

	resp, err := suite.service.Chat(ctx, suite.tc, userMessage("Delete everything"))

	suite.Require().NoError(err)
	suite.Equal("I cannot do that.", resp.Message.Content)
	suite.Require().Len(secondTurn, 2)
	suite.Contains(secondTurn[1].Content, `unknown tool "delete_everything"`)
	suite.Equal(0, suite.tool.calls)
}

func (suite *AssistantServiceTestSuite) TestChat_ToolErrorBecomesErrorResult() {
	ctx := context.Background()
	suite.tool.err = fmt.Errorf("folio not found")
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{
			ToolCalls: []portssvc.ToolCall{{ID: "call-1", Name: "get_folio", Arguments: map[string]any{"folioID": "nope"}}},
		}, nil).Once()

	var secondTurn []dto.ChatMessage
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Run(func(args mock.Arguments) { secondTurn = args.Get(1).([]dto.ChatMessage) }).
		Return(&portssvc.ModelResponse{Content: "That folio does not exist."}, nil).Once()

	_, err := suite.service.Chat(ctx, suite.tc, userMessage("Look up nope"))

	suite.Require().NoError(err)
	suite.Equal("error: folio not found", secondTurn[1].Content)
}

func (suite *AssistantServiceTestSuite) TestChat_RateLimitRetriedWithBackoff() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(nil, portssvc.ErrRateLimited).Twice()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(&portssvc.ModelResponse{Content: "Recovered."}, nil).Once()

	resp, err := suite.service.Chat(ctx, suite.tc, userMessage("Hello"))

	suite.Require().NoError(err)
	suite.Equal("Recovered.", resp.Message.Content)
	suite.mockModel.AssertNumberOfCalls(suite.T(), "Complete", 3)
}

func (suite *AssistantServiceTestSuite) TestChat_RateLimitExhaustsAttempts() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(nil, portssvc.ErrRateLimited).Times(3)

	_, err := suite.service.Chat(ctx, suite.tc, userMessage("Hello"))

	suite.Require().Error(err)
	suite.ErrorIs(err, portssvc.ErrRateLimited)
	suite.mockModel.AssertNumberOfCalls(suite.T(), "Complete", 3)
}

func (suite *AssistantServiceTestSuite) TestChat_QuotaExhaustedNeverRetried() {
	ctx := context.Background()
	suite.mockModel.On("Complete", ctx, mock.AnythingOfType("[]dto.ChatMessage")).
		Return(nil, portssvc.ErrQuotaExhausted).Once()

	_, err := suite.service.Chat(ctx, suite.tc, userMessage("Hello"))

	suite.Require().Error(err)
	suite.ErrorIs(err, portssvc.ErrQuotaExhausted)
	suite.mockModel.AssertNumberOfCalls(suite.T(), "Complete", 1)
}

func TestAssistantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}
