package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"provenance/config"
	apimiddleware "provenance/internal/delivery/api/middleware"
	"provenance/internal/delivery/api/response"
	"provenance/internal/delivery/api/router/handler"
	"provenance/internal/delivery/api/validator"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/service"
	"provenance/internal/infra/notification"
	mockSvc "provenance/internal/mocks/service"
	mockUC "provenance/internal/mocks/usecase"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "session-token"
	testWallet = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
)

type apiFixtures struct {
	echo        *echo.Echo
	authUC      *mockUC.MockAuthenticationUsecase
	recordUC    *mockUC.MockRecordUsecase
	lifecycleUC *mockUC.MockLifecycleUsecase
	sessionUC   *mockUC.MockSessionUsecase
	tokens      *mockSvc.MockTokenService
	identity    *entity.Identity
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func newTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	fx := apiFixtures{
		authUC:      mockUC.NewMockAuthenticationUsecase(t),
		recordUC:    mockUC.NewMockRecordUsecase(t),
		lifecycleUC: mockUC.NewMockLifecycleUsecase(t),
		sessionUC:   mockUC.NewMockSessionUsecase(t),
		tokens:      mockSvc.NewMockTokenService(t),
		identity: &entity.Identity{
			UserID:        uuid.New(),
			WalletAddress: testWallet,
			SessionID:     uuid.New(),
		},
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		ImageHandler:   handler.NewImageHandler(handler.ImageHandlerParams{AuthUC: fx.authUC, Config: cfg, Logger: logger}),
		RecordHandler:  handler.NewRecordHandler(handler.RecordHandlerParams{RecordUC: fx.recordUC, LifecycleUC: fx.lifecycleUC, Logger: logger}),
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: fx.sessionUC, Logger: logger}),
		RealtimeHandler: handler.NewRealtimeHandler(handler.RealtimeHandlerParams{
			Hub:          notification.NewHub(cfg, logger),
			TokenService: fx.tokens,
			Logger:       logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{SessionUC: fx.sessionUC}),
	})
	r.RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx apiFixtures) expectAuthenticated() {
	fx.sessionUC.EXPECT().Authenticate(mock.Anything, testToken).Return(fx.identity, nil)
}

func (fx apiFixtures) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func newJSONRequest(method, target, body string, authenticated bool) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	return req
}

func newImageRequest(t *testing.T, target string, image []byte, authenticated bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="a.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	return req
}

func TestRouter_Health(t *testing.T) {
	fx := newTestAPI(t)

	rec, _ := fx.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SubmitImage(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		fx := newTestAPI(t)

		rec, body := fx.do(t, newImageRequest(t, "/api/v1/images", []byte("png"), false))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})

	t.Run("created", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()

		record := &entity.AuthenticatedRecord{ID: uuid.New(), Status: entity.RecordStatusUploaded}
		fx.authUC.EXPECT().
			Submit(mock.Anything, mock.MatchedBy(func(in *usecase.SubmitInput) bool {
				return in.OwnerID == fx.identity.UserID &&
					in.SessionID == fx.identity.SessionID.String() &&
					in.ContentType == "image/png" &&
					string(in.Image) == "png-bytes"
			})).
			Return(record, nil)

		rec, body := fx.do(t, newImageRequest(t, "/api/v1/images", []byte("png-bytes"), true))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got entity.AuthenticatedRecord
		require.NoError(t, json.Unmarshal(body.Data, &got))
		assert.Equal(t, record.ID, got.ID)
	})

	t.Run("duplicate exposes the match", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()

		fx.authUC.EXPECT().
			Submit(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewDuplicateContentError("fp-7", 0.97))

		rec, body := fx.do(t, newImageRequest(t, "/api/v1/images", []byte("png"), true))
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_CONTENT", body.Error.Code)
		details, ok := body.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "fp-7", details["match_id"])
	})

	t.Run("missing image field", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/api/v1/images", `{}`, true))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("processing failure", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()

		fx.authUC.EXPECT().
			Submit(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewProcessingError("decode", errors.New("not an image")))

		rec, body := fx.do(t, newImageRequest(t, "/api/v1/images", []byte("garbage"), true))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "PROCESSING_FAILED", body.Error.Code)
	})
}

func TestRouter_Verify_Anonymous(t *testing.T) {
	fx := newTestAPI(t)

	fx.authUC.EXPECT().
		Verify(mock.Anything, mock.MatchedBy(func(in *usecase.VerifyInput) bool { return in.VerifierID == nil })).
		Return(&usecase.VerifyResult{Found: false, Matches: []*usecase.VerificationMatch{}}, nil)

	rec, body := fx.do(t, newImageRequest(t, "/api/v1/verify", []byte("query"), false))
	require.Equal(t, http.StatusOK, rec.Code)

	var result usecase.VerifyResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.False(t, result.Found)
}

func TestRouter_Verify_InvalidTokenRejected(t *testing.T) {
	fx := newTestAPI(t)

	fx.sessionUC.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, domainerrors.ErrSessionInvalid)

	rec, body := fx.do(t, newImageRequest(t, "/api/v1/verify", []byte("query"), true))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", body.Error.Code)
}

func TestRouter_LifecycleActions(t *testing.T) {
	recordID := uuid.New()

	t.Run("mint accepted", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.lifecycleUC.EXPECT().RequestMint(mock.Anything, fx.identity, recordID).Return(nil)

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/api/v1/records/"+recordID.String()+"/mint", "", true))
		require.Equal(t, http.StatusAccepted, rec.Code)

		var ack handler.LifecycleAcceptedResponse
		require.NoError(t, json.Unmarshal(body.Data, &ack))
		assert.Equal(t, entity.ActionMint, ack.Action)
		assert.Equal(t, "accepted", ack.Status)
	})

	t.Run("soft-list precondition", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.lifecycleUC.EXPECT().
			RequestSoftList(mock.Anything, fx.identity, recordID).
			Return(domainerrors.NewPreconditionError(recordID.String(), "soft-list", "uploaded"))

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/api/v1/records/"+recordID.String()+"/soft-list", "", true))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PRECONDITION_FAILED", body.Error.Code)
	})

	t.Run("redrive reports the action", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.lifecycleUC.EXPECT().Redrive(mock.Anything, fx.identity, recordID).Return(entity.ActionSoftList, nil)

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/api/v1/records/"+recordID.String()+"/redrive", "", true))
		require.Equal(t, http.StatusAccepted, rec.Code)

		var ack handler.LifecycleAcceptedResponse
		require.NoError(t, json.Unmarshal(body.Data, &ack))
		assert.Equal(t, entity.ActionSoftList, ack.Action)
	})

	t.Run("confirm returns the listed record", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.lifecycleUC.EXPECT().
			Confirm(mock.Anything, fx.identity, recordID).
			Return(&entity.AuthenticatedRecord{ID: recordID, Status: entity.RecordStatusListed}, nil)

		rec, _ := fx.do(t, newJSONRequest(http.MethodPost, "/api/v1/records/"+recordID.String()+"/confirm", "", true))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid record id", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/api/v1/records/not-a-uuid/mint", "", true))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_RECORD_ID", body.Error.Code)
	})
}

func TestRouter_Records(t *testing.T) {
	t.Run("get with verifications", func(t *testing.T) {
		fx := newTestAPI(t)
		recordID := uuid.New()
		fx.recordUC.EXPECT().GetRecord(mock.Anything, recordID, true).Return(&entity.AuthenticatedRecord{ID: recordID}, nil)

		rec, _ := fx.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/records/"+recordID.String()+"?verifications=true", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get unknown record", func(t *testing.T) {
		fx := newTestAPI(t)
		recordID := uuid.New()
		fx.recordUC.EXPECT().GetRecord(mock.Anything, recordID, false).Return(nil, domainerrors.ErrRecordNotFound)

		rec, body := fx.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/records/"+recordID.String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "RECORD_NOT_FOUND", body.Error.Code)
	})

	t.Run("own records require a session", func(t *testing.T) {
		fx := newTestAPI(t)

		rec, _ := fx.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/records?mine=true", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("own records filtered by owner", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.recordUC.EXPECT().
			ListRecords(mock.Anything, mock.MatchedBy(func(in *usecase.ListRecordsInput) bool {
				return in.OwnerID != nil && *in.OwnerID == fx.identity.UserID &&
					in.Status == entity.RecordStatusMinted && in.Limit == 5 && in.Offset == 10
			})).
			Return(&usecase.RecordPage{Records: []*entity.AuthenticatedRecord{}, Limit: 5, Offset: 10}, nil)

		req := newJSONRequest(http.MethodGet, "/api/v1/records?mine=true&status=minted&limit=5&offset=10", "", true)
		rec, _ := fx.do(t, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := newTestAPI(t)

		rec, body := fx.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/records?status=burned", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})

	t.Run("certificate qr", func(t *testing.T) {
		fx := newTestAPI(t)
		recordID := uuid.New()
		fx.recordUC.EXPECT().GetCertificateQR(mock.Anything, recordID).Return([]byte("\x89PNG"), nil)

		rec, _ := fx.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/records/"+recordID.String()+"/qr", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
	})
}

func TestRouter_Session(t *testing.T) {
	t.Run("nonce", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.sessionUC.EXPECT().RequestNonce(mock.Anything, testWallet).Return(&usecase.NonceOutput{Nonce: "n", Message: "m"}, nil)

		rec, _ := fx.do(t, newJSONRequest(http.MethodPost, "/auth/nonce", `{"wallet_address":"`+testWallet+`"}`, false))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("login rejects malformed wallet", func(t *testing.T) {
		fx := newTestAPI(t)

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/auth/login", `{"wallet_address":"0xdeadbeef","nonce":"n","signature":"s"}`, false))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body.Error.Message, "wallet_address")
	})

	t.Run("login bad signature", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.sessionUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{WalletAddress: testWallet, Nonce: "n", Signature: "s"}).
			Return(nil, domainerrors.ErrSignatureInvalid)

		rec, body := fx.do(t, newJSONRequest(http.MethodPost, "/auth/login", `{"wallet_address":"`+testWallet+`","nonce":"n","signature":"s"}`, false))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SIGNATURE_INVALID", body.Error.Code)
	})

	t.Run("logout", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.sessionUC.EXPECT().Logout(mock.Anything, fx.identity.SessionID).Return(nil)

		rec, _ := fx.do(t, newJSONRequest(http.MethodPost, "/auth/logout", "", true))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("update profile", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.expectAuthenticated()
		fx.sessionUC.EXPECT().
			UpdateProfile(mock.Anything, fx.identity.UserID, "Ada").
			Return(&entity.User{ID: fx.identity.UserID, Name: "Ada"}, nil)

		rec, _ := fx.do(t, newJSONRequest(http.MethodPut, "/api/v1/profile", `{"name":"Ada"}`, true))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		fx := newTestAPI(t)

		req := newJSONRequest(http.MethodGet, "/api/v1/profile", "", false)
		req.Header.Set(echo.HeaderAuthorization, "Token abc")
		rec, body := fx.do(t, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", body.Error.Code)
	})
}

func TestRouter_RelayEvent(t *testing.T) {
	event := `{"session_id":"s-1","event":{"type":"image:minted","record_id":"` + uuid.NewString() + `","status":"minted"}}`

	t.Run("accepted with service token", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.tokens.EXPECT().
			ValidateServiceToken("relay-token", constants.EventRelayScope, constants.EventRelayAudience).
			Return(&service.ServiceClaims{Scope: constants.EventRelayScope}, nil)

		req := newJSONRequest(http.MethodPost, "/internal/events", event, false)
		req.Header.Set(echo.HeaderAuthorization, "Bearer relay-token")
		rec, _ := fx.do(t, req)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("session tokens are not accepted", func(t *testing.T) {
		fx := newTestAPI(t)
		fx.tokens.EXPECT().
			ValidateServiceToken(testToken, constants.EventRelayScope, constants.EventRelayAudience).
			Return(nil, errors.New("wrong audience"))

		rec, _ := fx.do(t, newJSONRequest(http.MethodPost, "/internal/events", event, true))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
