package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/01moynul/studybuddy-golang/internal/dashboard"
	mock_handlers "github.com/01moynul/studybuddy-golang/internal/handlers/mock"
	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/01moynul/studybuddy-golang/internal/repository"
	"github.com/01moynul/studybuddy-golang/internal/study"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mocks struct {
	dashboard *mock_handlers.MockDashboardService
	study     *mock_handlers.MockStudyService
	accounts  *mock_handlers.MockAccountStore
}

// newTestRouter mounts a single route behind a stand-in for AuthMiddleware
// that trusts the X-Test-User header.
func newTestRouter(t *testing.T, ctrl *gomock.Controller, method, path string, handler func(*Handlers) gin.HandlerFunc, setupMock func(mocks)) (*gin.Engine, *Handlers) {
	m := mocks{
		dashboard: mock_handlers.NewMockDashboardService(ctrl),
		study:     mock_handlers.NewMockStudyService(ctrl),
		accounts:  mock_handlers.NewMockAccountStore(ctrl),
	}
	if setupMock != nil {
		setupMock(m)
	}

	h := &Handlers{
		Dashboard:      m.dashboard,
		Study:          m.study,
		Accounts:       m.accounts,
		Log:            zap.NewNop(),
		UploadDir:      t.TempDir(),
		BaseURL:        "http://localhost:8080",
		MaxUploadBytes: 1 << 20,
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set("userID", id)
		}
		c.Next()
	})
	router.Handle(method, path, handler(h))
	return router, h
}

func do(router *gin.Engine, req *http.Request, user string) *httptest.ResponseRecorder {
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int { return &v }

func TestGetDashboard(t *testing.T) {
	t.Parallel()

	loaded := dashboard.Build(
		models.Some(models.ProfileSummary{CreditsRemaining: intPtr(15)}),
		models.Some(models.ProgressSummary{TotalFlashcardsReviewed: intPtr(10), TotalCorrectAnswers: intPtr(7)}),
		nil,
	)
	withAlert := loaded
	alert := dashboard.LoadFailedAlert
	withAlert.Alert = &alert

	tests := []struct {
		name       string
		user       string
		f          func(mocks)
		wantStatus int
		check      func(*testing.T, map[string]any)
	}{
		{
			name: "loaded",
			user: "user-1",
			f: func(m mocks) {
				m.dashboard.EXPECT().Load(gomock.Any(), "user-1").Return(loaded, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.EqualValues(t, 70, body["accuracyRate"])
				assert.EqualValues(t, 25, body["creditsUsedPct"])
				assert.Nil(t, body["alert"])
				assert.Equal(t, []any{}, body["materials"])
			},
		},
		{
			name: "partial failure still answers 200",
			user: "user-1",
			f: func(m mocks) {
				m.dashboard.EXPECT().Load(gomock.Any(), "user-1").Return(withAlert, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				a, ok := body["alert"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "Error loading data", a["title"])
			},
		},
		{
			name:       "no user",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, _ := newTestRouter(t, ctrl, http.MethodGet, "/v1/dashboard",
				func(h *Handlers) gin.HandlerFunc { return h.GetDashboard }, tt.f)

			w := do(router, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), tt.user)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.check != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

func TestGenerateFlashcards_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no credits", err: study.ErrNoCredits, wantStatus: http.StatusPaymentRequired},
		{name: "not found", err: repository.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "unexpected", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, _ := newTestRouter(t, ctrl, http.MethodPost, "/v1/materials/:id/generate",
				func(h *Handlers) gin.HandlerFunc { return h.GenerateFlashcards },
				func(m mocks) {
					m.study.EXPECT().Generate(gomock.Any(), "user-1", "m1").Return(study.GenerateResult{}, tt.err)
				})

			w := do(router, httptest.NewRequest(http.MethodPost, "/v1/materials/m1/generate", nil), "user-1")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestReviewFlashcard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		f          func(mocks)
		wantStatus int
	}{
		{
			name: "wrong answer",
			body: `{"correct": false}`,
			f: func(m mocks) {
				m.study.EXPECT().Review(gomock.Any(), "user-1", "f1", false).Return(study.ReviewResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing field",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, _ := newTestRouter(t, ctrl, http.MethodPost, "/v1/flashcards/:id/review",
				func(h *Handlers) gin.HandlerFunc { return h.ReviewFlashcard }, tt.f)

			req := httptest.NewRequest(http.MethodPost, "/v1/flashcards/f1/review", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := do(router, req, "user-1")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestMarkNotificationAsRead_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl, http.MethodPatch, "/v1/notifications/:id/read",
		func(h *Handlers) gin.HandlerFunc { return h.MarkNotificationAsRead },
		func(m mocks) {
			m.accounts.EXPECT().MarkNotificationRead(gomock.Any(), "user-1", "n9").Return(repository.ErrNotFound)
		})

	w := do(router, httptest.NewRequest(http.MethodPatch, "/v1/notifications/n9/read", nil), "user-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMyProfile_Missing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl, http.MethodGet, "/v1/profile/me",
		func(h *Handlers) gin.HandlerFunc { return h.GetMyProfile },
		func(m mocks) {
			m.accounts.EXPECT().Profile(gomock.Any(), "user-1").Return(models.None[models.Profile](), nil)
		})

	w := do(router, httptest.NewRequest(http.MethodGet, "/v1/profile/me", nil), "user-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func multipartFile(t *testing.T, name, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "My notes"))
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadMaterial(t *testing.T) {
	t.Parallel()

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newTestRouter(t, ctrl, http.MethodPost, "/v1/materials",
			func(h *Handlers) gin.HandlerFunc { return h.UploadMaterial }, nil)

		body, contentType := multipartFile(t, "slides.pdf", "%PDF-1.4")
		req := httptest.NewRequest(http.MethodPost, "/v1/materials", body)
		req.Header.Set("Content-Type", contentType)

		w := do(router, req, "user-1")
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("text notes", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var got study.NewMaterial
		router, h := newTestRouter(t, ctrl, http.MethodPost, "/v1/materials",
			func(h *Handlers) gin.HandlerFunc { return h.UploadMaterial },
			func(m mocks) {
				m.study.EXPECT().CreateMaterial(gomock.Any(), "user-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, in study.NewMaterial) (study.MaterialResult, error) {
						got = in
						return study.MaterialResult{Material: models.StudyMaterial{ID: "m1", Title: in.Title}}, nil
					})
			})

		body, contentType := multipartFile(t, "notes.txt", "Mitochondria make ATP.")
		req := httptest.NewRequest(http.MethodPost, "/v1/materials", body)
		req.Header.Set("Content-Type", contentType)

		w := do(router, req, "user-1")
		require.Equal(t, http.StatusCreated, w.Code)

		assert.Equal(t, "My notes", got.Title)
		assert.Equal(t, "notes.txt", got.FileName)
		assert.Equal(t, "Mitochondria make ATP.", string(got.Data))
		assert.True(t, strings.HasPrefix(got.FileURL, "http://localhost:8080/uploads/"))
		assert.True(t, strings.HasSuffix(got.FileURL, ".txt"))

		entries, err := os.ReadDir(h.UploadDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestGetMySubscription_None(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl, http.MethodGet, "/v1/subscription",
		func(h *Handlers) gin.HandlerFunc { return h.GetMySubscription },
		func(m mocks) {
			m.accounts.EXPECT().Subscription(gomock.Any(), "user-1").Return(models.None[models.Subscription](), nil)
		})

	w := do(router, httptest.NewRequest(http.MethodGet, "/v1/subscription", nil), "user-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subscription": null}`, w.Body.String())
}

func TestDeleteMaterial_RemovesUpload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileURL := "http://localhost:8080/uploads/abc.txt"
	router, h := newTestRouter(t, ctrl, http.MethodDelete, "/v1/materials/:id",
		func(h *Handlers) gin.HandlerFunc { return h.DeleteMaterial },
		func(m mocks) {
			m.study.EXPECT().DeleteMaterial(gomock.Any(), "user-1", "m1").
				Return(models.StudyMaterial{ID: "m1", FileURL: &fileURL}, nil)
		})

	stored := filepath.Join(h.UploadDir, "abc.txt")
	require.NoError(t, os.WriteFile(stored, []byte("notes"), 0o644))

	w := do(router, httptest.NewRequest(http.MethodDelete, "/v1/materials/m1", nil), "user-1")
	require.Equal(t, http.StatusOK, w.Code)

	_, err := os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}
