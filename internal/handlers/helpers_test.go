package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/myanimeverse/animeverse_backend/internal/platform/session"
)

// sessionRig bundles a gin router with a memory-backed session manager so
// handler tests can exercise the real cookie round-trip. The bare router is
// what routes get registered on; requests must go through handler so the
// session middleware loads and saves state.
type sessionRig struct {
	router   *gin.Engine
	handler  http.Handler
	sessions *session.Manager
}

func newSessionRig() *sessionRig {
	gin.SetMode(gin.TestMode)
	sm := &session.Manager{SessionManager: scs.New()}
	r := gin.New()

	// Backdoor login endpoint so suites that do not mount the auth routes
	// can still obtain an authenticated session cookie.
	r.POST("/session-login", func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Query("userID"), 10, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		if err := sm.LoginUser(c.Request.Context(), userID, c.Query("username")); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	return &sessionRig{
		router:   r,
		handler:  sm.LoadAndSave(r),
		sessions: sm,
	}
}

// do serves a request through the session middleware and router.
func (rig *sessionRig) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	rig.handler.ServeHTTP(w, req)
	return w
}

// login establishes a session for the given user and returns its cookie.
func (rig *sessionRig) login(userID int64, username string) *http.Cookie {
	req := httptest.NewRequest(http.MethodPost, "/session-login?userID="+strconv.FormatInt(userID, 10)+"&username="+username, nil)
	w := rig.do(req)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == rig.sessions.Cookie.Name {
			return cookie
		}
	}
	return nil
}
