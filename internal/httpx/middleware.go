package httpx

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vijetacafe/cafeserve/internal/session"
)

const SessionCookie = "cafe_session"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Session resolves the visitor's session: reads the cookie, mints an id for
// new visitors, loads state from the store and parks it on the context.
// Handlers that mutate state must Put it back themselves.
func Session(store session.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, int(ttl.Seconds()), "/", "", false, true)
		}
		st, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			log.Printf("[session] load failed for %s: %v", sid, err)
			st = session.NewState()
		}
		c.Set("sid", sid)
		c.Set("sess", st)
		c.Next()
	}
}
