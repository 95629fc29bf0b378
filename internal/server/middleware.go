package server

import (
	"github.com/gin-gonic/gin"
	"github.com/hotaeshwar/crm-sub000/internal/observability/reqctx"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
)

// AuthRequired resolves the session cookie and injects the user ID into
// the request context.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		sess, err := s.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			s.sessions.Clear(c)
			AbortWithError(c, err)
			return
		}

		ctx := userctx.WithUserID(c.Request.Context(), sess.UserID)
		ctx = reqctx.WithUserID(ctx, sess.UserID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
