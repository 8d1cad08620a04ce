package api

import (
	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// principalOrAbort must only be used behind RequireAuth.
func principalOrAbort(c *gin.Context) (user.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Respond(c, auth.ErrInvalidToken)
		return user.Principal{}, false
	}
	return principal, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, gin.H{name: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func requestMeta(c *gin.Context) coupon.RequestMeta {
	return coupon.RequestMeta{
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		DeviceHash: c.GetHeader(middleware.DeviceHashHeader),
	}
}
