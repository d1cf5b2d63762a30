package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/auth"
	"github.com/vowsnap-dev/vowsnap/internal/store"
)

var (
	stores    *store.Store
	passwords auth.PasswordVerifier
)

// Init wires the handler package to its store and credential policy.
// Must run before the router serves traffic.
func Init(s *store.Store, verifier auth.PasswordVerifier) {
	stores = s
	passwords = verifier
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
