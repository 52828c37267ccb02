package server

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// PprofServer serves the profiling endpoints on a separate address.
// It should only be reachable internally or via SSH tunnel.
func PprofServer(addr string) *http.Server {
	pprofRouter := gin.New()
	pprof.Register(pprofRouter)
	return &http.Server{
		Addr:    addr,
		Handler: pprofRouter,
	}
}
