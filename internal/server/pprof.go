package server

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// NewPprofServer builds the profiling server. It should only be reachable
// internally or via SSH tunnel.
func NewPprofServer(addr string) *http.Server {
	pprofRouter := gin.New()
	pprof.Register(pprofRouter)
	return &http.Server{Addr: addr, Handler: pprofRouter}
}
