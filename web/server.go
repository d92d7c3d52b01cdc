package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/kcl_browser/pack"
	"github.com/mogaika/kcl_browser/vfs"
)

var ServerDirectory vfs.Directory
var ServerCache *pack.InstanceCache

func NewRouter(d vfs.Directory) *mux.Router {
	ServerDirectory = d
	ServerCache = pack.NewInstanceCache()

	r := mux.NewRouter()
	r.HandleFunc("/json/kcl", HandlerAjaxList).Methods("GET")
	r.HandleFunc("/json/kcl/{file}", HandlerAjaxKcl).Methods("GET")
	r.HandleFunc("/json/kcl/{file}/triggers/{type}", HandlerAjaxTriggers).Methods("GET")
	r.HandleFunc("/json/kcl/{file}/raycast", HandlerAjaxRaycast).Methods("GET")
	r.HandleFunc("/dump/kcl/{file}/{format}", HandlerDumpKcl).Methods("GET")
	r.HandleFunc("/ws/status", HandlerStatusWebsocket)
	return r
}

func StartServer(addr string, d vfs.Directory) error {
	r := NewRouter(d)

	var h http.Handler = r
	h = handlers.CORS(handlers.AllowedMethods([]string{"GET"}))(h)
	h = handlers.LoggingHandler(os.Stdout, h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
