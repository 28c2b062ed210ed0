package main

import (
	"fmt"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *SceneManager

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")
	MANAGER = NewSceneManager(config)

	app := http.DefaultServeMux
	MapPost(app, "/v0/route", HandleRouteRequest)
	MapPost(app, "/v0/selection", HandleSelectionRequest)
	MapGet(app, "/v0/status", HandleStatusRequest)

	addr := fmt.Sprintf(":%v", config.Server.Port)
	slog.Info("listening on " + addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		slog.Error(err.Error())
	}
}
