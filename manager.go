package main

import (
	"sync"

	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/parser"
	"github.com/mwaldhoff/go-sceneroute/scene"
	. "github.com/mwaldhoff/go-sceneroute/util"
	"golang.org/x/exp/slog"
)

func NewSceneManager(config Config) *SceneManager {
	var s *scene.Scene
	var err error
	switch config.Scene.Source {
	case OSM:
		s, err = parser.ParseOsmScene(config.Scene.File)
	default:
		s, err = parser.ParseGeojsonScene(config.Scene.File)
	}
	if err != nil {
		slog.Error("failed to load scene: " + err.Error())
		panic(err)
	}
	return &SceneManager{
		scene:    s,
		selected: NewList[string](2),
	}
}

// Owns the loaded scene and the current building selection. The scene
// itself is immutable after loading; the selection is guarded since
// handlers run concurrently.
type SceneManager struct {
	scene    *scene.Scene
	mu       sync.Mutex
	selected List[string]
}

func (self *SceneManager) Scene() *scene.Scene {
	return self.scene
}

// Road segments are extracted fresh per request; the routing graph is
// built from them per computation and never shared.
func (self *SceneManager) RoadSegments() List[geo.Segment] {
	return self.scene.RoadSegments()
}

func (self *SceneManager) SetSelection(ids []string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.selected = NewList[string](len(ids))
	for _, id := range ids {
		self.selected.Add(id)
	}
}

func (self *SceneManager) Selection() []string {
	self.mu.Lock()
	defer self.mu.Unlock()
	out := make([]string, self.selected.Length())
	copy(out, self.selected)
	return out
}
