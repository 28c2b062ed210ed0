package main

import (
	"encoding/json"
	"errors"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Scene SceneOptions `yaml:"scene"`
}

type SceneOptions struct {
	Source SourceType `yaml:"source"`
	File   string     `yaml:"file"`
}

//**********************************************************
// enums
//**********************************************************

type SourceType byte

const (
	GEOJSON SourceType = 0
	OSM     SourceType = 1
)

func (self SourceType) String() string {
	switch self {
	case GEOJSON:
		return "geojson"
	case OSM:
		return "osm"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *SourceType) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = SourceTypeFromString(typ)
	return err
}
func (self SourceType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "geojson":
		return GEOJSON, nil
	case "osm":
		return OSM, nil
	default:
		return GEOJSON, errors.New("unknown source type")
	}
}
