// seehuhn.de/go/tactics - a tactical diagram editor for soccer sessions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the tactics command from the
// environment.
package config

import (
	"os"
	"strconv"
)

// Config holds the settings of the tactics command.
type Config struct {
	Port         string
	Environment  string
	PixelRatio   float64 // pixels per field unit for PNG previews
	ThumbWidth   int     // width of thumbnails in pixels
	ReadTimeout  int     // seconds
	WriteTimeout int     // seconds
	MaxBody      int     // largest accepted request body, in bytes
}

// Load reads the configuration from environment variables.  Unset or
// malformed variables take their default value.
func Load() *Config {
	return &Config{
		Port:         getEnv("TACTICS_PORT", "3000"),
		Environment:  getEnv("TACTICS_ENV", "development"),
		PixelRatio:   getEnvAsFloat("TACTICS_PIXEL_RATIO", 2),
		ThumbWidth:   getEnvAsInt("TACTICS_THUMB_WIDTH", 320),
		ReadTimeout:  getEnvAsInt("TACTICS_READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("TACTICS_WRITE_TIMEOUT", 30),
		MaxBody:      getEnvAsInt("TACTICS_MAX_BODY", 4<<20),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if x, err := strconv.ParseFloat(value, 64); err == nil && x > 0 {
			return x
		}
	}
	return defaultVal
}
