// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package config

import (
	"os"
	"strconv"

	"github.com/DataDog/datadog-agent/pkg/util/log"

	"github.com/DataDog/dlist-internal-go/dlist"
)

// Configuration environment variables
const (
	EnvDiagnosticsEnabled = "DLIST_DIAGNOSTICS_ENABLED"
	EnvDisplaySeparator   = "DLIST_DISPLAY_SEPARATOR"
)

// Configuration constants and default values
const (
	DefaultDiagnosticsEnabled = true
	DefaultDisplaySeparator   = dlist.DefaultSeparator
)

// Config holds the settings of the list demonstration driver.
type Config struct {
	// DiagnosticsEnabled controls whether list operations narrate their
	// outcome.
	DiagnosticsEnabled bool
	// DisplaySeparator is placed between payloads when a list is rendered.
	DisplaySeparator string
}

// New creates and returns a new configuration by reading the env
func New() Config {
	return Config{
		DiagnosticsEnabled: readDiagnosticsEnabled(),
		DisplaySeparator:   readDisplaySeparator(),
	}
}

func readDiagnosticsEnabled() bool {
	val, present := os.LookupEnv(EnvDiagnosticsEnabled)
	if !present {
		return DefaultDiagnosticsEnabled
	}
	enabled, err := strconv.ParseBool(val)
	if err != nil {
		log.Debugf("dlist: could not parse %s. Defaulting to %t", EnvDiagnosticsEnabled, DefaultDiagnosticsEnabled)
		return DefaultDiagnosticsEnabled
	}
	return enabled
}

func readDisplaySeparator() string {
	val := os.Getenv(EnvDisplaySeparator)
	if val == "" {
		return DefaultDisplaySeparator
	}
	return val
}
