/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bdd

import (
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/nemtech/symbol-direct-connect/test/bdd/scenario"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultFeaturesPath = "features"
	suiteName           = "symbol-direct-connect-bdd-test"
)

var options = godog.Options{
	Format: "pretty",
	Output: colors.Colored(os.Stdout),
	Paths:  []string{defaultFeaturesPath},
}

func init() {
	godog.BindCommandLineFlags("godog.", &options)
}

// configLogger falls back to info for an unknown level
func configLogger(level string) {
	logLevel, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = log.InfoLevel
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
}

// TestMain runs the feature files given as arguments, or every feature under ./features
func TestMain(m *testing.M) {
	pflag.Parse()
	if paths := pflag.Args(); len(paths) > 0 {
		options.Paths = paths
	}

	configLogger(log.InfoLevel.String())
	suiteConfig, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	configLogger(suiteConfig.Log.Level)
	log.Debugf("Running %v with %+v", options.Paths, suiteConfig)

	scenario.SetupPolling(suiteConfig.Poll.Timeout)
	os.Exit(godog.TestSuite{
		Name:                suiteName,
		Options:             &options,
		ScenarioInitializer: scenario.InitializeScenario,
	}.Run())
}
