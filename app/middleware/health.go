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

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v4"
	"github.com/hellofresh/health-go/v4/checks/mongo"
	"github.com/nemtech/symbol-direct-connect/app/config"
	"github.com/nemtech/symbol-direct-connect/app/interfaces"
	log "github.com/sirupsen/logrus"
)

const (
	checkTimeout  = 10 * time.Second
	livenessPath  = "/health/liveness"
	readinessPath = "/health/readiness"
)

type healthController struct {
	livenessHealth  *health.Health
	readinessHealth *health.Health
}

// NewHealthController creates a new HealthController object. The readiness check covers the document store and the
// network of its first block.
func NewHealthController(dbConfig config.Db, networkRepository interfaces.NetworkRepository) (Router, error) {
	livenessHealth, err := health.New()
	if err != nil {
		return nil, err
	}

	readinessChecks := []health.Config{
		{
			Name:      "mongodb",
			Timeout:   checkTimeout,
			SkipOnErr: false,
			Check: mongo.New(mongo.Config{
				DSN:               dbConfig.GetUri(),
				TimeoutConnect:    checkTimeout,
				TimeoutDisconnect: checkTimeout,
				TimeoutPing:       checkTimeout,
			}),
		},
		{
			Name:      "network",
			Timeout:   checkTimeout,
			SkipOnErr: false,
			Check:     checkNetworkType(networkRepository),
		},
	}
	readinessHealth, err := health.New(health.WithChecks(readinessChecks...))
	if err != nil {
		return nil, err
	}

	return &healthController{
		livenessHealth:  livenessHealth,
		readinessHealth: readinessHealth,
	}, nil
}

func (c *healthController) Routes() Routes {
	return Routes{
		{Name: "liveness", Method: http.MethodGet, Pattern: livenessPath, HandlerFunc: c.livenessHealth.HandlerFunc},
		{Name: "readiness", Method: http.MethodGet, Pattern: readinessPath, HandlerFunc: c.readinessHealth.HandlerFunc},
	}
}

func checkNetworkType(networkRepository interfaces.NetworkRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		networkType, err := networkRepository.NetworkType(ctx)
		if err != nil {
			log.Errorf("Readiness check, network type failed: %v", err)
			return err
		}

		log.Debugf("Readiness check, network type is %s", networkType)
		return nil
	}
}
