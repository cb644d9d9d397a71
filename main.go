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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nemtech/symbol-direct-connect/app/config"
	"github.com/nemtech/symbol-direct-connect/app/db"
	"github.com/nemtech/symbol-direct-connect/app/middleware"
	"github.com/nemtech/symbol-direct-connect/app/persistence"
	"github.com/nemtech/symbol-direct-connect/app/persistence/properties"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func configLogger(level string) {
	var err error
	var logLevel log.Level

	if logLevel, err = log.ParseLevel(level); err != nil {
		logLevel = log.InfoLevel
	}

	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	log.SetLevel(logLevel)
}

// loadNetworkProperties reads the network properties of the node, rental fees are unavailable without them
func loadNetworkProperties(network config.Network) (*properties.NetworkProperties, error) {
	if network.PropertiesPath == "" {
		log.Warn("Network properties path is not configured, rental fees are unavailable")
		return nil, nil
	}

	networkProperties, err := properties.LoadNetworkProperties(network.PropertiesPath)
	if err != nil {
		return nil, err
	}

	log.Infof("Loaded network properties from %s", network.PropertiesPath)
	return networkProperties, nil
}

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	configLogger(configuration.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	networkProperties, err := loadNetworkProperties(configuration.Network)
	if err != nil {
		log.Fatalf("Failed to load network properties: %v", err)
	}

	dbClient, err := db.ConnectToDb(ctx, configuration.Db)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := persistence.NewDocumentStore(dbClient, configuration.Retry)
	networkTypeCache := persistence.NewNetworkTypeCache(configuration.Cache.Network)
	networkRepository := persistence.NewNetworkRepository(store, dbClient.Host(), networkTypeCache, networkProperties)

	healthController, err := middleware.NewHealthController(configuration.Db, networkRepository)
	if err != nil {
		log.Fatalf("Failed to create health controller: %v", err)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", configuration.Port),
		Handler: middleware.NewHandler(healthController, middleware.NewMetricsController()),
	}

	go func() {
		log.Infof("Listening on port %d", configuration.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Failed to serve: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configuration.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down the server: %v", err)
	}

	if err := dbClient.Disconnect(shutdownCtx); err != nil {
		log.Errorf("Failed to disconnect from database: %v", err)
	}
}
