// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cloud

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"google.golang.org/api/option"
)

type firebaseClients struct {
	firestore *firestore.Client
	auth      *auth.Client
}

// FirebaseConnector lazily builds the Firestore and Auth clients from a
// service-account credential. It is safe for concurrent use.
type FirebaseConnector struct {
	cfg    config.Firebase
	logger *logger.Logger

	initFn func(ctx context.Context) (*firebaseClients, error)

	once    sync.Once
	clients *firebaseClients
	err     error
}

// NewFirebaseConnector returns a connector for cfg. Nothing is decoded or
// dialled until Firestore or Auth is first called.
func NewFirebaseConnector(cfg config.Firebase, l *logger.Logger) *FirebaseConnector {
	c := &FirebaseConnector{cfg: cfg, logger: l}
	c.initFn = c.connect
	return c
}

// Firestore returns the shared Firestore client.
func (c *FirebaseConnector) Firestore(ctx context.Context) (*firestore.Client, error) {
	clients, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	return clients.firestore, nil
}

// Auth returns the shared Firebase Auth client.
func (c *FirebaseConnector) Auth(ctx context.Context) (*auth.Client, error) {
	clients, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	return clients.auth, nil
}

// Close releases the Firestore client if it was created.
func (c *FirebaseConnector) Close() error {
	if c.clients == nil || c.clients.firestore == nil {
		return nil
	}
	return c.clients.firestore.Close()
}

func (c *FirebaseConnector) get(ctx context.Context) (*firebaseClients, error) {
	c.once.Do(func() {
		// the handle outlives the request that happened to trigger it
		clients, err := c.initFn(context.WithoutCancel(ctx))
		if err != nil {
			c.err = fmt.Errorf("%w: %w", ErrFirebaseInit, err)
			c.logger.Err(c.err).Str("func", "FirebaseConnector.get").Msg("firebase connector is unusable")
			return
		}
		c.clients = clients
		c.logger.Info().Str("func", "FirebaseConnector.get").Msg("firebase connector initialized")
	})

	return c.clients, c.err
}

func (c *FirebaseConnector) connect(ctx context.Context) (*firebaseClients, error) {
	credentials, err := c.cfg.CredentialsJSON()
	if err != nil {
		return nil, err
	}

	var appCfg *firebase.Config
	if c.cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: c.cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("error creating firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("error creating auth client: %w", err)
	}

	return &firebaseClients{firestore: fs, auth: authClient}, nil
}
