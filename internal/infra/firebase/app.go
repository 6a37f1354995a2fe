// Package firebase owns the shared Firebase app used by auth, the Realtime
// Database, Firestore and Cloud Messaging.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"lifeline/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app, injected by Fx.
type AppParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// App initializes the Firebase app on first use, so deployments that select
// only in-memory or mock backends never need credentials.
type App struct {
	cfg    config.FirebaseConfig
	logger *slog.Logger

	once sync.Once
	app  *firebase.App
	err  error

	mu        sync.Mutex
	firestore *firestore.Client
}

// NewApp creates the lazy Firebase app holder and closes the Firestore client on shutdown.
func NewApp(params AppParams) *App {
	a := &App{logger: params.Logger}
	if params.Config.Firebase != nil {
		a.cfg = *params.Config.Firebase
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return a.Close()
		},
	})

	return a
}

func (a *App) get(ctx context.Context) (*firebase.App, error) {
	a.once.Do(func() {
		opts := make([]option.ClientOption, 0, 1)
		if a.cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(a.cfg.CredentialsPath))
		}

		a.app, a.err = firebase.NewApp(ctx, &firebase.Config{
			ProjectID:   a.cfg.ProjectID,
			DatabaseURL: a.cfg.DatabaseURL,
		}, opts...)
		if a.err != nil {
			a.err = errors.Wrap(a.err, "failed to initialize Firebase app")

			return
		}

		a.logger.Info("Firebase app initialized",
			slog.String("project_id", a.cfg.ProjectID),
		)
	})

	return a.app, a.err
}

// Auth returns the Firebase Auth client.
func (a *App) Auth(ctx context.Context) (*auth.Client, error) {
	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)

	return client, errors.Wrap(err, "failed to get auth client")
}

// Database returns the Realtime Database client.
func (a *App) Database(ctx context.Context) (*db.Client, error) {
	if a.cfg.DatabaseURL == "" {
		return nil, errors.New("firebase databaseUrl is required for the realtime database")
	}

	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Database(ctx)

	return client, errors.Wrap(err, "failed to get database client")
}

// Firestore returns the Firestore client. The same client is returned on every call.
func (a *App) Firestore(ctx context.Context) (*firestore.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firestore != nil {
		return a.firestore, nil
	}

	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}
	a.firestore = client

	return client, nil
}

// Messaging returns the Cloud Messaging client.
func (a *App) Messaging(ctx context.Context) (*messaging.Client, error) {
	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)

	return client, errors.Wrap(err, "failed to get messaging client")
}

// Close releases the Firestore client if one was opened.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.firestore == nil {
		return nil
	}

	a.logger.Info("Closing Firestore client")
	err := a.firestore.Close()
	a.firestore = nil

	return errors.WithStack(err)
}

// Module provides the Firebase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewApp),
)
