package main

import (
	"context"
	"fmt"

	"requisiciones_api/internal/adapter/http/handlers"
	"requisiciones_api/internal/adapter/http/routes"
	"requisiciones_api/internal/adapter/persistence/repository"
	"requisiciones_api/internal/config"
	"requisiciones_api/internal/domain/submission"
	"requisiciones_api/internal/infrastructure/backend"
	"requisiciones_api/internal/infrastructure/catalog"
	"requisiciones_api/internal/infrastructure/database"
	"requisiciones_api/internal/infrastructure/rendering"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase"
	"requisiciones_api/internal/usecase/interfaces"
)

type application struct {
	Handlers routes.Handlers
	closers  []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func wire(ctx context.Context, cfg config.Config) (*application, error) {
	app := &application{}
	policy := database.RetryPolicy{Retries: cfg.StartupRetries, Interval: cfg.StartupRetryInterval}

	draftRepo, err := newDraftRepository(ctx, cfg, policy, app)
	if err != nil {
		return nil, err
	}

	var renderer interfaces.IDocumentRenderer
	if cfg.RendererMockEnabled() {
		renderer = rendering.NewLocalRenderer()
	} else {
		httpRenderer, err := rendering.NewHTTPRenderer(cfg.RendererURL, cfg.HTTPClientTimeout)
		if err != nil {
			return nil, fmt.Errorf("renderer: %w", err)
		}
		renderer = httpRenderer
	}

	var gateway interfaces.IRequisitionGateway
	reqGateway, err := backend.NewRequisitionGateway(cfg.BackendURL, cfg.BackendToken, cfg.HTTPClientTimeout, cfg.BackendMockEnabled())
	if err != nil {
		logger.Warnf(ctx, "[submission][gateway] backend not configured: %v", err)
	} else {
		gateway = reqGateway
	}

	sites, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	// Export and submit share the guard: one external call per draft at a time.
	guard := usecase.NewInFlightGuard()

	draftUseCase := usecase.NewDraftUseCase(draftRepo)
	documentUseCase := usecase.NewDocumentUseCase(draftRepo, renderer, guard)
	submissionUseCase := usecase.NewSubmissionUseCase(draftRepo, gateway, guard, submission.Options{
		PlaceholderBaseURL: cfg.AttachmentPlaceholderBaseURL,
	})
	catalogUseCase := usecase.NewCatalogUseCase(sites)

	app.Handlers = routes.Handlers{
		Drafts:      handlers.NewDraftHandler(draftUseCase),
		Documents:   handlers.NewDocumentHandler(documentUseCase),
		Submissions: handlers.NewSubmissionHandler(submissionUseCase),
		Catalog:     handlers.NewCatalogHandler(catalogUseCase),
	}
	return app, nil
}

func newDraftRepository(ctx context.Context, cfg config.Config, policy database.RetryPolicy, app *application) (interfaces.IDraftRepository, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg, policy)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, pool.Close)
		if err := database.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		return repository.NewDraftPostgresRepository(pool), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureDraftsTable(ctx, ddb, cfg.DraftsTable, cfg.DynamoDBAutoCreateTable, policy); err != nil {
			return nil, err
		}
		return repository.NewDraftDynamoRepository(ddb, cfg.DraftsTable), nil
	}
}
