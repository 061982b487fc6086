package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	log "github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_by_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_category"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/get_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_by_scheme"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_entries"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/list_variants"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/queries/products_by_category"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/uploads"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/add_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/add_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/create_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/delete_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/delete_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/manage_categories"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_color"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_entry"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_variant"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/patch_variant_section"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/submit_contact"
	"github.com/light-bringer/catalog-admin-service/internal/app/catalog/usecases/update_flags"
	"github.com/light-bringer/catalog-admin-service/internal/config"
	"github.com/light-bringer/catalog-admin-service/internal/notify"
	"github.com/light-bringer/catalog-admin-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-admin-service/internal/storage/drive"
	transport "github.com/light-bringer/catalog-admin-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handler       *transport.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	comm := committer.NewCommitter(spannerClient)

	var uploader contracts.Uploader = uploads.Disabled{}
	if cfg.Drive.CredentialsPath != "" {
		uploader, err = drive.NewUploader(ctx, cfg.Drive.CredentialsPath, cfg.Drive.FolderID, cfg.Uploads.Optimize)
		if err != nil {
			spannerClient.Close()
			return nil, fmt.Errorf("failed to create Drive uploader: %w", err)
		}
	} else {
		log.Warn("drive credentials not configured, image uploads disabled")
	}
	resolver := uploads.NewResolver(uploader, cfg.Uploads.Concurrency)

	var notifier contracts.Notifier = notify.Noop{}
	if cfg.Telegram.BotToken != "" {
		notifier = notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}

	// 3. Create repositories
	entryRepo := repo.NewEntryRepo(spannerClient)
	categoryRepo := repo.NewCategoryRepo(spannerClient)
	contactRepo := repo.NewContactRepo(spannerClient)
	readModel := repo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createEntryUseCase := create_entry.NewInteractor(entryRepo, resolver, comm)
	patchEntryUseCase := patch_entry.NewInteractor(entryRepo, resolver, comm)
	deleteEntryUseCase := delete_entry.NewInteractor(entryRepo, comm)
	addVariantUseCase := add_variant.NewInteractor(entryRepo, comm)
	patchVariantUseCase := patch_variant.NewInteractor(entryRepo, comm)
	deleteVariantUseCase := delete_variant.NewInteractor(entryRepo, comm)
	patchSectionUseCase := patch_variant_section.NewInteractor(entryRepo, comm)
	updateFlagsUseCase := update_flags.NewInteractor(entryRepo, comm)
	addColorUseCase := add_color.NewInteractor(entryRepo, resolver, comm)
	patchColorUseCase := patch_color.NewInteractor(entryRepo, resolver, comm)
	categoriesUseCase := manage_categories.NewInteractor(categoryRepo, entryRepo, comm)
	contactUseCase := submit_contact.NewInteractor(contactRepo, notifier, comm)

	// 5. Create query use cases (read operations)
	getEntryQuery := get_entry.NewQuery(entryRepo)
	listEntriesQuery := list_entries.NewQuery(readModel)
	listVariantsQuery := list_variants.NewQuery(readModel)
	byVariantQuery := get_by_variant.NewQuery(entryRepo)
	bySchemeQuery := list_by_scheme.NewQuery(readModel)
	listCategoriesQuery := list_categories.NewQuery(categoryRepo)
	getCategoryQuery := get_category.NewQuery(categoryRepo)
	byCategoryQuery := products_by_category.NewQuery(readModel)

	// 6. Create HTTP handler
	handler := transport.NewHandler(transport.HandlerOptions{
		CreateEntry:  createEntryUseCase,
		PatchEntry:   patchEntryUseCase,
		DeleteEntry:  deleteEntryUseCase,
		AddVariant:   addVariantUseCase,
		PatchVariant: patchVariantUseCase,
		DelVariant:   deleteVariantUseCase,
		PatchSection: patchSectionUseCase,
		UpdateFlags:  updateFlagsUseCase,
		AddColor:     addColorUseCase,
		PatchColor:   patchColorUseCase,
		Categories:   categoriesUseCase,
		Contact:      contactUseCase,

		GetEntry:       getEntryQuery,
		ListEntries:    listEntriesQuery,
		ListVariants:   listVariantsQuery,
		ByVariant:      byVariantQuery,
		ByScheme:       bySchemeQuery,
		ListCategories: listCategoriesQuery,
		GetCategory:    getCategoryQuery,
		ByCategory:     byCategoryQuery,
	})

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handler:       handler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
