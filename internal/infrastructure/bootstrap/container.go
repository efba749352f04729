// Package bootstrap builds the repositories, notifier and use cases from a
// config.Config. It is shared by the HTTP server and the plotctl CLI.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"plotsite/internal/adapter/persistence/repository"
	"plotsite/internal/adapter/render"
	"plotsite/internal/infrastructure/config"
	"plotsite/internal/infrastructure/database"
	"plotsite/internal/infrastructure/notifications"
	"plotsite/internal/usecase"
	"plotsite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Container holds the wired use cases. Close releases the SQLite handle when
// one was opened.
type Container struct {
	Catalog   usecase.ICatalogUseCase
	Layout    usecase.ILayoutUseCase
	Selection usecase.ISelectionUseCase
	Inquiry   usecase.IInquiryUseCase

	// Leads is set when INQUIRY_STORE=sqlite, so the CLI can list them.
	Leads *repository.InquirySQLiteRepository

	ddb *dynamodb.Client
	db  *sql.DB
}

// Renderers returns the drawing back-ends keyed by format.
func Renderers() map[usecase.RenderFormat]interfaces.ILayoutRenderer {
	return map[usecase.RenderFormat]interfaces.ILayoutRenderer{
		usecase.RenderFormatSVG: render.NewSVGRenderer(),
		usecase.RenderFormatPNG: render.NewPNGRenderer(),
	}
}

// NewCatalog wires only the catalog and layout use cases. Read-only CLI
// commands use it so they never touch the inquiry store.
func NewCatalog(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{}
	repo, err := c.parcelRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Catalog = usecase.NewCatalogUseCase(repo, cfg.StatusOverrides).WithCacheTTL(cfg.CatalogCacheTTL)
	c.Layout = usecase.NewLayoutUseCase(c.Catalog, Renderers())
	return c, nil
}

// New wires every use case.
func New(ctx context.Context, cfg config.Config) (*Container, error) {
	c, err := NewCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	inquiryRepo, err := c.inquiryRepository(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Selection = usecase.NewSelectionUseCase(repository.NewSelectionMemoryStore(cfg.SessionTTL), c.Catalog, cfg.Selection)
	c.Inquiry = usecase.NewInquiryUseCase(inquiryRepo, newNotifier(cfg), c.Catalog, cfg.Submission)
	return c, nil
}

func (c *Container) Close() {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			log.Printf("[bootstrap][sqlite] close failed err=%v", err)
		}
		c.db = nil
	}
}

func (c *Container) dynamo(ctx context.Context) (*dynamodb.Client, error) {
	if c.ddb != nil {
		return c.ddb, nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	c.ddb = ddb
	return ddb, nil
}

func (c *Container) parcelRepository(ctx context.Context, cfg config.Config) (interfaces.IParcelRepository, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceDynamoDB:
		ddb, err := c.dynamo(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("[bootstrap][catalog] source=dynamodb table=%s", cfg.PlotsTable)
		return repository.NewParcelDynamoRepository(ddb, cfg.PlotsTable), nil
	default:
		log.Printf("[bootstrap][catalog] source=static")
		return repository.NewParcelStaticRepository()
	}
}

func (c *Container) inquiryRepository(ctx context.Context, cfg config.Config) (interfaces.IInquiryRepository, error) {
	switch cfg.InquiryStore {
	case config.InquiryStoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		c.db = db
		repo := repository.NewInquirySQLiteRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("sqlite schema: %w", err)
		}
		c.Leads = repo
		log.Printf("[bootstrap][inquiry] store=sqlite path=%s", cfg.SQLitePath)
		return repo, nil
	default:
		ddb, err := c.dynamo(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("[bootstrap][inquiry] store=dynamodb table=%s", cfg.InquiriesTable)
		return repository.NewInquiryDynamoRepository(ddb, cfg.InquiriesTable), nil
	}
}

// newNotifier returns nil when the selected provider is not configured.
// Submissions then fail with the generic error, the same as a provider
// outage, and the leads are still stored.
func newNotifier(cfg config.Config) interfaces.INotifier {
	if cfg.NotifierMock {
		log.Printf("[bootstrap][notify] mock mode enabled")
		return notifications.LogNotifier{}
	}

	switch cfg.Notifier {
	case config.NotifierResend:
		n, err := notifications.NewResendNotifier(cfg.ResendURL, cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo, cfg.FromName)
		if err != nil {
			log.Printf("[bootstrap][notify] resend not configured: %v", err)
			return nil
		}
		return n
	default:
		n, err := notifications.NewWeb3FormsNotifier(cfg.Web3FormsURL, cfg.Web3FormsAccessKey, cfg.FromName)
		if err != nil {
			log.Printf("[bootstrap][notify] web3forms not configured: %v", err)
			return nil
		}
		return n
	}
}
