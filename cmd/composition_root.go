package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpserver "freightline/internal/adapters/in/http"
	"freightline/internal/adapters/out/directory"
	"freightline/internal/adapters/out/postgres/orderrepo"
	"freightline/internal/adapters/out/session"
	"freightline/internal/core/application/board"
	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/application/usecases/queries"
	"freightline/internal/jobs"
)

// CompositionRoot wires the two halves of the system: the directory service
// (HTTP server over a GORM repository) and the console (board, use case
// handlers, and clients talking to the service).
type CompositionRoot struct {
	config CompositionConfig
	logger *slog.Logger

	repository *orderrepo.GormOrderRepository
	orderBoard *board.OrderBoard

	directoryClient *directory.Client
	sessionClient   *session.Client
}

// CompositionConfig is the subset of Config the composition root needs.
type CompositionConfig struct {
	DirectoryURL  string
	SessionURL    string
	ConsoleUserID string
	ConsoleRole   string
	BoardPageSize int
}

// NewCompositionRoot builds the object graph. The gorm handle may be nil
// when only the console side is used.
func NewCompositionRoot(config CompositionConfig, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		logger:     logger,
		orderBoard: board.NewOrderBoard(config.BoardPageSize),
	}

	if gormDB != nil {
		root.repository = orderrepo.NewGormOrderRepository(gormDB)
	}

	if config.DirectoryURL != "" {
		root.directoryClient = directory.NewClient(
			config.DirectoryURL,
			directory.Credentials{
				UserID:      config.ConsoleUserID,
				AccountType: config.ConsoleRole,
			},
			logger,
		)
	}
	if config.SessionURL != "" {
		root.sessionClient = session.NewClient(config.SessionURL, config.ConsoleUserID)
	}

	return root
}

// CreateHTTPServer creates the directory service's HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(c.repository, c.logger)
}

// OrderBoard returns the console's shared order board.
func (c *CompositionRoot) OrderBoard() *board.OrderBoard {
	return c.orderBoard
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.sessionClient, c.directoryClient, c.orderBoard)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.sessionClient, c.directoryClient, c.orderBoard)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.sessionClient, c.directoryClient, c.orderBoard)
}

func (c *CompositionRoot) CreateListMyOrdersQueryHandler() queries.ListMyOrdersQueryHandler {
	return queries.NewListMyOrdersQueryHandler(c.sessionClient, c.directoryClient, c.orderBoard)
}

func (c *CompositionRoot) CreateListAvailableOrdersQueryHandler() queries.ListAvailableOrdersQueryHandler {
	return queries.NewListAvailableOrdersQueryHandler(c.sessionClient, c.directoryClient)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.directoryClient)
}

// CreateBoardRefreshJob creates the periodic board refresh. Callers start it
// only when the console side is configured.
func (c *CompositionRoot) CreateBoardRefreshJob() *jobs.BoardRefreshJob {
	return jobs.NewBoardRefreshJob(c.CreateListMyOrdersQueryHandler(), c.config.BoardPageSize, c.logger)
}

// ConsoleConfigured reports whether the console-side clients were wired.
func (c *CompositionRoot) ConsoleConfigured() bool {
	return c.directoryClient != nil && c.sessionClient != nil
}
