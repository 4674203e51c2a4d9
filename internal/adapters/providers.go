package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/govctl/internal/adapters/api"
	"github.com/trebuchet-org/govctl/internal/adapters/fs"
	"github.com/trebuchet-org/govctl/internal/adapters/interactive"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// APISet provides the platform API client for every remote port
var APISet = wire.NewSet(
	api.NewClient,
	wire.Bind(new(usecase.OrganizationClient), new(*api.Client)),
	wire.Bind(new(usecase.UserClient), new(*api.Client)),
	wire.Bind(new(usecase.MembershipClient), new(*api.Client)),
	wire.Bind(new(usecase.ShareTypeClient), new(*api.Client)),
	wire.Bind(new(usecase.ShareIssuanceClient), new(*api.Client)),
	wire.Bind(new(usecase.ProposalClient), new(*api.Client)),
	wire.Bind(new(usecase.AuditClient), new(*api.Client)),
	wire.Bind(new(usecase.OutboundClient), new(*api.Client)),
	wire.Bind(new(usecase.BlockchainClient), new(*api.Client)),
	wire.Bind(new(usecase.DevDataClient), new(*api.Client)),
)

// LocalConfigSet provides the local config store
var LocalConfigSet = wire.NewSet(
	fs.NewLocalConfigFile,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigFile)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewExportWriter,
	wire.Bind(new(usecase.FileWriter), new(*fs.ExportWriter)),

	LocalConfigSet,
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	APISet,
	FSSet,
	InteractiveSet,
)
