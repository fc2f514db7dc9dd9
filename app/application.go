package app

import (
	"context"
	"sync"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x"
	"github.com/iov-one/bridge/x/cash"
	"github.com/iov-one/bridge/x/utils"
	"github.com/iov-one/bridge/x/vault"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// Config tunes an Application. The zero value is usable.
type Config struct {
	// Debug exposes internal error details in results.
	Debug bool
	// Logger receives the invocation logs. Nop if not set.
	Logger log.Logger
	// Registerer enables the prometheus metrics of invocations and
	// dispatched events when set.
	Registerer prometheus.Registerer
	// Observers receive every event once the invocation that emitted it
	// is written.
	Observers []bridge.Observer
}

// Result is the outcome of a single invocation.
type Result struct {
	// Code is zero on success, or the code of the returned error.
	Code uint32
	Log  string
	Data []byte
	// Events and Tags are only set by a successful delivery.
	Events []bridge.Event
	Tags   []common.KVPair
}

// IsOK returns true if the invocation succeeded.
func (r Result) IsOK() bool {
	return r.Code == errors.SuccessABCICode
}

// Application hosts the vault. All calls are serialized.
type Application struct {
	mu sync.Mutex

	store       *CommitStore
	handler     bridge.Handler
	decoder     bridge.TxDecoder
	queries     bridge.QueryRouter
	initializer bridge.Initializer
	observer    bridge.Observer
	logger      log.Logger
	debug       bool

	chainID string
	height  int64
}

// NewApplication loads the latest state from db and wires the vault stack.
func NewApplication(db bridge.CommitKVStore, conf Config) (*Application, error) {
	cs, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}

	logger := conf.Logger
	if logger == nil {
		logger = bridge.DefaultLogger
	}

	var (
		metrics   *utils.Metrics
		observers = bridge.Observers(conf.Observers)
	)
	if conf.Registerer != nil {
		if metrics, err = utils.NewMetrics(conf.Registerer); err != nil {
			return nil, errors.Wrap(err, "metrics")
		}
		counter, err := utils.NewEventCounter(conf.Registerer)
		if err != nil {
			return nil, errors.Wrap(err, "event counter")
		}
		observers = append(observers, counter)
	}

	auth := x.HostAuth{}
	router := NewRouter()
	vault.RegisterRoutes(router, auth, cash.Bank{})

	queries := bridge.NewQueryRouter()
	queries.RegisterAll(vault.RegisterQuery, cash.RegisterQuery)

	handler := ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		utils.NewSavepoint().OnCheck().OnDeliver(),
		cash.NewAttachedValueDecorator(auth, vault.Address),
	).WithHandler(router)

	return &Application{
		store:       cs,
		handler:     handler,
		decoder:     DecodeTx,
		queries:     queries,
		initializer: bridge.ChainInitializers(cash.Initializer{}, vault.Initializer{}),
		observer:    observers,
		logger:      logger,
		debug:       conf.Debug,
		chainID:     chainID,
		height:      info.Version,
	}, nil
}

// ChainID returns the chain id set at genesis, or an empty string.
func (a *Application) ChainID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chainID
}

// Height returns the version of the last commit.
func (a *Application) Height() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.height
}

// InitChain sets the chain id and loads the genesis options into the
// pending state. It can be called only once per chain.
func (a *Application) InitChain(gen Genesis) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Genesis is applied atomically.
	cache := a.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := a.initializer.FromGenesis(gen.AppOptions, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	a.chainID = gen.ChainID
	a.logger.Info("chain initialized", "chainID", gen.ChainID)
	return nil
}

// Check runs the invocation against the check state. Nothing it does is
// committed.
func (a *Application) Check(caller bridge.Condition, txBytes []byte) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, ctx, err := a.prepare(caller, txBytes)
	if err != nil {
		return a.failure(err)
	}
	res, err := a.handler.Check(ctx, a.store.CheckStore(), tx)
	if err != nil {
		return a.failure(err)
	}
	return Result{Log: res.Log}
}

// Deliver runs the invocation against the pending state. The state change
// is kept only if the handler succeeds, in which case the emitted events are
// dispatched to the observers in order.
func (a *Application) Deliver(caller bridge.Condition, txBytes []byte) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, ctx, err := a.prepare(caller, txBytes)
	if err != nil {
		return a.failure(err)
	}
	res, err := a.handler.Deliver(ctx, a.store.DeliverStore(), tx)
	if err != nil {
		return a.failure(err)
	}
	for _, ev := range res.Events {
		a.observer.Observe(ctx, ev)
	}
	return Result{
		Log:    res.Log,
		Data:   res.Data,
		Events: res.Events,
		Tags:   res.Tags(),
	}
}

func (a *Application) prepare(caller bridge.Condition, txBytes []byte) (bridge.Tx, bridge.Context, error) {
	if a.chainID == "" {
		return nil, nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	tx, err := a.decoder(txBytes)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode tx")
	}

	ctx := context.Background()
	ctx = bridge.WithHeight(ctx, a.height+1)
	ctx = bridge.WithChainID(ctx, a.chainID)
	ctx = bridge.WithLogger(ctx, a.logger)
	if caller != nil {
		ctx = x.WithCaller(ctx, caller)
	}
	return tx, ctx, nil
}

func (a *Application) failure(err error) Result {
	code, msg := errors.ABCIInfo(err, a.debug)
	return Result{Code: code, Log: msg}
}

// Query reads the pending state, so that the effect of delivered
// invocations is visible before the commit.
func (a *Application) Query(path, mod string, data []byte) ([]bridge.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queries.Query(a.store.DeliverStore(), path, mod, data)
}

// Commit persists the pending state as a new version.
func (a *Application) Commit() (bridge.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	a.height = id.Version
	a.logger.Debug("commit", "height", id.Version)
	return id, nil
}
