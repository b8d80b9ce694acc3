package server

import (
	"context"
	"errors"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/jmhodges/clock"

	"github.com/remindctl/remindctl/common"
	"github.com/remindctl/remindctl/internal/scheduler"
	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

// Custom JSON-RPC error codes for reminder operations.
const (
	codeReminderNotFound = jrpc2.Code(-32001)
	codeInvalidParams    = jrpc2.Code(-32602)
)

// BuildInfo carries version metadata reported by system.version.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildType string
}

// Api holds the daemon-side method handlers.
type Api struct {
	log   logger.Logger
	reg   *remindlib.Registry
	sched *scheduler.Scheduler
	clk   clock.Clock
	build BuildInfo

	// requestStop asks the daemon to shut down; flush additionally
	// clears in-memory and persisted state first.
	requestStop func(flush bool)
}

// NewApi creates the method handler set for the daemon.
func NewApi(l logger.Logger, reg *remindlib.Registry, sched *scheduler.Scheduler, clk clock.Clock, build BuildInfo, requestStop func(flush bool)) *Api {
	if l == nil {
		l = logger.NewNopLogger()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Api{
		log:         l,
		reg:         reg,
		sched:       sched,
		clk:         clk,
		build:       build,
		requestStop: requestStop,
	}
}

// Methods returns the jrpc2 handler map for the RPC surface.
func (a *Api) Methods() handler.Map {
	return handler.Map{
		common.MethodReminderAdd:       handler.New(a.reminderAdd),
		common.MethodReminderRemove:    handler.New(a.reminderRemove),
		common.MethodReminderList:      handler.New(a.reminderList),
		common.MethodReminderPartition: handler.New(a.reminderPartition),
		common.MethodDaemonPoke:        handler.New(a.daemonPoke),
		common.MethodDaemonStop:        handler.New(a.daemonStop),
		common.MethodSystemVersion:     handler.New(a.systemVersion),
	}
}

func (a *Api) reminderAdd(_ context.Context, p *common.AddParams) (*common.AddResult, error) {
	rem, err := a.reg.Create(p.Message, time.Duration(p.DelayMS)*time.Millisecond)
	var verr *remindlib.ValidationError
	if errors.As(err, &verr) {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: verr.Error()}
	}
	if err != nil {
		return nil, err
	}
	a.log.Info("reminder %s added, due %s", rem.ID, rem.DueTime())
	return &common.AddResult{Reminder: *rem}, nil
}

func (a *Api) reminderRemove(_ context.Context, p *common.RemoveParams) (*common.RemoveResult, error) {
	if p.ID == "" {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "missing required param: id"}
	}
	_, existed := a.reg.Get(p.ID)
	a.reg.Delete(p.ID)
	return &common.RemoveResult{Removed: existed}, nil
}

func (a *Api) reminderList(_ context.Context) (*common.ListResult, error) {
	return &common.ListResult{Reminders: a.reg.List()}, nil
}

func (a *Api) reminderPartition(_ context.Context, p *common.PartitionParams) (*common.PartitionResult, error) {
	now := a.clk.Now().UnixMilli()
	if p != nil && p.NowMS != nil {
		now = *p.NowMS
	}
	part := remindlib.PartitionAt(a.reg.List(), now)
	return &common.PartitionResult{Active: part.Active, Expired: part.Expired}, nil
}

func (a *Api) daemonPoke(_ context.Context) (*common.PokeResult, error) {
	if a.sched != nil {
		a.sched.Poke()
	}
	return &common.PokeResult{Poked: true}, nil
}

func (a *Api) daemonStop(_ context.Context, p *common.StopParams) (*common.StopResult, error) {
	if a.requestStop == nil {
		return nil, errors.New("stop not supported")
	}
	flush := p != nil && p.Flush
	// Run asynchronously so the response reaches the caller before the
	// listener goes away.
	go a.requestStop(flush)
	return &common.StopResult{Stopping: true}, nil
}

func (a *Api) systemVersion(_ context.Context) (*common.VersionResult, error) {
	return &common.VersionResult{
		Version:   a.build.Version,
		Commit:    a.build.Commit,
		BuildType: a.build.BuildType,
	}, nil
}
