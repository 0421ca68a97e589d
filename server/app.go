package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"lancontrol/internal/health"
	"lancontrol/internal/logs"
	"lancontrol/internal/middleware"
)

type App struct {
	Router     *mux.Router
	httpServer *http.Server

	// куда печатать баннер с QR при старте
	out io.Writer

	debug atomic.Bool
	ready atomic.Bool
}

// CreateApp собирает приложение: роутер, middleware, маршруты.
// Сеть не трогает — это делает Run.
func CreateApp() *App {
	a := &App{out: os.Stdout}

	/* 1) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer(a.debug.Load),
		middleware.LoggerMW,
	)

	/* 2) Health */
	health.RegisterRoutes(a.Router, a.ready.Load)

	/* 3) Pairing */
	a.Router.HandleFunc("/pair", a.pairText).Methods(http.MethodGet)
	a.Router.HandleFunc("/pair.json", a.pairJSON).Methods(http.MethodGet)

	return a
}

// Run слушает host:port и блокируется до SIGINT/SIGTERM.
// Ошибку bind-а возвращает сразу.
func (a *App) Run(host string, port int, debug bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx, host, port, debug)
}

// RunContext — как Run, но останавливается по отмене ctx.
func (a *App) RunContext(ctx context.Context, host string, port int, debug bool) error {
	if a.Router == nil {
		return errors.New("server not initialized")
	}
	a.debug.Store(debug)

	bind := net.JoinHostPort(host, strconv.Itoa(port))
	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("listen %s: %w", bind, err)
	}

	// Жёсткие таймауты — это важно для production
	a.httpServer = &http.Server{
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if debug {
		a.logRoutes()
	}
	logs.Logger.Infof("HTTP listening on %s (debug=%t)", ln.Addr(), debug)
	a.printBanner(advertisedURL(host, ln.Addr()))

	serveErr := make(chan error, 1)
	go func() { serveErr <- a.httpServer.Serve(ln) }()
	a.ready.Store(true)
	defer a.ready.Store(false)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logs.Logger.Infof("shutdown: %v", context.Cause(ctx))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}

func (a *App) logRoutes() {
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		logs.Logger.Infof("route: %-6v %s", methods, path)
		return nil
	})
}
