package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"

	"github.com/mediaverse/mediaverse/account"
	"github.com/mediaverse/mediaverse/admin"
	"github.com/mediaverse/mediaverse/catalog"
	"github.com/mediaverse/mediaverse/internal/config"
	"github.com/mediaverse/mediaverse/lists"
	"github.com/mediaverse/mediaverse/requests"
	"github.com/mediaverse/mediaverse/server"
	"github.com/mediaverse/mediaverse/session"
	"github.com/mediaverse/mediaverse/store"
	"github.com/mediaverse/mediaverse/token"
	"github.com/mediaverse/mediaverse/users"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	handler, err := buildServer(c)
	if err != nil {
		return fmt.Errorf("buildServer: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func buildServer(c config.Config) (*server.Server, error) {
	client := store.NewClient(c.GetStoreBaseURL())

	userRepo := users.NewStoreRepo(client)
	mediaRepo := catalog.NewStoreMediaRepo(client)
	ratingsRepo := catalog.NewStoreRatingsRepo(client)
	listsRepo := lists.NewStoreRepo(client)
	requestRepo := requests.NewStoreRepo(client)

	tokens := token.NewManager(token.NewHMACSigner(c.GetTokenSecret()), c.GetTokenExpiry())

	// The end-user app and the admin console keep separate session slots.
	userStorage, err := session.NewFileStorage(filepath.Join(c.GetDataFolder(), "app"))
	if err != nil {
		return nil, fmt.Errorf("user session storage: %w", err)
	}
	adminStorage, err := session.NewFileStorage(filepath.Join(c.GetDataFolder(), "admin"))
	if err != nil {
		return nil, fmt.Errorf("admin session storage: %w", err)
	}

	userGuard, err := session.NewGuard(userStorage, userRepo, tokens)
	if err != nil {
		return nil, fmt.Errorf("user guard: %w", err)
	}
	adminGuard, err := session.NewGuard(adminStorage, userRepo, tokens, session.WithRequireAdmin())
	if err != nil {
		return nil, fmt.Errorf("admin guard: %w", err)
	}

	accounts, err := account.NewService(account.Repos{
		Users:    userRepo,
		Media:    mediaRepo,
		Ratings:  ratingsRepo,
		Lists:    listsRepo,
		Requests: requestRepo,
	}, userGuard)
	if err != nil {
		return nil, fmt.Errorf("account service: %w", err)
	}

	admins, err := admin.NewService(admin.Repos{
		Users:    userRepo,
		Media:    mediaRepo,
		Ratings:  ratingsRepo,
		Lists:    listsRepo,
		Requests: requestRepo,
	}, adminGuard)
	if err != nil {
		return nil, fmt.Errorf("admin service: %w", err)
	}

	return server.New(c, server.Repos{
		Users:   userRepo,
		Media:   mediaRepo,
		Ratings: ratingsRepo,
	}, tokens, userGuard, adminGuard, accounts, admins)
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
