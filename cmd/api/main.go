package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/bookshelf/book"
	bookpg "github.com/marcelsud/bookshelf/book/postgres"
	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/http/chi"
	"github.com/marcelsud/bookshelf/metrics"
	"github.com/marcelsud/bookshelf/note"
	notepg "github.com/marcelsud/bookshelf/note/postgres"
)

const TIMEOUT = 30 * time.Second

/* main is where the wiring happens: configuration, the storage layer, the
 * business services and the HTTP handlers are assembled here and nowhere
 * else. Imports flow one way only: the binary imports the business layer,
 * which imports the storage layer.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cfg.ValidatePostgres(); err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	bookRepo, err := bookpg.NewRepositoryWithPoolConfig(
		cfg.PostgresConnectionString(),
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		cfg.DBConnMaxLifeMinutes,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer bookRepo.Close(ctx)

	// The note repository shares the pool opened above
	noteRepo := notepg.NewRepository(bookRepo.DB)

	bookService := book.NewService(bookRepo)
	noteService := note.NewService(noteRepo)

	collector := metrics.NewPostgresCollector(bookRepo.DB)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	r := chi.Handlers(ctx, bookService, noteService)
	r.Handle("/metrics", exporter.ServeHTTP())

	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
