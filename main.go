package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calcmd/src-engine/handler"
	"calcmd/src-engine/manager"
	"calcmd/src-engine/metric"
	"calcmd/src-engine/model"
	"calcmd/src-engine/shell"
	"calcmd/src-engine/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	commandFile := flag.String("f", "", "process a command file, then exit")
	discordMode := flag.Bool("discord", false, "serve commands over Discord with a /metrics endpoint")
	flag.Parse()

	as := utils.NewAppState()

	if err := model.CreateSchema(as.BunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}

	mgr := manager.New(as.BunDB)
	ctx := context.Background()

	switch {
	case *commandFile != "":
		if err := shell.RunFile(ctx, mgr, *commandFile, os.Stdout); err != nil {
			slog.Error("command file aborted", "file", *commandFile, "error", err)
			os.Exit(1)
		}

	case *discordMode:
		session, err := handler.Discord(as, mgr)
		if err != nil {
			slog.Error("can't start discord front end", "error", err)
			os.Exit(1)
		}
		defer session.Close()

		metric.Init(as)
		go func() {
			muxer := http.NewServeMux()
			muxer.Handle("GET /metrics", promhttp.Handler())
			if err := http.ListenAndServe(":"+as.Config.GetPort(), muxer); err != nil {
				slog.Error("cannot start HTTP server", "error", err)
				as.AppCloseSignalChan <- syscall.SIGTERM
			}
		}()

		slog.Info("app is now running, press Ctrl+C to exit")
		signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		<-as.AppCloseSignalChan
		as.GracefulShutdown()
		slog.Info("Gracefully shutting down...")

	default:
		if err := shell.Interactive(ctx, mgr, os.Stdin, os.Stdout); err != nil {
			os.Exit(1)
		}
	}
}
