package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/config"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/handler"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/repository"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/server"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/book"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/rental"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/student"
	"github.com/Astemirdum/enrolment-service/enrolment/migrations"
	"github.com/Astemirdum/enrolment-service/pkg/logger"
	"github.com/Astemirdum/enrolment-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "enrolment")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}
	studentSvc := student.NewService(repo, repo, log)
	bookSvc := book.NewService(repo, log)
	rentalSvc := rental.NewService(repo, repo, repo, log)

	h := handler.New(studentSvc, bookSvc, rentalSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
