package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	activityHTTP "workpulse/internal/activity/delivery/http"
	activityPG "workpulse/internal/activity/repository/postgre"
	activityUC "workpulse/internal/activity/usecase"
	chatHTTP "workpulse/internal/chat/delivery/http"
	chatUC "workpulse/internal/chat/usecase"
	habitHTTP "workpulse/internal/habit/delivery/http"
	habitPG "workpulse/internal/habit/repository/postgre"
	habitUC "workpulse/internal/habit/usecase"
	"workpulse/internal/ingest"
	"workpulse/internal/middleware"
	notifHTTP "workpulse/internal/notification/delivery/http"
	notifPG "workpulse/internal/notification/repository/postgre"
	notifUC "workpulse/internal/notification/usecase"
	"workpulse/internal/router"
	"workpulse/internal/seed"
	seedHTTP "workpulse/internal/seed/delivery/http"
	taskHTTP "workpulse/internal/task/delivery/http"
	taskPG "workpulse/internal/task/repository/postgre"
	taskUC "workpulse/internal/task/usecase"
)

// setupDomains initializes every domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainPG.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Repositories
	taskRepo := taskPG.New(srv.postgresDB, srv.l)
	activityRepo := activityPG.New(srv.postgresDB, srv.l)
	habitRepo := habitPG.New(srv.postgresDB, srv.l)
	notifRepo := notifPG.New(srv.postgresDB, srv.l)

	// UseCases
	tasks := taskUC.New(taskRepo, srv.dateMath, srv.l)
	activities := activityUC.New(activityRepo, srv.dateMath, srv.l)
	habits := habitUC.New(habitRepo, taskRepo, activityRepo, srv.dateMath, srv.l)
	chats := chatUC.New(router.New(srv.l), taskRepo, habitRepo, srv.l)
	notifications := notifUC.New(notifRepo, srv.l)
	seeder := seed.New(taskRepo, notifRepo, habitRepo, srv.dateMath, srv.l)

	// HTTP handlers and routes
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks, srv.dateMath), mw)
	activityHTTP.RegisterRoutes(api, activityHTTP.New(srv.l, activities), mw)
	habitHTTP.RegisterRoutes(api, habitHTTP.New(srv.l, habits), mw)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chats), mw)
	notifHTTP.RegisterRoutes(api, notifHTTP.New(srv.l, notifications), mw)
	seedHTTP.RegisterRoutes(api, seedHTTP.New(srv.l, seeder), mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")

	// Activity webhook ingest, signed rather than user-authenticated
	if srv.ingestEnabled {
		ingestHandler := ingest.NewHandler(activities, tasks, srv.ingestConfig, srv.l)
		ingest.RegisterRoutes(srv.gin, ingestHandler)
		srv.l.Infof(ctx, "Activity webhook route registered at POST /webhook/activities")
	} else {
		srv.l.Infof(ctx, "Webhook ingest disabled, skipping route")
	}

	return nil
}
