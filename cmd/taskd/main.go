package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nucmaan/Task-Manager-Backend/cmd/taskd/handlers"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/auth"
	kredis "github.com/Nucmaan/Task-Manager-Backend/pkg/cache/redis"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/configs/backend"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/coordinator"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/taskhub/db/postgres"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user/remote"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/files"
	reporthttp "github.com/Nucmaan/Task-Manager-Backend/pkg/report/http"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils/echoutil"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils/filewatch"
)

func main() {
	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	flag.Parse()

	e := echo.New()

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := backend.LoadBackendConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	{
		// quit to restart when the config file changes.
		watched, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(watched, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, conf.Database())
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	cache := kredis.New(conf.Redis())
	validator := remote.New(
		conf.UserService().Root(),
		remote.WithTimeout(conf.UserService().Timeout()),
	)
	reporter := reporthttp.New(conf.Performance().Root())
	artifacts := files.New(conf.Artifacts().Dir(), conf.Artifacts().BaseUrl())

	logger := log.Default()
	coord := coordinator.New(
		db.Tasks(), db.Assignments(), db.History(),
		validator, cache, reporter, artifacts, logger,
	)
	projects := project.New(db.Projects(), cache, validator, logger)

	gate := auth.Middleware(conf.Auth().Secret())

	// handlers
	{
		e.POST("/api/assignments", handlers.CreateAssignmentHandler(coord))
		e.GET("/api/assignments/:taskId/:userId", handlers.GetAssignmentHandler(coord, "taskId", "userId"))
		e.PUT("/api/assignments/:taskId/:userId", handlers.ReassignHandler(coord, "taskId", "userId"))
		e.DELETE("/api/assignments/:taskId/:userId", handlers.DeleteAssignmentHandler(coord, "taskId", "userId"))
		e.GET("/api/users/:userId/assignments", handlers.GetUserAssignmentsHandler(coord, "userId"))
	}

	{
		e.PUT("/api/tasks/:taskId/submit", handlers.SubmitTaskHandler(coord, "taskId"), gate)
		e.PUT("/api/status-updates/:id", handlers.EditStatusUpdateHandler(coord, "id"), gate)
		e.GET("/api/users/:userId/status-updates", handlers.GetUserStatusUpdatesHandler(coord, "userId"))
		e.GET("/api/status-updates", handlers.GetAllStatusUpdatesHandler(coord))
	}

	{
		e.POST("/api/projects", handlers.CreateProjectHandler(projects), gate)
		e.GET("/api/projects", handlers.GetProjectsHandler(projects))
		e.GET("/api/projects/:id", handlers.GetProjectHandler(projects, "id"))
		e.PUT("/api/projects/:id", handlers.UpdateProjectHandler(projects, "id"), gate)
		e.DELETE("/api/projects/:id", handlers.DeleteProjectHandler(projects, "id"), gate)
		e.GET("/api/projects/:id/tasks", handlers.GetProjectTasksHandler(db.Tasks(), "id"))
	}

	e.Static("/public", conf.Artifacts().Dir())

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", conf.Port())))
}
