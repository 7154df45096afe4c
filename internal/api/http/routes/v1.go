package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/labelforge/annotate-backend/config"
	annhttp "github.com/labelforge/annotate-backend/internal/annotations/http"
	annrepo "github.com/labelforge/annotate-backend/internal/annotations/repository"
	annservice "github.com/labelforge/annotate-backend/internal/annotations/service"
	"github.com/labelforge/annotate-backend/internal/auth"
	authhttp "github.com/labelforge/annotate-backend/internal/auth/http"
	dashhttp "github.com/labelforge/annotate-backend/internal/dashboard/http"
	dashrepo "github.com/labelforge/annotate-backend/internal/dashboard/repository"
	dashservice "github.com/labelforge/annotate-backend/internal/dashboard/service"
	projhttp "github.com/labelforge/annotate-backend/internal/projects/http"
	projrepo "github.com/labelforge/annotate-backend/internal/projects/repository"
	projservice "github.com/labelforge/annotate-backend/internal/projects/service"
	taskhttp "github.com/labelforge/annotate-backend/internal/tasks/http"
	taskrepo "github.com/labelforge/annotate-backend/internal/tasks/repository"
	taskservice "github.com/labelforge/annotate-backend/internal/tasks/service"
	"github.com/labelforge/annotate-backend/internal/uploads"
	uploadhttp "github.com/labelforge/annotate-backend/internal/uploads/http"
	"github.com/labelforge/annotate-backend/internal/users"
)

type Deps struct {
	DB    *sql.DB
	Redis *redis.Client
	Media uploads.MediaStore
	Cfg   *config.Config
}

func Register(r *gin.Engine, dep Deps) {
	api := r.Group("/api")

	userRepo := users.NewRepo(dep.DB)
	authSvc := auth.NewService(userRepo, dep.Cfg.JWT.Secret,
		dep.Cfg.JWT.AccessTTL, dep.Cfg.JWT.RefreshTTL)
	authhttp.Register(api, authSvc)

	protected := api.Group("")
	protected.Use(auth.RequireAuth([]byte(dep.Cfg.JWT.Secret)))

	liveURL := dep.Cfg.App.LiveURL

	projSvc := projservice.NewService(projrepo.NewRepo(dep.DB))
	projhttp.Register(protected, projSvc, liveURL)

	taskSvc := taskservice.NewService(taskrepo.NewRepo(dep.DB))
	taskhttp.Register(protected, taskSvc, liveURL)

	annSvc := annservice.NewService(annrepo.NewRepo(dep.DB))
	annhttp.Register(protected, annSvc, liveURL)

	dashSvc := dashservice.NewService(dashrepo.NewRepo(dep.DB), dep.Redis)
	dashhttp.Register(protected, dashSvc)

	uploadhttp.Register(protected, dep.Media, dep.Cfg.App.AllowedFileTypes)
}
