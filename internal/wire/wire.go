package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/job"
	"Inkstone/internal/pkg/cron"
	"Inkstone/internal/pkg/mail"
	"Inkstone/internal/repository"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	mailSender := mail.NewSender()

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, categoryRepo, commentRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, mailSender, cfg.App.BaseURL)
	mediaService := service.NewMediaService()

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(postService, userService),
		CommentHandler: handler.NewCommentHandler(commentService),
		UserHandler:    handler.NewUserHandler(userService),
		MediaHandler:   handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewPurgeJob(postRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
