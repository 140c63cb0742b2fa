package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bulletin-board-api/internal/database"
	"bulletin-board-api/internal/handler"
	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/middleware"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/service"
	"bulletin-board-api/internal/storage"
)

const serviceName = "bulletin-board-api"

// Config holds router configuration
type Config struct {
	DB     *gorm.DB
	Logger *zap.Logger

	// Metrics may be nil. Gatherer defaults to the Prometheus default registry.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Storage    storage.FileStorage
	LoginGuard service.LoginGuard

	BcryptCost     int
	MaxFileSize    int64
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), cfg.DB); err != nil {
			cfg.Logger.Warn("Readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	repos := repository.NewRepositories(cfg.DB)
	transactor := repository.NewTransactor(cfg.DB)

	// Initialize services
	memberService := service.NewMemberService(repos.Members, transactor, cfg.LoginGuard, cfg.BcryptCost, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(repos.Boards, repos.Members, repos.Files, transactor, cfg.Storage, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(repos.Comments, repos.Boards, repos.Members, cfg.Metrics, cfg.Logger)
	fileService := service.NewFileService(transactor, cfg.Storage, cfg.MaxFileSize, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	memberHandler := handler.NewMemberHandler(memberService, cfg.Logger)
	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)
	fileHandler := handler.NewFileHandler(fileService, cfg.Logger)

	// ============================================================
	// Member routes
	// ============================================================
	r.POST("/login", memberHandler.Login)
	r.POST("/register", memberHandler.Register)

	member := r.Group("/member")
	{
		member.POST("/verify-password", memberHandler.VerifyPassword)
		member.PATCH("/update-username", memberHandler.UpdateUsername)
		member.DELETE("/delete", memberHandler.DeleteMember)
	}

	// ============================================================
	// Board routes
	// ============================================================
	board := r.Group("/board")
	{
		board.GET("/list", boardHandler.ListBoards)
		board.POST("/write", boardHandler.WriteBoard)
		board.GET("/:id", boardHandler.GetBoard)
		board.DELETE("/:id", boardHandler.DeleteBoard)
		board.PATCH("/:id/update", boardHandler.UpdateBoard)
		board.POST("/:id/increment-view", boardHandler.IncrementViewCount)

		// Comments
		board.GET("/:id/comment/list", commentHandler.ListComments)
		board.POST("/:id/comment/write", commentHandler.WriteComment)
		board.PATCH("/:id/comment/update/:cid", commentHandler.UpdateComment)
		board.DELETE("/:id/comment/delete/:cid", commentHandler.DeleteComment)

		// Files
		board.POST("/:id/file/upload", fileHandler.UploadFiles)
		board.DELETE("/:id/file/delete", fileHandler.DeleteFile)
	}

	r.GET("/uploads/:filename", fileHandler.DownloadFile)

	return r
}
