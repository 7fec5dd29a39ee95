package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/danceapp/events-api/docs"
	v1 "github.com/danceapp/events-api/internal/api/handler/v1"
	"github.com/danceapp/events-api/internal/api/middleware"
	"github.com/danceapp/events-api/internal/cache"
	"github.com/danceapp/events-api/internal/config"
	"github.com/danceapp/events-api/internal/pkg/notify"
	"github.com/danceapp/events-api/internal/pkg/storage"
	"github.com/danceapp/events-api/internal/repository"
	"github.com/danceapp/events-api/internal/repository/dao"
	"github.com/danceapp/events-api/internal/service"
)

// Deps are the shared clients the handlers are built on. Cache may be nil.
type Deps struct {
	DB       *gorm.DB
	Cache    *cache.Cache
	Notifier notify.Notifier
	Files    storage.FileStorage
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Events is kept so config reloads can reach the location filter radius.
	Events *service.EventService
}

type handlers struct {
	auth          *v1.AuthHandler
	user          *v1.UserHandler
	event         *v1.EventHandler
	favourite     *v1.FavouriteHandler
	advertisement *v1.AdvertisementHandler
}

func NewServer(conf *config.AppConfig, deps Deps) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(deps.DB))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(deps.DB), dao.NewFavouriteDAO(deps.DB))

	s.Events = service.NewEventService(
		eventRepo,
		repository.NewBookingRepository(dao.NewBookingDAO(deps.DB)),
		conf.Filter.ProximityDegrees,
	)

	h := handlers{
		auth:          s.initAuthHandler(userRepo),
		user:          s.initUserHandler(userRepo, deps.Files),
		event:         v1.NewEventHandler(s.Events),
		favourite:     s.initFavouriteHandler(eventRepo, userRepo, deps.Notifier),
		advertisement: s.initAdvertisementHandler(deps.DB, deps.Cache),
	}
	s.MountHandlers(h)

	return s
}

func (s *Server) initAuthHandler(repo *repository.UserRepository) *v1.AuthHandler {
	svc := service.NewAuthService(repo)
	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initUserHandler(repo *repository.UserRepository, files storage.FileStorage) *v1.UserHandler {
	svc := service.NewUserService(repo, files)
	return v1.NewUserHandler(svc, s.Config.Upload.MaxSizeMB<<20)
}

func (s *Server) initFavouriteHandler(
	events *repository.EventRepository,
	users *repository.UserRepository,
	notifier notify.Notifier,
) *v1.FavouriteHandler {
	svc := service.NewFavouriteService(events, events, users, notifier, s.Events.ProximityDegrees)
	return v1.NewFavouriteHandler(svc)
}

func (s *Server) initAdvertisementHandler(db *gorm.DB, c *cache.Cache) *v1.AdvertisementHandler {
	repo := repository.NewAdvertisementRepository(dao.NewAdvertisementDAO(db))
	svc := service.NewAdvertisementService(repo, c, s.Config.Redis.AdTTL)
	return v1.NewAdvertisementHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	verify := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	users := s.Router.Group(basePath+"/user", verify)
	{
		users.GET("/me", h.user.HandleGetMe)
		users.PATCH("/update", h.user.HandleUpdateMe)
		users.PATCH("/fcm-token", h.user.HandleUpdateFCMToken)
		users.POST("/profile-picture", h.user.HandleUploadProfilePicture)
	}

	events := s.Router.Group(basePath+"/event", verify)
	{
		events.GET("/get", h.event.HandleGetEvent)
		events.GET("/filtered", h.event.HandleFilteredEvents)
		events.GET("/booking-details", h.event.HandleBookingDetails)
		events.GET("/get-all-favourites", h.favourite.HandleGetAllFavourites)
		events.POST("/add-to-favourites", h.favourite.HandleAddToFavourites)
		events.DELETE("/remove-from-favourites", h.favourite.HandleRemoveFromFavourites)
	}

	ads := s.Router.Group(basePath+"/advertisement", verify)
	{
		ads.GET("/get", h.advertisement.HandleGetAdvertisements)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.Static(s.Config.Upload.URLPrefix, s.Config.Upload.Dir)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Dance Events API"
	docs.SwaggerInfo.Description = "Events, favourites, booking details and advertisements."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
