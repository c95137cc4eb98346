// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"localdeal/config"
	"localdeal/internal/delivery/api/middleware"
	"localdeal/internal/delivery/api/router/handler"
	"localdeal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const (
	ownerOffersPath = "/api/v1/owner/offers"
	ownerOfferPath  = "/api/v1/owner/offers/:id"

	defaultUploadLimit = "5MB"
	// room for the multipart envelope and the text fields next to the image
	uploadOverhead = bytes.MiB
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ProfileHandler      *handler.ProfileHandler
	CityHandler         *handler.CityHandler
	OfferHandler        *handler.OfferHandler
	OwnerOfferHandler   *handler.OwnerOfferHandler
	BusinessHandler     *handler.BusinessHandler
	FavoriteHandler     *handler.FavoriteHandler
	ReviewHandler       *handler.ReviewHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	ImageHandler        *handler.ImageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	profileHandler      *handler.ProfileHandler
	cityHandler         *handler.CityHandler
	offerHandler        *handler.OfferHandler
	ownerOfferHandler   *handler.OwnerOfferHandler
	businessHandler     *handler.BusinessHandler
	favoriteHandler     *handler.FavoriteHandler
	reviewHandler       *handler.ReviewHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	imageHandler        *handler.ImageHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		profileHandler:      params.ProfileHandler,
		cityHandler:         params.CityHandler,
		offerHandler:        params.OfferHandler,
		ownerOfferHandler:   params.OwnerOfferHandler,
		businessHandler:     params.BusinessHandler,
		favoriteHandler:     params.FavoriteHandler,
		reviewHandler:       params.ReviewHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		imageHandler:        params.ImageHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// IsUploadRoute reports whether the matched route accepts offer images. Those routes carry their
// own body limit instead of the global one.
func IsUploadRoute(c echo.Context) bool {
	path := c.Path()

	return path == ownerOffersPath || path == ownerOfferPath
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Offer images, served from the bucket
	e.GET("/images/*", r.imageHandler.GetImage)

	auth := r.authMiddleware.Authenticate
	complete := r.authMiddleware.RequireCompleteProfile

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/firebase", r.sessionHandler.SignIn)
		authGroup.POST("/refresh", r.sessionHandler.Refresh)
		authGroup.POST("/logout", r.sessionHandler.SignOut, auth)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalogue
	apiV1.GET("/cities", r.cityHandler.ListCities)
	apiV1.GET("/cities/nearest", r.cityHandler.NearestCity)

	apiV1.GET("/offers", r.offerHandler.ListOffers)
	apiV1.GET("/offers/:id", r.offerHandler.GetOffer)
	apiV1.GET("/offers/:id/qr", r.offerHandler.GetOfferQR)
	apiV1.GET("/offers/:id/reviews", r.reviewHandler.ListReviews)

	apiV1.GET("/businesses", r.businessHandler.ListBusinesses)
	apiV1.GET("/businesses/:id", r.businessHandler.GetBusiness)
	apiV1.GET("/businesses/:id/offers", r.offerHandler.ListBusinessOffers)

	// Any signed-in session, complete or not
	apiV1.GET("/me", r.profileHandler.GetProfile, auth)
	apiV1.PUT("/me/profile", r.profileHandler.UpdateProfile, auth)

	devicesGroup := apiV1.Group("/devices", auth)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Completed profiles only
	apiV1.POST("/offers/:id/favorite", r.favoriteHandler.ToggleFavorite, auth, complete)
	apiV1.GET("/offers/:id/favorite", r.favoriteHandler.GetFavoriteStatus, auth, complete)
	apiV1.GET("/favorites", r.favoriteHandler.ListFavorites, auth, complete)
	apiV1.POST("/offers/:id/reviews", r.reviewHandler.AddReview, auth, complete)

	// Business owners
	uploadLimit := echomiddleware.BodyLimit(r.uploadLimit())
	ownerGroup := apiV1.Group("/owner", auth, r.authMiddleware.RequireRole(entity.RoleOwner))
	{
		ownerGroup.GET("/business", r.businessHandler.GetMyBusiness)
		ownerGroup.PUT("/business", r.businessHandler.SaveMyBusiness)

		ownerGroup.GET("/offers", r.ownerOfferHandler.ListOwnerOffers)
		ownerGroup.POST("/offers", r.ownerOfferHandler.CreateOffer, uploadLimit)
		ownerGroup.PUT("/offers/:id", r.ownerOfferHandler.UpdateOffer, uploadLimit)
		ownerGroup.DELETE("/offers/:id", r.ownerOfferHandler.DeleteOffer)

		ownerGroup.GET("/notifications", r.notificationHandler.GetNotificationHistory)
	}
}

// uploadLimit is the configured image size plus the multipart overhead.
func (r *router) uploadLimit() string {
	maxImage := defaultUploadLimit
	if r.config.Storage != nil && r.config.Storage.MaxImageSize != "" {
		maxImage = r.config.Storage.MaxImageSize
	}

	size, err := bytes.Parse(maxImage)
	if err != nil {
		size, _ = bytes.Parse(defaultUploadLimit)
	}

	return bytes.Format(size + uploadOverhead)
}
