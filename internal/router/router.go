package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	docs "github.com/vchoerlle/zelofinanceiro-sub001/api"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/config"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router controls the routes for the API.
func Router(cfg config.Config) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	r.Use(URLMiddleware())

	// CORS settings
	if cfg.CORSAllowOrigins != "" {
		log.Debug().Str("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)

	r.OPTIONS("/version", OptionsVersion)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.EnablePprof {
		pprof.Register(r)
	}

	docs.SwaggerInfo.Title = "Zelo Financeiro"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Zelo Financeiro, a personal finance organizer."

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	// Routes that work without a session
	v1.RegisterAuthRoutes(group.Group("/auth"))
	v1.RegisterPublicRPCRoutes(group.Group("/rpc"))

	// Everything else needs one
	authed := group.Group("")
	authed.Use(AuthMiddleware(cfg.JWTSecret))

	v1.RegisterCleanupRoutes(authed)
	v1.RegisterMeRoutes(authed.Group("/me"))
	v1.RegisterDashboardRoutes(authed.Group("/dashboard"))
	v1.RegisterCategoryRoutes(authed.Group("/categories"))
	v1.RegisterIncomeRoutes(authed.Group("/incomes"))
	v1.RegisterExpenseRoutes(authed.Group("/expenses"))
	v1.RegisterTransactionRoutes(authed.Group("/transactions"))
	v1.RegisterDebtRoutes(authed.Group("/debts"))
	v1.RegisterDebtInstallmentRoutes(authed.Group("/debt-installments"))
	v1.RegisterParceledIncomeRoutes(authed.Group("/parceled-incomes"))
	v1.RegisterIncomeInstallmentRoutes(authed.Group("/income-installments"))
	v1.RegisterGoalRoutes(authed.Group("/goals"))
	v1.RegisterMarketItemRoutes(authed.Group("/market-items"))
	v1.RegisterVehicleRoutes(authed.Group("/vehicles"))
	v1.RegisterMaintenanceRoutes(authed.Group("/maintenances"))
	v1.RegisterImportRoutes(authed.Group("/import"))
	v1.RegisterExportRoutes(authed.Group("/export"))
	v1.RegisterRPCRoutes(authed.Group("/rpc"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := requestBase(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Dashboard       string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`
	Categories      string `json:"categories" example:"https://example.com/api/v1/categories"`
	Incomes         string `json:"incomes" example:"https://example.com/api/v1/incomes"`
	Expenses        string `json:"expenses" example:"https://example.com/api/v1/expenses"`
	Transactions    string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Debts           string `json:"debts" example:"https://example.com/api/v1/debts"`
	ParceledIncomes string `json:"parceledIncomes" example:"https://example.com/api/v1/parceled-incomes"`
	Goals           string `json:"goals" example:"https://example.com/api/v1/goals"`
	MarketItems     string `json:"marketItems" example:"https://example.com/api/v1/market-items"`
	Vehicles        string `json:"vehicles" example:"https://example.com/api/v1/vehicles"`
	Import          string `json:"import" example:"https://example.com/api/v1/import"`
	Export          string `json:"export" example:"https://example.com/api/v1/export"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := requestBase(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Dashboard:       url + "/dashboard",
			Categories:      url + "/categories",
			Incomes:         url + "/incomes",
			Expenses:        url + "/expenses",
			Transactions:    url + "/transactions",
			Debts:           url + "/debts",
			ParceledIncomes: url + "/parceled-incomes",
			Goals:           url + "/goals",
			MarketItems:     url + "/market-items",
			Vehicles:        url + "/vehicles",
			Import:          url + "/import",
			Export:          url + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
