package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obadiaha/safe-trade-scout-v2/checker"
	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/http/controller"
	"github.com/obadiaha/safe-trade-scout-v2/middleware"
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

const Version = "2.0.0"

var startTime = time.Now()

func addRouters(r gin.IRouter) {
	chk := checker.NewChecker()

	addHealthRouter(r, chk)
	apiV1 := setV1Group(r)
	if config.Conf.HTTPServer.APIKey != "" {
		apiV1.Use(middleware.CheckAPIKEY())
	}

	checkCtrl := controller.NewCheckController(chk)
	checkCtrl.Routers(apiV1)
	tokenCtrl := controller.NewTokenController(chk)
	tokenCtrl.Routers(apiV1)
}

func setV1Group(r gin.IRouter) gin.IRouter {
	return r.Group("/api/v1")
}

func addHealthRouter(r gin.IRouter, chk *checker.Checker) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.Health{
			Status:    "healthy",
			Version:   Version,
			Uptime:    int64(time.Since(startTime).Seconds()),
			CacheSize: chk.CacheSize(),
		})
	})
}
