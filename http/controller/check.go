package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/obadiaha/safe-trade-scout-v2/checker"
	"github.com/obadiaha/safe-trade-scout-v2/model"
	"github.com/obadiaha/safe-trade-scout-v2/utils"
)

type CheckController struct {
	checker *checker.Checker
}

func NewCheckController(chk *checker.Checker) *CheckController {
	return &CheckController{checker: chk}
}

func (cc *CheckController) Routers(routers gin.IRouter) {
	routers.POST("/check", cc.CheckToken)
}

type CheckRequest struct {
	Token string `json:"token"`
	Chain string `json:"chain"`
}

func (cc *CheckController) CheckToken(c *gin.Context) {
	req := CheckRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.Message{
			Code: http.StatusBadRequest,
			Msg:  "request body must be valid JSON with token and chain fields",
		})
		return
	}

	if !utils.IsValidTokenAddress(req.Token) {
		c.JSON(http.StatusOK, model.Message{
			Code: http.StatusBadRequest,
			Msg:  fmt.Sprintf("invalid token address %s, expect 0x-prefixed 40 hex digits", req.Token),
		})
		return
	}

	chain := strings.ToLower(req.Chain)
	if !utils.IsSupportedChain(chain) {
		c.JSON(http.StatusOK, model.Message{
			Code: http.StatusBadRequest,
			Msg:  fmt.Sprintf("chain must be one of: %s", strings.Join(utils.SupportedChains(), ", ")),
		})
		return
	}

	result, err := cc.checker.Check(c.Request.Context(), req.Token, chain)
	if err != nil {
		logrus.Errorf("check token %s on %s is err: %v", req.Token, chain, err)
		c.JSON(http.StatusOK, model.Message{
			Code: http.StatusInternalServerError,
			Msg:  "an unexpected error occurred",
		})
		return
	}

	c.JSON(http.StatusOK, model.Message{Code: http.StatusOK, Data: result})
}
