package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/obadiaha/safe-trade-scout-v2/checker"
	"github.com/obadiaha/safe-trade-scout-v2/model"
	"github.com/obadiaha/safe-trade-scout-v2/utils"
)

type TokenController struct {
	checker *checker.Checker
}

func NewTokenController(chk *checker.Checker) *TokenController {
	return &TokenController{checker: chk}
}

func (tc *TokenController) Routers(routers gin.IRouter) {
	api := routers.Group("/tokens")
	{
		api.GET("/:address/holders", tc.GetHolderReport)
	}
}

// GetHolderReport serves the holder-focused distribution report, scored with
// the finer holder ladder rather than the overall risk engine.
func (tc *TokenController) GetHolderReport(c *gin.Context) {
	chain := utils.GetChainFromQuery(c.Query(utils.ChainKey))
	address := strings.ToLower(c.Param("address"))

	if !utils.IsSupportedChain(chain) {
		c.JSON(http.StatusOK, model.Message{
			Code: http.StatusBadRequest,
			Msg:  fmt.Sprintf("chain must be one of: %s", strings.Join(utils.SupportedChains(), ", ")),
		})
		return
	}
	if !utils.IsValidTokenAddress(address) {
		c.JSON(http.StatusOK, model.Message{
			Code: http.StatusBadRequest,
			Msg:  fmt.Sprintf("invalid token address %s, expect 0x-prefixed 40 hex digits", address),
		})
		return
	}

	report := tc.checker.HolderReport(c.Request.Context(), address, chain)
	c.JSON(http.StatusOK, model.Message{Code: http.StatusOK, Data: report})
}
